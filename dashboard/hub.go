// Package dashboard broadcasts run events over a WebSocket hub so a
// browser-based dashboard can watch a run live. It is a pure consumer of
// gogp's public Report event shape: nothing in the core package depends
// on it.
package dashboard

import (
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Message is the envelope every WebSocket frame carries.
type Message struct {
	Kind string      `json:"kind"`
	Data interface{} `json:"data"`
	Time int64       `json:"time"`
}

// Message kinds.
const (
	KindRunStart       = "run_start"
	KindGeneration     = "generation"
	KindMigration      = "migration"
	KindBest           = "best"
	KindFitnessFailure = "fitness_failure"
	KindDone           = "done"
)

// Hub manages WebSocket connections and broadcasts run events to all of
// them. It mirrors the register/unregister/broadcast channel pattern
// common to Go WebSocket hubs: a single goroutine owns the client map so
// no external mutex is needed around membership changes.
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Message
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.RWMutex
	lastStatus Message
	hasStatus  bool
}

// NewHub constructs a Hub. Serve starts Run itself; a caller that mounts
// ServeWS on its own server must call Run in its own goroutine before
// serving any connections.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Message, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run processes registrations and broadcasts until the Hub is discarded.
// It never returns; call it with `go hub.Run()`.
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.Lock()
			h.lastStatus = msg
			h.hasStatus = true
			h.mu.Unlock()

			h.mu.RLock()
			for conn := range h.clients {
				_ = conn.WriteJSON(msg)
			}
			h.mu.RUnlock()
		}
	}
}

// Broadcast queues a message for every connected client. If the outgoing
// buffer is full the message is dropped rather than blocking the caller
// — a run's island goroutines must never stall on a slow browser.
func (h *Hub) Broadcast(kind string, data interface{}) {
	msg := Message{Kind: kind, Data: data, Time: time.Now().Unix()}
	select {
	case h.broadcast <- msg:
	default:
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWS upgrades an HTTP request to a WebSocket connection and keeps
// it registered until the client disconnects.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	h.register <- conn
	defer func() {
		h.unregister <- conn
		conn.Close()
	}()

	h.mu.RLock()
	status, ok := h.lastStatus, h.hasStatus
	h.mu.RUnlock()
	if ok {
		conn.WriteJSON(status)
	}

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

// corsMiddleware allows a dashboard served from a different origin
// (e.g. a local static file) to reach the WebSocket endpoint.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Serve starts an HTTP server on addr exposing the hub's WebSocket
// endpoint at /ws and a static dashboard page at /, if staticDir is
// non-empty. It blocks until the server stops.
func Serve(addr string, h *Hub, staticDir string) error {
	mux := http.NewServeMux()
	if staticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(staticDir)))
	}
	mux.HandleFunc("/ws", h.ServeWS)

	go h.Run()

	fmt.Printf("dashboard listening at http://localhost%s/ws\n", addr)
	return http.ListenAndServe(addr, corsMiddleware(mux))
}

// FindAvailablePort returns the first free TCP port at or after start,
// scanning up to port 9000. Falls back to start if none are free.
func FindAvailablePort(start int) int {
	for port := start; port < 9000; port++ {
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
		if err == nil {
			ln.Close()
			return port
		}
	}
	return start
}
