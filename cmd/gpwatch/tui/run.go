package tui

import (
	"context"
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

type Config struct {
	Title string
}

var (
	mu      sync.RWMutex
	program *tea.Program
)

// Start launches the TUI in the background. It returns an error (and
// starts nothing) when stdout is not a terminal or TERM=dumb. gogp/logx
// applies the same TTY check to its color output (plus NO_COLOR), but
// does not look at TERM.
func Start(ctx context.Context, cfg Config) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui disabled: not a TTY")
	}
	if os.Getenv("TERM") == "dumb" {
		return fmt.Errorf("tui disabled: TERM=dumb")
	}

	m := NewModel()
	m.snapshot.Title = cfg.Title

	p := tea.NewProgram(m, tea.WithContext(ctx))

	mu.Lock()
	program = p
	mu.Unlock()

	go func() {
		_, _ = p.Run()
	}()

	return nil
}

// Stop requests the TUI quit.
func Stop() {
	mu.RLock()
	p := program
	mu.RUnlock()
	if p != nil {
		p.Send(MsgShutdown{})
	}
}

// PushState sends a fresh state snapshot to the running TUI, if any.
func PushState(s StateSnapshot) {
	mu.RLock()
	p := program
	mu.RUnlock()
	if p != nil {
		p.Send(MsgStateSnapshot(s))
	}
}

// PushEvent sends an event to the running TUI, if any.
func PushEvent(e Event) {
	mu.RLock()
	p := program
	mu.RUnlock()
	if p != nil {
		p.Send(MsgEvent(e))
	}
}
