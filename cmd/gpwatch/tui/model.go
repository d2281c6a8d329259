// Package tui renders a live view of a gogp run in the terminal. It only
// consumes state pushed to it over PushState/PushEvent; it has no
// dependency on the gogp package itself, just plain data.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// StateSnapshot is the run state rendered by the dashboard at a point
// in time.
type StateSnapshot struct {
	Title     string
	StartTime time.Time

	NumIslands     int
	PopulationSize int
	Migrations     int
	Round          int

	BestFitness float64
	Failures    int64
}

// Event is a notable thing that happened during the run.
type Event struct {
	Timestamp time.Time
	Kind      string // "best", "migration", "failure"
	Severity  string // "info", "warning", "error"
	Message   string
}

type (
	MsgStateSnapshot StateSnapshot
	MsgEvent         Event
	MsgShutdown      struct{}
	MsgTick          time.Time
)

type Model struct {
	snapshot StateSnapshot
	events   []Event
	paused   bool

	width  int
	height int
	ready  bool

	viewport viewport.Model

	prevBest    float64
	hasSnapshot bool
}

func NewModel() Model {
	return Model{
		snapshot: StateSnapshot{StartTime: time.Now()},
		events:   make([]Event, 0, 1000),
		viewport: viewport.New(0, 10),
		prevBest: -1, // no prior best to compare against
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
		return MsgTick(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var keyCmd tea.Cmd
		m2, c := m.handleKey(msg)
		m = m2.(Model)
		keyCmd = c

		var vpCmd tea.Cmd
		m.viewport, vpCmd = m.viewport.Update(msg)
		return m, tea.Batch(vpCmd, keyCmd)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.viewport.Width = m.width - 4
		m.viewport.Height = 10
		return m, nil

	case MsgStateSnapshot:
		s := StateSnapshot(msg)
		if m.hasSnapshot {
			m.prevBest = m.snapshot.BestFitness
		}
		m.hasSnapshot = true
		m.snapshot = s
		return m, nil

	case MsgEvent:
		e := Event(msg)
		m.addEvent(e)
		m.updateViewportContent()
		m.viewport.GotoBottom()
		return m, nil

	case MsgTick:
		return m, tea.Tick(250*time.Millisecond, func(t time.Time) tea.Msg {
			return MsgTick(t)
		})

	case MsgShutdown:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "p":
		m.paused = !m.paused
		return m, nil
	}
	return m, nil
}

func (m *Model) addEvent(e Event) {
	m.events = append(m.events, e)
	if len(m.events) > 1000 {
		m.events = m.events[1:]
	}
}

func (m *Model) updateViewportContent() {
	var lines []string
	for _, e := range m.events {
		style := styleEventInfo
		switch e.Severity {
		case "warning":
			style = styleEventWarn
		case "error":
			style = styleEventError
		}

		icon := "•"
		switch {
		case e.Kind == "best":
			icon = "↗"
		case e.Kind == "migration":
			icon = "⇄"
		case e.Severity == "error":
			icon = "✗"
		case e.Severity == "warning":
			icon = "⚠"
		}

		lines = append(lines, style.Render(
			fmt.Sprintf("[%s] %s %s", e.Timestamp.Format("15:04:05"), icon, e.Message),
		))
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}
