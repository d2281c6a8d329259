package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	styleRed   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	styleGray  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleDim   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	stylePanel = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1)

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			Padding(0, 1)

	styleEventInfo  = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	styleEventWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	styleEventError = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderStats(),
		m.renderEvents(),
		m.renderFooter(),
	)
	return body
}

func (m Model) renderHeader() string {
	runtime := time.Since(m.snapshot.StartTime)
	return styleHeader.Render(fmt.Sprintf(
		"%s │ islands=%d │ pop=%d │ round=%d/%d │ runtime=%s",
		m.snapshot.Title,
		m.snapshot.NumIslands,
		m.snapshot.PopulationSize,
		m.snapshot.Round,
		m.snapshot.Migrations,
		FormatDuration(runtime),
	))
}

func (m Model) renderStats() string {
	return stylePanel.Width(50).Render(fmt.Sprintf(
		"Best fitness: %s │ failures: %d",
		m.bestFitnessColor(m.snapshot.BestFitness),
		m.snapshot.Failures,
	))
}

func (m Model) renderEvents() string {
	if !m.ready || m.width == 0 {
		return stylePanel.Render("Events: initializing...")
	}
	return stylePanel.Render("Events (scroll):") + "\n" + m.viewport.View()
}

func (m Model) renderFooter() string {
	hints := []string{"q: quit", "p: pause"}
	if m.paused {
		hints = append(hints, "(PAUSED)")
	}
	hintStrings := make([]string, len(hints))
	for i, h := range hints {
		hintStrings[i] = styleDim.Render(h)
	}
	return styleGray.Render("│ " + strings.Join(hintStrings, " │ ") + " │")
}

func (m Model) bestFitnessColor(fitness float64) string {
	s := fmt.Sprintf("%.6g", fitness)
	switch {
	case m.prevBest < 0:
		return styleDim.Render(s)
	case fitness < m.prevBest:
		return styleGreen.Render(s + " ↓")
	case fitness > m.prevBest:
		return styleRed.Render(s + " ↑")
	default:
		return styleDim.Render(s + " =")
	}
}

func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	if minutes > 0 {
		return fmt.Sprintf("%dh%dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}
