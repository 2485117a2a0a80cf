package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/breakout/physics"
)

var (
	colorWon     = lipgloss.Color("#8aa788")
	colorLost    = lipgloss.Color("#ff4d4d")
	colorPlaying = lipgloss.Color("#FFA132")
	colorMuted   = lipgloss.Color("#6f7a70")
)

// renderSummary formats the final match state for the shell after the screen is released
func renderSummary(s *physics.Snapshot, elapsed time.Duration) string {
	if s == nil {
		return ""
	}

	accent := colorPlaying
	result := "Unfinished"
	switch s.State {
	case physics.StateWon:
		accent, result = colorWon, "Cleared"
	case physics.StateLost:
		accent, result = colorLost, "Ball lost"
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(accent).Render("BREAKOUT  " + result)
	label := lipgloss.NewStyle().Foreground(colorMuted).Width(8)

	rows := []string{
		title,
		"",
		label.Render("Score") + fmt.Sprintf("%d / %d", s.Score, len(s.Bricks)),
		label.Render("Ticks") + fmt.Sprintf("%d", s.Tick),
		label.Render("Time") + elapsed.Round(time.Millisecond).String(),
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 2)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
