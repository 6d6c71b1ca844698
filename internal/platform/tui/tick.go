// Package tui provides the Bubble Tea maze viewer, the run history browser
// and an SSH server that serves the viewer to remote sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg advances the slideshow.
type TickMsg time.Time

// tickCmd returns a command that sends one TickMsg after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
