// Package tui provides the Bubble Tea driver for the runner: the terminal
// loop, key mapping, colored rendering, the journal browser and SSH serving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to advance the simulation by one step.
type TickMsg struct {
	At time.Time
}

// tickInterval is the frame period for rate ticks per second.
// Non-positive rates fall back to 60 Hz.
func tickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

func tickCmd(rate int) tea.Cmd {
	return tea.Tick(tickInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg{At: t}
	})
}
