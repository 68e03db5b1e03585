// Package tui hosts the Pong engine in a terminal. It owns the Bubble Tea
// loop, turns key, mouse and focus events into engine intent, and draws
// engine snapshots with lipgloss.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// referenceFrame is the frame length the engine's speeds are tuned for.
const referenceFrame = time.Second / 60

// maxFrameDelta caps dt so a stalled terminal does not teleport the ball.
const maxFrameDelta = 4.0

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta converts the time between two ticks into engine frames.
// A zero previous tick means the loop just started and counts as one frame.
func frameDelta(prev, now time.Time) float64 {
	if prev.IsZero() {
		return 1
	}
	dt := float64(now.Sub(prev)) / float64(referenceFrame)
	if dt < 0 {
		return 0
	}
	return min(dt, maxFrameDelta)
}
