package tui

import "github.com/vovakirdan/tui-pong/internal/core"

// holdTicks is how long a direction stays held after its last key event.
// Terminals report presses and auto-repeats but never releases, so a held
// key is one that keeps repeating within this window.
const holdTicks = 8

// heldDirection turns discrete key presses into up/down held flags.
type heldDirection struct {
	up   int // ticks left
	down int
}

// Press refreshes the hold for a direction. The opposite direction is
// released immediately.
func (h *heldDirection) Press(a core.Action) {
	switch a {
	case core.ActionUp:
		h.up = holdTicks
		h.down = 0
	case core.ActionDown:
		h.down = holdTicks
		h.up = 0
	}
}

// Held reports which directions are currently held.
func (h heldDirection) Held() (up, down bool) {
	return h.up > 0, h.down > 0
}

// Active reports whether any direction is held.
func (h heldDirection) Active() bool {
	return h.up > 0 || h.down > 0
}

// Tick ages the holds by one frame.
func (h *heldDirection) Tick() {
	if h.up > 0 {
		h.up--
	}
	if h.down > 0 {
		h.down--
	}
}

// Release drops both directions.
func (h *heldDirection) Release() {
	h.up, h.down = 0, 0
}
