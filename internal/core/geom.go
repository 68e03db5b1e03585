// Package core provides the platform primitives shared by the simulation and
// its terminal front end: a character screen buffer, colors, integer
// geometry and clamping helpers. It has no external dependencies (especially
// no Bubble Tea) so game logic stays pure and testable.
package core

// Rect represents an axis-aligned cell rectangle on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
// When lo > hi the result is lo.
func ClampF(val, lo, hi float64) float64 {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}

// Scale maps v from a range of length from onto a range of length to,
// truncating to a cell index.
func Scale(v, from float64, to int) int {
	if from <= 0 {
		return 0
	}
	return int(v / from * float64(to))
}
