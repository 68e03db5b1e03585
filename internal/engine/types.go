package engine

import "fmt"

// Side identifies one end of the field. It names paddles, scorers and
// serve targets.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideCPU
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideNone:
		return "none"
	case SidePlayer:
		return "player"
	case SideCPU:
		return "cpu"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Opponent returns the other side. SideNone has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case SidePlayer:
		return SideCPU
	case SideCPU:
		return SidePlayer
	default:
		return SideNone
	}
}

// RunState governs whether Advance mutates the ball and paddles.
type RunState int

const (
	Running RunState = iota
	PausedForServe
	PausedUnfocused
)

// String returns a human-readable name for the run state.
func (r RunState) String() string {
	switch r {
	case Running:
		return "running"
	case PausedForServe:
		return "paused-for-serve"
	case PausedUnfocused:
		return "paused-unfocused"
	default:
		return fmt.Sprintf("RunState(%d)", int(r))
	}
}

// Field is the playing area. Origin is the top-left corner, y grows down.
type Field struct {
	Width  float64
	Height float64
}

// Paddle is an axis-aligned rectangle that only moves vertically.
type Paddle struct {
	X      float64 // Left edge, fixed for the lifetime of the engine
	Y      float64 // Top edge
	Width  float64
	Height float64
	Speed  float64 // Units per reference frame
}

// CenterY returns the vertical center of the paddle.
func (p Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

// Right returns the x-coordinate of the right edge.
func (p Paddle) Right() float64 {
	return p.X + p.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (p Paddle) Bottom() float64 {
	return p.Y + p.Height
}

// Ball is a circle with a scalar speed and a velocity whose magnitude
// tracks that speed.
type Ball struct {
	X, Y   float64
	Radius float64
	Speed  float64
	VX, VY float64
}

// Score holds the points of both sides.
type Score struct {
	Player int
	CPU    int
}

// StepResult describes what happened during a single Advance call.
type StepResult struct {
	State       RunState
	WallBounces int
	PaddleHit   Side // Last paddle hit during the step
	Scorer      Side // SideNone when no point was scored
}

// Snapshot is a read-only copy of everything a presenter needs to draw a
// frame.
type Snapshot struct {
	Field  Field
	Player Paddle
	CPU    Paddle
	Ball   Ball
	Score  Score
	State  RunState
}
