package engine

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// circleHitsPaddle reports whether the ball overlaps the paddle rectangle.
// The closest point of the rectangle to the circle center is found by
// clamping per axis; touching without overlap is not a hit.
func circleHitsPaddle(b Ball, p Paddle) bool {
	closestX := core.ClampF(b.X, p.X, p.Right())
	closestY := core.ClampF(b.Y, p.Y, p.Bottom())

	dx := b.X - closestX
	dy := b.Y - closestY
	return dx*dx+dy*dy < b.Radius*b.Radius
}

// bounceAngle maps where the ball met the paddle to a launch angle.
// A hit above the paddle center yields a positive angle (ball goes up).
func bounceAngle(b Ball, p Paddle, maxAngle float64) float64 {
	relative := (p.CenterY() - b.Y) / (p.Height / 2)
	return core.ClampF(relative, -1, 1) * maxAngle
}

// deflect sends the ball away from the paddle on the given side, faster by
// speedUp, and moves it clear of the paddle's leading edge.
func deflect(b *Ball, p Paddle, side Side, cfg *Config) {
	angle := bounceAngle(*b, p, cfg.MaxBounceAngle)
	b.Speed *= cfg.SpeedUp

	vx := math.Abs(b.Speed * math.Cos(angle))
	b.VY = -b.Speed * math.Sin(angle)

	if side == SidePlayer {
		b.VX = vx
		b.X = p.Right() + b.Radius + cfg.Nudge
	} else {
		b.VX = -vx
		b.X = p.X - b.Radius - cfg.Nudge
	}
}

// bounceWalls reflects the ball off the top or bottom edge. The ball is
// clamped onto the boundary it crossed.
func bounceWalls(b *Ball, f Field) bool {
	switch {
	case b.Y-b.Radius <= 0:
		b.Y = b.Radius
		b.VY = -b.VY
		return true
	case b.Y+b.Radius >= f.Height:
		b.Y = f.Height - b.Radius
		b.VY = -b.VY
		return true
	}
	return false
}

// launch points the ball in horizontal direction dir (+1 right, -1 left)
// at the given angle from the horizontal, with its current speed.
func launch(b *Ball, dir, angle float64) {
	b.VX = dir * b.Speed * math.Cos(angle)
	b.VY = b.Speed * math.Sin(angle)
}
