package engine

// centerBall puts the ball in the middle of the field at base speed.
func (e *Engine) centerBall() {
	e.ball.X = e.cfg.Field.Width / 2
	e.ball.Y = e.cfg.Field.Height / 2
	e.ball.Speed = e.cfg.BallSpeed
}

// serveAfterPoint launches the ball toward the side that lost the point and
// holds it for the serve delay.
func (e *Engine) serveAfterPoint(toward Side) {
	e.centerBall()

	dir := 1.0
	if toward == SidePlayer {
		dir = -1
	}
	launch(&e.ball, dir, e.randomAngle(e.cfg.PointServeArc))
	e.scheduleResume()
}

// serveRandom launches the ball toward a random side with the wider arc.
// With pause set the ball is held for the serve delay, otherwise it is in
// play immediately and any pending resume is dropped.
func (e *Engine) serveRandom(pause bool) {
	e.centerBall()

	dir := 1.0
	if e.rng.Float64() < 0.5 {
		dir = -1
	}
	launch(&e.ball, dir, e.randomAngle(e.cfg.RestartServeArc))

	if pause {
		e.scheduleResume()
		return
	}
	e.serving = false
}

// scheduleResume replaces any pending resume with a new deadline.
func (e *Engine) scheduleResume() {
	e.serving = true
	e.resumeAt = e.clock.Now().Add(e.cfg.ServeDelay)
}

// randomAngle returns an angle uniformly distributed in [-arc, arc).
func (e *Engine) randomAngle(arc float64) float64 {
	return (e.rng.Float64()*2 - 1) * arc
}
