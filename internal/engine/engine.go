// Package engine implements the Pong simulation: paddle and ball motion,
// collision response, scoring and serve sequencing.
//
// The engine owns all game state and knows nothing about terminals, keys or
// drawing. A host calls the intent setters from its input handling, calls
// Advance once per frame and reads Snapshot to render.
package engine

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// maxSubsteps bounds how finely a single Advance call is split when the
// ball is fast enough to skip over a paddle in one move.
const maxSubsteps = 64

// Rand is the source of serve randomness. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// ScoreObserver is told about every score change.
type ScoreObserver interface {
	// ScoreChanged is called with the side that scored, or SideNone when
	// the score was reset by Restart.
	ScoreChanged(scorer Side, score Score)
}

// ScoreObserverFunc adapts a function to ScoreObserver.
type ScoreObserverFunc func(scorer Side, score Score)

// ScoreChanged calls f.
func (f ScoreObserverFunc) ScoreChanged(scorer Side, score Score) {
	f(scorer, score)
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock used to time serve pauses.
func WithClock(c core.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithRand sets the source of serve angles and directions.
func WithRand(r Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithSeed seeds a private math/rand source.
func WithSeed(seed int64) Option {
	return func(e *Engine) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithScoreObserver registers an observer for score changes.
func WithScoreObserver(o ScoreObserver) Option {
	return func(e *Engine) { e.observers = append(e.observers, o) }
}

type inputMode int

const (
	inputDiscrete inputMode = iota
	inputPointer
)

// Engine holds the complete state of one game.
type Engine struct {
	cfg       Config
	clock     core.Clock
	rng       Rand
	observers []ScoreObserver

	player Paddle
	cpu    Paddle
	ball   Ball
	score  Score

	// Player intent
	mode     inputMode
	up, down bool
	pointerY float64

	focused  bool
	serving  bool
	resumeAt time.Time
}

// New validates cfg and returns an engine with the ball already in play.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:     cfg,
		clock:   core.SystemClock{},
		focused: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	paddleY := (cfg.Field.Height - cfg.PaddleHeight) / 2
	e.player = Paddle{
		X:      cfg.PlayerX(),
		Y:      paddleY,
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
		Speed:  cfg.PlayerSpeed,
	}
	e.cpu = Paddle{
		X:      cfg.CPUX(),
		Y:      paddleY,
		Width:  cfg.PaddleWidth,
		Height: cfg.PaddleHeight,
		Speed:  cfg.CPUSpeed,
	}
	e.ball = Ball{Radius: cfg.BallRadius}
	e.pointerY = cfg.Field.Height / 2

	e.serveRandom(false)
	return e, nil
}

// MustNew is like New but panics on an invalid config. Intended for
// hard-coded configs in tests and examples.
func MustNew(cfg Config, opts ...Option) *Engine {
	e, err := New(cfg, opts...)
	if err != nil {
		panic(fmt.Sprintf("engine: %v", err))
	}
	return e
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetDirection records which discrete directions are held. It makes the
// discrete flags the authority for the player paddle.
func (e *Engine) SetDirection(up, down bool) {
	e.up = up
	e.down = down
	e.mode = inputDiscrete
}

// SetPointerTarget records where the pointer wants the paddle center. It
// makes the pointer the authority for the player paddle.
func (e *Engine) SetPointerTarget(y float64) {
	e.pointerY = y
	e.mode = inputPointer
}

// SetFocus freezes the simulation while the host is not focused. A pending
// serve keeps counting down.
func (e *Engine) SetFocus(focused bool) {
	e.focused = focused
}

// Focused reports whether the host currently has focus.
func (e *Engine) Focused() bool {
	return e.focused
}

// RunState returns the current run state. Lost focus takes precedence
// over a pending serve.
func (e *Engine) RunState() RunState {
	switch {
	case !e.focused:
		return PausedUnfocused
	case e.serving:
		return PausedForServe
	default:
		return Running
	}
}

// Score returns the current score.
func (e *Engine) Score() Score {
	return e.score
}

// Restart zeroes the score and serves in a random direction. Any pending
// serve is replaced.
func (e *Engine) Restart() {
	e.score = Score{}
	e.notify(SideNone)
	e.serveRandom(true)
}

// Snapshot returns a copy of the state for rendering.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Field:  e.cfg.Field,
		Player: e.player,
		CPU:    e.cpu,
		Ball:   e.ball,
		Score:  e.score,
		State:  e.RunState(),
	}
}

// Advance runs one simulation step. dt is the elapsed time in reference
// frames (1.0 = 1/60 s); every positional change is scaled by it.
func (e *Engine) Advance(dt float64) StepResult {
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}

	if !e.focused {
		return StepResult{State: PausedUnfocused}
	}
	if e.serving {
		if e.clock.Now().Before(e.resumeAt) {
			return StepResult{State: PausedForServe}
		}
		e.serving = false
	}

	e.movePlayer(dt)
	e.moveCPU(dt)

	var res StepResult
	if dt > 0 {
		e.moveBall(dt, &res)
	}
	res.State = e.RunState()
	return res
}

func (e *Engine) movePlayer(dt float64) {
	p := &e.player
	switch e.mode {
	case inputPointer:
		p.Y = e.pointerY - p.Height/2
	default:
		if e.up {
			p.Y -= p.Speed * dt
		}
		if e.down {
			p.Y += p.Speed * dt
		}
	}
	e.clampPaddle(p)
}

// moveCPU follows the ball, holding still while the ball is within the
// deadband around the paddle center.
func (e *Engine) moveCPU(dt float64) {
	p := &e.cpu
	center := p.CenterY()
	switch {
	case e.ball.Y < center-e.cfg.CPUDeadband:
		p.Y -= p.Speed * dt
	case e.ball.Y > center+e.cfg.CPUDeadband:
		p.Y += p.Speed * dt
	}
	e.clampPaddle(p)
}

func (e *Engine) clampPaddle(p *Paddle) {
	p.Y = core.ClampF(p.Y, 0, e.cfg.Field.Height-p.Height)
}

// moveBall integrates the ball in substeps no longer than its radius so a
// fast ball cannot pass through a paddle between two samples.
func (e *Engine) moveBall(dt float64, res *StepResult) {
	b := &e.ball
	travel := math.Max(math.Abs(b.VX), math.Abs(b.VY)) * dt
	steps := int(math.Ceil(travel / b.Radius))
	steps = core.Clamp(steps, 1, maxSubsteps)
	h := dt / float64(steps)

	for range steps {
		b.X += b.VX * h
		b.Y += b.VY * h

		if bounceWalls(b, e.cfg.Field) {
			res.WallBounces++
		}

		if b.VX < 0 && circleHitsPaddle(*b, e.player) {
			deflect(b, e.player, SidePlayer, &e.cfg)
			res.PaddleHit = SidePlayer
		}
		if b.VX > 0 && circleHitsPaddle(*b, e.cpu) {
			deflect(b, e.cpu, SideCPU, &e.cfg)
			res.PaddleHit = SideCPU
		}

		if scorer := e.checkGoal(); scorer != SideNone {
			res.Scorer = scorer
			e.pointScored(scorer)
			return
		}
	}
}

// checkGoal returns the side that scored if the ball reached either end.
func (e *Engine) checkGoal() Side {
	b := e.ball
	switch {
	case b.X-b.Radius <= 0:
		return SideCPU
	case b.X+b.Radius >= e.cfg.Field.Width:
		return SidePlayer
	}
	return SideNone
}

func (e *Engine) pointScored(scorer Side) {
	if scorer == SidePlayer {
		e.score.Player++
	} else {
		e.score.CPU++
	}
	e.notify(scorer)
	e.serveAfterPoint(scorer.Opponent())
}

func (e *Engine) notify(scorer Side) {
	for _, o := range e.observers {
		o.ScoreChanged(scorer, e.score)
	}
}
