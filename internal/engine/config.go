package engine

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is wrapped by every geometry precondition failure
// reported from New.
var ErrInvalidConfig = errors.New("engine: invalid config")

// Reference values of the classic layout.
const (
	DefaultFieldWidth   = 800
	DefaultFieldHeight  = 500
	DefaultPaddleWidth  = 12
	DefaultPaddleHeight = 100
	DefaultPaddleMargin = 10
	DefaultPlayerSpeed  = 6
	DefaultCPUSpeed     = 4
	DefaultBallRadius   = 8
	DefaultBallSpeed    = 6
	DefaultSpeedUp      = 1.05
	DefaultCPUDeadband  = 10
	DefaultNudge        = 0.5
	DefaultServeDelay   = 700 * time.Millisecond
)

// Config holds the immutable parameters of an engine. Angles are in radians.
type Config struct {
	Field Field

	PaddleWidth  float64
	PaddleHeight float64
	PaddleMargin float64 // Gap between a field edge and its paddle
	PlayerSpeed  float64
	CPUSpeed     float64

	BallRadius float64
	BallSpeed  float64 // Base speed, restored on every serve
	SpeedUp    float64 // Multiplier applied on every paddle hit

	CPUDeadband    float64
	MaxBounceAngle float64
	Nudge          float64 // Clearance left between ball and paddle after a hit

	ServeDelay      time.Duration
	PointServeArc   float64 // Half-arc of the serve after a point
	RestartServeArc float64 // Half-arc of the opening and restart serves
}

// DefaultConfig returns the classic 800x500 layout.
func DefaultConfig() Config {
	return Config{
		Field:           Field{Width: DefaultFieldWidth, Height: DefaultFieldHeight},
		PaddleWidth:     DefaultPaddleWidth,
		PaddleHeight:    DefaultPaddleHeight,
		PaddleMargin:    DefaultPaddleMargin,
		PlayerSpeed:     DefaultPlayerSpeed,
		CPUSpeed:        DefaultCPUSpeed,
		BallRadius:      DefaultBallRadius,
		BallSpeed:       DefaultBallSpeed,
		SpeedUp:         DefaultSpeedUp,
		CPUDeadband:     DefaultCPUDeadband,
		MaxBounceAngle:  math.Pi / 3,
		Nudge:           DefaultNudge,
		ServeDelay:      DefaultServeDelay,
		PointServeArc:   math.Pi / 8,
		RestartServeArc: math.Pi / 6,
	}
}

// PlayerX returns the left edge of the player paddle.
func (c Config) PlayerX() float64 {
	return c.PaddleMargin
}

// CPUX returns the left edge of the CPU paddle.
func (c Config) CPUX() float64 {
	return c.Field.Width - c.PaddleWidth - c.PaddleMargin
}

// Validate checks the size relationships the simulation relies on.
func (c Config) Validate() error {
	if name, ok := c.firstNonFinite(); ok {
		return fmt.Errorf("%w: %s must be a finite number", ErrInvalidConfig, name)
	}

	switch {
	case !(c.Field.Width > 0) || !(c.Field.Height > 0):
		return fmt.Errorf("%w: field must have positive size, got %gx%g", ErrInvalidConfig, c.Field.Width, c.Field.Height)
	case !(c.PaddleWidth > 0) || !(c.PaddleHeight > 0):
		return fmt.Errorf("%w: paddle must have positive size, got %gx%g", ErrInvalidConfig, c.PaddleWidth, c.PaddleHeight)
	case c.PaddleHeight > c.Field.Height:
		return fmt.Errorf("%w: paddle height %g exceeds field height %g", ErrInvalidConfig, c.PaddleHeight, c.Field.Height)
	case c.PaddleMargin < 0:
		return fmt.Errorf("%w: paddle margin must not be negative, got %g", ErrInvalidConfig, c.PaddleMargin)
	case c.PlayerX()+c.PaddleWidth >= c.CPUX():
		return fmt.Errorf("%w: paddles overlap in a field %g wide", ErrInvalidConfig, c.Field.Width)
	case !(c.BallRadius > 0):
		return fmt.Errorf("%w: ball radius must be positive, got %g", ErrInvalidConfig, c.BallRadius)
	case c.BallRadius >= math.Min(c.Field.Width, c.Field.Height)/2:
		return fmt.Errorf("%w: ball radius %g must be below half the field's shorter side", ErrInvalidConfig, c.BallRadius)
	case !(c.BallSpeed > 0) || !(c.PlayerSpeed > 0) || !(c.CPUSpeed > 0):
		return fmt.Errorf("%w: speeds must be positive", ErrInvalidConfig)
	case c.SpeedUp < 1:
		return fmt.Errorf("%w: speed-up factor must be at least 1, got %g", ErrInvalidConfig, c.SpeedUp)
	case c.CPUDeadband < 0 || c.Nudge < 0:
		return fmt.Errorf("%w: deadband and nudge must not be negative", ErrInvalidConfig)
	case c.ServeDelay < 0:
		return fmt.Errorf("%w: serve delay must not be negative, got %s", ErrInvalidConfig, c.ServeDelay)
	case !validArc(c.MaxBounceAngle) || !validArc(c.PointServeArc) || !validArc(c.RestartServeArc):
		return fmt.Errorf("%w: angles must lie in [0, 90) degrees", ErrInvalidConfig)
	}
	return nil
}

// firstNonFinite names the first NaN or infinite parameter, if any.
func (c Config) firstNonFinite() (string, bool) {
	fields := []struct {
		name string
		v    float64
	}{
		{"field width", c.Field.Width},
		{"field height", c.Field.Height},
		{"paddle width", c.PaddleWidth},
		{"paddle height", c.PaddleHeight},
		{"paddle margin", c.PaddleMargin},
		{"player speed", c.PlayerSpeed},
		{"cpu speed", c.CPUSpeed},
		{"ball radius", c.BallRadius},
		{"ball speed", c.BallSpeed},
		{"speed-up", c.SpeedUp},
		{"cpu deadband", c.CPUDeadband},
		{"max bounce angle", c.MaxBounceAngle},
		{"nudge", c.Nudge},
		{"point serve arc", c.PointServeArc},
		{"restart serve arc", c.RestartServeArc},
	}
	for _, f := range fields {
		if !finite(f.v) {
			return f.name, true
		}
	}
	return "", false
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func validArc(a float64) bool {
	return a >= 0 && a < math.Pi/2
}
