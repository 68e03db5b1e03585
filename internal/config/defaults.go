package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 500,
		},
		Paddles: PaddlesConfig{
			Width:       12,
			Height:      100,
			Margin:      10,
			PlayerSpeed: 6,
			CPUSpeed:    4,
		},
		Ball: BallConfig{
			Radius:  8,
			Speed:   6,
			SpeedUp: 1.05,
		},
		CPU: CPUConfig{
			Deadband: 10,
		},
		Serve: ServeConfig{
			DelayMS:       700,
			PointArcDeg:   22.5,
			RestartArcDeg: 30,
		},
		Bounce: BounceConfig{
			MaxAngleDeg: 60,
			Nudge:       0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
