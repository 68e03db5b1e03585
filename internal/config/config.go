// Package config provides YAML-based configuration loading for the Pong
// simulation.
package config

// PongConfig contains all configuration for the game.
type PongConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Paddles PaddlesConfig `yaml:"paddles"`
	Ball    BallConfig    `yaml:"ball"`
	CPU     CPUConfig     `yaml:"cpu"`
	Serve   ServeConfig   `yaml:"serve"`
	Bounce  BounceConfig  `yaml:"bounce"`
}

// FieldConfig defines the playing area in field units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddlesConfig defines the size, placement and speed of both paddles.
type PaddlesConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Margin      float64 `yaml:"margin"`
	PlayerSpeed float64 `yaml:"player_speed"`
	CPUSpeed    float64 `yaml:"cpu_speed"`
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius  float64 `yaml:"radius"`
	Speed   float64 `yaml:"speed"`
	SpeedUp float64 `yaml:"speed_up"`
}

// CPUConfig defines the reactive opponent.
type CPUConfig struct {
	Deadband float64 `yaml:"deadband"`
}

// ServeConfig defines the serve pause and launch arcs.
type ServeConfig struct {
	DelayMS       int     `yaml:"delay_ms"`
	PointArcDeg   float64 `yaml:"point_arc_deg"`
	RestartArcDeg float64 `yaml:"restart_arc_deg"`
}

// BounceConfig defines paddle deflection.
type BounceConfig struct {
	MaxAngleDeg float64 `yaml:"max_angle_deg"`
	Nudge       float64 `yaml:"nudge"`
}
