package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/engine"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid pong config")

// SourceEmbedded names the built-in defaults as a config source.
const SourceEmbedded = "embedded"

// LoadPong loads the Pong configuration.
// Search order: customPath -> ~/.pong/pong.yaml -> ./configs/pong.yaml -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	cfg, _, err := LoadPongWithSource(customPath)
	return cfg, err
}

// LoadPongWithSource is LoadPong that also reports which file the config
// came from. Keys missing from a file keep their default values.
func LoadPongWithSource(customPath string) (PongConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PongConfig{}, "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return PongConfig{}, "", fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return validated(cfg, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return validated(cfg, userCfgPath)
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "pong.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := parse(data); err == nil {
			return validated(cfg, localPath)
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultPongYAML)
	if err != nil {
		return DefaultPongConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return validated(cfg, SourceEmbedded)
}

// parse decodes YAML on top of the defaults.
func parse(data []byte) (PongConfig, error) {
	cfg := DefaultPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PongConfig{}, err
	}
	return cfg, nil
}

func validated(cfg PongConfig, source string) (PongConfig, string, error) {
	if err := cfg.Validate(); err != nil {
		return PongConfig{}, source, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, source, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", filename)
}

// Validate checks the size relationships the simulation depends on.
func (c PongConfig) Validate() error {
	if c.Serve.DelayMS < 0 {
		return fmt.Errorf("%w: serve delay must not be negative, got %dms", ErrInvalid, c.Serve.DelayMS)
	}
	if err := c.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// EngineConfig converts the file representation to simulation units.
func (c PongConfig) EngineConfig() engine.Config {
	return engine.Config{
		Field: engine.Field{
			Width:  c.Field.Width,
			Height: c.Field.Height,
		},
		PaddleWidth:     c.Paddles.Width,
		PaddleHeight:    c.Paddles.Height,
		PaddleMargin:    c.Paddles.Margin,
		PlayerSpeed:     c.Paddles.PlayerSpeed,
		CPUSpeed:        c.Paddles.CPUSpeed,
		BallRadius:      c.Ball.Radius,
		BallSpeed:       c.Ball.Speed,
		SpeedUp:         c.Ball.SpeedUp,
		CPUDeadband:     c.CPU.Deadband,
		MaxBounceAngle:  radians(c.Bounce.MaxAngleDeg),
		Nudge:           c.Bounce.Nudge,
		ServeDelay:      time.Duration(c.Serve.DelayMS) * time.Millisecond,
		PointServeArc:   radians(c.Serve.PointArcDeg),
		RestartServeArc: radians(c.Serve.RestartArcDeg),
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
