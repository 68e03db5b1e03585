package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against the CPU",
	Long: `Start a match against the CPU in this terminal.

Controls:
  Up/W/K     - Move paddle up
  Down/S/J   - Move paddle down
  Mouse      - Paddle follows the pointer
  Space/R    - Reset the score and serve again
  P          - Pause / resume
  Q/Ctrl+C   - Quit

The game also pauses while the terminal window loses focus, if the
terminal reports focus changes.

Examples:
  pong play
  pong play --fps 30
  pong play --seed 7 --log-file pong.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The alternate screen owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger(io.Discard, "pong")
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	pongCfg, err := loadEngineConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("match started", "width", width, "height", height, "fps", flagFPS, "seed", flagSeed)
	if err := tui.Run(pongCfg, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	logger.Info("match ended")
	return nil
}
