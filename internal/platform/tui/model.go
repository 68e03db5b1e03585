package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/engine"
)

// Model is the Bubble Tea model for one match against the CPU.
type Model struct {
	engine    *engine.Engine
	screen    *core.Screen
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	held      heldDirection
	lastTick  time.Time
	lastState engine.RunState
	quitting  bool
}

// scoreLog reports score changes to the log.
type scoreLog struct {
	logger *log.Logger
}

func (s scoreLog) ScoreChanged(scorer engine.Side, score engine.Score) {
	if scorer == engine.SideNone {
		s.logger.Info("score reset")
		return
	}
	s.logger.Info("point", "scorer", scorer, "player", score.Player, "cpu", score.CPU)
}

// NewModel creates a model running a fresh engine. A nil logger discards
// output. Extra options are passed to the engine after the model's own.
func NewModel(pongCfg engine.Config, cfg core.RuntimeConfig, logger *log.Logger, opts ...engine.Option) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	engineOpts := []engine.Option{engine.WithScoreObserver(scoreLog{logger: logger})}
	if cfg.Seed != 0 {
		engineOpts = append(engineOpts, engine.WithSeed(cfg.Seed))
	}
	eng, err := engine.New(pongCfg, append(engineOpts, opts...)...)
	if err != nil {
		return Model{}, fmt.Errorf("cannot start match: %w", err)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		engine:    eng,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		logger:    logger,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		lastState: eng.RunState(),
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.FocusMsg:
		m.setFocus(true)
		return m, nil

	case tea.BlurMsg:
		m.setFocus(false)
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height-1)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp, core.ActionDown:
		m.held.Press(action)
		m.engine.SetDirection(m.held.Held())

	case core.ActionRestart:
		m.held.Release()
		m.engine.SetDirection(false, false)
		m.engine.Restart()
		m.lastTick = time.Time{}

	case core.ActionPause:
		m.setFocus(!m.engine.Focused())
	}

	return m, nil
}

// handleMouse moves the paddle center to the pointer row.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionMotion && msg.Action != tea.MouseActionPress {
		return m, nil
	}
	area := fieldArea(m.screen)
	m.held.Release()
	m.engine.SetPointerTarget(rowToFieldY(msg.Y, m.engine.Config().Field, area))
	return m, nil
}

func (m *Model) setFocus(focused bool) {
	if m.engine.Focused() == focused {
		return
	}
	m.engine.SetFocus(focused)
	m.logger.Debug("focus changed", "focused", focused)
}

// handleTick advances the simulation by the time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now)
	m.lastTick = now

	wasHeld := m.held.Active()
	res := m.engine.Advance(dt)
	m.held.Tick()
	if wasHeld && !m.held.Active() {
		m.engine.SetDirection(false, false)
	}

	if res.State != m.lastState {
		m.logger.Debug("state changed", "from", m.lastState, "to", res.State)
		m.lastState = res.State
	}
	if res.PaddleHit != engine.SideNone {
		m.logger.Debug("paddle hit", "side", res.PaddleHit, "speed", m.engine.Snapshot().Ball.Speed)
	}

	return m, tickCmd(m.config.TickRate)
}

// Snapshot returns the engine state the next frame will show.
func (m Model) Snapshot() engine.Snapshot {
	return m.engine.Snapshot()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.engine.Snapshot())
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local match.
func Run(pongCfg engine.Config, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(pongCfg, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)

	_, err = p.Run()
	return err
}
