package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/engine"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time      { return c.now }
func (c *fakeClock) Add(d time.Duration) { c.now = c.now.Add(d) }

// constRand serves to the right with a flat angle.
type constRand struct{}

func (constRand) Float64() float64 { return 0.5 }

// tickAt returns the i-th frame tick counted from the clock's current time.
func tickAt(clk *fakeClock, i int) TickMsg {
	return TickMsg(clk.now.Add(time.Duration(i) * referenceFrame))
}

func newTestModel(t *testing.T, logger *log.Logger) (Model, *fakeClock) {
	t.Helper()
	clk := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60}
	m, err := NewModel(engine.DefaultConfig(), cfg, logger, engine.WithClock(clk), engine.WithRand(constRand{}))
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m, clk
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		if m, ok = next.(Model); !ok {
			t.Fatalf("Update() returned %T", next)
		}
	}
	return m
}

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.PaddleHeight = 1000

	_, err := NewModel(cfg, core.DefaultConfig(), nil)
	if !errors.Is(err, engine.ErrInvalidConfig) {
		t.Errorf("NewModel() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestModelHeldKeyMovesPaddleThenStops(t *testing.T) {
	m, clk := newTestModel(t, nil)
	startY := m.Snapshot().Player.Y

	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	for i := range holdTicks {
		m = send(t, m, tickAt(clk, i))
	}
	y := m.Snapshot().Player.Y
	if want := startY - holdTicks*engine.DefaultPlayerSpeed; y != want {
		t.Fatalf("paddle y = %f after hold window, expected %f", y, want)
	}

	m = send(t, m, tickAt(clk, holdTicks), tickAt(clk, holdTicks+1))
	if got := m.Snapshot().Player.Y; got != y {
		t.Errorf("paddle kept moving after release: %f -> %f", y, got)
	}
}

func TestModelMouseMovesPaddle(t *testing.T) {
	m, clk := newTestModel(t, nil)

	// Field area starts at row 2; its first row maps near the top edge
	m = send(t, m, tea.MouseMsg{X: 10, Y: 2, Action: tea.MouseActionMotion}, tickAt(clk, 0))
	if got := m.Snapshot().Player.Y; got != 0 {
		t.Errorf("paddle y = %f, expected clamp to 0", got)
	}

	// Row 12 is the middle of a 21 row field
	m = send(t, m, tea.MouseMsg{X: 10, Y: 12, Action: tea.MouseActionMotion}, tickAt(clk, 1))
	if got := m.Snapshot().Player.Y; got != 200 {
		t.Errorf("paddle y = %f, expected 200", got)
	}
}

func TestModelKeyAfterMouseTakesOver(t *testing.T) {
	m, clk := newTestModel(t, nil)

	m = send(t, m,
		tea.MouseMsg{X: 10, Y: 12, Action: tea.MouseActionMotion},
		tea.KeyMsg{Type: tea.KeyDown},
		tickAt(clk, 0),
	)
	if got, want := m.Snapshot().Player.Y, 200.0+engine.DefaultPlayerSpeed; got != want {
		t.Errorf("paddle y = %f, expected %f", got, want)
	}
}

func TestModelPauseKeyToggles(t *testing.T) {
	m, clk := newTestModel(t, nil)

	m = send(t, m, runeKey('p'))
	if got := m.Snapshot().State; got != engine.PausedUnfocused {
		t.Fatalf("state = %v, expected paused", got)
	}
	ball := m.Snapshot().Ball
	m = send(t, m, tickAt(clk, 0), tickAt(clk, 1))
	if m.Snapshot().Ball != ball {
		t.Error("ball moved while paused")
	}

	m = send(t, m, runeKey('p'))
	if got := m.Snapshot().State; got != engine.Running {
		t.Errorf("state = %v, expected running", got)
	}
}

func TestModelFocusMessages(t *testing.T) {
	m, _ := newTestModel(t, nil)

	m = send(t, m, tea.BlurMsg{})
	if got := m.Snapshot().State; got != engine.PausedUnfocused {
		t.Errorf("state after blur = %v", got)
	}
	m = send(t, m, tea.FocusMsg{})
	if got := m.Snapshot().State; got != engine.Running {
		t.Errorf("state after focus = %v", got)
	}
}

func TestModelRestartKey(t *testing.T) {
	var buf bytes.Buffer
	m, clk := newTestModel(t, log.New(&buf))

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	snap := m.Snapshot()
	if snap.State != engine.PausedForServe {
		t.Errorf("state = %v, expected serve pause", snap.State)
	}
	if snap.Score != (engine.Score{}) {
		t.Errorf("score = %+v, expected zero", snap.Score)
	}
	if !strings.Contains(buf.String(), "score reset") {
		t.Errorf("log %q has no reset entry", buf.String())
	}

	clk.Add(engine.DefaultServeDelay)
	m = send(t, m, tickAt(clk, 0))
	if got := m.Snapshot().State; got != engine.Running {
		t.Errorf("state = %v after serve delay, expected running", got)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Error("quit key returned no command")
	}
	if v := next.View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}

func TestModelViewFollowsWindowSize(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	view := m.View()
	if n := strings.Count(view, "\n"); n != 29 {
		t.Errorf("view has %d lines, expected 30", n+1)
	}
	if !strings.Contains(view, "YOU") || !strings.Contains(view, "quit") {
		t.Error("view is missing the header or help line")
	}
}
