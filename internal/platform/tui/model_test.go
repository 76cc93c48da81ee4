package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/balloon-puff/internal/config"
	"github.com/vovakirdan/balloon-puff/internal/core"
)

// fakeGame ends a run after endAfter steps and restarts on Lift.
type fakeGame struct {
	endAfter int
	frames   int
	over     bool
	resets   int
	lifts    int
	profiles int
	lastCfg  core.RuntimeConfig
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.lastCfg = cfg
	g.frames, g.over = 0, false
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionLift) {
		g.lifts++
		if g.over {
			g.frames, g.over = 0, false
		}
	}
	if g.over {
		return core.StepResult{State: g.State()}
	}
	g.frames++
	g.over = g.frames >= g.endAfter
	return core.StepResult{State: g.State(), Ended: g.over}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Frames: g.frames, GameOver: g.over}
}

func (g *fakeGame) Summary() core.RunSummary {
	return core.RunSummary{GameID: "fake", Frames: g.frames, Cause: "ground"}
}

func (g *fakeGame) ApplyProfiles(config.Profiles) error {
	g.profiles++
	return nil
}

type fakeRecorder struct {
	runs []core.RunSummary
	err  error
}

func (r *fakeRecorder) SaveRun(run core.RunSummary) (string, error) {
	r.runs = append(r.runs, run)
	return "id", r.err
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelReservesHelpRow(t *testing.T) {
	g := &fakeGame{endAfter: 100}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1})
	m.Init()

	if g.lastCfg.ScreenH != 19 {
		t.Errorf("game height = %d, want 19", g.lastCfg.ScreenH)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 50, Height: 30})
	if g.lastCfg.ScreenW != 50 || g.lastCfg.ScreenH != 29 {
		t.Errorf("after resize game config = %+v", g.lastCfg)
	}

	view := m.View()
	if !strings.HasPrefix(view, "fake") {
		t.Errorf("view does not start with the game screen: %q", view[:10])
	}
	if !strings.Contains(view, "lift") {
		t.Error("help bar missing from view")
	}
}

func TestModelRecordsEachRunOnce(t *testing.T) {
	g := &fakeGame{endAfter: 3}
	rec := &fakeRecorder{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1}, WithRecorder(rec))
	m.Init()

	for i := 0; i < 10; i++ {
		m = update(t, m, TickMsg{})
	}
	if len(rec.runs) != 1 {
		t.Fatalf("recorded %d runs, want 1", len(rec.runs))
	}

	// Lift restarts the fake game.
	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	for i := 0; i < 10; i++ {
		m = update(t, m, TickMsg{})
	}
	if len(rec.runs) != 2 {
		t.Errorf("recorded %d runs after restart, want 2", len(rec.runs))
	}
}

func TestModelSurvivesRecorderError(t *testing.T) {
	g := &fakeGame{endAfter: 1}
	rec := &fakeRecorder{err: errors.New("disk full")}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1}, WithRecorder(rec))
	m.Init()

	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})
	if len(rec.runs) != 1 {
		t.Errorf("recorded %d runs, want 1", len(rec.runs))
	}
	if !m.gameState.GameOver {
		t.Error("game over state lost")
	}
}

func TestModelInputReachesGame(t *testing.T) {
	g := &fakeGame{endAfter: 100}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1})
	m.Init()

	m = update(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})
	if g.lifts != 1 {
		t.Errorf("lifts = %d, want 1", g.lifts)
	}

	// Input is cleared after the tick.
	update(t, m, TickMsg{})
	if g.lifts != 1 {
		t.Errorf("lifts = %d after an empty tick, want 1", g.lifts)
	}
}

func TestModelAppliesReloadedProfiles(t *testing.T) {
	g := &fakeGame{endAfter: 100}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1})

	m = update(t, m, ProfilesMsg(config.DefaultProfiles()))
	if g.profiles != 1 {
		t.Errorf("profiles applied %d times, want 1", g.profiles)
	}

	update(t, m, ProfilesErrMsg{Err: errors.New("bad yaml")})
	if g.profiles != 1 {
		t.Error("a failed reload must not reach the game")
	}
}

func TestModelQuit(t *testing.T) {
	g := &fakeGame{endAfter: 100}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 20, TickRate: 60, Seed: 1})

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command did not produce QuitMsg")
	}
	if next.View() != "" {
		t.Error("view not empty after quit")
	}
}
