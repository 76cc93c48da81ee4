package balloon

import (
	"sync"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/balloon-puff/internal/config"
	"github.com/vovakirdan/balloon-puff/internal/core"
	"github.com/vovakirdan/balloon-puff/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "balloon"

// World height is fixed; the width follows the terminal's aspect ratio.
const (
	WorldHeight = 600.0
	cellAspect  = 0.5 // Cell width / cell height
)

var (
	selectionMu sync.RWMutex
	selection   = mustDefaultSelection()
)

func mustDefaultSelection() config.Selection {
	sel, err := config.DefaultProfiles().Select(config.DefaultDifficulty, config.DefaultTheme)
	if err != nil {
		panic(err)
	}
	return sel
}

// Configure sets the profiles used by games created afterwards.
func Configure(sel config.Selection) {
	selectionMu.Lock()
	defer selectionMu.Unlock()
	selection = sel
}

func currentSelection() config.Selection {
	selectionMu.RLock()
	defer selectionMu.RUnlock()
	return selection
}

// WorldViewport maps a terminal of cols x rows cells to world units.
func WorldViewport(cols, rows int) Viewport {
	if cols <= 0 || rows <= 0 {
		cols, rows = 80, 24
	}
	unitsPerRow := WorldHeight / float64(rows)
	width := float64(cols) * unitsPerRow * cellAspect
	return Viewport{Width: max(width, MinViewportWidth), Height: WorldHeight}
}

// Game adapts the engine to the arcade registry.
type Game struct {
	engine *Engine
	sel    config.Selection
	next   *config.Selection // Applied when the next run starts
	cfg    core.RuntimeConfig
	seed   int64
	paused bool
	noise  *perlin.Perlin
	err    error
}

// New creates a game using the configured profiles.
func New() *Game {
	return NewWithSelection(currentSelection())
}

// NewWithSelection creates a game with explicit profiles.
func NewWithSelection(sel config.Selection) *Game {
	return &Game{sel: sel}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Balloon Puff"
}

// Reset builds a fresh engine for the screen size and seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.seed = cfg.Seed
	g.paused = false
	if g.next != nil {
		g.sel, g.next = *g.next, nil
	}
	g.noise = perlin.NewPerlin(2, 2, 3, cfg.Seed)

	g.engine, g.err = NewEngine(WorldViewport(cfg.ScreenW, cfg.ScreenH),
		g.sel.Difficulty, g.sel.Theme, cfg.Seed)
}

// restart begins a new run on the same engine with the next seed.
func (g *Game) restart() {
	g.seed++
	g.paused = false
	if g.next != nil {
		g.sel, g.next = *g.next, nil
	}
	g.engine.Reseed(g.seed)
	g.engine.Reset()
}

// Step advances the game by one tick.
// While the run is over, Lift or Restart starts a new one.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.engine == nil {
		return core.StepResult{State: g.State()}
	}

	restarted := false
	if g.engine.Terminated() && (in.Has(core.ActionRestart) || in.Has(core.ActionLift)) {
		g.restart()
		restarted = true
	}

	if !g.engine.Terminated() && in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLift) && !restarted {
		g.engine.ApplyLift()
	}
	ended := g.engine.Tick()

	return core.StepResult{State: g.State(), Ended: ended}
}

// Render draws the current world into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if g.engine == nil {
		dst.Clear()
		msg := "not started"
		if g.err != nil {
			msg = g.err.Error()
		}
		dst.DrawTextCentered(dst.Height()/2, msg)
		return
	}
	renderWorld(dst, g.engine.Snapshot(), g.noise, g.paused)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	frames := g.engine.Frame()
	if ev, over := g.engine.Result(); over {
		frames = ev.Frame
	}
	return core.GameState{
		Score:    g.engine.Score(),
		Frames:   frames,
		GameOver: g.engine.Terminated(),
		Paused:   g.paused,
	}
}

// Summary describes the current run.
func (g *Game) Summary() core.RunSummary {
	st := g.State()
	cause := CauseNone
	if g.engine != nil {
		ev, _ := g.engine.Result()
		cause = ev.Cause
	}
	return core.RunSummary{
		GameID:     GameID,
		Difficulty: g.sel.DifficultyKey,
		Theme:      g.sel.ThemeKey,
		Seed:       g.seed,
		Score:      st.Score,
		Frames:     st.Frames,
		Cause:      cause.String(),
	}
}

// Selection returns the profiles the game was created with or last switched to.
func (g *Game) Selection() config.Selection {
	return g.sel
}

// ApplyProfiles re-selects the game's difficulty and theme from reloaded
// profiles. The change takes effect when the next run starts.
func (g *Game) ApplyProfiles(p config.Profiles) error {
	sel, err := p.Select(g.sel.DifficultyKey, g.sel.ThemeKey)
	if err != nil {
		return err
	}
	if g.engine != nil {
		if err := g.engine.SetProfiles(sel.Difficulty, sel.Theme); err != nil {
			return err
		}
	}
	g.next = &sel
	return nil
}

// Snapshot exposes the engine state, for headless drivers.
func (g *Game) Snapshot() (Snapshot, bool) {
	if g.engine == nil {
		return Snapshot{}, false
	}
	return g.engine.Snapshot(), true
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
