// Package balloon implements Balloon Puff: a balloon kept airborne by lift
// impulses against gravity while obstacle stacks and depth-layered scenery
// scroll past.
//
// Engine is the per-frame simulation. It is single-writer and synchronous:
// the host calls Tick once per frame and delivers ApplyLift and Reset between
// ticks. Game adapts the engine to the arcade registry and renders it.
package balloon

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/balloon-puff/internal/config"
)

// Viewport limits. Below the minimum the obstacle top band inverts; above the
// maximum MaxSegments segments can no longer reach the ground line.
const (
	MinViewportWidth  = 200.0
	MinViewportHeight = 100.0
	MaxViewportHeight = 2000.0
)

var (
	ErrViewportTooSmall = errors.New("balloon: viewport too small")
	ErrViewportTooLarge = errors.New("balloon: viewport too large")
)

// State is the run state of the engine.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// TerminalEvent is raised once per run, on the tick the first collision occurs.
type TerminalEvent struct {
	Frame int
	Cause Cause
	Score int
}

// Option configures an Engine.
type Option func(*Engine)

// WithTerminalHandler registers a function called with the terminal event.
// Handlers run synchronously inside Tick.
func WithTerminalHandler(h func(TerminalEvent)) Option {
	return func(e *Engine) {
		e.handlers = append(e.handlers, h)
	}
}

// Engine owns all simulation state for one viewport.
type Engine struct {
	viewport   Viewport
	difficulty config.DifficultyProfile
	theme      config.ThemeProfile
	pending    *config.Selection
	rng        *rand.Rand

	avatar     Avatar
	background *Lifecycle[BackgroundElement]
	clouds     *Lifecycle[AmbientEntity]
	birds      *Lifecycle[AmbientEntity]
	obstacles  *Lifecycle[Obstacle]

	frame    int
	state    State
	score    int
	ended    TerminalEvent
	handlers []func(TerminalEvent)
}

// NewEngine validates the viewport and profiles, then starts a run.
// All sampling ranges are fixed here, so Tick never fails.
func NewEngine(v Viewport, d config.DifficultyProfile, t config.ThemeProfile, seed int64, opts ...Option) (*Engine, error) {
	if err := validateViewport(v); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		viewport:   v,
		difficulty: d,
		theme:      t,
		rng:        rand.New(rand.NewSource(seed)),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.background = NewLifecycle(BackgroundCadence, BackgroundJitter,
		func(x float64, rng *rand.Rand) BackgroundElement {
			return e.backgroundGen().spawnSite(x, rng)
		},
		stepBackground, backgroundGone)
	e.clouds = NewLifecycle(CloudCadence, CloudJitter, newCloud(v),
		func(c *AmbientEntity) {
			c.X -= e.difficulty.CloudSpeed
		},
		cloudGone)
	e.birds = NewLifecycle(BirdCadence, BirdJitter, newBird(v),
		func(b *AmbientEntity) {
			b.X -= e.difficulty.BirdSpeed
			b.Phase += BirdPhaseRate
		},
		birdGone)
	e.obstacles = NewLifecycle(d.ObstacleSpawnRate, 0,
		func(x float64, rng *rand.Rand) Obstacle {
			return obstacleGen{viewport: e.viewport, palette: e.theme.ObstacleColors}.spawn(x, rng)
		},
		func(o *Obstacle) {
			o.X -= e.difficulty.ObstacleSpeed
		},
		obstacleGone)

	e.Reset()
	return e, nil
}

func validateViewport(v Viewport) error {
	switch {
	case !(v.Width >= MinViewportWidth):
		return fmt.Errorf("%w: width %.0f < %.0f", ErrViewportTooSmall, v.Width, MinViewportWidth)
	case !(v.Height >= MinViewportHeight):
		return fmt.Errorf("%w: height %.0f < %.0f", ErrViewportTooSmall, v.Height, MinViewportHeight)
	case v.Height > MaxViewportHeight:
		return fmt.Errorf("%w: height %.0f > %.0f", ErrViewportTooLarge, v.Height, MaxViewportHeight)
	}
	return nil
}

func (e *Engine) backgroundGen() backgroundGen {
	return backgroundGen{viewport: e.viewport, theme: e.theme, baseSpeed: e.difficulty.ObstacleSpeed}
}

// SetProfiles validates a new difficulty and theme and applies them at the
// next Reset. The current run is not affected.
func (e *Engine) SetProfiles(d config.DifficultyProfile, t config.ThemeProfile) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}
	e.pending = &config.Selection{Difficulty: d, Theme: t}
	return nil
}

// Reseed replaces the random source. Takes effect immediately.
func (e *Engine) Reseed(seed int64) {
	e.rng = rand.New(rand.NewSource(seed))
}

// Reset starts a new run: avatar back at the start height, collections
// cleared and pre-populated so the world does not fill in visibly.
func (e *Engine) Reset() {
	if e.pending != nil {
		e.difficulty = e.pending.Difficulty
		e.theme = e.pending.Theme
		e.pending = nil
	}
	e.obstacles.cadence = e.difficulty.ObstacleSpawnRate

	e.avatar = Avatar{Y: e.viewport.StartY()}
	e.background.Clear()
	e.clouds.Clear()
	e.birds.Clear()
	e.obstacles.Clear()
	e.frame = 0
	e.score = 0
	e.ended = TerminalEvent{}

	for _, el := range e.backgroundGen().PreSpawn(PreSpawnCount, e.rng) {
		e.background.Add(el)
	}
	// Three cloud updates and one bird update at frame 0, as if the sky
	// had been running for a moment.
	for i := 0; i < 3; i++ {
		e.clouds.Update(0, e.viewport.Width, e.rng)
	}
	e.birds.Update(0, e.viewport.Width, e.rng)

	e.state = StateRunning
}

// ApplyLift sets the avatar velocity to the difficulty's lift.
// No-op once the run has terminated.
func (e *Engine) ApplyLift() {
	if e.state != StateRunning {
		return
	}
	e.avatar = Lift(e.avatar, e.difficulty.Lift)
}

// Tick advances one frame and reports whether the run terminated on it.
// Scenery keeps moving after termination; the avatar and obstacles freeze.
func (e *Engine) Tick() bool {
	e.frame++
	spawnX := e.viewport.Width

	e.background.Update(e.frame, spawnX, e.rng)
	e.clouds.Update(e.frame, spawnX, e.rng)
	e.birds.Update(e.frame, spawnX, e.rng)

	if e.state != StateRunning {
		return false
	}

	e.avatar = Integrate(e.avatar, e.difficulty.Gravity)
	e.obstacles.Update(e.frame, spawnX, e.rng)

	avatarX := e.viewport.AvatarX()
	for _, o := range e.obstacles.items {
		if clearedThisTick(o, avatarX, e.difficulty.ObstacleSpeed) {
			e.score++
		}
	}

	cause := Collide(e.avatar, avatarX, e.obstacles.items, e.viewport.Ground())
	if cause == CauseNone {
		return false
	}

	e.state = StateTerminated
	e.ended = TerminalEvent{Frame: e.frame, Cause: cause, Score: e.score}
	for _, h := range e.handlers {
		h(e.ended)
	}
	return true
}

// Terminated reports whether the current run has ended.
func (e *Engine) Terminated() bool {
	return e.state == StateTerminated
}

// State returns the run state.
func (e *Engine) State() State {
	return e.state
}

// Frame returns the frames elapsed since the last reset.
func (e *Engine) Frame() int {
	return e.frame
}

// Score returns the obstacles cleared in the current run.
func (e *Engine) Score() int {
	return e.score
}

// Result returns the terminal event of the current run, if it has ended.
func (e *Engine) Result() (TerminalEvent, bool) {
	return e.ended, e.state == StateTerminated
}

// Viewport returns the world size.
func (e *Engine) Viewport() Viewport {
	return e.viewport
}

// Profiles returns the difficulty and theme of the current run.
func (e *Engine) Profiles() (config.DifficultyProfile, config.ThemeProfile) {
	return e.difficulty, e.theme
}
