// Package registry maps game IDs to factories. Games add themselves from an
// init function; hosts create them by ID without importing game internals.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/balloon-puff/internal/core"
)

// Game is what a host drives: one fixed-rate Step per tick, Render per frame.
// Implementations hold no terminal or network state.
type Game interface {
	// ID is the stable key used on the command line and in run storage.
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a new run sized for cfg's screen and seeded with cfg.Seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions gathered since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the whole frame into dst.
	Render(dst *core.Screen)

	// State reports score, frame count, pause and game over.
	State() core.GameState

	// Summary describes the current run for storage.
	// Only complete once State().GameOver is true.
	Summary() core.RunSummary
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory returns a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a factory under id. It panics on a duplicate id, which can
// only come from two init functions claiming the same name.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Create builds a new instance of the game registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
