// Package config provides the difficulty and theme profile tables for the
// balloon game, YAML loading with embedded defaults, and profile validation.
// Profiles are plain data; nothing here depends on the simulation.
package config

import (
	"errors"
	"fmt"
	"slices"
	"sort"
)

// ErrUnknownProfile is returned when a difficulty or theme name is not defined.
var ErrUnknownProfile = errors.New("config: unknown profile")

// DifficultyProfile defines the physics and scroll parameters of one difficulty.
type DifficultyProfile struct {
	Name              string  `yaml:"name"`
	Gravity           float64 `yaml:"gravity"`             // Downward acceleration per tick
	Lift              float64 `yaml:"lift"`                // Velocity set by a lift impulse (negative = up)
	ObstacleSpeed     float64 `yaml:"obstacle_speed"`      // Obstacle scroll speed, also the background base speed
	ObstacleSpawnRate int     `yaml:"obstacle_spawn_rate"` // Frames between obstacle spawns
	CloudSpeed        float64 `yaml:"cloud_speed"`
	BirdSpeed         float64 `yaml:"bird_speed"`
}

// ThemeProfile defines the palette and background vocabulary of one theme.
type ThemeProfile struct {
	Name           string        `yaml:"name"`
	Sky            string        `yaml:"sky"`
	Ground         string        `yaml:"ground"`
	GroundDetail   string        `yaml:"ground_detail"`
	LayerColors    []string      `yaml:"layer_colors"` // far, mid, near depth bands
	MountainColors []string      `yaml:"mountain_colors"`
	RockColors     []string      `yaml:"rock_colors"`
	SnowCap        string        `yaml:"snow_cap"`
	TreeColors     []string      `yaml:"tree_colors"`
	ObstacleColors []string      `yaml:"obstacle_colors"`
	ObstacleStyle  ObstacleStyle `yaml:"obstacle_style"`
	Distant        []ElementKind `yaml:"distant"`
	Mid            []ElementKind `yaml:"mid"`
	Foreground     []ElementKind `yaml:"foreground"`
}

// Clone returns a copy of t that shares no slices with it.
func (t ThemeProfile) Clone() ThemeProfile {
	t.LayerColors = slices.Clone(t.LayerColors)
	t.MountainColors = slices.Clone(t.MountainColors)
	t.RockColors = slices.Clone(t.RockColors)
	t.TreeColors = slices.Clone(t.TreeColors)
	t.ObstacleColors = slices.Clone(t.ObstacleColors)
	t.Distant = slices.Clone(t.Distant)
	t.Mid = slices.Clone(t.Mid)
	t.Foreground = slices.Clone(t.Foreground)
	return t
}

// Upper returns the distant and mid vocabularies joined, in that order.
func (t ThemeProfile) Upper() []ElementKind {
	kinds := make([]ElementKind, 0, len(t.Distant)+len(t.Mid))
	kinds = append(kinds, t.Distant...)
	return append(kinds, t.Mid...)
}

// Vocabulary returns every element kind of the theme: distant, mid, foreground.
func (t ThemeProfile) Vocabulary() []ElementKind {
	return append(t.Upper(), t.Foreground...)
}

// Profiles is the full set of selectable difficulties and themes.
type Profiles struct {
	Difficulties map[string]DifficultyProfile `yaml:"difficulties"`
	Themes       map[string]ThemeProfile      `yaml:"themes"`
}

// Difficulty returns the named difficulty after validating it.
// Selection is the single point where malformed profiles are rejected.
func (p Profiles) Difficulty(name string) (DifficultyProfile, error) {
	d, ok := p.Difficulties[name]
	if !ok {
		return DifficultyProfile{}, fmt.Errorf("%w: difficulty %q", ErrUnknownProfile, name)
	}
	if d.Name == "" {
		d.Name = name
	}
	if err := d.Validate(); err != nil {
		return DifficultyProfile{}, err
	}
	return d, nil
}

// Theme returns the named theme after validating it.
func (p Profiles) Theme(name string) (ThemeProfile, error) {
	t, ok := p.Themes[name]
	if !ok {
		return ThemeProfile{}, fmt.Errorf("%w: theme %q", ErrUnknownProfile, name)
	}
	if t.Name == "" {
		t.Name = name
	}
	if err := t.Validate(); err != nil {
		return ThemeProfile{}, err
	}
	return t, nil
}

// DifficultyNames returns the defined difficulty names, sorted.
func (p Profiles) DifficultyNames() []string {
	return sortedKeys(p.Difficulties)
}

// ThemeNames returns the defined theme names, sorted.
func (p Profiles) ThemeNames() []string {
	return sortedKeys(p.Themes)
}

// Selection is a validated difficulty/theme pair ready to hand to the engine.
// The keys are the names the profiles were selected by.
type Selection struct {
	DifficultyKey string
	ThemeKey      string
	Difficulty    DifficultyProfile
	Theme         ThemeProfile
}

// Select resolves and validates a difficulty and theme by name.
func (p Profiles) Select(difficulty, theme string) (Selection, error) {
	d, err := p.Difficulty(difficulty)
	if err != nil {
		return Selection{}, err
	}
	t, err := p.Theme(theme)
	if err != nil {
		return Selection{}, err
	}
	return Selection{DifficultyKey: difficulty, ThemeKey: theme, Difficulty: d, Theme: t}, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
