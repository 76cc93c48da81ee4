package config

import (
	"fmt"
	"math"
)

// ValidationError describes a malformed profile field.
type ValidationError struct {
	Profile string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: profile %q: %s %s", e.Profile, e.Field, e.Message)
}

// Validate checks that every numeric field is finite and in range.
// Per-frame code reads the profile without further checks.
func (d DifficultyProfile) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"gravity", d.Gravity},
		{"lift", d.Lift},
		{"obstacle_speed", d.ObstacleSpeed},
		{"cloud_speed", d.CloudSpeed},
		{"bird_speed", d.BirdSpeed},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ValidationError{Profile: d.Name, Field: f.name, Message: "must be finite"}
		}
	}

	switch {
	case d.Gravity <= 0:
		return &ValidationError{Profile: d.Name, Field: "gravity", Message: "must be positive"}
	case d.Lift >= 0:
		return &ValidationError{Profile: d.Name, Field: "lift", Message: "must be negative (upward)"}
	case d.ObstacleSpeed <= 0:
		return &ValidationError{Profile: d.Name, Field: "obstacle_speed", Message: "must be positive"}
	case d.ObstacleSpawnRate <= 0:
		return &ValidationError{Profile: d.Name, Field: "obstacle_spawn_rate", Message: "must be positive"}
	case d.CloudSpeed <= 0:
		return &ValidationError{Profile: d.Name, Field: "cloud_speed", Message: "must be positive"}
	case d.BirdSpeed <= 0:
		return &ValidationError{Profile: d.Name, Field: "bird_speed", Message: "must be positive"}
	}
	return nil
}

// Validate checks that the vocabularies and palettes the generators sample
// from are non-empty.
func (t ThemeProfile) Validate() error {
	if len(t.LayerColors) != 3 {
		return &ValidationError{Profile: t.Name, Field: "layer_colors", Message: "must have exactly 3 entries"}
	}
	if len(t.ObstacleColors) != 3 {
		return &ValidationError{Profile: t.Name, Field: "obstacle_colors", Message: "must have exactly 3 entries"}
	}
	palettes := []struct {
		name   string
		colors []string
	}{
		{"mountain_colors", t.MountainColors},
		{"rock_colors", t.RockColors},
		{"tree_colors", t.TreeColors},
	}
	for _, p := range palettes {
		if len(p.colors) == 0 {
			return &ValidationError{Profile: t.Name, Field: p.name, Message: "must not be empty"}
		}
	}
	if len(t.Upper()) == 0 {
		return &ValidationError{Profile: t.Name, Field: "distant/mid", Message: "must list at least one kind"}
	}
	if len(t.Foreground) == 0 {
		return &ValidationError{Profile: t.Name, Field: "foreground", Message: "must list at least one kind"}
	}
	for _, k := range t.Vocabulary() {
		if k == KindGroundDetailRock {
			return &ValidationError{Profile: t.Name, Field: "vocabulary", Message: "must not list ground-detail-rock"}
		}
	}
	if _, ok := styleNames[t.ObstacleStyle]; !ok {
		return &ValidationError{Profile: t.Name, Field: "obstacle_style", Message: "is not a known style"}
	}
	return nil
}
