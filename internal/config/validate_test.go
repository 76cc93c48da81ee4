package config

import (
	"errors"
	"math"
	"testing"
)

func TestDifficultyValidate(t *testing.T) {
	base := DefaultProfiles().Difficulties["normal"]

	tests := []struct {
		name   string
		mutate func(d *DifficultyProfile)
		field  string
	}{
		{"NaN gravity", func(d *DifficultyProfile) { d.Gravity = math.NaN() }, "gravity"},
		{"infinite speed", func(d *DifficultyProfile) { d.ObstacleSpeed = math.Inf(1) }, "obstacle_speed"},
		{"zero gravity", func(d *DifficultyProfile) { d.Gravity = 0 }, "gravity"},
		{"downward lift", func(d *DifficultyProfile) { d.Lift = 2 }, "lift"},
		{"zero spawn rate", func(d *DifficultyProfile) { d.ObstacleSpawnRate = 0 }, "obstacle_spawn_rate"},
		{"negative spawn rate", func(d *DifficultyProfile) { d.ObstacleSpawnRate = -10 }, "obstacle_spawn_rate"},
		{"stopped clouds", func(d *DifficultyProfile) { d.CloudSpeed = 0 }, "cloud_speed"},
		{"backwards birds", func(d *DifficultyProfile) { d.BirdSpeed = -1 }, "bird_speed"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := base
			tc.mutate(&d)

			err := d.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Field = %q, expected %q", verr.Field, tc.field)
			}
		})
	}

	if err := base.Validate(); err != nil {
		t.Errorf("default profile should validate: %v", err)
	}
}

func TestThemeValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(th *ThemeProfile)
		field  string
	}{
		{"two layer colors", func(th *ThemeProfile) { th.LayerColors = th.LayerColors[:2] }, "layer_colors"},
		{"no obstacle colors", func(th *ThemeProfile) { th.ObstacleColors = nil }, "obstacle_colors"},
		{"two obstacle colors", func(th *ThemeProfile) { th.ObstacleColors = th.ObstacleColors[:2] }, "obstacle_colors"},
		{"four obstacle colors", func(th *ThemeProfile) {
			th.ObstacleColors = append(th.ObstacleColors, "#000000")
		}, "obstacle_colors"},
		{"no rock colors", func(th *ThemeProfile) { th.RockColors = nil }, "rock_colors"},
		{"no upper kinds", func(th *ThemeProfile) { th.Distant, th.Mid = nil, nil }, "distant/mid"},
		{"no foreground", func(th *ThemeProfile) { th.Foreground = nil }, "foreground"},
		{"ground detail listed", func(th *ThemeProfile) {
			th.Foreground = []ElementKind{KindGroundDetailRock}
		}, "vocabulary"},
		{"bad style", func(th *ThemeProfile) { th.ObstacleStyle = ObstacleStyle(42) }, "obstacle_style"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			th := DefaultProfiles().Themes["mountain"]
			tc.mutate(&th)

			var verr *ValidationError
			if err := th.Validate(); !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Errorf("Field = %q, expected %q", verr.Field, tc.field)
			}
		})
	}
}

func TestElementKindNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range AllKinds() {
		name := k.String()
		if name == "" {
			t.Errorf("kind %d has no name", int(k))
		}
		if seen[name] {
			t.Errorf("duplicate kind name %q", name)
		}
		seen[name] = true

		parsed, err := ParseElementKind(name)
		if err != nil || parsed != k {
			t.Errorf("ParseElementKind(%q) = %v, %v; expected %v", name, parsed, err, k)
		}
	}

	if _, err := ParseElementKind("volcano"); err == nil {
		t.Error("ParseElementKind should reject unknown names")
	}
}

func TestThemeVocabularyOrder(t *testing.T) {
	th := DefaultProfiles().Themes["city"]
	want := []ElementKind{KindSkyscraper, KindTower, KindBuilding, KindAntenna, KindLamppost, KindFence}
	got := th.Vocabulary()
	if len(got) != len(want) {
		t.Fatalf("Vocabulary() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Vocabulary()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}
