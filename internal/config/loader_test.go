package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedMatchesDefaults(t *testing.T) {
	p, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(p, DefaultProfiles()) {
		t.Errorf("embedded YAML and DefaultProfiles() differ:\nyaml: %+v\ncode: %+v", p, DefaultProfiles())
	}
}

func TestDefaultsSelectable(t *testing.T) {
	p := DefaultProfiles()
	for _, d := range p.DifficultyNames() {
		for _, th := range p.ThemeNames() {
			if _, err := p.Select(d, th); err != nil {
				t.Errorf("Select(%q, %q) failed: %v", d, th, err)
			}
		}
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	data := []byte(`
difficulties:
  insane:
    gravity: 0.2
    lift: -5
    obstacle_speed: 3.5
    obstacle_spawn_rate: 120
    cloud_speed: 1.2
    bird_speed: 2.8
  easy:
    gravity: 0.05
    lift: -3
    obstacle_speed: 1.5
    obstacle_spawn_rate: 260
    cloud_speed: 0.4
    bird_speed: 1.2
`)
	p, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	insane, err := p.Difficulty("insane")
	if err != nil {
		t.Fatalf("Difficulty(insane) failed: %v", err)
	}
	if insane.Name != "insane" {
		t.Errorf("Name should default to the map key, got %q", insane.Name)
	}
	if insane.ObstacleSpawnRate != 120 {
		t.Errorf("ObstacleSpawnRate = %d, expected 120", insane.ObstacleSpawnRate)
	}

	easy, _ := p.Difficulty("easy")
	if easy.Gravity != 0.05 {
		t.Errorf("easy should be overridden, gravity = %v", easy.Gravity)
	}
	if _, err := p.Difficulty("hard"); err != nil {
		t.Errorf("hard should survive the overlay: %v", err)
	}
	if len(p.ThemeNames()) != 3 {
		t.Errorf("themes should be untouched, got %v", p.ThemeNames())
	}
}

func TestParseUnknownKind(t *testing.T) {
	data := []byte(`
themes:
  moon:
    layer_colors: ["#111111", "#222222", "#333333"]
    mountain_colors: ["#444444"]
    rock_colors: ["#555555"]
    tree_colors: ["#666666"]
    obstacle_colors: ["#777777", "#888888", "#999999"]
    distant: [crater]
    foreground: [boulder]
`)
	if _, err := Parse(data); err == nil {
		t.Error("Parse should reject an unknown element kind")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}

	p, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) failed: %v", path, err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if _, err := p.Theme("beach"); err != nil {
		t.Errorf("Theme(beach) failed: %v", err)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load should fail for a missing custom path")
	}
}

func TestSelectUnknown(t *testing.T) {
	p := DefaultProfiles()

	if _, err := p.Select("nightmare", DefaultTheme); !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("expected ErrUnknownProfile for difficulty, got %v", err)
	}
	if _, err := p.Select(DefaultDifficulty, "space"); !errors.Is(err, ErrUnknownProfile) {
		t.Errorf("expected ErrUnknownProfile for theme, got %v", err)
	}
}

func TestWatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProfilesFile)
	if err := os.WriteFile(path, DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	custom := []byte("difficulties:\n  zen:\n    gravity: 0.01\n    lift: -1\n    obstacle_speed: 1\n    obstacle_spawn_rate: 400\n    cloud_speed: 0.2\n    bird_speed: 0.5\n")
	if err := os.WriteFile(path, custom, 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-w.Profiles:
		if _, err := p.Difficulty("zen"); err != nil {
			t.Errorf("reloaded profiles should contain zen: %v", err)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherReloadsAfterLastWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProfilesFile)
	if err := os.WriteFile(path, DefaultYAML(), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	defer w.Close()

	// A save split across two writes: the first leaves easy without gravity.
	writeFile := func(flag int, data string) {
		t.Helper()
		f, err := os.OpenFile(path, flag, 0o600)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.WriteString(data); err != nil {
			t.Fatal(err)
		}
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}
	}
	writeFile(os.O_WRONLY|os.O_TRUNC, "difficulties:\n  easy:\n    name: easy\n")
	time.Sleep(20 * time.Millisecond)
	writeFile(os.O_WRONLY|os.O_APPEND, "    gravity: 0.5\n")

	select {
	case p := <-w.Profiles:
		if got := p.Difficulties["easy"].Gravity; got != 0.5 {
			t.Errorf("reloaded gravity = %v, want 0.5 from the final write", got)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	select {
	case p := <-w.Profiles:
		t.Errorf("second reload for one save: gravity %v", p.Difficulties["easy"].Gravity)
	case <-time.After(300 * time.Millisecond):
	}
}
