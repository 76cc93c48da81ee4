package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/balloon-puff/internal/config"
	"github.com/vovakirdan/balloon-puff/internal/core"
	"github.com/vovakirdan/balloon-puff/internal/games/balloon"
)

func simSelection(t *testing.T, difficulty, theme string) config.Selection {
	t.Helper()
	sel, err := config.DefaultProfiles().Select(difficulty, theme)
	require.NoError(t, err)
	return sel
}

func TestSimulateDeterministic(t *testing.T) {
	sel := simSelection(t, "normal", "city")
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}

	first, err := simulate(sel, cfg, balloon.DefaultAutopilot(), 3000)
	require.NoError(t, err)
	second, err := simulate(sel, cfg, balloon.DefaultAutopilot(), 3000)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "normal", first.Difficulty)
	assert.Equal(t, "city", first.Theme)
	assert.Equal(t, int64(42), first.Seed)
}

func TestSimulateIdlePilotHitsGround(t *testing.T) {
	sel := simSelection(t, "easy", "mountain")
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

	// A margin below any reachable height never lifts.
	idle := balloon.Autopilot{Margin: -1e9}
	run, err := simulate(sel, cfg, idle, 10000)
	require.NoError(t, err)

	assert.Equal(t, "ground", run.Cause)
	assert.Less(t, run.Frames, 10000)
}

func TestSimulateTickLimit(t *testing.T) {
	sel := simSelection(t, "easy", "beach")
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}

	run, err := simulate(sel, cfg, balloon.DefaultAutopilot(), 5)
	require.NoError(t, err)
	assert.Equal(t, "none", run.Cause)
	assert.Equal(t, 5, run.Frames)
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, "/home/tester/.arcade/balloon.log", expandHome("~/.arcade/balloon.log"))
	assert.Equal(t, "/tmp/x.log", expandHome("/tmp/x.log"))
}
