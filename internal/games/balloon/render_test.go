package balloon

import (
	"strings"
	"testing"

	"github.com/aquilax/go-perlin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/balloon-puff/internal/config"
	"github.com/vovakirdan/balloon-puff/internal/core"
)

func TestEveryKindHasGlyph(t *testing.T) {
	for _, k := range config.AllKinds() {
		_, ok := kindGlyphs[k]
		assert.True(t, ok, "no glyph for %s", k)
	}
}

func TestEveryStyleHasDrawer(t *testing.T) {
	for _, s := range []config.ObstacleStyle{config.StyleRockStack, config.StyleBuilding, config.StylePalmTree} {
		_, ok := styleDrawers[s]
		assert.True(t, ok, "no drawer for %s", s)
	}
}

func TestRenderHUDAndAvatar(t *testing.T) {
	g := New()
	g.Reset(testConfig)
	g.Step(input())

	scr := core.NewScreen(testConfig.ScreenW, testConfig.ScreenH)
	g.Render(scr)

	assert.Contains(t, scr.Row(0), "Score: 0")
	assert.Contains(t, scr.Row(0), "easy")
	assert.Contains(t, scr.Row(0), "Mountain")

	balloonCells := 0
	for y := 0; y < scr.Height(); y++ {
		for x := 0; x < scr.Width(); x++ {
			if scr.GetCell(x, y).Fg == balloonColor {
				balloonCells++
			}
		}
	}
	assert.Greater(t, balloonCells, 1, "avatar drawn")

	// Ground line sits on the row holding the ground y.
	p := newProjection(WorldViewport(testConfig.ScreenW, testConfig.ScreenH), scr.Width(), scr.Height())
	groundRow := scr.Row(p.row(WorldHeight - GroundHeight))
	assert.Contains(t, groundRow, "▀")
}

func TestRenderMessages(t *testing.T) {
	g := New()
	g.Reset(testConfig)
	scr := core.NewScreen(testConfig.ScreenW, testConfig.ScreenH)

	g.Step(input(core.ActionPause))
	g.Render(scr)
	assert.Contains(t, scr.String(), "PAUSED")

	g.Step(input(core.ActionPause))
	playUntilOver(t, g)
	g.Render(scr)
	out := scr.String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Hit the ground")
}

func TestRenderAllThemes(t *testing.T) {
	for _, name := range config.DefaultProfiles().ThemeNames() {
		t.Run(name, func(t *testing.T) {
			sel := testSelection(t, "hard", name)
			g := NewWithSelection(sel)
			g.Reset(testConfig)

			scr := core.NewScreen(testConfig.ScreenW, testConfig.ScreenH)
			pilot := DefaultAutopilot()
			for i := 0; i < 800; i++ {
				s, _ := g.Snapshot()
				in := input()
				if pilot.ShouldLift(s) {
					in.Set(core.ActionLift)
				}
				g.Step(in)
				if i%100 == 0 {
					g.Render(scr)
					require.Equal(t, core.Color(sel.Theme.Sky), scr.GetCell(scr.Width()-1, 1).Bg, "sky behind the top rows")
				}
			}
		})
	}
}

func TestRenderSmallScreen(t *testing.T) {
	e := newTestEngine(t, 1)
	scr := core.NewScreen(3, 2)
	assert.NotPanics(t, func() {
		renderWorld(scr, e.Snapshot(), perlin.NewPerlin(2, 2, 3, 1), false)
	})
}

func TestGroundTextureScrolls(t *testing.T) {
	e := newTestEngine(t, 1)
	noise := perlin.NewPerlin(2, 2, 3, 1)

	ground := func() string {
		scr := core.NewScreen(60, 20)
		renderWorld(scr, e.Snapshot(), noise, false)
		var sb strings.Builder
		for y := 16; y < 20; y++ {
			sb.WriteString(scr.Row(y))
		}
		return sb.String()
	}

	before := ground()
	for i := 0; i < 60; i++ {
		e.Tick()
	}
	assert.NotEqual(t, before, ground())
}
