package balloon

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/balloon-puff/internal/config"
)

func testBackgroundGen(t *testing.T, theme string) backgroundGen {
	t.Helper()
	sel := testSelection(t, "easy", theme)
	return backgroundGen{viewport: testViewport, theme: sel.Theme, baseSpeed: sel.Difficulty.ObstacleSpeed}
}

func TestSpawnSiteDistribution(t *testing.T) {
	// City keeps upper and foreground kinds disjoint, so a foreign kind can
	// only come from the any-kind override.
	g := testBackgroundGen(t, "city")
	rng := rand.New(rand.NewSource(3))

	v := g.viewport
	horizon, ground := v.Horizon(), v.Ground()
	threshold := horizon + (v.Height-horizon)*upperThresholdRatio
	upper, foreground := g.theme.Upper(), g.theme.Foreground

	const n = 20000
	var detail, above, aboveForeign, below, belowForeign int
	for i := 0; i < n; i++ {
		e := g.spawnSite(v.Width, rng)

		if e.Kind == config.KindGroundDetailRock {
			detail++
			assert.GreaterOrEqual(t, e.BaseY, horizon)
			assert.Less(t, e.BaseY, horizon+groundDetailBand)
			continue
		}
		require.GreaterOrEqual(t, e.BaseY, horizon)
		require.Less(t, e.BaseY, ground)

		if e.BaseY < threshold {
			above++
			if !slices.Contains(upper, e.Kind) {
				aboveForeign++
			}
		} else {
			below++
			if !slices.Contains(foreground, e.Kind) {
				belowForeign++
			}
		}
	}

	detailShare := float64(detail) / n
	assert.Greater(t, detailShare, 0.13)
	assert.Less(t, detailShare, 0.17)

	require.NotZero(t, above)
	require.NotZero(t, below)
	assert.Greater(t, aboveForeign, 0, "override never picked a foreground kind above the threshold")
	assert.Less(t, float64(aboveForeign)/float64(above), 0.1)
	assert.Greater(t, belowForeign, 0, "override never picked an upper kind below the threshold")
	assert.Less(t, float64(belowForeign)/float64(below), 0.12)
}

func TestSpawnSiteElementShape(t *testing.T) {
	for _, theme := range []string{"mountain", "city"} {
		t.Run(theme, func(t *testing.T) {
			g := testBackgroundGen(t, theme)
			rng := rand.New(rand.NewSource(11))
			horizon, ground := g.viewport.Horizon(), g.viewport.Ground()

			for i := 0; i < 2000; i++ {
				e := g.spawnSite(g.viewport.Width, rng)
				size := bandSize[e.Band]

				assert.Equal(t, classifyBand(e.BaseY, g.viewport), e.Band)
				assert.Equal(t, size.height, e.BaseHeight)
				assert.Equal(t, size.width, e.Width)

				scale := e.Height / e.BaseHeight
				assert.GreaterOrEqual(t, scale, heightScaleMin)
				assert.Less(t, scale, heightScaleMin+heightScaleSpan)
				assert.InDelta(t, e.BaseY-(e.Height-e.BaseHeight), e.Y, 1e-9)

				assert.Equal(t, g.theme.LayerColors[e.Band], e.Color)
				assert.Contains(t, g.theme.MountainColors, e.MountainColor)
				assert.Equal(t, DepthSpeed(e.BaseY, horizon, ground, g.baseSpeed), e.Speed)

				if e.Kind != config.KindSmallRock {
					assert.Zero(t, e.RockSize, "kind %v", e.Kind)
					assert.Empty(t, e.RockColor, "kind %v", e.Kind)
				}
			}
		})
	}
}

func TestElementRockDecoration(t *testing.T) {
	g := testBackgroundGen(t, "mountain")
	rng := rand.New(rand.NewSource(5))
	baseY := g.viewport.Ground() - 10

	for i := 0; i < 500; i++ {
		rock := g.element(0, baseY, config.KindSmallRock, rng)
		assert.GreaterOrEqual(t, rock.RockSize, rockSizeMin*rock.Width)
		assert.Less(t, rock.RockSize, (rockSizeMin+rockSizeSpan)*rock.Width)
		assert.Contains(t, g.theme.RockColors, rock.RockColor)
	}

	boulder := g.element(0, baseY, config.KindBoulder, rng)
	assert.Zero(t, boulder.RockSize)
	assert.Empty(t, boulder.RockColor)
}

func TestBackgroundSpeedFixedAtSpawn(t *testing.T) {
	g := testBackgroundGen(t, "mountain")
	rng := rand.New(rand.NewSource(9))

	e := g.element(200, g.viewport.Horizon()+100, config.KindBoulder, rng)
	speed := e.Speed
	require.Greater(t, speed, 0.0)

	for i := 1; i <= 5; i++ {
		stepBackground(&e)
		assert.Equal(t, speed, e.Speed)
		assert.InDelta(t, 200-float64(i)*speed, e.X, 1e-9)
	}
}

func TestAmbientGoneThresholds(t *testing.T) {
	cloud := AmbientEntity{Kind: AmbientCloud, Size: 30}
	cloud.X = -60
	assert.True(t, cloudGone(cloud))
	cloud.X = -59.99
	assert.False(t, cloudGone(cloud))

	bird := AmbientEntity{Kind: AmbientBird}
	bird.X = -10
	assert.True(t, birdGone(bird))
	bird.X = -9.99
	assert.False(t, birdGone(bird))
}

func TestBirdStep(t *testing.T) {
	e := newTestEngine(t, 4)
	d, _ := e.Profiles()

	findBird := func() AmbientEntity {
		t.Helper()
		for _, a := range e.Snapshot().Ambient {
			if a.Kind == AmbientBird {
				return a
			}
		}
		t.Fatal("no bird in the sky")
		return AmbientEntity{}
	}

	before := findBird()
	e.Tick()
	after := findBird()

	assert.InDelta(t, before.Phase+BirdPhaseRate, after.Phase, 1e-9)
	assert.InDelta(t, before.X-d.BirdSpeed, after.X, 1e-9)
}
