package balloon

import (
	"math/rand"

	"github.com/vovakirdan/balloon-puff/internal/config"
)

// Background generation parameters.
const (
	BackgroundCadence   = 100
	BackgroundJitter    = 100.0
	PreSpawnCount       = 10
	HorizonSpeedFactor  = 0.2  // Speed multiplier at or above the horizon
	groundDetailChance  = 0.15 // Chance of a ground-detail rock instead of a regular site
	groundDetailBand    = 20.0 // Ground-detail rocks spawn in [horizon, horizon+20)
	anyKindChance       = 0.10 // Chance to ignore depth and pick from the full vocabulary
	upperThresholdRatio = 0.3  // Upper vocabulary above horizon + (H-horizon)*0.3
	farBandDepth        = 50.0 // Far band is [.., horizon+50)
	heightScaleMin      = 0.8
	heightScaleSpan     = 0.7 // Height scale in [0.8, 1.5)
	rockSizeMin         = 0.8
	rockSizeSpan        = 0.4
)

// bandSize holds the base height and width of each depth band.
var bandSize = [...]struct{ height, width float64 }{
	BandFar:  {150, 120},
	BandMid:  {100, 80},
	BandNear: {50, 40},
}

// DepthSpeed returns the scroll speed of an element whose base depth is baseY.
// Elements at or above the horizon move at base*0.2, elements on the ground
// line at the full base speed, linearly in between.
func DepthSpeed(baseY, horizon, ground, base float64) float64 {
	if baseY <= horizon || ground <= horizon {
		return base * HorizonSpeedFactor
	}
	d := (baseY - horizon) / (ground - horizon)
	if d >= 1 {
		return base
	}
	return base * (HorizonSpeedFactor*(1-d) + d)
}

// classifyBand picks the depth band for a base depth.
func classifyBand(baseY float64, v Viewport) Band {
	horizon := v.Horizon()
	switch {
	case baseY < horizon+farBandDepth:
		return BandFar
	case baseY < horizon+(v.Height-horizon)*0.5:
		return BandMid
	default:
		return BandNear
	}
}

// backgroundGen builds background elements for one viewport and theme.
type backgroundGen struct {
	viewport  Viewport
	theme     config.ThemeProfile
	baseSpeed float64
}

// spawnSite samples a spawn depth and kind for an element entering at x.
func (g backgroundGen) spawnSite(x float64, rng *rand.Rand) BackgroundElement {
	horizon, ground := g.viewport.Horizon(), g.viewport.Ground()

	if rng.Float64() < groundDetailChance {
		y := horizon + rng.Float64()*groundDetailBand
		return g.element(x, y, config.KindGroundDetailRock, rng)
	}

	y := horizon + rng.Float64()*(ground-horizon)
	threshold := horizon + (g.viewport.Height-horizon)*upperThresholdRatio

	var kind config.ElementKind
	if y < threshold {
		kind = pick(rng, g.theme.Upper())
	} else {
		kind = pick(rng, g.theme.Foreground)
	}
	if rng.Float64() < anyKindChance {
		kind = pick(rng, g.theme.Vocabulary())
	}
	return g.element(x, y, kind, rng)
}

// element creates an element of the given kind with base depth baseY.
// Size and color depend only on the depth band; decoration is fixed here.
func (g backgroundGen) element(x, baseY float64, kind config.ElementKind, rng *rand.Rand) BackgroundElement {
	band := classifyBand(baseY, g.viewport)
	size := bandSize[band]
	height := size.height * (heightScaleMin + rng.Float64()*heightScaleSpan)

	e := BackgroundElement{
		X:             x,
		Y:             baseY - (height - size.height),
		BaseY:         baseY,
		Width:         size.width,
		Height:        height,
		BaseHeight:    size.height,
		Kind:          kind,
		Band:          band,
		Color:         g.theme.LayerColors[band],
		Speed:         DepthSpeed(baseY, g.viewport.Horizon(), g.viewport.Ground(), g.baseSpeed),
		MountainColor: pick(rng, g.theme.MountainColors),
	}
	if kind == config.KindSmallRock {
		e.RockSize = size.width * (rockSizeMin + rng.Float64()*rockSizeSpan)
		e.RockColor = pick(rng, g.theme.RockColors)
	}
	return e
}

// PreSpawn returns count elements spread evenly across the viewport width,
// with depth uniform in [horizon, ground) and kinds from the full vocabulary.
func (g backgroundGen) PreSpawn(count int, rng *rand.Rand) []BackgroundElement {
	horizon, ground := g.viewport.Horizon(), g.viewport.Ground()
	vocab := g.theme.Vocabulary()

	out := make([]BackgroundElement, 0, count)
	for i := 0; i < count; i++ {
		y := horizon + rng.Float64()*(ground-horizon)
		kind := pick(rng, vocab)
		x := g.viewport.Width * float64(i) / float64(count)
		out = append(out, g.element(x, y, kind, rng))
	}
	return out
}

func stepBackground(e *BackgroundElement) {
	e.X -= e.Speed
}

func backgroundGone(e BackgroundElement) bool {
	return e.X+e.Width <= 0
}

// pick returns a uniformly chosen entry. Callers guarantee a non-empty slice.
func pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
