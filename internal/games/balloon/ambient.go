package balloon

import (
	"math"
	"math/rand"
)

// Ambient spawn parameters.
const (
	CloudCadence  = 300
	CloudJitter   = 100.0
	BirdCadence   = 450
	BirdJitter    = 50.0
	BirdPhaseRate = 0.1
	birdHalfSpan  = 10.0
)

func newCloud(v Viewport) func(float64, *rand.Rand) AmbientEntity {
	return func(x float64, rng *rand.Rand) AmbientEntity {
		return AmbientEntity{
			Kind: AmbientCloud,
			X:    x,
			Y:    rng.Float64()*(v.Height*0.4) + 50,
			Size: rng.Float64()*20 + 25,
		}
	}
}

func newBird(v Viewport) func(float64, *rand.Rand) AmbientEntity {
	return func(x float64, rng *rand.Rand) AmbientEntity {
		return AmbientEntity{
			Kind:  AmbientBird,
			X:     x,
			Y:     rng.Float64()*(v.Height*0.5) + 80,
			Phase: rng.Float64() * 2 * math.Pi,
		}
	}
}

func cloudGone(c AmbientEntity) bool {
	return c.X+2*c.Size <= 0
}

func birdGone(b AmbientEntity) bool {
	return b.X+birdHalfSpan <= 0
}
