package balloon

import (
	"math/rand"
)

// Obstacle generation parameters.
const (
	MaxSegments       = 50
	minGapAbove       = 0.6  // Top band starts at ground - 0.6*H
	minObstacleHeight = 50.0 // Top band ends at ground - 50
	segmentHeightMin  = 30.0
	segmentHeightSpan = 40.0
	stackWidthRatio   = 0.8 // Stack width is 80% of ObstacleWidth
	segmentWidthMin   = 0.8
	segmentWidthSpan  = 0.4
	segmentJitter     = 10.0 // Horizontal offset jitter in [-5, 5)
	advanceMin        = 0.8
	advanceSpan       = 0.2
)

// obstacleGen builds obstacle stacks for one viewport and palette.
type obstacleGen struct {
	viewport Viewport
	palette  []string
}

// spawn builds one obstacle entering at x.
func (g obstacleGen) spawn(x float64, rng *rand.Rand) Obstacle {
	ground := g.viewport.Ground()
	lo := ground - g.viewport.Height*minGapAbove
	hi := ground - minObstacleHeight
	topY := lo + rng.Float64()*(hi-lo)

	segments, _ := g.stack(topY, rng)
	return Obstacle{X: x, TopY: topY, Segments: segments}
}

// stack appends segments from topY downward until the running y reaches the
// ground line or MaxSegments is hit. It returns the segments and the final
// running y.
func (g obstacleGen) stack(topY float64, rng *rand.Rand) ([]Segment, float64) {
	ground := g.viewport.Ground()
	stackWidth := ObstacleWidth * stackWidthRatio

	segments := make([]Segment, 0, 8)
	y := topY
	for y < ground && len(segments) < MaxSegments {
		h := segmentHeightMin + rng.Float64()*segmentHeightSpan
		w := stackWidth * (segmentWidthMin + rng.Float64()*segmentWidthSpan)
		offset := (ObstacleWidth-w)/2 + (rng.Float64()-0.5)*segmentJitter
		segments = append(segments, Segment{
			Y:       y,
			Width:   w,
			Height:  h,
			OffsetX: offset,
			Color:   pick(rng, g.palette),
		})
		y += h * (advanceMin + rng.Float64()*advanceSpan)
	}
	return segments, y
}

func obstacleGone(o Obstacle) bool {
	return o.X+ObstacleWidth <= 0
}

// clearedThisTick reports whether the obstacle's right edge passed the
// avatar's left edge during the last move of the given speed.
func clearedThisTick(o Obstacle, avatarX, speed float64) bool {
	right := o.X + ObstacleWidth
	left := avatarX - AvatarRadius
	return right < left && right+speed >= left
}
