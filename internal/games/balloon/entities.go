package balloon

import "github.com/vovakirdan/balloon-puff/internal/config"

// World geometry, in world units.
const (
	AvatarRadius  = 30.0
	ObstacleWidth = 60.0
	GroundHeight  = 20.0
	HorizonRatio  = 0.6 // Horizon line as a fraction of viewport height
	AvatarXRatio  = 0.25
)

// Viewport is the simulated world size. It is fixed for the lifetime of an engine.
type Viewport struct {
	Width  float64
	Height float64
}

// Horizon returns the y of the horizon line.
func (v Viewport) Horizon() float64 {
	return v.Height * HorizonRatio
}

// Ground returns the y of the ground line.
func (v Viewport) Ground() float64 {
	return v.Height - GroundHeight
}

// AvatarX returns the fixed horizontal position of the avatar center.
func (v Viewport) AvatarX() float64 {
	return v.Width * AvatarXRatio
}

// StartY returns the avatar height at the start of a run.
func (v Viewport) StartY() float64 {
	return v.Height / 3
}

// Avatar is the player-controlled balloon. Y is the center; up is negative.
type Avatar struct {
	Y   float64
	Vel float64
}

// Band is the depth band a background element was classified into at spawn.
type Band int

const (
	BandFar Band = iota
	BandMid
	BandNear
)

func (b Band) String() string {
	switch b {
	case BandFar:
		return "far"
	case BandMid:
		return "mid"
	case BandNear:
		return "near"
	default:
		return "unknown"
	}
}

// BackgroundElement is a decorative scenery element. Only X changes after spawn.
type BackgroundElement struct {
	X          float64
	Y          float64 // Top of the element, BaseY - (Height - BaseHeight)
	BaseY      float64 // Spawn depth; defines band and speed
	Width      float64
	Height     float64
	BaseHeight float64
	Kind       config.ElementKind
	Band       Band
	Color      string // Layer color of the band
	Speed      float64

	MountainColor string
	RockSize      float64 // small-rock only
	RockColor     string  // small-rock only
}

// AmbientKind distinguishes the two ambient entity types.
type AmbientKind int

const (
	AmbientCloud AmbientKind = iota
	AmbientBird
)

func (k AmbientKind) String() string {
	if k == AmbientBird {
		return "bird"
	}
	return "cloud"
}

// AmbientEntity is a cloud or a bird drifting across the sky.
type AmbientEntity struct {
	Kind  AmbientKind
	X     float64
	Y     float64
	Size  float64 // clouds
	Phase float64 // birds, wing-flap oscillation
}

// Segment is one stacked piece of an obstacle. Render-only.
type Segment struct {
	Y       float64
	Width   float64
	Height  float64
	OffsetX float64
	Color   string
}

// Obstacle is a vertical stack rising from the ground.
// TopY is authoritative for collision; segments never change after spawn.
type Obstacle struct {
	X        float64
	TopY     float64
	Segments []Segment
}

func (o Obstacle) clone() Obstacle {
	o.Segments = append([]Segment(nil), o.Segments...)
	return o
}
