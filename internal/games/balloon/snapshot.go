package balloon

import "github.com/vovakirdan/balloon-puff/internal/config"

// Snapshot is a read-only projection of the engine after a tick.
// Every slice, the theme's included, is a copy; mutating it does not affect
// the engine.
type Snapshot struct {
	Frame    int
	Viewport Viewport
	AvatarX  float64
	Avatar   Avatar

	Background []BackgroundElement
	Ambient    []AmbientEntity // Clouds first, then birds
	Obstacles  []Obstacle

	Terminated bool
	Cause      Cause
	Score      int

	Difficulty config.DifficultyProfile
	Theme      config.ThemeProfile
}

// Snapshot copies the current world state for a renderer.
func (e *Engine) Snapshot() Snapshot {
	ambient := make([]AmbientEntity, 0, e.clouds.Len()+e.birds.Len())
	ambient = append(ambient, e.clouds.items...)
	ambient = append(ambient, e.birds.items...)

	obstacles := make([]Obstacle, len(e.obstacles.items))
	for i, o := range e.obstacles.items {
		obstacles[i] = o.clone()
	}

	return Snapshot{
		Frame:      e.frame,
		Viewport:   e.viewport,
		AvatarX:    e.viewport.AvatarX(),
		Avatar:     e.avatar,
		Background: e.background.Items(),
		Ambient:    ambient,
		Obstacles:  obstacles,
		Terminated: e.state == StateTerminated,
		Cause:      e.ended.Cause,
		Score:      e.score,
		Difficulty: e.difficulty,
		Theme:      e.theme.Clone(),
	}
}
