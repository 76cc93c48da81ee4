package balloon

// Autopilot is a simple controller for headless runs: it lifts whenever the
// balloon is falling toward the nearest floor, be it the ground or an
// approaching obstacle top.
type Autopilot struct {
	Margin    float64 // Distance above the floor at which to lift
	Lookahead float64 // How far ahead of the avatar obstacles count
}

// DefaultAutopilot returns an autopilot tuned for the built-in difficulties.
func DefaultAutopilot() Autopilot {
	return Autopilot{Margin: 40, Lookahead: 2 * ObstacleWidth}
}

// ShouldLift decides whether to lift on the next tick.
func (p Autopilot) ShouldLift(s Snapshot) bool {
	if s.Terminated || s.Avatar.Vel < 0 {
		return false
	}
	return s.Avatar.Y > p.floor(s)-p.Margin
}

// floor returns the lowest center height the avatar can reach without a hit.
func (p Autopilot) floor(s Snapshot) float64 {
	floor := s.Viewport.Ground()
	left := s.AvatarX - AvatarRadius
	right := s.AvatarX + AvatarRadius + p.Lookahead
	for _, o := range s.Obstacles {
		if o.X+ObstacleWidth > left && o.X < right {
			floor = min(floor, o.TopY)
		}
	}
	return floor - AvatarRadius
}
