package balloon

// Cause identifies what ended a run.
type Cause int

const (
	CauseNone Cause = iota
	CauseGround
	CauseObstacle
)

func (c Cause) String() string {
	switch c {
	case CauseGround:
		return "ground"
	case CauseObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// Collide checks the avatar against the ground line and every obstacle.
// Obstacles have no ceiling: only the avatar's bottom against TopY matters.
// The first hit wins.
func Collide(a Avatar, avatarX float64, obstacles []Obstacle, groundY float64) Cause {
	bottom := a.Y + AvatarRadius
	if bottom > groundY {
		return CauseGround
	}
	for _, o := range obstacles {
		if avatarX+AvatarRadius > o.X && avatarX-AvatarRadius < o.X+ObstacleWidth && bottom > o.TopY {
			return CauseObstacle
		}
	}
	return CauseNone
}
