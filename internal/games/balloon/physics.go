package balloon

// Integrate advances the avatar by one frame under gravity.
// Leaving the top of the viewport clamps the avatar and zeroes its velocity;
// there is no bottom clamp.
func Integrate(a Avatar, gravity float64) Avatar {
	a.Vel += gravity
	a.Y += a.Vel
	if a.Y-AvatarRadius < 0 {
		a.Y = AvatarRadius
		a.Vel = 0
	}
	return a
}

// Lift applies a lift impulse: velocity is replaced, not accumulated.
func Lift(a Avatar, lift float64) Avatar {
	a.Vel = lift
	return a
}
