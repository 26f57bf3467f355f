package core

// Body is a point mass with position and velocity in world pixels per frame.
type Body struct {
	X, Y   float64
	VX, VY float64
}

// Integrate advances the body by one frame under constant acceleration (ax, ay).
// Velocity is updated first and the position then moves by the new velocity.
// There is no clamping, so the result depends only on the inputs.
func Integrate(b *Body, ax, ay float64) {
	b.VX += ax
	b.VY += ay
	b.X += b.VX
	b.Y += b.VY
}
