package lens

import "github.com/go-gl/mathgl/mgl64"

// Option configures a Camera during creation.
// Options go through the same setters as later mutation, so clamping and
// normalization apply.
//
// Example:
//
//	cam := lens.NewCamera(
//	    lens.WithPosition(mgl64.Vec3{0, 2, 10}),
//	    lens.WithEuler(lens.Euler{X: -0.2}),
//	)
type Option func(*Camera)

// WithPosition sets the initial camera position.
func WithPosition(p mgl64.Vec3) Option {
	return func(c *Camera) {
		c.MoveTo(p)
	}
}

// WithRotation sets the initial orientation.
func WithRotation(q mgl64.Quat) Option {
	return func(c *Camera) {
		c.SetRotation(q)
	}
}

// WithEuler sets the initial orientation from absolute euler angles.
func WithEuler(e Euler) Option {
	return func(c *Camera) {
		c.RotateTo(e)
	}
}

// WithProjectionMode sets the initial projection mode.
// An undefined mode is ignored and logged at warn level; call
// SetProjectionMode to observe the error.
func WithProjectionMode(mode ProjectionMode) Option {
	return func(c *Camera) {
		if err := c.SetProjectionMode(mode); err != nil {
			Logger().Warn("lens: ignoring camera option", "err", err)
		}
	}
}

// WithClippingRange sets the initial clipping range.
func WithClippingRange(near, far float64) Option {
	return func(c *Camera) {
		c.SetClippingRange(near, far)
	}
}

// WithFieldOfView sets the initial vertical field of view.
func WithFieldOfView(a Angle) Option {
	return func(c *Camera) {
		c.SetFieldOfView(a)
	}
}
