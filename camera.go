package lens

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera converts a pose and a projection configuration into view and
// projection matrices.
//
// The zero value is not usable; create cameras with NewCamera.
// A Camera is not safe for concurrent use.
type Camera struct {
	position mgl64.Vec3
	rotation mgl64.Quat
	mode     ProjectionMode
	clipping ClippingRange
	fov      Angle
}

// NewCamera creates a camera at DefaultPosition looking down -Z with a
// perspective projection, then applies the options in order.
//
// Example:
//
//	cam := lens.NewCamera(
//	    lens.WithProjectionMode(lens.OrthographicAbsolute),
//	    lens.WithClippingRange(0.1, 100),
//	)
func NewCamera(opts ...Option) *Camera {
	c := &Camera{
		position: DefaultPosition(),
		rotation: mgl64.QuatIdent(),
		mode:     Perspective,
		clipping: NewClippingRange(DefaultNear, DefaultFar),
		fov:      Degrees(DefaultFieldOfViewDegrees).Normalized(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Position returns the camera position in world space.
func (c *Camera) Position() mgl64.Vec3 {
	return c.position
}

// Rotation returns the camera orientation.
func (c *Camera) Rotation() mgl64.Quat {
	return c.rotation
}

// ProjectionMode returns the current projection mode.
func (c *Camera) ProjectionMode() ProjectionMode {
	return c.mode
}

// ClippingRange returns the near/far clipping distances.
func (c *Camera) ClippingRange() ClippingRange {
	return c.clipping
}

// FieldOfView returns the normalized vertical field of view.
func (c *Camera) FieldOfView() Angle {
	return c.fov
}

// Forward returns the unit direction the camera looks at, in world space.
func (c *Camera) Forward() mgl64.Vec3 {
	return c.rotation.Rotate(mgl64.Vec3{0, 0, -1})
}

// MoveTo sets the camera position.
func (c *Camera) MoveTo(p mgl64.Vec3) {
	c.position = p
}

// Rotate composes the current orientation with an incremental rotation.
// The delta is applied in the camera's local frame.
func (c *Camera) Rotate(delta Euler) {
	c.rotation = c.rotation.Mul(delta.Quat()).Normalize()
}

// RotateTo replaces the orientation with the one given by absolute
// euler angles.
func (c *Camera) RotateTo(e Euler) {
	c.rotation = e.Quat()
}

// SetRotation replaces the orientation with q, normalized.
// A zero quaternion resets the orientation to identity.
func (c *Camera) SetRotation(q mgl64.Quat) {
	if q.Len() == 0 {
		c.rotation = mgl64.QuatIdent()
		return
	}
	c.rotation = q.Normalize()
}

// SetProjectionMode replaces the projection mode.
// Returns ErrInvalidArgument and leaves the camera unchanged if mode is not
// one of the defined modes.
func (c *Camera) SetProjectionMode(mode ProjectionMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: projection mode %d", ErrInvalidArgument, uint8(mode))
	}
	if mode != c.mode {
		Logger().Debug("lens: projection mode changed", "from", c.mode, "to", mode)
	}
	c.mode = mode
	return nil
}

// SetClippingRange sets the clipping range from two distances in any
// order. See NewClippingRange for the normalization applied.
func (c *Camera) SetClippingRange(a, b float64) {
	c.clipping = NewClippingRange(a, b)
}

// SetFieldOfView sets the vertical field of view, normalized into [0, 2π).
// It only affects the Perspective mode. A stored angle of 0 or at least π
// projects with DefaultFieldOfViewDegrees instead.
func (c *Camera) SetFieldOfView(a Angle) {
	c.fov = a.Normalized()
}

// View returns the world-to-camera transform: the inverse of the rigid
// transform built from the camera position and rotation.
func (c *Camera) View() mgl64.Mat4 {
	p := c.position
	return c.rotation.Inverse().Mat4().Mul4(mgl64.Translate3D(-p.X(), -p.Y(), -p.Z()))
}

// Projection returns the camera-to-clip transform for a render target of
// the given size.
func (c *Camera) Projection(vp Viewport) mgl64.Mat4 {
	return projectionMatrix(c.mode, c.clipping, c.fov, vp)
}

// ViewProjection returns Projection(vp) * View().
func (c *Camera) ViewProjection(vp Viewport) mgl64.Mat4 {
	return c.Projection(vp).Mul4(c.View())
}

// OrthographicBounds returns the world-space rectangle visible through an
// orthographic projection. ok is false in Perspective mode.
func (c *Camera) OrthographicBounds(vp Viewport) (b Bounds, ok bool) {
	if !c.mode.IsOrthographic() {
		return Bounds{}, false
	}
	return orthographicBounds(c.mode, vp), true
}

// Project maps a world-space point to top-down screen coordinates in
// pixels. The Z component of the result is the NDC depth in [-1, 1] for
// points inside the clipping range.
//
// ok is false when the point is on or behind the camera plane, or when
// the result is not finite.
func (c *Camera) Project(p mgl64.Vec3, vp Viewport) (screen mgl64.Vec3, ok bool) {
	clip := c.ViewProjection(vp).Mul4x1(p.Vec4(1))
	w := clip.W()
	if !(w > 0) {
		return mgl64.Vec3{}, false
	}
	screen = vp.ToScreen(clip.Vec3().Mul(1 / w))
	for _, v := range screen {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return mgl64.Vec3{}, false
		}
	}
	return screen, true
}
