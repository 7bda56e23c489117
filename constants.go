package lens

import "github.com/go-gl/mathgl/mgl64"

// Clipping bounds. Every clipping range is clamped into
// [ClippingMinimum, ClippingMaximum].
const (
	ClippingMinimum = 0.001
	ClippingMaximum = 1_000_000.0
)

// Camera defaults used by NewCamera.
const (
	DefaultNear = 0.1
	DefaultFar  = 1000.0

	// DefaultFieldOfViewDegrees is the vertical field of view of a new camera.
	DefaultFieldOfViewDegrees = 60.0
)

// DefaultPosition returns the position of a new camera: one unit in front
// of the XY plane, so geometry at z=0 is inside the default clipping range.
func DefaultPosition() mgl64.Vec3 {
	return mgl64.Vec3{0, 0, 1}
}
