package lens

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ProjectionMode selects how camera space maps onto the viewport.
type ProjectionMode uint8

const (
	// Perspective is a vertical field-of-view perspective projection.
	Perspective ProjectionMode = iota

	// OrthographicRelative maps world X and Y in [0,1] onto the full
	// viewport width and height, ignoring aspect ratio.
	OrthographicRelative

	// OrthographicRelativeProportional keeps pixels square: the shorter
	// viewport side maps to [0,1] and the longer side overhangs
	// symmetrically by (aspect-1)/2 on each end.
	OrthographicRelativeProportional

	// OrthographicAbsolute maps one world unit to one device pixel with the
	// world origin at the bottom-left corner of the viewport.
	OrthographicAbsolute

	// projectionModeCount is the number of modes (for internal use).
	projectionModeCount
)

// IsValid returns true if m is one of the defined projection modes.
func (m ProjectionMode) IsValid() bool {
	return m < projectionModeCount
}

// IsOrthographic returns true for the three orthographic modes.
func (m ProjectionMode) IsOrthographic() bool {
	return m.IsValid() && m != Perspective
}

// String returns a string representation of the mode.
func (m ProjectionMode) String() string {
	switch m {
	case Perspective:
		return "Perspective"
	case OrthographicRelative:
		return "OrthographicRelative"
	case OrthographicRelativeProportional:
		return "OrthographicRelativeProportional"
	case OrthographicAbsolute:
		return "OrthographicAbsolute"
	default:
		return "Unknown"
	}
}

// ParseProjectionMode returns the mode whose String form is s.
func ParseProjectionMode(s string) (ProjectionMode, bool) {
	for m := Perspective; m < projectionModeCount; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}

// Viewport is the size of a render target in device pixels.
// It is supplied to the camera at query time and never cached by it.
type Viewport struct {
	Width, Height float64
}

// AspectRatio returns Width/Height.
// A viewport without positive area reports an aspect ratio of 1.
func (v Viewport) AspectRatio() float64 {
	if !(v.Width > 0) || !(v.Height > 0) {
		return 1
	}
	return v.Width / v.Height
}

// ToScreen converts normalized device coordinates to top-down screen
// coordinates in pixels. Z passes through unchanged.
func (v Viewport) ToScreen(ndc mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		(ndc.X() + 1) / 2 * v.Width,
		(1 - ndc.Y()) / 2 * v.Height,
		ndc.Z(),
	}
}

// Bounds is the world-space rectangle an orthographic projection shows.
type Bounds struct {
	Left, Right, Bottom, Top float64
}

// Width returns Right - Left.
func (b Bounds) Width() float64 { return b.Right - b.Left }

// Height returns Top - Bottom.
func (b Bounds) Height() float64 { return b.Top - b.Bottom }

// orthographicBounds returns the visible world rectangle for an
// orthographic mode.
func orthographicBounds(mode ProjectionMode, vp Viewport) Bounds {
	switch mode {
	case OrthographicRelative:
		return Bounds{Left: 0, Right: 1, Bottom: 0, Top: 1}

	case OrthographicRelativeProportional:
		aspect := vp.AspectRatio()
		if aspect >= 1 {
			o := (aspect - 1) / 2
			return Bounds{Left: -o, Right: 1 + o, Bottom: 0, Top: 1}
		}
		o := (1/aspect - 1) / 2
		return Bounds{Left: 0, Right: 1, Bottom: -o, Top: 1 + o}

	case OrthographicAbsolute:
		return Bounds{Left: 0, Right: math.Max(vp.Width, 0), Bottom: 0, Top: math.Max(vp.Height, 0)}

	default:
		return Bounds{}
	}
}

// projectionMatrix derives the projection for the given configuration.
func projectionMatrix(mode ProjectionMode, clip ClippingRange, fov Angle, vp Viewport) mgl64.Mat4 {
	near, far := separate(clip)
	if mode == Perspective {
		return mgl64.Perspective(perspectiveFOV(fov), vp.AspectRatio(), near, far)
	}
	b := orthographicBounds(mode, vp)
	if b.Width() == 0 || b.Height() == 0 {
		// Zero-area absolute viewport.
		return mgl64.Ident4()
	}
	return mgl64.Ortho(b.Left, b.Right, b.Bottom, b.Top, near, far)
}

// perspectiveFOV returns the vertical field of view in radians used by the
// perspective projection. Stored angles outside (0, π) cannot describe a
// frustum and fall back to DefaultFieldOfViewDegrees.
func perspectiveFOV(fov Angle) float64 {
	r := fov.Radians()
	if !(r > 0) || r >= math.Pi {
		return mgl64.DegToRad(DefaultFieldOfViewDegrees)
	}
	return r
}

// separate returns the clipping planes with Far strictly beyond Near.
// A collapsed range is widened by one ulp.
func separate(clip ClippingRange) (near, far float64) {
	near, far = clip.Near, clip.Far
	if far > near {
		return near, far
	}
	if near >= ClippingMaximum {
		return math.Nextafter(far, ClippingMinimum), far
	}
	return near, math.Nextafter(near, ClippingMaximum)
}
