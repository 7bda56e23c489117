// Package lens provides a camera model for 3D and 2D scene rendering.
//
// # Overview
//
// A [Camera] owns a position, an orientation and a projection
// configuration. It derives view and projection matrices on demand for a
// render target whose size is supplied at query time as a [Viewport].
//
//	cam := lens.NewCamera(
//	    lens.WithPosition(mgl64.Vec3{0, 0, 5}),
//	    lens.WithFieldOfView(lens.Degrees(45)),
//	)
//	vp := lens.Viewport{Width: 1280, Height: 720}
//	mvp := cam.ViewProjection(vp)
//
// # Projection Modes
//
// Four projection modes are supported:
//   - [Perspective]: vertical field-of-view perspective
//   - [OrthographicRelative]: world [0,1]x[0,1] fills the viewport
//   - [OrthographicRelativeProportional]: square pixels, shorter side is [0,1]
//   - [OrthographicAbsolute]: one world unit per device pixel, origin bottom-left
//
// # Coordinate System
//
// Camera space is right-handed with the camera looking down -Z and +Y up.
// Screen coordinates returned by [Camera.Project] and [Viewport.ToScreen]
// have their origin at the top-left corner with Y increasing downward.
//
// # Pixel Buffers
//
// Raw image access lives in the pixbuf sub-package, render targets in
// the render sub-package. Both share the error kinds and logger defined
// here.
package lens
