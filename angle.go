package lens

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Angle is a plane angle in radians.
type Angle float64

// Radians returns an Angle of r radians.
func Radians(r float64) Angle { return Angle(r) }

// Degrees returns an Angle of d degrees.
func Degrees(d float64) Angle { return Angle(mgl64.DegToRad(d)) }

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return float64(a) }

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float64 { return mgl64.RadToDeg(float64(a)) }

// Normalized returns the equivalent angle in [0, 2π).
// NaN and infinities normalize to 0.
func (a Angle) Normalized() Angle {
	r := float64(a)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	r = math.Mod(r, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	// -tiny + 2π rounds to exactly 2π.
	if r >= 2*math.Pi {
		r = 0
	}
	return Angle(r)
}

// Euler is a set of euler angles in radians, applied in X, Y, Z order.
type Euler struct {
	X, Y, Z float64
}

// Quat returns the unit quaternion for the euler angles.
func (e Euler) Quat() mgl64.Quat {
	return mgl64.AnglesToQuat(e.X, e.Y, e.Z, mgl64.XYZ).Normalize()
}
