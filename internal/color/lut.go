// Package color converts between 8-bit sRGB channel values and linear light.
//
// Pixel buffers store gamma-encoded sRGB bytes. Filtering and GPU upload
// of float textures need linear values, so conversion goes through a
// 256-entry table built once at init.
package color

import "math"

// srgbToLinearLUT maps an sRGB byte to its linear value in [0, 1].
var srgbToLinearLUT [256]float32

func init() {
	for i := range srgbToLinearLUT {
		srgbToLinearLUT[i] = float32(decode(float64(i) / 255))
	}
}

// SRGBToLinear converts an sRGB byte to linear light using the lookup table.
//
//	SRGBToLinear(128) // ~0.2159, not 0.5
func SRGBToLinear(s uint8) float32 {
	return srgbToLinearLUT[s]
}

// LinearToSRGB converts a linear value to an sRGB byte with rounding.
// Input outside [0, 1] is clamped.
func LinearToSRGB(l float32) uint8 {
	v := float64(l)
	switch {
	case !(v > 0):
		return 0
	case v >= 1:
		return 255
	}
	var s float64
	if v <= 0.0031308 {
		s = v * 12.92
	} else {
		s = 1.055*math.Pow(v, 1.0/2.4) - 0.055
	}
	//nolint:gosec // G115: s is in [0,1]
	return uint8(s*255 + 0.5)
}

// decode is the sRGB EOTF for a value in [0, 1].
func decode(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}
