package lens

import "math"

// ClippingRange is the near/far distance interval in which geometry is
// rendered. A ClippingRange built by NewClippingRange always satisfies
// ClippingMinimum <= Near <= Far <= ClippingMaximum.
type ClippingRange struct {
	Near, Far float64
}

// NewClippingRange orders a and b so the smaller becomes Near and clamps
// both into [ClippingMinimum, ClippingMaximum]. NaN clamps to ClippingMinimum.
func NewClippingRange(a, b float64) ClippingRange {
	a, b = clampClipping(a), clampClipping(b)
	if b < a {
		a, b = b, a
	}
	return ClippingRange{Near: a, Far: b}
}

// Depth returns Far - Near.
func (r ClippingRange) Depth() float64 {
	return r.Far - r.Near
}

// Contains reports whether distance d lies within the range.
func (r ClippingRange) Contains(d float64) bool {
	return d >= r.Near && d <= r.Far
}

func clampClipping(v float64) float64 {
	switch {
	case math.IsNaN(v), v < ClippingMinimum:
		return ClippingMinimum
	case v > ClippingMaximum:
		return ClippingMaximum
	default:
		return v
	}
}
