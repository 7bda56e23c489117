// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import "github.com/gogpu/lens"

// ViewportOf returns the camera viewport covering the whole target.
func ViewportOf(t Target) lens.Viewport {
	return lens.Viewport{Width: float64(t.Width()), Height: float64(t.Height())}
}
