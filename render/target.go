// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// Target defines where rendering output goes.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to pixel data.
	Pixels() []byte

	// Stride returns the number of bytes per row, padding included.
	Stride() int
}

// PixmapTarget is a CPU-backed render target using *image.RGBA.
//
// Its RGBA8 layout is not a readback format: NativeImage of a PixmapTarget
// yields an unsupported pixbuf.Buffer. Copy through Image and
// pixbuf.BitmapFromImage instead.
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a new CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
	}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int { return t.img.Bounds().Dx() }

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int { return t.img.Bounds().Dy() }

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat { return gputypes.TextureFormatRGBA8Unorm }

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte { return t.img.Pix }

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int { return t.img.Stride }

// Image returns the underlying *image.RGBA, sharing memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// SetPixel stores c at (x, y). Out-of-bounds coordinates are ignored.
func (t *PixmapTarget) SetPixel(x, y int, c color.Color) {
	t.img.Set(x, y, c)
}

// Ensure PixmapTarget implements Target.
var _ Target = (*PixmapTarget)(nil)

// DefaultRowAlignment is the row alignment used by NewFramebufferTarget
// when none is given. It matches the copy alignment GPUs require for
// texture readback.
const DefaultRowAlignment = 256

// FramebufferTarget is a BGRA8 render target whose rows are padded to a
// fixed byte alignment.
type FramebufferTarget struct {
	width  int
	height int
	stride int
	pix    []byte
}

// NewFramebufferTarget allocates a BGRA8 framebuffer. Rows are padded to a
// multiple of align bytes; align <= 0 selects DefaultRowAlignment.
func NewFramebufferTarget(width, height, align int) *FramebufferTarget {
	if align <= 0 {
		align = DefaultRowAlignment
	}
	width, height = max(width, 0), max(height, 0)
	stride := (width*4 + align - 1) / align * align
	return &FramebufferTarget{
		width:  width,
		height: height,
		stride: stride,
		pix:    make([]byte, stride*height),
	}
}

// Width returns the target width in pixels.
func (t *FramebufferTarget) Width() int {
	return t.width
}

// Height returns the target height in pixels.
func (t *FramebufferTarget) Height() int {
	return t.height
}

// Format returns the pixel format (BGRA8).
func (t *FramebufferTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

// Pixels returns direct access to the pixel data.
func (t *FramebufferTarget) Pixels() []byte {
	return t.pix
}

// Stride returns the number of bytes per row, padding included.
func (t *FramebufferTarget) Stride() int {
	return t.stride
}

// SetPixel stores c at (x, y). Out-of-bounds coordinates are ignored.
func (t *FramebufferTarget) SetPixel(x, y int, c color.Color) {
	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	i := y*t.stride + x*4
	t.pix[i+0] = n.B
	t.pix[i+1] = n.G
	t.pix[i+2] = n.R
	t.pix[i+3] = n.A
}

// Ensure FramebufferTarget implements Target.
var _ Target = (*FramebufferTarget)(nil)
