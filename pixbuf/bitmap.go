// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/lens"
	icolor "github.com/gogpu/lens/internal/color"
)

// rowAlignment is the byte boundary rows of a new Bitmap are padded to.
const rowAlignment = 4

// Bitmap is an in-memory Native image.
//
// Rows are padded to a 4-byte boundary, so 24-bit bitmaps whose width is
// not a multiple of four carry padding just like platform bitmaps do.
// A Bitmap admits a single lock at a time.
type Bitmap struct {
	pix    []byte
	width  int
	height int
	format Format
	stride int
	locked bool
}

// NewBitmap allocates a zeroed bitmap with 4-byte aligned rows.
func NewBitmap(width, height int, format Format) (*Bitmap, error) {
	if err := checkGeometry(width, height, format); err != nil {
		return nil, err
	}
	stride := alignUp(format.RowBytes(width), rowAlignment)
	return &Bitmap{
		pix:    make([]byte, stride*height),
		width:  width,
		height: height,
		format: format,
		stride: stride,
	}, nil
}

// NewBitmapFromRaw wraps existing memory without copying.
// stride is the signed row pitch in bytes; a negative stride stores rows
// bottom-up. |stride| must be at least format.RowBytes(width).
func NewBitmapFromRaw(pix []byte, width, height int, format Format, stride int) (*Bitmap, error) {
	if err := checkGeometry(width, height, format); err != nil {
		return nil, err
	}
	if err := checkLayout(width, height, format, stride, len(pix)); err != nil {
		return nil, err
	}
	return &Bitmap{
		pix:    pix,
		width:  width,
		height: height,
		format: format,
		stride: stride,
	}, nil
}

// BitmapFromImage copies img into a new bitmap. Images that report
// themselves opaque become FormatBGR8; all others FormatBGRA8.
func BitmapFromImage(img image.Image) (*Bitmap, error) {
	format := FormatBGRA8
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		format = FormatBGR8
	}

	bounds := img.Bounds()
	bm, err := NewBitmap(bounds.Dx(), bounds.Dy(), format)
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range bm.height {
			src := nrgba.Pix[nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := range bm.width {
				s := src[x*4 : x*4+4]
				bm.set(x, y, color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]})
			}
		}
		return bm, nil
	}

	for y := range bm.height {
		for x := range bm.width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			bm.set(x, y, c)
		}
	}
	return bm, nil
}

// Width returns the image width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the image height in pixels.
func (b *Bitmap) Height() int { return b.height }

// Format returns the pixel format.
func (b *Bitmap) Format() Format { return b.format }

// Stride returns the signed number of bytes per row.
func (b *Bitmap) Stride() int { return b.stride }

// Locked reports whether a lock is currently held.
func (b *Bitmap) Locked() bool { return b.locked }

// Lock grants exclusive access to the pixel memory.
// Returns ErrLocked if a lock is already held.
func (b *Bitmap) Lock() (Lock, error) {
	if b.locked {
		return nil, ErrLocked
	}
	b.locked = true
	return &bitmapLock{bm: b}, nil
}

// SetNRGBA stores c at (x, y) in the bitmap's own channel order.
func (b *Bitmap) SetNRGBA(x, y int, c color.NRGBA) error {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return fmt.Errorf("%w: pixbuf: pixel (%d, %d) outside %dx%d bitmap", lens.ErrOutOfRange, x, y, b.width, b.height)
	}
	b.set(x, y, c)
	return nil
}

// SetLinear stores a linear-light color at (x, y), encoding RGB to sRGB.
// Components outside [0, 1] are clamped.
func (b *Bitmap) SetLinear(x, y int, c LinearColor) error {
	return b.SetNRGBA(x, y, color.NRGBA{
		R: icolor.LinearToSRGB(c.R),
		G: icolor.LinearToSRGB(c.G),
		B: icolor.LinearToSRGB(c.B),
		A: alpha8(c.A),
	})
}

// NRGBAAt returns the color stored at (x, y).
func (b *Bitmap) NRGBAAt(x, y int) (color.NRGBA, error) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.NRGBA{}, fmt.Errorf("%w: pixbuf: pixel (%d, %d) outside %dx%d bitmap", lens.ErrOutOfRange, x, y, b.width, b.height)
	}
	off := b.offset(x, y)
	return decodePixel(b.format, b.pix[off:]), nil
}

func (b *Bitmap) set(x, y int, c color.NRGBA) {
	encodePixel(b.format, b.pix[b.offset(x, y):], c)
}

func (b *Bitmap) offset(x, y int) int {
	return rowOffset(y, b.height, b.stride) + x*b.format.BytesPerPixel()
}

// bitmapLock is the Lock handed out by Bitmap.
type bitmapLock struct {
	bm       *Bitmap
	released bool
}

func (l *bitmapLock) Pixels() []byte { return l.bm.pix }

func (l *bitmapLock) Stride() int { return l.bm.stride }

func (l *bitmapLock) Unlock() error {
	if l.released {
		return ErrNotLocked
	}
	l.released = true
	l.bm.locked = false
	return nil
}

// checkGeometry validates dimensions and format of a native image.
func checkGeometry(width, height int, format Format) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: pixbuf: invalid dimensions %dx%d", lens.ErrInvalidArgument, width, height)
	}
	if !format.IsValid() {
		return fmt.Errorf("%w: pixbuf: invalid format %v", lens.ErrInvalidArgument, format)
	}
	return nil
}

// checkLayout validates that memory of size n with the given stride holds
// a width x height image of format.
func checkLayout(width, height int, format Format, stride, n int) error {
	rowBytes := format.RowBytes(width)
	if abs(stride) < rowBytes {
		return fmt.Errorf("%w: pixbuf: stride %d too small for %d pixels of %v", lens.ErrInvalidArgument, stride, width, format)
	}
	if need := minBytes(height, rowBytes, stride); n < need {
		return fmt.Errorf("%w: pixbuf: pixel memory %d bytes, need %d", lens.ErrInvalidArgument, n, need)
	}
	return nil
}

// alpha8 scales a [0, 1] alpha to a byte with rounding.
func alpha8(a float32) uint8 {
	switch {
	case !(a > 0):
		return 0
	case a >= 1:
		return 255
	}
	return uint8(a*255 + 0.5)
}

func alignUp(n, align int) int {
	return (n + align - 1) / align * align
}
