// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/lens"
	icolor "github.com/gogpu/lens/internal/color"
)

// State is the lifecycle state of a Buffer.
type State uint8

const (
	// StateLocked means the buffer holds the native lock and pixels are
	// readable.
	StateLocked State = iota

	// StateReleased means Release has given the native lock back.
	StateReleased

	// StateUnsupported means the native format cannot be read. The native
	// lock was released during construction.
	StateUnsupported
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateLocked:
		return "Locked"
	case StateReleased:
		return "Released"
	case StateUnsupported:
		return "Unsupported"
	default:
		return "Unknown"
	}
}

// LinearColor is a color with linear-light RGB and straight alpha, all
// components in [0, 1].
type LinearColor struct {
	R, G, B, A float32
}

// Buffer gives bounded access to the pixels of a locked Native image.
//
// A Buffer is not safe for concurrent use.
type Buffer struct {
	width   int
	height  int
	format  Format
	padding int
	stride  int
	pix     []byte
	lock    Lock
	state   State
}

// New locks img and wraps its pixel memory.
//
// If the native format is not supported, the lock is released immediately
// and a buffer in StateUnsupported is returned with a nil error. Every
// other failure releases the lock before returning.
func New(img Native) (*Buffer, error) {
	if isNil(img) {
		return nil, fmt.Errorf("%w: pixbuf: nil native image", lens.ErrInvalidArgument)
	}

	lock, err := img.Lock()
	if err != nil {
		return nil, fmt.Errorf("%w: pixbuf: lock native image: %w", lens.ErrInvalidState, err)
	}
	if lock == nil {
		return nil, fmt.Errorf("%w: pixbuf: native image returned nil lock", lens.ErrInvalidState)
	}

	width, height, format := img.Width(), img.Height(), img.Format()
	log := lens.Logger()

	if !format.IsSupported() {
		if err := lock.Unlock(); err != nil {
			return nil, fmt.Errorf("%w: pixbuf: unlock unsupported image: %w", lens.ErrInvalidState, err)
		}
		log.Warn("pixbuf: unsupported pixel format", "format", format, "width", width, "height", height)
		return &Buffer{
			width:  width,
			height: height,
			format: format,
			state:  StateUnsupported,
		}, nil
	}

	stride, pix := lock.Stride(), lock.Pixels()
	err = checkGeometry(width, height, format)
	if err == nil {
		err = checkLayout(width, height, format, stride, len(pix))
	}
	if err != nil {
		if uerr := lock.Unlock(); uerr != nil {
			err = errors.Join(err, uerr)
		}
		return nil, err
	}

	b := &Buffer{
		width:   width,
		height:  height,
		format:  format,
		padding: max(0, abs(stride)/format.BytesPerPixel()-width),
		stride:  stride,
		pix:     pix,
		lock:    lock,
		state:   StateLocked,
	}
	log.Debug("pixbuf: locked native image",
		"format", format, "width", width, "height", height,
		"stride", stride, "padding", b.padding)
	return b, nil
}

// Width returns the image width in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the image height in pixels.
func (b *Buffer) Height() int { return b.height }

// Format returns the native pixel format.
func (b *Buffer) Format() Format { return b.format }

// PaddingWidth returns the number of extra addressable pixel columns per
// row beyond Width. It is 0 for unsupported buffers.
func (b *Buffer) PaddingWidth() int { return b.padding }

// State returns the lifecycle state.
func (b *Buffer) State() State { return b.state }

// PixelIndex returns the linear index of (tx, ty) in the padded pixel grid:
// ty*(Width()+PaddingWidth()) + tx.
func (b *Buffer) PixelIndex(tx, ty int) (int, error) {
	if err := b.checkReadable(); err != nil {
		return 0, err
	}
	if err := b.checkPoint(tx, ty); err != nil {
		return 0, err
	}
	return ty*b.pitch() + tx, nil
}

// PixelPosition is the inverse of PixelIndex. Indices that fall into a
// padding column are in range and report that column.
func (b *Buffer) PixelPosition(index int) (tx, ty int, err error) {
	if err := b.checkReadable(); err != nil {
		return 0, 0, err
	}
	pitch := b.pitch()
	if index < 0 || index >= b.height*pitch {
		return 0, 0, fmt.Errorf("%w: pixbuf: index %d outside [0, %d)", lens.ErrOutOfRange, index, b.height*pitch)
	}
	return index % pitch, index / pitch, nil
}

// At returns the color of pixel (tx, ty).
func (b *Buffer) At(tx, ty int) (color.NRGBA, error) {
	if err := b.checkReadable(); err != nil {
		return color.NRGBA{}, err
	}
	if err := b.checkPoint(tx, ty); err != nil {
		return color.NRGBA{}, err
	}
	return decodePixel(b.format, b.pix[b.offset(tx, ty):]), nil
}

// Region returns the w*h pixels of the rectangle at (tx, ty) in row-major
// order, converted from the native channel order to RGBA.
// BGR8 pixels are reported fully opaque.
func (b *Buffer) Region(tx, ty, w, h int) ([]color.NRGBA, error) {
	if err := b.checkReadable(); err != nil {
		return nil, err
	}
	if err := b.checkRect(tx, ty, w, h); err != nil {
		return nil, err
	}

	out := make([]color.NRGBA, 0, w*h)
	bpp := b.format.BytesPerPixel()
	for y := ty; y < ty+h; y++ {
		row := b.pix[b.offset(tx, y):]
		for x := range w {
			out = append(out, decodePixel(b.format, row[x*bpp:]))
		}
	}
	return out, nil
}

// RegionLinear is like Region but converts RGB from sRGB to linear light.
func (b *Buffer) RegionLinear(tx, ty, w, h int) ([]LinearColor, error) {
	samples, err := b.Region(tx, ty, w, h)
	if err != nil {
		return nil, err
	}
	out := make([]LinearColor, len(samples))
	for i, c := range samples {
		out[i] = LinearColor{
			R: icolor.SRGBToLinear(c.R),
			G: icolor.SRGBToLinear(c.G),
			B: icolor.SRGBToLinear(c.B),
			A: float32(c.A) / 255,
		}
	}
	return out, nil
}

// Image copies the whole buffer into a new *image.NRGBA.
func (b *Buffer) Image() (*image.NRGBA, error) {
	samples, err := b.Region(0, 0, b.width, b.height)
	if err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for i, c := range samples {
		img.SetNRGBA(i%b.width, i/b.width, c)
	}
	return img, nil
}

// Release gives the native lock back. It is safe to call more than once;
// only the first call on a locked buffer unlocks.
//
// After Release every pixel operation fails with lens.ErrInvalidState.
func (b *Buffer) Release() error {
	if b.state != StateLocked {
		return nil
	}
	lock := b.lock
	b.state = StateReleased
	b.lock = nil
	b.pix = nil

	if err := lock.Unlock(); err != nil {
		return fmt.Errorf("pixbuf: release: %w", err)
	}
	lens.Logger().Debug("pixbuf: released native image", "format", b.format, "width", b.width, "height", b.height)
	return nil
}

// pitch returns the number of addressable pixels per row.
func (b *Buffer) pitch() int {
	return b.width + b.padding
}

// offset returns the byte offset of pixel (tx, ty) using the native stride.
func (b *Buffer) offset(tx, ty int) int {
	return rowOffset(ty, b.height, b.stride) + tx*b.format.BytesPerPixel()
}

func (b *Buffer) checkReadable() error {
	switch b.state {
	case StateLocked:
		return nil
	case StateUnsupported:
		return fmt.Errorf("%w: pixbuf: unsupported format %v", lens.ErrInvalidState, b.format)
	default:
		return fmt.Errorf("%w: pixbuf: buffer released", lens.ErrInvalidState)
	}
}

func (b *Buffer) checkPoint(tx, ty int) error {
	if tx < 0 || tx >= b.width || ty < 0 || ty >= b.height {
		return fmt.Errorf("%w: pixbuf: pixel (%d, %d) outside %dx%d image", lens.ErrOutOfRange, tx, ty, b.width, b.height)
	}
	return nil
}

func (b *Buffer) checkRect(tx, ty, w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: pixbuf: region size %dx%d", lens.ErrInvalidArgument, w, h)
	}
	if tx < 0 || ty < 0 || tx > b.width-w || ty > b.height-h {
		return fmt.Errorf("%w: pixbuf: region (%d, %d, %d, %d) outside %dx%d image",
			lens.ErrOutOfRange, tx, ty, w, h, b.width, b.height)
	}
	return nil
}
