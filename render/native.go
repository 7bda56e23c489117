// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"

	"github.com/gogpu/lens/pixbuf"
)

// NativeImage exposes a target's pixel memory as a pixbuf.Native.
// The image admits one lock at a time.
func NativeImage(t Target) pixbuf.Native {
	return &targetImage{target: t}
}

// Readback wraps the target's pixels in a locked pixbuf.Buffer.
//
// Targets in a readable format are locked in place through NativeImage.
// Other targets that expose an *image.RGBA, such as PixmapTarget, are
// copied into a pixbuf.Bitmap first. Anything else yields an unsupported
// buffer.
func Readback(t Target) (*pixbuf.Buffer, error) {
	src, ok := t.(interface{ Image() *image.RGBA })
	if !ok || pixbuf.FormatFromTexture(t.Format()).IsSupported() {
		return pixbuf.New(NativeImage(t))
	}
	bm, err := pixbuf.BitmapFromImage(src.Image())
	if err != nil {
		return nil, err
	}
	return pixbuf.New(bm)
}

// targetImage adapts a Target to pixbuf.Native.
type targetImage struct {
	target Target
	locked bool
}

func (i *targetImage) Width() int  { return i.target.Width() }
func (i *targetImage) Height() int { return i.target.Height() }

func (i *targetImage) Format() pixbuf.Format {
	return pixbuf.FormatFromTexture(i.target.Format())
}

func (i *targetImage) Lock() (pixbuf.Lock, error) {
	if i.locked {
		return nil, pixbuf.ErrLocked
	}
	i.locked = true
	return &targetLock{img: i}, nil
}

// targetLock is the pixbuf.Lock handed out by targetImage.
type targetLock struct {
	img      *targetImage
	released bool
}

func (l *targetLock) Pixels() []byte { return l.img.target.Pixels() }
func (l *targetLock) Stride() int    { return l.img.target.Stride() }

func (l *targetLock) Unlock() error {
	if l.released {
		return pixbuf.ErrNotLocked
	}
	l.released = true
	l.img.locked = false
	return nil
}
