// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/gogpu/lens"
)

func TestNewBitmapAlignment(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		format     Format
		wantStride int
	}{
		{"BGRA always aligned", 3, FormatBGRA8, 12},
		{"BGR width 4", 4, FormatBGR8, 12},
		{"BGR width 5", 5, FormatBGR8, 16},
		{"BGR width 1", 1, FormatBGR8, 4},
		{"Gray8 width 3", 3, FormatGray8, 4},
		{"RGB565 width 3", 3, FormatRGB565, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm, err := NewBitmap(tt.width, 2, tt.format)
			if err != nil {
				t.Fatal(err)
			}
			if bm.Stride() != tt.wantStride {
				t.Errorf("Stride() = %d, want %d", bm.Stride(), tt.wantStride)
			}
		})
	}
}

func TestNewBitmapErrors(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		format        Format
	}{
		{"zero width", 0, 1, FormatBGRA8},
		{"negative height", 1, -1, FormatBGRA8},
		{"unknown format", 1, 1, FormatUnknown},
		{"out of range format", 1, 1, Format(200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBitmap(tt.width, tt.height, tt.format); !errors.Is(err, lens.ErrInvalidArgument) {
				t.Errorf("NewBitmap() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestNewBitmapFromRawErrors(t *testing.T) {
	tests := []struct {
		name   string
		pix    []byte
		stride int
	}{
		{"stride too small", make([]byte, 64), 8},
		{"negative stride too small", make([]byte, 64), -8},
		{"data too small", make([]byte, 27), 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewBitmapFromRaw(tt.pix, 3, 2, FormatBGRA8, tt.stride); !errors.Is(err, lens.ErrInvalidArgument) {
				t.Errorf("NewBitmapFromRaw() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestBitmapLock(t *testing.T) {
	bm, _ := NewBitmap(2, 2, FormatBGRA8)

	l, err := bm.Lock()
	if err != nil {
		t.Fatal(err)
	}
	if !bm.Locked() {
		t.Error("Locked() = false while locked")
	}
	if _, err := bm.Lock(); !errors.Is(err, ErrLocked) {
		t.Errorf("second Lock() error = %v, want ErrLocked", err)
	}
	if len(l.Pixels()) != 16 || l.Stride() != 8 {
		t.Errorf("lock pixels=%d stride=%d", len(l.Pixels()), l.Stride())
	}
	if err := l.Unlock(); err != nil {
		t.Fatal(err)
	}
	if err := l.Unlock(); !errors.Is(err, ErrNotLocked) {
		t.Errorf("second Unlock() error = %v, want ErrNotLocked", err)
	}
	if bm.Locked() {
		t.Error("Locked() = true after Unlock")
	}
}

func TestBitmapPixelRoundTrip(t *testing.T) {
	tests := []struct {
		format Format
		in     color.NRGBA
		want   color.NRGBA
	}{
		{FormatBGRA8, color.NRGBA{1, 2, 3, 4}, color.NRGBA{1, 2, 3, 4}},
		{FormatRGBA8, color.NRGBA{1, 2, 3, 4}, color.NRGBA{1, 2, 3, 4}},
		{FormatBGR8, color.NRGBA{1, 2, 3, 4}, color.NRGBA{1, 2, 3, 255}},
		{FormatRGB8, color.NRGBA{1, 2, 3, 4}, color.NRGBA{1, 2, 3, 255}},
		{FormatBGRAPremul, color.NRGBA{200, 100, 50, 255}, color.NRGBA{200, 100, 50, 255}},
		{FormatBGRAPremul, color.NRGBA{200, 100, 50, 0}, color.NRGBA{0, 0, 0, 0}},
		{FormatGray8, color.NRGBA{255, 255, 255, 10}, color.NRGBA{255, 255, 255, 255}},
		{FormatRGB565, color.NRGBA{255, 0, 255, 255}, color.NRGBA{255, 0, 255, 255}},
		{FormatRGB565, color.NRGBA{0, 255, 0, 255}, color.NRGBA{0, 255, 0, 255}},
	}
	for _, tt := range tests {
		bm, err := NewBitmap(3, 3, tt.format)
		if err != nil {
			t.Fatal(err)
		}
		if err := bm.SetNRGBA(2, 1, tt.in); err != nil {
			t.Fatal(err)
		}
		got, err := bm.NRGBAAt(2, 1)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("%v: round trip %v = %v, want %v", tt.format, tt.in, got, tt.want)
		}
	}
}

func TestBitmapSetLinear(t *testing.T) {
	tests := []struct {
		name string
		in   LinearColor
		want color.NRGBA
	}{
		{"mid gray", LinearColor{R: 1, G: 0, B: 0.2159, A: 0.5}, color.NRGBA{255, 0, 128, 128}},
		{"clamped", LinearColor{R: 2, G: -1, B: float32(math.NaN()), A: 7}, color.NRGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm, err := NewBitmap(2, 2, FormatBGRA8)
			if err != nil {
				t.Fatal(err)
			}
			if err := bm.SetLinear(1, 1, tt.in); err != nil {
				t.Fatal(err)
			}
			got, err := bm.NRGBAAt(1, 1)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("SetLinear(%v) stored %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBitmapSetLinearReadsBackLinear(t *testing.T) {
	bm, err := NewBitmap(1, 1, FormatBGRA8)
	if err != nil {
		t.Fatal(err)
	}
	in := LinearColor{R: 0.5, G: 0.25, B: 0.75, A: 1}
	if err := bm.SetLinear(0, 0, in); err != nil {
		t.Fatal(err)
	}

	b := mustNew(t, bm)
	got, err := b.RegionLinear(0, 0, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	const tol = 0.01
	if math.Abs(float64(got[0].R-in.R)) > tol || math.Abs(float64(got[0].G-in.G)) > tol ||
		math.Abs(float64(got[0].B-in.B)) > tol || got[0].A != 1 {
		t.Errorf("RegionLinear() = %v, want ~%v", got[0], in)
	}
	if err := bm.SetLinear(1, 0, in); !errors.Is(err, lens.ErrOutOfRange) {
		t.Errorf("SetLinear() error = %v, want ErrOutOfRange", err)
	}
}

func TestBitmapBounds(t *testing.T) {
	bm, _ := NewBitmap(2, 2, FormatBGR8)
	if err := bm.SetNRGBA(2, 0, color.NRGBA{}); !errors.Is(err, lens.ErrOutOfRange) {
		t.Errorf("SetNRGBA() error = %v, want ErrOutOfRange", err)
	}
	if _, err := bm.NRGBAAt(0, -1); !errors.Is(err, lens.ErrOutOfRange) {
		t.Errorf("NRGBAAt() error = %v, want ErrOutOfRange", err)
	}
}

func TestBitmapFromImage(t *testing.T) {
	opaque := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := range 2 {
		for x := range 3 {
			opaque.Set(x, y, color.RGBA{R: uint8(x * 50), G: uint8(y * 50), B: 7, A: 255})
		}
	}
	translucent := image.NewNRGBA(image.Rect(10, 10, 12, 11))
	translucent.SetNRGBA(10, 10, color.NRGBA{R: 9, G: 8, B: 7, A: 6})
	translucent.SetNRGBA(11, 10, color.NRGBA{R: 1, G: 2, B: 3, A: 255})

	tests := []struct {
		name   string
		img    image.Image
		format Format
		check  map[image.Point]color.NRGBA
	}{
		{"opaque", opaque, FormatBGR8, map[image.Point]color.NRGBA{
			{0, 0}: {0, 0, 7, 255},
			{2, 1}: {100, 50, 7, 255},
		}},
		{"translucent offset bounds", translucent, FormatBGRA8, map[image.Point]color.NRGBA{
			{0, 0}: {9, 8, 7, 6},
			{1, 0}: {1, 2, 3, 255},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bm, err := BitmapFromImage(tt.img)
			if err != nil {
				t.Fatal(err)
			}
			if bm.Format() != tt.format {
				t.Errorf("Format() = %v, want %v", bm.Format(), tt.format)
			}
			for p, want := range tt.check {
				if got, _ := bm.NRGBAAt(p.X, p.Y); got != want {
					t.Errorf("NRGBAAt(%v) = %v, want %v", p, got, want)
				}
			}
		})
	}
}

func TestBitmapFromImageEmpty(t *testing.T) {
	if _, err := BitmapFromImage(image.NewRGBA(image.Rectangle{})); !errors.Is(err, lens.ErrInvalidArgument) {
		t.Errorf("BitmapFromImage(empty) error = %v, want ErrInvalidArgument", err)
	}
}
