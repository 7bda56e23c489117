// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/lens"
)

func testImage(w, h int, alpha uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: 99, A: alpha})
		}
	}
	return img
}

func encode(t *testing.T, enc func(io.Writer, image.Image) error, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestImportRoundTrip(t *testing.T) {
	tiffEncode := func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) }

	tests := []struct {
		name       string
		data       []byte
		wantFormat Format
		alpha      uint8
	}{
		{"png translucent", encode(t, png.Encode, testImage(5, 3, 128)), FormatBGRA8, 128},
		{"png opaque", encode(t, png.Encode, testImage(5, 3, 255)), FormatBGR8, 255},
		{"bmp opaque", encode(t, bmp.Encode, testImage(5, 3, 255)), FormatBGR8, 255},
		{"tiff translucent", encode(t, tiffEncode, testImage(5, 3, 128)), FormatBGRA8, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Import(bytes.NewReader(tt.data))
			if err != nil {
				t.Fatalf("Import() error = %v", err)
			}
			defer func() { _ = b.Release() }()

			if b.Format() != tt.wantFormat {
				t.Errorf("Format() = %v, want %v", b.Format(), tt.wantFormat)
			}
			if b.Width() != 5 || b.Height() != 3 {
				t.Fatalf("size = %dx%d, want 5x3", b.Width(), b.Height())
			}
			// BGR8 rows of 5 pixels are 15 bytes padded to 16.
			if b.PaddingWidth() != 0 {
				t.Errorf("PaddingWidth() = %d, want 0", b.PaddingWidth())
			}

			samples, err := b.Region(0, 0, 5, 3)
			if err != nil {
				t.Fatal(err)
			}
			for i, got := range samples {
				x, y := i%5, i/5
				want := color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: 99, A: tt.alpha}
				if got != want {
					t.Errorf("sample (%d, %d) = %v, want %v", x, y, got, want)
				}
			}
		})
	}
}

func TestImportCorruptIsFormatErrorOnly(t *testing.T) {
	valid := encode(t, png.Encode, testImage(4, 4, 255))

	tests := []struct {
		name string
		r    io.Reader
	}{
		{"empty", bytes.NewReader(nil)},
		{"garbage", bytes.NewReader([]byte("definitely not an image"))},
		{"truncated png", bytes.NewReader(valid[:len(valid)/2])},
		{"png header only", bytes.NewReader(valid[:8])},
		{"reader error", io.MultiReader(bytes.NewReader(valid[:16]), errReader{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Import(tt.r)
			if b != nil {
				t.Fatal("Import() returned a buffer for a corrupt stream")
			}
			assertOnlyFormatError(t, err)
		})
	}
}

func TestImportDecoderErrorKindsCollapse(t *testing.T) {
	// A decoder failing with another kind still reports a format error.
	d := DecoderFunc(func(io.Reader) (Native, error) {
		return nil, fmt.Errorf("bad header: %w", lens.ErrInvalidArgument)
	})
	_, err := Import(bytes.NewReader([]byte{1}), WithDecoder(d))
	assertOnlyFormatError(t, err)

	var de *DecodeError
	if !errors.As(err, &de) || !errors.Is(de.Err, lens.ErrInvalidArgument) {
		t.Errorf("DecodeError.Err = %v, want decoder error preserved", de)
	}
}

func TestImportDecoderNilImage(t *testing.T) {
	tests := []struct {
		name string
		img  Native
	}{
		{"untyped", nil},
		{"nil bitmap", (*Bitmap)(nil)},
		{"nil mock", (*mockNative)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DecoderFunc(func(io.Reader) (Native, error) { return tt.img, nil })
			_, err := Import(bytes.NewReader([]byte{1}), WithDecoder(d))
			assertOnlyFormatError(t, err)
		})
	}
}

func TestImportNilReader(t *testing.T) {
	if _, err := Import(nil); !errors.Is(err, lens.ErrInvalidArgument) {
		t.Errorf("Import(nil) error = %v, want ErrInvalidArgument", err)
	}
}

func TestImportUnsupportedNative(t *testing.T) {
	m := &mockNative{width: 2, height: 2, format: FormatGray8, stride: 4, pix: make([]byte, 8)}
	d := DecoderFunc(func(io.Reader) (Native, error) { return m, nil })

	b, err := Import(bytes.NewReader([]byte{1}), WithDecoder(d))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if b.State() != StateUnsupported {
		t.Errorf("State() = %v, want Unsupported", b.State())
	}
	if m.locks != 1 || m.unlocks != 1 {
		t.Errorf("locks=%d unlocks=%d, want 1 and 1", m.locks, m.unlocks)
	}
}

func TestWithDecoderNilKeepsDefault(t *testing.T) {
	data := encode(t, png.Encode, testImage(2, 2, 255))
	b, err := Import(bytes.NewReader(data), WithDecoder(nil))
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	_ = b.Release()
}

func assertOnlyFormatError(t *testing.T, err error) {
	t.Helper()
	if !errors.Is(err, lens.ErrFormat) {
		t.Fatalf("error = %v, want ErrFormat", err)
	}
	for _, other := range []error{lens.ErrInvalidArgument, lens.ErrOutOfRange, lens.ErrInvalidState} {
		if errors.Is(err, other) {
			t.Errorf("error %v also matches %v", err, other)
		}
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("read failed") }
