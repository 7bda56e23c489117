// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

import (
	"errors"
	"fmt"
	"image"
	"io"

	// Codecs registered with the image package for StdDecoder.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/lens"
)

var errNoImage = errors.New("decoder returned no image")

// Decoder turns an encoded byte stream into a native image.
// A nil image, typed or not, with a nil error is reported by Import as a
// decode failure.
type Decoder interface {
	Decode(r io.Reader) (Native, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(r io.Reader) (Native, error)

// Decode calls f(r).
func (f DecoderFunc) Decode(r io.Reader) (Native, error) {
	return f(r)
}

// StdDecoder decodes PNG, JPEG, GIF, BMP, TIFF and WebP streams into a
// Bitmap. See BitmapFromImage for the resulting format.
type StdDecoder struct{}

// Decode implements Decoder.
func (StdDecoder) Decode(r io.Reader) (Native, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	bm, err := BitmapFromImage(img)
	if err != nil {
		return nil, fmt.Errorf("convert %s image: %w", name, err)
	}
	lens.Logger().Debug("pixbuf: decoded image", "codec", name, "format", bm.Format(),
		"width", bm.Width(), "height", bm.Height())
	return bm, nil
}

// DecodeError reports a byte stream that could not be decoded.
// It matches lens.ErrFormat under errors.Is and nothing else; the
// decoder's own error is kept in Err.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "pixbuf: decode: " + e.Err.Error()
}

// Unwrap returns lens.ErrFormat.
func (e *DecodeError) Unwrap() error {
	return lens.ErrFormat
}

// ImportOption configures Import.
type ImportOption func(*importOptions)

type importOptions struct {
	decoder Decoder
}

// WithDecoder replaces StdDecoder.
func WithDecoder(d Decoder) ImportOption {
	return func(o *importOptions) {
		if d != nil {
			o.decoder = d
		}
	}
}

// Import decodes r and wraps the result with New.
//
// Any decoding failure is reported as a *DecodeError, which matches
// lens.ErrFormat. A nil reader is lens.ErrInvalidArgument.
func Import(r io.Reader, opts ...ImportOption) (*Buffer, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: pixbuf: nil reader", lens.ErrInvalidArgument)
	}
	o := importOptions{decoder: StdDecoder{}}
	for _, opt := range opts {
		opt(&o)
	}

	img, err := o.decoder.Decode(r)
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	if isNil(img) {
		return nil, &DecodeError{Err: errNoImage}
	}
	return New(img)
}
