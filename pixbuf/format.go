// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

// Format is the pixel storage tag reported by a native image.
type Format uint8

const (
	// FormatUnknown is a format the native image could not describe.
	FormatUnknown Format = iota

	// FormatGray8 is 8-bit grayscale (1 byte per pixel).
	FormatGray8

	// FormatRGB565 is 16-bit packed RGB, little endian (2 bytes per pixel).
	FormatRGB565

	// FormatBGR8 is 24-bit color stored B, G, R (3 bytes per pixel).
	FormatBGR8

	// FormatRGB8 is 24-bit color stored R, G, B (3 bytes per pixel).
	FormatRGB8

	// FormatBGRA8 is 32-bit color stored B, G, R, A with straight alpha
	// (4 bytes per pixel).
	FormatBGRA8

	// FormatBGRAPremul is 32-bit BGRA with premultiplied alpha.
	FormatBGRAPremul

	// FormatRGBA8 is 32-bit color stored R, G, B, A with straight alpha.
	FormatRGBA8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// formatInfo contains per-format layout metadata.
type formatInfo struct {
	name          string
	bytesPerPixel int
	supported     bool
}

var formatInfoTable = [formatCount]formatInfo{
	FormatUnknown:    {name: "Unknown"},
	FormatGray8:      {name: "Gray8", bytesPerPixel: 1},
	FormatRGB565:     {name: "RGB565", bytesPerPixel: 2},
	FormatBGR8:       {name: "BGR8", bytesPerPixel: 3, supported: true},
	FormatRGB8:       {name: "RGB8", bytesPerPixel: 3},
	FormatBGRA8:      {name: "BGRA8", bytesPerPixel: 4, supported: true},
	FormatBGRAPremul: {name: "BGRAPremul", bytesPerPixel: 4},
	FormatRGBA8:      {name: "RGBA8", bytesPerPixel: 4},
}

func (f Format) info() formatInfo {
	if f >= formatCount {
		return formatInfo{name: "Unknown"}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel, or 0 if unknown.
func (f Format) BytesPerPixel() int {
	return f.info().bytesPerPixel
}

// IsSupported returns true if a Buffer can read pixels of this format.
func (f Format) IsSupported() bool {
	return f.info().supported
}

// IsValid returns true if the format has a known memory layout.
func (f Format) IsValid() bool {
	return f.BytesPerPixel() > 0
}

// RowBytes returns the bytes needed for width tightly packed pixels.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// String returns a string representation of the format.
func (f Format) String() string {
	return f.info().name
}
