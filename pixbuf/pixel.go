// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

import "image/color"

// decodePixel converts the bytes of one pixel in format f to a straight
// alpha color. px must hold at least f.BytesPerPixel() bytes.
func decodePixel(f Format, px []byte) color.NRGBA {
	switch f {
	case FormatBGRA8:
		return color.NRGBA{R: px[2], G: px[1], B: px[0], A: px[3]}
	case FormatBGR8:
		return color.NRGBA{R: px[2], G: px[1], B: px[0], A: 255}
	case FormatRGBA8:
		return color.NRGBA{R: px[0], G: px[1], B: px[2], A: px[3]}
	case FormatRGB8:
		return color.NRGBA{R: px[0], G: px[1], B: px[2], A: 255}
	case FormatBGRAPremul:
		a := px[3]
		return color.NRGBA{R: unpremul(px[2], a), G: unpremul(px[1], a), B: unpremul(px[0], a), A: a}
	case FormatGray8:
		return color.NRGBA{R: px[0], G: px[0], B: px[0], A: 255}
	case FormatRGB565:
		v := uint16(px[0]) | uint16(px[1])<<8
		r5, g6, b5 := v>>11, (v>>5)&0x3f, v&0x1f
		//nolint:gosec // G115: expanded channels fit in 8 bits
		return color.NRGBA{
			R: uint8(r5<<3 | r5>>2),
			G: uint8(g6<<2 | g6>>4),
			B: uint8(b5<<3 | b5>>2),
			A: 255,
		}
	default:
		return color.NRGBA{}
	}
}

// encodePixel writes c into px using the byte layout of format f.
func encodePixel(f Format, px []byte, c color.NRGBA) {
	switch f {
	case FormatBGRA8:
		px[0], px[1], px[2], px[3] = c.B, c.G, c.R, c.A
	case FormatBGR8:
		px[0], px[1], px[2] = c.B, c.G, c.R
	case FormatRGBA8:
		px[0], px[1], px[2], px[3] = c.R, c.G, c.B, c.A
	case FormatRGB8:
		px[0], px[1], px[2] = c.R, c.G, c.B
	case FormatBGRAPremul:
		px[0], px[1], px[2], px[3] = premul(c.B, c.A), premul(c.G, c.A), premul(c.R, c.A), c.A
	case FormatGray8:
		// Standard luminance: 0.299*R + 0.587*G + 0.114*B
		px[0] = byte((int(c.R)*299 + int(c.G)*587 + int(c.B)*114) / 1000)
	case FormatRGB565:
		v := uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
		px[0], px[1] = byte(v), byte(v>>8)
	}
}

func premul(c, a uint8) uint8 {
	return uint8((uint16(c)*uint16(a) + 127) / 255)
}

func unpremul(c, a uint8) uint8 {
	if a == 0 {
		return 0
	}
	v := (uint16(c)*255 + uint16(a)/2) / uint16(a)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}
