// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

import "github.com/gogpu/gputypes"

// FormatFromTexture returns the pixbuf format with the same memory layout
// as a GPU texture format, or FormatUnknown.
func FormatFromTexture(tf gputypes.TextureFormat) Format {
	switch tf {
	case gputypes.TextureFormatBGRA8Unorm:
		return FormatBGRA8
	case gputypes.TextureFormatRGBA8Unorm:
		return FormatRGBA8
	case gputypes.TextureFormatR8Unorm:
		return FormatGray8
	default:
		return FormatUnknown
	}
}

// TextureFormat returns the GPU texture format with the same memory
// layout, or gputypes.TextureFormatUndefined if there is none.
func (f Format) TextureFormat() gputypes.TextureFormat {
	switch f {
	case FormatBGRA8:
		return gputypes.TextureFormatBGRA8Unorm
	case FormatRGBA8:
		return gputypes.TextureFormatRGBA8Unorm
	case FormatGray8:
		return gputypes.TextureFormatR8Unorm
	default:
		return gputypes.TextureFormatUndefined
	}
}
