// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pixbuf provides bounded pixel access to raw, row-padded image
// memory.
//
// A [Buffer] wraps a [Native] image: an object that owns pixel memory and
// hands out an exclusive [Lock] over it. While the buffer is alive it holds
// that lock; [Buffer.Release] gives it back exactly once.
//
//	buf, err := pixbuf.Import(r)
//	if err != nil {
//	    return err
//	}
//	defer buf.Release()
//
//	samples, err := buf.Region(0, 0, buf.Width(), buf.Height())
//
// # Formats
//
// Buffers read 32-bit BGRA ([FormatBGRA8]) and 24-bit BGR ([FormatBGR8])
// memory. Any other native format produces a buffer in [StateUnsupported]
// whose lock has already been released.
//
// # Addressing
//
// Native rows may be longer than the image is wide. The extra whole pixels
// per row are reported by [Buffer.PaddingWidth], and linear pixel indices
// count them: index = y*(width+padding) + x.
package pixbuf
