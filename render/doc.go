// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package render connects render targets to cameras and pixel buffers.
//
// A [Target] is a rendering destination with CPU-visible pixel memory.
// It supplies the size a camera projects into and, after a frame has been
// drawn, can be read back through the pixbuf package:
//
//	target := render.NewFramebufferTarget(1280, 720, 0)
//	mvp := cam.ViewProjection(render.ViewportOf(target))
//
//	// ... draw ...
//
//	buf, err := pixbuf.New(render.NativeImage(target))
//	if err != nil {
//	    return err
//	}
//	defer buf.Release()
//
// # Target Implementations
//
//   - PixmapTarget: *image.RGBA memory (RGBA8, not readable by pixbuf)
//   - FramebufferTarget: BGRA8 memory with an aligned row stride, the layout
//     of window surfaces and device-independent bitmaps
package render
