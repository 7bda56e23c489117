// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package pixbuf

import (
	"errors"
	"reflect"
)

// Errors reported by native images.
var (
	// ErrLocked is returned by Lock when the pixel memory is already locked.
	ErrLocked = errors.New("pixbuf: native image already locked")

	// ErrNotLocked is returned by Unlock on a lock that was already released.
	ErrNotLocked = errors.New("pixbuf: native image not locked")
)

// Native is a decoded image that owns its pixel memory.
//
// Implementations typically wrap memory the Go runtime does not manage,
// such as a platform bitmap or a mapped GPU readback buffer.
type Native interface {
	// Width returns the image width in pixels.
	Width() int

	// Height returns the image height in pixels.
	Height() int

	// Format returns the pixel storage format.
	Format() Format

	// Lock grants exclusive access to the pixel memory until Unlock.
	Lock() (Lock, error)
}

// Lock is held access to a Native image's pixel memory.
type Lock interface {
	// Pixels returns the locked memory. It remains valid until Unlock.
	Pixels() []byte

	// Stride returns the signed number of bytes per row, padding included.
	// A negative stride means rows are stored bottom-up: the top row is the
	// last one in Pixels.
	Stride() int

	// Unlock releases the lock. Calling it twice returns ErrNotLocked.
	Unlock() error
}

// isNil reports whether img is nil or an interface holding a nil pointer
// (or other nil-able value).
func isNil(img Native) bool {
	if img == nil {
		return true
	}
	v := reflect.ValueOf(img)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// rowOffset returns the byte offset of row y in memory with the given
// signed stride.
func rowOffset(y, height, stride int) int {
	if stride < 0 {
		return (height - 1 - y) * -stride
	}
	return y * stride
}

// minBytes returns the smallest memory size holding height rows of
// rowBytes bytes each at the given stride.
func minBytes(height, rowBytes, stride int) int {
	if height <= 0 {
		return 0
	}
	return (height-1)*abs(stride) + rowBytes
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
