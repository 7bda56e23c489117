package lens

import "errors"

// Error kinds shared by lens and its sub-packages.
// Errors returned by this module wrap one of these; test with [errors.Is].
var (
	// ErrInvalidArgument is returned for values outside an enumerated domain
	// or otherwise malformed input.
	ErrInvalidArgument = errors.New("lens: invalid argument")

	// ErrOutOfRange is returned when a pixel coordinate or index is outside
	// the addressable area.
	ErrOutOfRange = errors.New("lens: out of range")

	// ErrFormat is returned when a byte stream cannot be decoded as an image.
	ErrFormat = errors.New("lens: format error")

	// ErrInvalidState is returned for operations on a released or
	// unsupported resource.
	ErrInvalidState = errors.New("lens: invalid state")
)
