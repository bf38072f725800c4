package bitcodec

import "errors"

// Sentinel errors returned (wrapped with field context) by the checked
// operations of generated types. Match with errors.Is.
var (
	// ErrOverflow indicates a checked setter was given a value that does
	// not fit in the field's declared width.
	ErrOverflow = errors.New("value does not fit in field width")

	// ErrIndexRange indicates a checked bit operation was given an index
	// outside the container.
	ErrIndexRange = errors.New("bit index out of range")

	// ErrNoReadAccess indicates a checked bit read landed inside a field
	// that cannot be read.
	ErrNoReadAccess = errors.New("field has no read access")

	// ErrNoWriteAccess indicates a checked bit write landed inside a field
	// that cannot be written.
	ErrNoWriteAccess = errors.New("field has no write access")
)
