package sarf

import "errors"

// Error kinds. Operations wrap these with the offending value; test with errors.Is.
var (
	// ErrInvalidArgument flags an empty key, a missing scheme or a malformed pattern.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidRoot flags a root which is not exactly three letters long.
	ErrInvalidRoot = errors.New("root must be trilateral (3 letters)")
	// ErrUnknownRoot flags a root not present in the index.
	ErrUnknownRoot = errors.New("unknown root")
	// ErrUnknownScheme flags a scheme name not present in the table.
	ErrUnknownScheme = errors.New("unknown scheme")
)
