package decode

import "errors"

var (
	// ErrMalformed reports an unrecognized line or a declared-length
	// mismatch in strict mode.
	ErrMalformed = errors.New("malformed input")
	// ErrMaxDepth reports input nested beyond the configured guard.
	ErrMaxDepth = errors.New("max nesting depth exceeded")
)
