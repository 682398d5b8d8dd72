package encode

import "errors"

var (
	// ErrInvalidOption reports a bad encoder configuration; it is
	// returned before any encoding work begins.
	ErrInvalidOption = errors.New("invalid encode option")
	// ErrCircularRef reports a container reachable from itself.
	ErrCircularRef = errors.New("circular reference")
	// ErrEncoding reports a node that cannot be rendered.
	ErrEncoding = errors.New("encoding error")
)
