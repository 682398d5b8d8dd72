package decode

// DefaultMaxDepth bounds block recursion so that hostile input fails
// with ErrMaxDepth instead of exhausting the call stack.
const DefaultMaxDepth = 512

type decodeOpts struct {
	strict   bool
	maxDepth int
}

type Option func(*decodeOpts)

// Strict makes unrecognized lines and declared-length mismatches
// errors instead of being skipped or ignored.
func Strict() Option {
	return func(o *decodeOpts) { o.strict = true }
}

// MaxDepth overrides the recursion guard. Non-positive values keep
// the default.
func MaxDepth(n int) Option {
	return func(o *decodeOpts) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}
