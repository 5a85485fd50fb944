// Package page normalizes skip/limit query inputs into a bounded,
// deterministic slice window.
package page

// Default window bounds. Callers substitute DefaultSkip/DefaultLimit for
// absent query parameters before normalizing.
const (
	// DefaultSkip is used when no skip is supplied.
	DefaultSkip = 0
	// DefaultLimit is used when no limit is supplied.
	DefaultLimit = 10
	// MaxLimit caps a requested limit; larger values are silently reduced.
	MaxLimit = 100
)

// Window is a normalized (skip, limit) pair describing a contiguous
// sub-range of an ordered sequence.
type Window struct {
	Skip  int `json:"skip"`
	Limit int `json:"limit"`
}

// Option applies a configuration option to Normalize.
type Option func(*bounds)

type bounds struct {
	maxLimit int
}

// WithMaxLimit overrides the cap applied to requested limits.
func WithMaxLimit(n int) Option {
	return func(b *bounds) {
		if n > 0 {
			b.maxLimit = n
		}
	}
}

// Normalize clamps raw skip/limit values into a valid window: limit to
// the inclusive range [1, max], with over-large values silently reduced,
// and a negative skip to zero rather than propagating a negative slice
// bound.
func Normalize(skip, limit int, opts ...Option) Window {
	b := &bounds{maxLimit: MaxLimit}
	for _, opt := range opts {
		opt(b)
	}
	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = 1
	}
	if limit > b.maxLimit {
		limit = b.maxLimit
	}
	return Window{Skip: skip, Limit: limit}
}

// Bounds returns the half-open range [lo, hi) the window selects from a
// sequence of length n. A skip at or past the end yields an empty range,
// never an error.
func (w Window) Bounds(n int) (lo, hi int) {
	lo = w.Skip
	if lo > n {
		lo = n
	}
	hi = lo + w.Limit
	if hi > n {
		hi = n
	}
	return lo, hi
}

// Cut applies the window to s and returns the selected sub-slice.
func Cut[T any](s []T, w Window) []T {
	lo, hi := w.Bounds(len(s))
	return s[lo:hi]
}
