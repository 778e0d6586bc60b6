package solver

import "math"

// Mode selects the calculation direction, which decides how result rows are
// extracted from the storage matrices.
type Mode int

const (
	// ModeForward solves chains root-down; rank r reads entry r(r+1)/2.
	ModeForward Mode = iota
	// ModeReverse solves mirrored chains; rank r reads the complementary
	// entry from the far end of the matrix.
	ModeReverse
)

// Defaults — single source of truth for the zero-value configuration.
const (
	// DefaultTruncLimit disables truncation: every reachable chain is grown.
	DefaultTruncLimit = 0.0

	// DefaultIgnoreLimit disables pruning.
	DefaultIgnoreLimit = 0.0
)

const (
	panicBadTruncLimit  = "solver: WithTruncationLimit: limit must be finite, non-negative"
	panicBadIgnoreLimit = "solver: WithIgnoreLimit: limit must be finite, non-negative"
)

// Options holds the solver configuration. Fields are unexported; public
// APIs consume ...Option.
type Options struct {
	truncLimit  float64
	ignoreLimit float64
	mode        Mode
}

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// DefaultOptions returns the documented defaults: no truncation, no
// pruning, forward mode.
func DefaultOptions() Options {
	return Options{
		truncLimit:  DefaultTruncLimit,
		ignoreLimit: DefaultIgnoreLimit,
		mode:        ModeForward,
	}
}

// WithTruncationLimit sets the relative-contribution threshold below which
// a chain is solved but not grown further. Panics on NaN, ±Inf or negative
// values.
func WithTruncationLimit(limit float64) Option {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit < 0 {
		panic(panicBadTruncLimit)
	}
	return func(o *Options) {
		o.truncLimit = limit
	}
}

// WithIgnoreLimit sets the relative-contribution threshold below which a
// sub-tree is pruned entirely. Must not exceed the truncation limit
// (checked in New). Panics on NaN, ±Inf or negative values.
func WithIgnoreLimit(limit float64) Option {
	if math.IsNaN(limit) || math.IsInf(limit, 0) || limit < 0 {
		panic(panicBadIgnoreLimit)
	}
	return func(o *Options) {
		o.ignoreLimit = limit
	}
}

// WithMode selects the calculation direction.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.mode = m
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
