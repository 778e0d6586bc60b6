package trimat

import "errors"

// Sentinel errors for the trimat package. Algorithms return these sentinels
// and tests check them via errors.Is; wrapping happens only at outer
// boundaries with fmt.Errorf("ctx: %w", ErrX).
var (
	// ErrOutOfRange indicates a row or column index outside the lower triangle.
	ErrOutOfRange = errors.New("trimat: index out of range")

	// ErrShapeMismatch indicates operands of incompatible sizes.
	ErrShapeMismatch = errors.New("trimat: size mismatch")

	// ErrNegativePower indicates a negative exponent passed to Pow.
	ErrNegativePower = errors.New("trimat: negative power")
)
