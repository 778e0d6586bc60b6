// Package trimat implements the dense lower-triangular matrix underlying all
// transfer-matrix arithmetic in the activation engine.
//
// What:
//
//   - Tri: an n×n lower-triangular matrix of float64, stored compactly as
//     n(n+1)/2 entries in row-major order; element (i,j), j ≤ i, lives at
//     linear index i(i+1)/2 + j. Freshly constructed matrices are identity.
//   - Multiplication, in-place multiplication, squaring, exponentiation by
//     squaring, row sums, and assignment — every operation preserves the
//     triangular shape.
//
// Why:
//
//	Transfer matrices along a transmutation chain are lower-triangular by
//	construction (rank j feeds only ranks ≥ j). The compact layout halves
//	memory against a square dense matrix and keeps products O(n³/6).
//
// Numeric policy:
//
//	trimat reports no numerical failures. Overflow and NaN propagate to the
//	caller; the math kernel detects them as non-finite results and falls back
//	to a sturdier method.
//
// Errors:
//
//	ErrOutOfRange     - row/column index outside the triangle
//	ErrShapeMismatch  - operands of different sizes
//	ErrNegativePower  - Pow called with a negative exponent
//
// Complexity:
//
//	At/Set O(1) · Mul/Square O(n³) · Pow O(n³·log p) · RowSum O(n)
package trimat
