package kernel

import "math"

// Bateman evaluates the closed-form solution for T[row,col] with all poles
// d[col..row] distinct, excluding the production prefactor (the caller
// multiplies Π P afterwards). The expm1 difference keeps the numerator
// accurate when d·t is small.
//
// The second return is false when round-off drives the sum negative or NaN;
// such results are tiny and the caller should fall back to LaplaceInverse.
func Bateman(row, col int, d []float64, t float64) (float64, bool) {
	var sum float64

	for term := col; term < row; term++ {
		// denominator skips the current Laplace root d[term]
		den := 1.0
		for denTerm := col; denTerm < term; denTerm++ {
			den *= d[denTerm] - d[term]
		}
		for denTerm := term + 1; denTerm <= row; denTerm++ {
			den *= d[denTerm] - d[term]
		}

		inc := math.Expm1(-d[term]*t) - math.Expm1(-d[row]*t)
		sum += inc / den
	}

	if sum < 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, false
	}
	return sum, true
}
