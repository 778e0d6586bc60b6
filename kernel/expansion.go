package kernel

import (
	"math"

	"github.com/katalvlaran/alara/trimat"
)

const (
	// maxExpTol bounds the relative size of the last accepted expansion term.
	maxExpTol = 1e-15

	// maxExpTerms caps the expansion; past this the inversion method is used.
	maxExpTerms = 15
)

// SmallExpansion is the a-priori convergence test: it bounds the remainder
// of the truncated Taylor expansion after maxExpTerms terms using the largest
// pole in the segment, and reports whether the expansion is worth attempting.
func SmallExpansion(row, col int, d []float64, t float64) bool {
	n := maxExpTerms
	rank := row - col + 1

	var max float64
	for poleNum := col; poleNum <= row; poleNum++ {
		if d[poleNum] > max {
			max = d[poleNum]
		}
	}

	bound := float64(rank) * math.Pow(max*t, float64(n)) * fact(rank-1) /
		(float64(n) * fact(n+rank-1))
	return !(bound > maxExpTol)
}

// LaplaceExpansion evaluates T[row,col] by the truncated Taylor expansion,
// excluding the production prefactor:
//
//	Σ_{n≥0} (−1)^n · t^(n+sz)/(n+sz)! · rowSum_sz(D^n),  sz = row−col,
//
// where D is the lower-triangular matrix whose (i,j) entry is d[col+j].
// Terms are accumulated until the next one falls below maxExpTol of the
// running result. The second return is false when maxExpTerms terms were
// insufficient or the partial sum is no longer finite (NaN or ±Inf);
// monstrous decay rates (Be-8) can push the correction to infinity.
func LaplaceExpansion(row, col int, d []float64, t float64) (float64, bool) {
	sz := row - col

	poleMat := trimat.FromColumnRates(d, sz+1, col)
	powPoleMat := trimat.Identity(sz + 1)

	// zeroth term is simply the correct power of t/n!
	result := math.Pow(t, float64(sz)) / fact(sz)

	termNum := 1
	for ; termNum < maxExpTerms; termNum++ {
		if err := powPoleMat.MulInPlace(poleMat); err != nil {
			return result, false
		}

		// power of t/n! times coefficient, with alternating sign
		correction := powPoleMat.RowSum(sz) * float64(1-2*(termNum%2)) *
			math.Pow(t, float64(termNum+sz)) / fact(termNum+sz)

		if math.Abs(correction/result) > maxExpTol {
			result += correction
		} else {
			break
		}
	}

	if termNum == maxExpTerms || math.IsNaN(result) || math.IsInf(result, 0) {
		return result, false
	}
	return result, true
}
