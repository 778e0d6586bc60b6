package kernel

import "math"

// smallRelDiff decides when two poles act as a degeneracy. Loops generate
// poles which are exactly equal, but poles with small relative differences
// destabilize the Bateman denominators just the same.
const smallRelDiff = 1e-8

// dGn computes the termNum-th derivative G^(termNum)(pole[idx]) of the
// partial-fraction coefficient Π_{j≠idx}(pole[j]-pole[idx])^(-mult[j]) by
// the power-sum recurrence.
func dGn(idx int, pole []float64, mult []int, numPoles, termNum int) float64 {
	if termNum == 0 {
		// 0th derivative: inverse product over the other poles
		result := 1.0
		for pNum := 0; pNum < numPoles; pNum++ {
			if pNum == idx {
				continue
			}
			result /= math.Pow(pole[pNum]-pole[idx], float64(mult[pNum]))
		}
		return result
	}

	var result float64
	for pwr := termNum; pwr > 0; pwr-- {
		var invPwrSum float64
		for pNum := 0; pNum < numPoles; pNum++ {
			if pNum == idx {
				continue
			}
			invPwrSum += float64(mult[pNum]) * math.Pow(pole[pNum]-pole[idx], float64(-pwr))
		}

		// alternating sign: +1 for even pwr, −1 for odd
		sign := -1.0
		if pwr%2 == 0 {
			sign = 1.0
		}
		result += sign * (fact(termNum-1) / fact(termNum-pwr)) *
			invPwrSum * dGn(idx, pole, mult, numPoles, termNum-pwr)
	}
	return result
}

// LaplaceInverse evaluates T[row,col] by generalized analytic Laplace
// inversion, excluding the production prefactor. Poles within smallRelDiff
// relative distance are merged into one pole with raised multiplicity, so
// degenerate chains (loops) are handled exactly.
//
// The second return is false when the result is negative or non-finite;
// the value returned is then 0. This is the ultimate fallback method.
func LaplaceInverse(row, col int, d []float64, t float64) (float64, bool) {
	numPoles := 0
	mult := make([]int, row-col+1)
	pole := make([]float64, row-col+1)

	// index the poles with their multiplicities
	for idx := col; idx <= row; idx++ {
		checkIdx := 0
		for ; checkIdx < numPoles; checkIdx++ {
			if math.Abs(d[idx]-pole[checkIdx]) < smallRelDiff*d[idx] {
				mult[checkIdx]++
				break
			}
		}
		if checkIdx == numPoles {
			pole[checkIdx] = d[idx]
			mult[checkIdx] = 1
			numPoles++
		}
	}

	var result float64
	for idx := 0; idx < numPoles; idx++ {
		var poleResult float64
		for multCnt := mult[idx]; multCnt > 0; multCnt-- {
			poleResult += dGn(idx, pole, mult, numPoles, mult[idx]-multCnt) *
				math.Pow(t, float64(multCnt-1)) /
				fact(multCnt-1) /
				fact(mult[idx]-multCnt)
		}
		result += poleResult * math.Exp(-pole[idx]*t)
	}

	if result < 0 || math.IsNaN(result) || math.IsInf(result, 0) {
		return 0, false
	}
	return result, true
}
