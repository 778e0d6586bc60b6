package kernel

// maxFactorial bounds the precomputed factorial table.
const maxFactorial = 50

var factorials = func() [maxFactorial]float64 {
	var tbl [maxFactorial]float64
	tbl[0] = 1
	for i := 1; i < maxFactorial; i++ {
		tbl[i] = tbl[i-1] * float64(i)
	}
	return tbl
}()

// fact returns i! as a float64, from the table for i < 50 and by
// multiplication beyond it.
func fact(i int) float64 {
	if i < maxFactorial {
		return factorials[i]
	}
	result := 1.0
	for ; i > 1; i-- {
		result *= float64(i)
	}
	return result
}
