package trimat

// mulInto writes A·B into dst, where all three share size n and dst aliases
// neither operand. C[i,j] = Σ_{k=j..i} A[i,k]·B[k,j].
func mulInto(dst, a, b []float64, n int) {
	row, col, idxA := 0, 0, 0
	for idx := 0; idx < n*(n+1)/2; idx++ {
		if col > row {
			row++
			col = 0
			idxA = idx
		}
		var sum float64
		for k := col; k <= row; k++ {
			sum += a[idxA+k] * b[k*(k+1)/2+col]
		}
		dst[idx] = sum
		col++
	}
}

// Mul returns t·m as a fresh matrix. An empty operand is neutral: the other
// operand is returned unchanged (not copied), mirroring identity behavior
// for the schedule composition loops.
// Complexity: O(n³).
func (t *Tri) Mul(m *Tri) (*Tri, error) {
	if t.n == 0 {
		return m, nil
	}
	if m.n == 0 {
		return t, nil
	}
	if t.n != m.n {
		return nil, ErrShapeMismatch
	}
	out := &Tri{n: t.n, data: make([]float64, len(t.data))}
	mulInto(out.data, t.data, m.data, t.n)
	return out, nil
}

// MulInPlace computes t = t·m. Multiplying t by itself delegates to Square;
// an empty receiver assigns m; an empty argument leaves t unchanged.
// Complexity: O(n³), one scratch buffer.
func (t *Tri) MulInPlace(m *Tri) error {
	switch {
	case t == m:
		t.Square()
	case t.n == 0:
		t.Assign(m)
	case m.n == 0:
		// neutral argument
	case t.n != m.n:
		return ErrShapeMismatch
	default:
		scratch := make([]float64, len(t.data))
		mulInto(scratch, t.data, m.data, t.n)
		t.data = scratch
	}
	return nil
}

// Square computes t = t·t in place.
// Complexity: O(n³), one scratch buffer.
func (t *Tri) Square() {
	if t.n == 0 {
		return
	}
	scratch := make([]float64, len(t.data))
	mulInto(scratch, t.data, t.data, t.n)
	t.data = scratch
}

// Pow returns t^p by repeated squaring; t^0 is the identity and the empty
// matrix is its own power. Negative exponents return ErrNegativePower.
// Complexity: O(n³·log p).
func (t *Tri) Pow(p int) (*Tri, error) {
	if p < 0 {
		return nil, ErrNegativePower
	}
	if t.n == 0 {
		return t, nil
	}
	answer := Identity(t.n)
	acc := t.Clone()
	for p != 0 {
		if p%2 == 1 {
			if err := answer.MulInPlace(acc); err != nil {
				return nil, err
			}
		}
		if p > 1 {
			acc.Square()
		}
		p /= 2
	}
	return answer, nil
}
