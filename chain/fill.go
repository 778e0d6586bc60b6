package chain

import (
	"math"

	"github.com/katalvlaran/alara/kernel"
	"github.com/katalvlaran/alara/trimat"
)

// scratch assembles the per-rank pole and production arrays for one fill.
// Irradiation combines transmutation and decay: the pole at rank r is
// d[r]+l[r] and the production along the edge into r is P[r]+L[r] (one of
// the two is zero for any given edge).
func (c *Chain) scratch(fluxID int) (prod, dest []float64, loops []int) {
	prod = make([]float64, c.length)
	dest = make([]float64, c.length)
	loops = make([]int, c.length)
	for r := 0; r < c.length; r++ {
		prod[r] = c.pack.prodAt(fluxID, r) + c.pack.decayProdAt(r)
		dest[r] = c.pack.destAt(fluxID, r) + c.pack.decayDestAt(r)
		loops[r] = c.ranks[r].loopRank
	}
	return prod, dest, loops
}

// FillTMat populates the transfer matrix for one constant-flux pulse of
// length t under the given flux. Rows below NewRank carry over from the
// previous chain's shared prefix and are not recomputed; the matrix is
// reshaped (prefix-preserving) to the current chain length first.
func (c *Chain) FillTMat(m *trimat.Tri, t float64, fluxID int) {
	m.Reshape(c.length)
	prod, dest, loops := c.scratch(fluxID)

	for row := c.newRank; row < c.length; row++ {
		m.SetElem(row, row, math.Exp(-dest[row]*t))
		for col := 0; col < row; col++ {
			m.SetElem(row, col, kernel.FillTElement(row, col, prod, dest, t, loops, row))
		}
	}
}

// SetDecay populates a pure-decay transfer matrix for decay time tau.
// Decay chains cannot loop, so the Bateman form applies directly; the
// generalized inversion stays as the fallback for coincidentally equal
// decay constants.
func (c *Chain) SetDecay(m *trimat.Tri, tau float64) {
	m.Reshape(c.length)

	prod := make([]float64, c.length)
	dest := make([]float64, c.length)
	for r := 0; r < c.length; r++ {
		prod[r] = c.pack.decayProdAt(r)
		dest[r] = c.pack.decayDestAt(r)
	}

	for row := c.newRank; row < c.length; row++ {
		m.SetElem(row, row, math.Exp(-dest[row]*tau))
		for col := 0; col < row; col++ {
			pp := 1.0
			for k := col; k < row; k++ {
				pp *= prod[k+1]
			}
			if pp == 0 {
				m.SetElem(row, col, 0)
				continue
			}
			v, ok := kernel.Bateman(row, col, dest, tau)
			if !ok {
				v, _ = kernel.LaplaceInverse(row, col, dest, tau)
			}
			m.SetElem(row, col, v*pp)
		}
	}
}

// Mult computes dst = a·b over the current chain length, recomputing only
// rows ≥ NewRank; rows above carry over from the previous chain. dst must
// not alias a or b.
func (c *Chain) Mult(dst, a, b *trimat.Tri) {
	dst.Reshape(c.length)
	for row := c.newRank; row < c.length; row++ {
		for col := 0; col <= row; col++ {
			var sum float64
			for k := col; k <= row; k++ {
				sum += a.Elem(row, k) * b.Elem(k, col)
			}
			dst.SetElem(row, col, sum)
		}
	}
}
