package chain

import "github.com/katalvlaran/alara/flux"

// refCollapse folds a rate vector with the conservative reference flux.
func (c *Chain) refCollapse(rate []float64) (float64, error) {
	return flux.Collapse(rate, c.refFlux)
}

// expandRates doubles the rank capacity.
func (c *Chain) expandRates() {
	c.maxLength *= 2
	grown := make([]rank, c.maxLength)
	copy(grown, c.ranks)
	c.ranks = grown
}

// resizeRates halves the rank capacity when a long chain has shrunk below a
// quarter of it; capacity never drops under the initial value.
func (c *Chain) resizeRates() {
	for c.maxLength > initMaxLength && c.length < c.maxLength/4 {
		c.maxLength /= 2
	}
	if c.maxLength < len(c.ranks) {
		shrunk := make([]rank, c.maxLength)
		copy(shrunk, c.ranks[:c.maxLength])
		c.ranks = shrunk
	}
}

// Packed scalar-rate layout. One flat array holds the four collapsed rates
// for every (rank, flux) pair:
//
//	[ P segments, one per flux, stride `stride`
//	| d segments, one per flux, stride `stride`
//	| L block, `stride`
//	| l block, `stride` ]
//
// stride is the chain's rank capacity (maxLength). P and d are
// flux-dependent; L and l are not.
type packed struct {
	data    []float64
	stride  int
	nFluxes int
}

func (p *packed) prodAt(fluxID, r int) float64 {
	return p.data[fluxID*p.stride+r]
}

func (p *packed) destAt(fluxID, r int) float64 {
	return p.data[(p.nFluxes+fluxID)*p.stride+r]
}

func (p *packed) decayProdAt(r int) float64 {
	return p.data[2*p.nFluxes*p.stride+r]
}

func (p *packed) decayDestAt(r int) float64 {
	return p.data[(2*p.nFluxes+1)*p.stride+r]
}

// CollapseRates folds every rank's rate vectors with every flux of the
// problem through the rate cache and packs the scalars for the fill
// routines. Call once per valid chain, before any matrix work.
func (c *Chain) CollapseRates() error {
	nF := c.reg.Count()
	stride := c.maxLength
	need := (2*nF + 2) * stride
	if cap(c.colRates) < need {
		c.colRates = make([]float64, need)
	}
	c.colRates = c.colRates[:need]
	for i := range c.colRates {
		c.colRates[i] = 0
	}
	c.pack = packed{data: c.colRates, stride: stride, nFluxes: nF}

	for f := 0; f < nF; f++ {
		for r := 0; r < c.length; r++ {
			rk := &c.ranks[r]

			dest, err := c.cache.Destruction(f, rk.kza)
			if err != nil {
				return err
			}
			c.colRates[(nF+f)*stride+r] = dest.D

			if r > 0 {
				prod, err := c.cache.Production(f, c.ranks[r-1].kza, rk.kza, rk.path)
				if err != nil {
					return err
				}
				c.colRates[f*stride+r] = prod.P
			}
		}
	}

	for r := 0; r < c.length; r++ {
		c.colRates[2*nF*stride+r] = c.ranks[r].decayIn
		c.colRates[(2*nF+1)*stride+r] = c.ranks[r].lambda
	}
	return nil
}
