package nucdata

import (
	"github.com/katalvlaran/alara/flux"
	"github.com/katalvlaran/alara/nuclide"
)

// Destruction holds the collapsed destruction scalars of one nuclide under
// one flux: transmutation destruction d and decay destruction l.
type Destruction struct {
	D float64 // ⟨σ_dest, φ⟩
	L float64 // decay constant λ
}

// Production holds the collapsed production scalars of one edge under one
// flux: transmutation production P and decay production L (λ_parent · BR).
type Production struct {
	P float64 // ⟨σ_prod, φ⟩
	L float64 // λ_parent · branching ratio
}

// RateCache memoizes collapsed scalar rates. The outer key is the flux
// identity from the flux.Registry; inner keys are the nuclide (destruction)
// or the producing edge (production). Entries live until the end of the run;
// the cache is written by the single solver goroutine only.
type RateCache struct {
	svc  Service
	reg  *flux.Registry
	dest map[int]map[nuclide.KZA]Destruction
	prod map[int]map[edgeKey]Production
}

// NewRateCache creates an empty cache over the given data service and flux
// registry.
func NewRateCache(svc Service, reg *flux.Registry) *RateCache {
	return &RateCache{
		svc:  svc,
		reg:  reg,
		dest: make(map[int]map[nuclide.KZA]Destruction),
		prod: make(map[int]map[edgeKey]Production),
	}
}

// Destruction returns the collapsed destruction scalars of kza under the
// given flux, computing and memoizing on first touch.
func (c *RateCache) Destruction(fluxID int, kza nuclide.KZA) (Destruction, error) {
	inner, ok := c.dest[fluxID]
	if !ok {
		inner = make(map[nuclide.KZA]Destruction)
		c.dest[fluxID] = inner
	}
	if v, ok := inner[kza]; ok {
		return v, nil
	}

	phi, err := c.reg.Vector(fluxID)
	if err != nil {
		return Destruction{}, err
	}
	d, err := flux.Collapse(c.svc.DestructionRate(kza), phi)
	if err != nil {
		return Destruction{}, err
	}
	v := Destruction{D: d, L: c.svc.DecayConstant(kza)}
	inner[kza] = v
	return v, nil
}

// Production returns the collapsed production scalars of the edge
// parent→daughter via path under the given flux, computing and memoizing on
// first touch.
func (c *RateCache) Production(fluxID int, parent, daughter nuclide.KZA, path Path) (Production, error) {
	key := edgeKey{parent, daughter, path}
	inner, ok := c.prod[fluxID]
	if !ok {
		inner = make(map[edgeKey]Production)
		c.prod[fluxID] = inner
	}
	if v, ok := inner[key]; ok {
		return v, nil
	}

	var v Production
	switch path.Kind {
	case Transmutation:
		phi, err := c.reg.Vector(fluxID)
		if err != nil {
			return Production{}, err
		}
		p, err := flux.Collapse(c.svc.ProductionRate(parent, daughter, path), phi)
		if err != nil {
			return Production{}, err
		}
		v.P = p
	case Decay:
		v.L = c.svc.DecayConstant(parent) * c.svc.BranchRatio(parent, daughter)
	}
	inner[key] = v
	return v, nil
}
