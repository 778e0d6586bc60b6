package chain

import (
	"github.com/katalvlaran/alara/flux"
	"github.com/katalvlaran/alara/nucdata"
	"github.com/katalvlaran/alara/nuclide"
)

// initMaxLength is the initial rank capacity; the rate arrays double when a
// chain outgrows it and halve when a long chain shrinks below a quarter.
const initMaxLength = 25

// Limits carries the two truncation tolerances. Ignore must be ≤ Trunc;
// both default to zero, which disables pruning entirely.
type Limits struct {
	// Trunc stops growth below this estimated relative contribution; the
	// rank itself is still solved.
	Trunc float64
	// Ignore prunes a candidate rank entirely below this contribution.
	Ignore float64
}

// rank is the per-rank state of the chain.
type rank struct {
	kza      nuclide.KZA
	path     nucdata.Path // the edge into this rank; keys the production lookup
	destVec  []float64    // σ_dest of this nuclide
	decayIn  float64   // λ_parent · BR along the edge into this rank
	lambda   float64   // λ of this nuclide
	loopRank int       // first earlier rank holding the same nuclide, or −1

	daughters []nucdata.Daughter
	cursor    int // next unvisited daughter

	metric    float64 // estimated relative contribution at this rank
	truncated bool    // solved but not grown further
}

// Chain drives the depth-first construction and numerical solution of the
// chains rooted at one target. Create one per target and discard it before
// the next target.
type Chain struct {
	svc   nucdata.Service
	cache *nucdata.RateCache
	reg   *flux.Registry

	root   nuclide.KZA
	limits Limits

	ranks   []rank
	length  int
	newRank int
	setRank int
	started bool

	refFlux flux.Vector // group-wise conservative flux for truncation

	// packed collapsed scalars, layout [P | d | L | l]; see rates.go
	colRates  []float64
	pack      packed
	maxLength int
}

// New creates a chain for the given target. The registry supplies both the
// problem fluxes and the conservative reference flux for truncation.
func New(svc nucdata.Service, cache *nucdata.RateCache, reg *flux.Registry, root nuclide.KZA, limits Limits) *Chain {
	return &Chain{
		svc:       svc,
		cache:     cache,
		reg:       reg,
		root:      root,
		limits:    limits,
		ranks:     make([]rank, initMaxLength),
		maxLength: initMaxLength,
		refFlux:   reg.Reference(),
	}
}

// Root returns the target nuclide.
func (c *Chain) Root() nuclide.KZA { return c.root }

// Length returns the current chain length (ranks 0..Length−1).
func (c *Chain) Length() int { return c.length }

// NewRank returns the first rank that changed since the previous chain.
func (c *Chain) NewRank() int { return c.newRank }

// SetRank returns the first rank to tally for the current chain.
func (c *Chain) SetRank() int { return c.setRank }

// KZA returns the nuclide at the given rank, or 0 past the chain end —
// the tally loop uses the zero value as its finish condition.
func (c *Chain) KZA(r int) nuclide.KZA {
	if r < 0 || r >= c.length {
		return 0
	}
	return c.ranks[r].kza
}

// LoopRank returns the loop bookkeeping for the given rank.
func (c *Chain) LoopRank(r int) int {
	if r < 0 || r >= c.length {
		return -1
	}
	return c.ranks[r].loopRank
}
