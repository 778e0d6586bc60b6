package nucdata

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/alara/flux"
	"github.com/katalvlaran/alara/nuclide"
)

// edgeKey addresses one production edge.
type edgeKey struct {
	parent, daughter nuclide.KZA
	path             Path
}

// yieldKey addresses one fission yield.
type yieldKey struct {
	parent, daughter nuclide.KZA
	ft               nuclide.FissionType
}

// nuclideRec is the per-nuclide record of the adjacency-list store.
type nuclideRec struct {
	destruction []float64
	decayConst  float64
	sfBranch    float64
	daughters   []Daughter
}

// Library is an in-memory Service implementation. Build it with the AddX
// methods, then hand it to the solver; queries never mutate it.
type Library struct {
	ngroups  int
	nuclides map[nuclide.KZA]*nuclideRec
	prod     map[edgeKey][]float64
	branch   map[[2]nuclide.KZA]float64
	yields   map[yieldKey]float64
}

// NewLibrary creates an empty library over the given group structure.
func NewLibrary(ngroups int) *Library {
	return &Library{
		ngroups:  ngroups,
		nuclides: make(map[nuclide.KZA]*nuclideRec),
		prod:     make(map[edgeKey][]float64),
		branch:   make(map[[2]nuclide.KZA]float64),
		yields:   make(map[yieldKey]float64),
	}
}

func (lib *Library) rec(kza nuclide.KZA) *nuclideRec {
	r, ok := lib.nuclides[kza]
	if !ok {
		r = &nuclideRec{}
		lib.nuclides[kza] = r
	}
	return r
}

func (lib *Library) checkGroups(rate []float64) error {
	if rate != nil && len(rate) != lib.ngroups {
		return fmt.Errorf("rate has %d groups, library has %d: %w",
			len(rate), lib.ngroups, flux.ErrGroupMismatch)
	}
	return nil
}

// AddNuclide records a nuclide with its decay constant and total group-wise
// destruction cross-section (nil for no transmutation destruction).
func (lib *Library) AddNuclide(kza nuclide.KZA, decayConst float64, destruction []float64) error {
	if err := lib.checkGroups(destruction); err != nil {
		return err
	}
	r := lib.rec(kza)
	r.decayConst = decayConst
	if destruction != nil {
		r.destruction = append([]float64(nil), destruction...)
	}
	return nil
}

// AddReaction records a transmutation edge parent→daughter with the given
// reaction label and group-wise production cross-section.
func (lib *Library) AddReaction(parent, daughter nuclide.KZA, reaction string, production []float64) error {
	if err := lib.checkGroups(production); err != nil {
		return err
	}
	p := Path{Kind: Transmutation, Reaction: reaction}
	lib.prod[edgeKey{parent, daughter, p}] = append([]float64(nil), production...)
	lib.addDaughter(parent, Daughter{KZA: daughter, Path: p})
	return nil
}

// AddDecay records a decay edge parent→daughter with branching ratio br and
// the conventional mode label (e.g. "b-").
func (lib *Library) AddDecay(parent, daughter nuclide.KZA, mode string, br float64) {
	lib.branch[[2]nuclide.KZA{parent, daughter}] = br
	lib.addDaughter(parent, Daughter{KZA: daughter, Path: Path{Kind: Decay, Reaction: mode}})
}

// AddFissionYield records the yield of daughter from fission of parent under
// the given spectrum.
func (lib *Library) AddFissionYield(parent, daughter nuclide.KZA, ft nuclide.FissionType, yield float64) {
	lib.yields[yieldKey{parent, daughter, ft}] = yield
}

// SetSpontaneousFissionBranch records the parent's spontaneous-fission
// branching ratio.
func (lib *Library) SetSpontaneousFissionBranch(parent nuclide.KZA, br float64) {
	lib.rec(parent).sfBranch = br
}

// addDaughter keeps the daughter list deterministic: KZA ascending, then
// decay before transmutation, then reaction label.
func (lib *Library) addDaughter(parent nuclide.KZA, d Daughter) {
	r := lib.rec(parent)
	for _, have := range r.daughters {
		if have == d {
			return
		}
	}
	r.daughters = append(r.daughters, d)
	sort.Slice(r.daughters, func(i, j int) bool {
		a, b := r.daughters[i], r.daughters[j]
		if a.KZA != b.KZA {
			return a.KZA < b.KZA
		}
		if a.Path.Kind != b.Path.Kind {
			return a.Path.Kind > b.Path.Kind
		}
		return a.Path.Reaction < b.Path.Reaction
	})
}

// --- Service ---

// Daughters implements Service.
func (lib *Library) Daughters(parent nuclide.KZA) []Daughter {
	if r, ok := lib.nuclides[parent]; ok {
		return r.daughters
	}
	return nil
}

// ProductionRate implements Service.
func (lib *Library) ProductionRate(parent, daughter nuclide.KZA, path Path) []float64 {
	return lib.prod[edgeKey{parent, daughter, path}]
}

// DestructionRate implements Service.
func (lib *Library) DestructionRate(parent nuclide.KZA) []float64 {
	if r, ok := lib.nuclides[parent]; ok {
		return r.destruction
	}
	return nil
}

// DecayConstant implements Service.
func (lib *Library) DecayConstant(parent nuclide.KZA) float64 {
	if r, ok := lib.nuclides[parent]; ok {
		return r.decayConst
	}
	return 0
}

// BranchRatio implements Service.
func (lib *Library) BranchRatio(parent, daughter nuclide.KZA) float64 {
	return lib.branch[[2]nuclide.KZA{parent, daughter}]
}

// FissionYield implements Service.
func (lib *Library) FissionYield(parent, daughter nuclide.KZA, ft nuclide.FissionType) float64 {
	return lib.yields[yieldKey{parent, daughter, ft}]
}

// SpontaneousFissionBranch implements Service.
func (lib *Library) SpontaneousFissionBranch(parent nuclide.KZA) float64 {
	if r, ok := lib.nuclides[parent]; ok {
		return r.sfBranch
	}
	return 0
}

// NGroups implements Service.
func (lib *Library) NGroups() int { return lib.ngroups }
