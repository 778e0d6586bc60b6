package nucdata

import "github.com/katalvlaran/alara/nuclide"

// PathKind distinguishes the two ways a daughter is produced.
type PathKind int

const (
	// Transmutation marks a neutron-reaction edge with a group-wise
	// production cross-section.
	Transmutation PathKind = iota
	// Decay marks a radioactive-decay edge; its strength is the parent's
	// decay constant times the branching ratio, flux-independent.
	Decay
)

// Path identifies which reaction produced a daughter. It is comparable and
// used as (part of) cache keys.
type Path struct {
	Kind PathKind
	// Reaction is the conventional label, e.g. "(n,g)", "(n,2n)", "b-", "ec".
	Reaction string
}

// Daughter pairs a daughter identity with the path that produces it.
type Daughter struct {
	KZA  nuclide.KZA
	Path Path
}

// Service is the read-only nuclear-data contract the engine consumes.
// Implementations maintain immutable state after initialization; the group
// structure NGroups is fixed at load time and stable thereafter.
type Service interface {
	// Daughters enumerates the daughters of parent in deterministic order,
	// one entry per (daughter, path). Unknown parents yield nil.
	Daughters(parent nuclide.KZA) []Daughter

	// ProductionRate returns the group-wise production cross-section for the
	// given transmutation edge, or nil when none is recorded (decay edges
	// always return nil — their strength is scalar).
	ProductionRate(parent, daughter nuclide.KZA, path Path) []float64

	// DestructionRate returns the parent's total group-wise destruction
	// cross-section, or nil when none is recorded.
	DestructionRate(parent nuclide.KZA) []float64

	// DecayConstant returns λ_d ≥ 0 for the parent, zero for stable or
	// unknown nuclides.
	DecayConstant(parent nuclide.KZA) float64

	// BranchRatio returns the decay branching ratio parent→daughter in [0,1].
	BranchRatio(parent, daughter nuclide.KZA) float64

	// FissionYield returns the yield of daughter from fission of parent
	// under the given fission type, ≥ 0.
	FissionYield(parent, daughter nuclide.KZA, ft nuclide.FissionType) float64

	// SpontaneousFissionBranch returns the spontaneous-fission branching
	// ratio of the parent, ≥ 0.
	SpontaneousFissionBranch(parent nuclide.KZA) float64

	// NGroups returns the fixed neutron-group count.
	NGroups() int
}
