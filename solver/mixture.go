package solver

import (
	"sort"

	"github.com/katalvlaran/alara/nuclide"
)

// TargetDensity is one target nuclide inside a component with its number
// density in atoms·cm⁻³.
type TargetDensity struct {
	KZA     nuclide.KZA `json:"kza"`
	Density float64     `json:"density"`
}

// Component is a named constituent of a mixture.
type Component struct {
	Name    string          `json:"name"`
	Targets []TargetDensity `json:"targets"`
}

// Mixture is an ordered set of components sharing one geometry.
type Mixture struct {
	Name       string      `json:"name"`
	Components []Component `json:"components"`
}

// compRef locates one occurrence of a target: which mixture, which
// component, at what density, plus the dense global component id used in
// dump records.
type compRef struct {
	mixture   int
	component int
	id        int32
	density   float64
}

// targetSet derives the solve order and the per-target component references
// from the mixtures: targets ascend by KZA (duplicates across components
// merge their references), component ids are dense in declaration order.
func targetSet(mixtures []Mixture) (targets []nuclide.KZA, refs map[nuclide.KZA][]compRef) {
	refs = make(map[nuclide.KZA][]compRef)
	var id int32
	for mi, mix := range mixtures {
		for ci, comp := range mix.Components {
			for _, td := range comp.Targets {
				refs[td.KZA] = append(refs[td.KZA], compRef{
					mixture:   mi,
					component: ci,
					id:        id,
					density:   td.Density,
				})
			}
			id++
		}
	}
	targets = make([]nuclide.KZA, 0, len(refs))
	for kza := range refs {
		targets = append(targets, kza)
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })
	return targets, refs
}
