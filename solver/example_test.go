package solver_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/alara/flux"
	"github.com/katalvlaran/alara/nucdata"
	"github.com/katalvlaran/alara/nuclide"
	"github.com/katalvlaran/alara/schedule"
	"github.com/katalvlaran/alara/solver"
)

// ExampleSolver irradiates a single stable nuclide for one year and reports
// the surviving fraction.
func ExampleSolver() {
	fe56 := nuclide.KZA(260560)

	lib := nucdata.NewLibrary(1)
	_ = lib.AddNuclide(fe56, 0, []float64{2e-24})

	reg := flux.NewRegistry(1)
	fid, _ := reg.Register(flux.Vector{5e14})

	top := schedule.NewTop(nil, nil, schedule.NewPulse(0, 3.154e7, fid, nil))

	mix := []solver.Mixture{{
		Name: "zone1",
		Components: []solver.Component{{
			Name:    "steel",
			Targets: []solver.TargetDensity{{KZA: fe56, Density: 1}},
		}},
	}}

	sv, err := solver.New(lib, reg, top, mix)
	if err != nil {
		panic(err)
	}
	out, err := sv.Solve()
	if err != nil {
		panic(err)
	}

	v := out.Targets[0].PerComponent[0].Rows[0].Values[0]
	fmt.Printf("fe-56 surviving: %.5f (analytic %.5f)\n",
		v, math.Exp(-2e-24*5e14*3.154e7))
	// Output: fe-56 surviving: 0.96895 (analytic 0.96895)
}
