package solver_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/alara/flux"
	"github.com/katalvlaran/alara/nucdata"
	"github.com/katalvlaran/alara/nuclide"
	"github.com/katalvlaran/alara/result"
	"github.com/katalvlaran/alara/schedule"
	"github.com/katalvlaran/alara/solver"
)

const (
	kzaP = nuclide.KZA(260560)
	kzaD = nuclide.KZA(260570)
	kzaB = nuclide.KZA(270570)
)

// oneComp is the trivial material: one mixture, one component, one target
// at unit density.
func oneComp(target nuclide.KZA, density float64) []solver.Mixture {
	return []solver.Mixture{{
		Name: "zone1",
		Components: []solver.Component{{
			Name:    "steel",
			Targets: []solver.TargetDensity{{KZA: target, Density: density}},
		}},
	}}
}

// findRow returns the row for kza in a component result.
func findRow(t *testing.T, cr solver.ComponentResult, kza nuclide.KZA) result.Row {
	t.Helper()
	for _, row := range cr.Rows {
		if row.KZA == kza {
			return row
		}
	}
	t.Fatalf("no row for %v", kza)
	return result.Row{}
}

// ScenarioSuite runs the end-to-end scenarios against the full driver.
type ScenarioSuite struct {
	suite.Suite
}

// TestSinglePulseBurnup: one stable parent, a single pulse, no cooling
// times. The survival fraction is exp(−σφt).
func (s *ScenarioSuite) TestSinglePulseBurnup() {
	lib := nucdata.NewLibrary(1)
	s.Require().NoError(lib.AddNuclide(kzaP, 0, []float64{2e-24}))

	reg := flux.NewRegistry(1)
	fid, err := reg.Register(flux.Vector{5e14})
	s.Require().NoError(err)

	top := schedule.NewTop(nil, nil, schedule.NewPulse(0, 3.154e7, fid, nil))

	sv, err := solver.New(lib, reg, top, oneComp(kzaP, 1))
	s.Require().NoError(err)
	out, err := sv.Solve()
	s.Require().NoError(err)

	s.Require().Len(out.Targets, 1)
	s.Require().Len(out.Targets[0].PerComponent, 1)
	row := findRow(s.T(), out.Targets[0].PerComponent[0], kzaP)
	s.Require().Len(row.Values, 1)
	s.InEpsilon(math.Exp(-2e-24*5e14*3.154e7), row.Values[0], 1e-12)
	s.InDelta(0.96895, row.Values[0], 1e-5)
}

// TestTwoIsotopeChainWithCooling: P→D under one pulse, one cooling time.
// Both nuclides are stable, so cooling changes nothing.
func (s *ScenarioSuite) TestTwoIsotopeChainWithCooling() {
	lib := nucdata.NewLibrary(1)
	s.Require().NoError(lib.AddNuclide(kzaP, 0, []float64{1e-24}))
	s.Require().NoError(lib.AddReaction(kzaP, kzaD, "(n,g)", []float64{1e-24}))

	reg := flux.NewRegistry(1)
	fid, err := reg.Register(flux.Vector{1e14})
	s.Require().NoError(err)

	top := schedule.NewTop(nil, []float64{1e7}, schedule.NewPulse(0, 1e7, fid, nil))

	const density = 5e22
	sv, err := solver.New(lib, reg, top, oneComp(kzaP, density))
	s.Require().NoError(err)
	out, err := sv.Solve()
	s.Require().NoError(err)

	sigmaPhiT := 1e-24 * 1e14 * 1e7
	cr := out.Targets[0].PerComponent[0]

	rowP := findRow(s.T(), cr, kzaP)
	rowD := findRow(s.T(), cr, kzaD)
	s.InEpsilon(density*math.Exp(-sigmaPhiT), rowP.Values[0], 1e-12)
	s.InEpsilon(density*(1-math.Exp(-sigmaPhiT)), rowD.Values[0], 1e-12)

	// no decay anywhere: the cooled value equals the shutdown value
	s.Equal(rowD.Values[0], rowD.Values[1])
	s.Equal(rowP.Values[0], rowP.Values[1])
}

// TestCyclicChain: A→B→A with symmetric rates. The second visit to A makes
// all three poles identical; the degenerate solution must stay finite,
// non-negative, and match the hand-derived P²·t²/2·e^(−pt) element.
func (s *ScenarioSuite) TestCyclicChain() {
	const (
		sigma = 1e-24
		prod  = 5e-25
		phi   = 1e14
		tOp   = 1e6
	)
	lib := nucdata.NewLibrary(1)
	s.Require().NoError(lib.AddNuclide(kzaP, 0, []float64{sigma}))
	s.Require().NoError(lib.AddReaction(kzaP, kzaB, "(n,g)", []float64{prod}))
	s.Require().NoError(lib.AddNuclide(kzaB, 0, []float64{sigma}))
	s.Require().NoError(lib.AddReaction(kzaB, kzaP, "(n,2n)", []float64{prod}))

	reg := flux.NewRegistry(1)
	fid, err := reg.Register(flux.Vector{phi})
	s.Require().NoError(err)

	top := schedule.NewTop(nil, nil, schedule.NewPulse(0, tOp, fid, nil))

	// metric halves per rank: 1, 0.5, 0.25, ... — cut after the loop closes
	sv, err := solver.New(lib, reg, top, oneComp(kzaP, 1),
		solver.WithTruncationLimit(0.3), solver.WithIgnoreLimit(0.1))
	s.Require().NoError(err)
	out, err := sv.Solve()
	s.Require().NoError(err)

	cr := out.Targets[0].PerComponent[0]
	p := sigma * phi
	pp := prod * phi

	// chains [A] and [A,B,A] both contribute to the A row
	loopElem := pp * pp * tOp * tOp / 2 * math.Exp(-p*tOp)
	rowA := findRow(s.T(), cr, kzaP)
	s.InEpsilon(math.Exp(-p*tOp)+loopElem, rowA.Values[0], 1e-10)

	rowB := findRow(s.T(), cr, kzaB)
	s.Require().GreaterOrEqual(rowB.Values[0], 0.0)
	s.Require().False(math.IsNaN(rowB.Values[0]))
	s.InEpsilon(pp*tOp*math.Exp(-p*tOp), rowB.Values[0], 1e-10)
}

// TestDumpRoundTrip: solve, dump, read back, compare bit for bit.
func (s *ScenarioSuite) TestDumpRoundTrip() {
	lib := nucdata.NewLibrary(1)
	s.Require().NoError(lib.AddNuclide(kzaP, 0, []float64{1e-24}))
	s.Require().NoError(lib.AddReaction(kzaP, kzaD, "(n,g)", []float64{1e-24}))

	reg := flux.NewRegistry(1)
	fid, err := reg.Register(flux.Vector{1e14})
	s.Require().NoError(err)

	top := schedule.NewTop(nil, []float64{1e7}, schedule.NewPulse(0, 1e7, fid, nil))

	sv, err := solver.New(lib, reg, top, oneComp(kzaP, 5e22))
	s.Require().NoError(err)
	out, err := sv.Solve()
	s.Require().NoError(err)

	recs := out.Records()
	s.Require().Len(recs, 1)
	s.Require().Len(recs[0].Entries, 1)
	s.Require().Len(recs[0].Entries[0].Values, 2)

	var buf bytes.Buffer
	s.Require().NoError(result.WriteDump(&buf, recs))
	back, err := result.ReadDump(bytes.NewReader(buf.Bytes()))
	s.Require().NoError(err)
	s.Empty(cmp.Diff(recs, back))

	for i, v := range recs[0].Entries[0].Values {
		s.Equal(math.Float64bits(v), math.Float64bits(back[0].Entries[0].Values[i]))
	}
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

func TestTargetsSolveInKZAOrderAcrossMixtures(t *testing.T) {
	lib := nucdata.NewLibrary(1)
	require.NoError(t, lib.AddNuclide(kzaP, 0, []float64{1e-24}))
	require.NoError(t, lib.AddNuclide(kzaD, 0, []float64{2e-24}))

	reg := flux.NewRegistry(1)
	fid, err := reg.Register(flux.Vector{1e14})
	require.NoError(t, err)

	top := schedule.NewTop(nil, nil, schedule.NewPulse(0, 1e6, fid, nil))

	mixtures := []solver.Mixture{
		{
			Name: "blanket",
			Components: []solver.Component{
				{Name: "clad", Targets: []solver.TargetDensity{{KZA: kzaD, Density: 2e22}}},
				{Name: "matrix", Targets: []solver.TargetDensity{{KZA: kzaP, Density: 1e22}}},
			},
		},
		{
			Name: "shield",
			Components: []solver.Component{
				{Name: "liner", Targets: []solver.TargetDensity{{KZA: kzaP, Density: 3e22}}},
			},
		},
	}

	sv, err := solver.New(lib, reg, top, mixtures)
	require.NoError(t, err)
	out, err := sv.Solve()
	require.NoError(t, err)

	// targets ascend by KZA regardless of declaration order
	require.Len(t, out.Targets, 2)
	require.Equal(t, kzaP, out.Targets[0].Target)
	require.Equal(t, kzaD, out.Targets[1].Target)

	// P appears in two components with dense global ids 1 and 2
	pOut := out.Targets[0]
	require.Len(t, pOut.PerComponent, 2)
	require.Equal(t, int32(1), pOut.PerComponent[0].ComponentID)
	require.Equal(t, "matrix", pOut.PerComponent[0].Component)
	require.Equal(t, int32(2), pOut.PerComponent[1].ComponentID)
	require.Equal(t, "liner", pOut.PerComponent[1].Component)

	// identical physics, different densities: values scale 3:1
	vMatrix := pOut.PerComponent[0].Rows[0].Values[0]
	vLiner := pOut.PerComponent[1].Rows[0].Values[0]
	require.InEpsilon(t, 3.0, vLiner/vMatrix, 1e-12)
}

func TestReverseModeIndexing(t *testing.T) {
	lib := nucdata.NewLibrary(1)
	require.NoError(t, lib.AddNuclide(kzaP, 0, []float64{1e-24}))
	require.NoError(t, lib.AddReaction(kzaP, kzaD, "(n,g)", []float64{1e-24}))

	reg := flux.NewRegistry(1)
	fid, err := reg.Register(flux.Vector{1e14})
	require.NoError(t, err)

	top := schedule.NewTop(nil, nil, schedule.NewPulse(0, 1e7, fid, nil))

	sv, err := solver.New(lib, reg, top, oneComp(kzaP, 1),
		solver.WithMode(solver.ModeReverse))
	require.NoError(t, err)
	out, err := sv.Solve()
	require.NoError(t, err)

	// reverse extraction reads the complementary linear indices: on the
	// 1-rank chain rank 0 still reads the single entry, and on the 2-rank
	// chain rank 1 reads 3−1−1 = 1, the same (1,0) entry as forward. The
	// solver only reads the tail rank n−1, where n(n+1)/2−1−(n−1) equals the
	// forward index n(n−1)/2 for every chain length; the conventions diverge
	// only at non-tail ranks, which TestResultsReverseIndexing in package
	// schedule pins directly
	cr := out.Targets[0].PerComponent[0]
	sigmaPhiT := 1e-24 * 1e14 * 1e7
	rowP := findRow(t, cr, kzaP)
	require.InEpsilon(t, math.Exp(-sigmaPhiT), rowP.Values[0], 1e-12)
	rowD := findRow(t, cr, kzaD)
	require.InEpsilon(t, 1-math.Exp(-sigmaPhiT), rowD.Values[0], 1e-12)
}

func TestNewRejectsBadConfig(t *testing.T) {
	lib := nucdata.NewLibrary(3)
	reg := flux.NewRegistry(3)
	top := schedule.NewTop(nil, nil, schedule.NewPulse(0, 1, 0, nil))

	// ignore above trunc
	_, err := solver.New(lib, reg, top, nil,
		solver.WithTruncationLimit(1e-6), solver.WithIgnoreLimit(1e-3))
	require.ErrorIs(t, err, solver.ErrBadLimits)

	// group mismatch between service and registry
	_, err = solver.New(nucdata.NewLibrary(2), reg, top, nil)
	require.ErrorIs(t, err, flux.ErrGroupMismatch)

	// nil schedule
	_, err = solver.New(lib, reg, nil, nil)
	require.ErrorIs(t, err, solver.ErrNoSchedule)

	// option constructors panic on nonsense
	require.Panics(t, func() { solver.WithTruncationLimit(math.NaN()) })
	require.Panics(t, func() { solver.WithIgnoreLimit(-1) })
}
