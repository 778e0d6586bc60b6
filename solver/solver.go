package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/alara/chain"
	"github.com/katalvlaran/alara/flux"
	"github.com/katalvlaran/alara/nucdata"
	"github.com/katalvlaran/alara/nuclide"
	"github.com/katalvlaran/alara/result"
	"github.com/katalvlaran/alara/schedule"
)

// ErrBadLimits indicates an ignore limit above the truncation limit.
var ErrBadLimits = errors.New("solver: ignore limit exceeds truncation limit")

// ErrNoSchedule indicates a missing or invalid schedule tree.
var ErrNoSchedule = errors.New("solver: no usable schedule")

// Solver drives the whole calculation. Construct with New, run with Solve.
type Solver struct {
	svc      nucdata.Service
	reg      *flux.Registry
	cache    *nucdata.RateCache
	top      *schedule.Schedule
	mixtures []Mixture
	opts     Options

	gen schedule.Generation
}

// New validates and assembles a solver. The schedule tree is validated and
// collapsed here; the caller must not mutate it afterwards.
func New(svc nucdata.Service, reg *flux.Registry, top *schedule.Schedule, mixtures []Mixture, opts ...Option) (*Solver, error) {
	o := gatherOptions(opts...)
	if o.ignoreLimit > o.truncLimit {
		return nil, fmt.Errorf("ignore %g > trunc %g: %w", o.ignoreLimit, o.truncLimit, ErrBadLimits)
	}
	if svc.NGroups() != reg.NGroups() {
		return nil, fmt.Errorf("data service has %d groups, flux registry %d: %w",
			svc.NGroups(), reg.NGroups(), flux.ErrGroupMismatch)
	}
	if top == nil {
		return nil, ErrNoSchedule
	}
	if err := top.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoSchedule, err)
	}
	top.Collapse()

	return &Solver{
		svc:      svc,
		reg:      reg,
		cache:    nucdata.NewRateCache(svc, reg),
		top:      top,
		mixtures: mixtures,
		opts:     o,
	}, nil
}

// ComponentResult is one (mixture, component) slice of a target's output:
// the density-scaled rows of every daughter reached from the target.
type ComponentResult struct {
	Mixture     string
	Component   string
	ComponentID int32
	Rows        []result.Row
}

// TargetOutput carries one target's results across all components that
// contain it.
type TargetOutput struct {
	Target       nuclide.KZA
	PerComponent []ComponentResult
}

// Output is the complete calculation result.
type Output struct {
	CoolingTimes []float64
	Targets      []*TargetOutput
}

// Solve runs the calculation: targets in KZA order, chains in depth-first
// order within each target, tallies in solve order.
func (s *Solver) Solve() (*Output, error) {
	targets, refs := targetSet(s.mixtures)
	out := &Output{CoolingTimes: append([]float64(nil), s.top.CoolingTimes()...)}

	for _, target := range targets {
		to, err := s.solveTarget(target, refs[target])
		if err != nil {
			return nil, fmt.Errorf("target %v: %w", target, err)
		}
		out.Targets = append(out.Targets, to)
	}
	return out, nil
}

// solveTarget runs every chain of one target through the schedule, once per
// mixture containing the target, then scales the accumulated rows into the
// per-component outputs.
func (s *Solver) solveTarget(target nuclide.KZA, refs []compRef) (*TargetOutput, error) {
	limits := chain.Limits{Trunc: s.opts.truncLimit, Ignore: s.opts.ignoreLimit}
	c := chain.New(s.svc, s.cache, s.reg, target, limits)
	reverse := s.opts.mode == ModeReverse
	nResults := s.top.NCoolingTimes() + 1

	// one storage tree and one accumulator per mixture containing the target
	mixIdx := make([]int, 0, len(refs))
	seen := make(map[int]bool)
	for _, ref := range refs {
		if !seen[ref.mixture] {
			seen[ref.mixture] = true
			mixIdx = append(mixIdx, ref.mixture)
		}
	}
	stores := make(map[int]*schedule.Storage, len(mixIdx))
	lists := make(map[int]*result.List, len(mixIdx))
	for _, mi := range mixIdx {
		stores[mi] = schedule.NewStorage(s.top)
		lists[mi] = result.NewList(target, nResults)
	}

	for {
		ok, err := c.Build()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		s.gen++
		if err := c.CollapseRates(); err != nil {
			return nil, err
		}
		s.top.SetDecay(c, s.gen)

		for _, mi := range mixIdx {
			if err := s.top.SetT(c, stores[mi]); err != nil {
				return nil, err
			}
			lists[mi].TallyChain(c, stores[mi], reverse)
		}
	}

	to := &TargetOutput{Target: target}
	for _, ref := range refs {
		mix := s.mixtures[ref.mixture]
		to.PerComponent = append(to.PerComponent, ComponentResult{
			Mixture:     mix.Name,
			Component:   mix.Components[ref.component].Name,
			ComponentID: ref.id,
			Rows:        lists[ref.mixture].Scaled(ref.density),
		})
	}
	return to, nil
}

// Records converts the output into binary dump records: one record per
// target, one entry per component containing it, carrying the component's
// scaled row of the target nuclide itself.
func (o *Output) Records() []result.Record {
	recs := make([]result.Record, 0, len(o.Targets))
	for _, to := range o.Targets {
		rec := result.Record{Target: to.Target}
		for _, cr := range to.PerComponent {
			for _, row := range cr.Rows {
				if row.KZA != to.Target {
					continue
				}
				rec.Entries = append(rec.Entries, result.Entry{
					ComponentID: cr.ComponentID,
					Values:      append([]float64(nil), row.Values...),
				})
				break
			}
		}
		recs = append(recs, rec)
	}
	return recs
}
