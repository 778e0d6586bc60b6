package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/katalvlaran/alara/flux"
	"github.com/katalvlaran/alara/nucdata"
	"github.com/katalvlaran/alara/nuclide"
	"github.com/katalvlaran/alara/schedule"
	"github.com/katalvlaran/alara/solver"
)

// problemJSON is the on-disk problem description. Rate vectors must all
// have ngroups entries; fluxes are referenced from schedule pulses by name.
type problemJSON struct {
	NGroups  int              `json:"ngroups"`
	Fluxes   []fluxJSON       `json:"fluxes"`
	Nuclides []nuclideJSON    `json:"nuclides"`
	Decays   []decayJSON      `json:"decays,omitempty"`
	Schedule scheduleJSON     `json:"schedule"`
	Cooling  []float64        `json:"cooling_times,omitempty"`
	Mixtures []solver.Mixture `json:"mixtures"`

	TruncationLimit float64 `json:"truncation_limit,omitempty"`
	IgnoreLimit     float64 `json:"ignore_limit,omitempty"`
	Mode            string  `json:"mode,omitempty"`
}

type fluxJSON struct {
	Name   string    `json:"name"`
	Groups []float64 `json:"groups"`
}

type nuclideJSON struct {
	KZA         nuclide.KZA    `json:"kza"`
	DecayConst  float64        `json:"decay_constant,omitempty"`
	Destruction []float64      `json:"destruction,omitempty"`
	Reactions   []reactionJSON `json:"reactions,omitempty"`
}

type reactionJSON struct {
	Daughter   nuclide.KZA `json:"daughter"`
	Reaction   string      `json:"reaction"`
	Production []float64   `json:"production"`
}

type decayJSON struct {
	Parent   nuclide.KZA `json:"parent"`
	Daughter nuclide.KZA `json:"daughter"`
	Mode     string      `json:"mode"`
	Branch   float64     `json:"branch"`
}

// scheduleJSON is a recursive schedule node: below the root, a leaf when
// items is empty. The root reads only history and items; its delay, op_time
// and flux are ignored.
type scheduleJSON struct {
	Delay   float64        `json:"delay,omitempty"`
	OpTime  float64        `json:"op_time,omitempty"`
	Flux    string         `json:"flux,omitempty"`
	History []levelJSON    `json:"history,omitempty"`
	Items   []scheduleJSON `json:"items,omitempty"`
}

type levelJSON struct {
	Pulses int     `json:"pulses"`
	Dwell  float64 `json:"dwell"`
}

// loadProblem reads and assembles a problem file into solver inputs.
func loadProblem(path string) (*solver.Solver, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p problemJSON
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	reg := flux.NewRegistry(p.NGroups)
	fluxIDs := make(map[string]int, len(p.Fluxes))
	for _, f := range p.Fluxes {
		id, err := reg.Register(f.Groups)
		if err != nil {
			return nil, fmt.Errorf("flux %q: %w", f.Name, err)
		}
		fluxIDs[f.Name] = id
	}

	lib := nucdata.NewLibrary(p.NGroups)
	for _, n := range p.Nuclides {
		if err := lib.AddNuclide(n.KZA, n.DecayConst, n.Destruction); err != nil {
			return nil, fmt.Errorf("nuclide %v: %w", n.KZA, err)
		}
		for _, r := range n.Reactions {
			if err := lib.AddReaction(n.KZA, r.Daughter, r.Reaction, r.Production); err != nil {
				return nil, fmt.Errorf("reaction %v %s: %w", n.KZA, r.Reaction, err)
			}
		}
	}
	for _, d := range p.Decays {
		lib.AddDecay(d.Parent, d.Daughter, d.Mode, d.Branch)
	}

	top, err := buildTop(p.Schedule, p.Cooling, fluxIDs)
	if err != nil {
		return nil, err
	}

	opts := []solver.Option{
		solver.WithTruncationLimit(p.TruncationLimit),
		solver.WithIgnoreLimit(p.IgnoreLimit),
	}
	switch p.Mode {
	case "", "forward":
	case "reverse":
		opts = append(opts, solver.WithMode(solver.ModeReverse))
	default:
		return nil, fmt.Errorf("unknown mode %q", p.Mode)
	}

	return solver.New(lib, reg, top, p.Mixtures, opts...)
}

func buildTop(node scheduleJSON, cooling []float64, fluxIDs map[string]int) (*schedule.Schedule, error) {
	items := make([]*schedule.Schedule, len(node.Items))
	for i, it := range node.Items {
		sub, err := buildNode(it, fluxIDs)
		if err != nil {
			return nil, err
		}
		items[i] = sub
	}
	return schedule.NewTop(buildHistory(node.History), cooling, items...), nil
}

func buildNode(node scheduleJSON, fluxIDs map[string]int) (*schedule.Schedule, error) {
	if len(node.Items) == 0 {
		id, ok := fluxIDs[node.Flux]
		if !ok {
			return nil, fmt.Errorf("schedule pulse references unknown flux %q", node.Flux)
		}
		return schedule.NewPulse(node.Delay, node.OpTime, id, buildHistory(node.History)), nil
	}

	items := make([]*schedule.Schedule, len(node.Items))
	for i, it := range node.Items {
		sub, err := buildNode(it, fluxIDs)
		if err != nil {
			return nil, err
		}
		items[i] = sub
	}
	return schedule.NewComposite(node.Delay, buildHistory(node.History), items...), nil
}

func buildHistory(levels []levelJSON) *schedule.PulseHistory {
	if len(levels) == 0 {
		return nil
	}
	ls := make([]schedule.Level, len(levels))
	for i, l := range levels {
		ls[i] = schedule.Level{Pulses: l.Pulses, Dwell: l.Dwell}
	}
	return schedule.NewPulseHistory(ls)
}
