package schedule

import (
	"github.com/katalvlaran/alara/chain"
	"github.com/katalvlaran/alara/trimat"
)

// Generation is the monotone token that invalidates per-chain caches.
// The solver mints a fresh value for every valid chain.
type Generation int64

// Level is one tier of a pulsing pattern: Pulses repetitions separated by
// Dwell seconds of decay.
type Level struct {
	Pulses int
	Dwell  float64
}

// PulseHistory is a multi-level pulsing pattern plus its per-chain cache of
// dwell-time decay matrices. One history may be referenced from many points
// in a schedule tree; the setCode token keeps the decay matrices from being
// recomputed more than once per chain. A nil *PulseHistory acts as the
// identity pattern.
type PulseHistory struct {
	setCode Generation
	levels  []Level
	decay   []*trimat.Tri
}

// NewPulseHistory builds a history from its levels, outermost last.
func NewPulseHistory(levels []Level) *PulseHistory {
	h := &PulseHistory{
		setCode: -1,
		levels:  append([]Level(nil), levels...),
		decay:   make([]*trimat.Tri, len(levels)),
	}
	for i := range h.decay {
		h.decay[i] = trimat.Identity(0)
	}
	return h
}

// NLevels returns the number of levels; a nil history has none.
func (h *PulseHistory) NLevels() int {
	if h == nil {
		return 0
	}
	return len(h.levels)
}

// Merge combines an outer pulsing history h1, a gap of delay seconds, and
// an inner pulsing history h2 into the single history h1 ∘ decay(delay) ∘ h2:
// evaluating the merged history on a pulse equals applying h2, decaying by
// the gap, then applying h1. When delay > 0 the gap becomes a single-pulse
// level between the two. This is exactly the pattern left behind when a
// schedule with a single sub-schedule is collapsed into its parent (the
// child's history is the inner one). Either history may be nil.
func Merge(h1 *PulseHistory, delay float64, h2 *PulseHistory) *PulseHistory {
	levels := make([]Level, 0, h1.NLevels()+1+h2.NLevels())
	if h2 != nil {
		levels = append(levels, h2.levels...)
	}
	if delay > 0 {
		levels = append(levels, Level{Pulses: 1, Dwell: delay})
	}
	if h1 != nil {
		levels = append(levels, h1.levels...)
	}
	return NewPulseHistory(levels)
}

// SetDecay fills the per-level dwell decay matrices for the current chain,
// unless they were already solved for this generation.
func (h *PulseHistory) SetDecay(c *chain.Chain, gen Generation) {
	if h == nil || h.setCode == gen {
		return
	}
	for i, lvl := range h.levels {
		c.SetDecay(h.decay[i], lvl.Dwell)
	}
	h.setCode = gen
}

// DoHistory composes the pattern around a base transfer matrix:
// per level, nPulse pulses separated by the dwell decay D compose as
// (T·D)^(nPulse−1)·T; outer levels re-pulse the inner result. A level with
// a single pulse carries no between-pulse gap, so its dwell acts as a
// straight decay D·T — that is what preserves the gap a collapsed
// single-child schedule contributes through Merge. The input matrix is not
// modified; with no levels it is returned as is.
func (h *PulseHistory) DoHistory(opT *trimat.Tri) (*trimat.Tri, error) {
	if h == nil {
		return opT, nil
	}
	var err error
	for i, lvl := range h.levels {
		if lvl.Pulses == 1 {
			opT, err = h.decay[i].Mul(opT)
			if err != nil {
				return nil, err
			}
			continue
		}

		workT, err := opT.Mul(h.decay[i])
		if err != nil {
			return nil, err
		}
		workT, err = workT.Pow(lvl.Pulses - 1)
		if err != nil {
			return nil, err
		}
		opT, err = workT.Mul(opT)
		if err != nil {
			return nil, err
		}
	}
	return opT, nil
}
