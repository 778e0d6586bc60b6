package schedule

import (
	"github.com/katalvlaran/alara/chain"
	"github.com/katalvlaran/alara/trimat"
)

// SetDecay populates every decay matrix in the tree for the current chain:
// the pre-delay matrix of each non-root node, the dwell matrices of every
// history, and the cooling-time matrices at the root (which has no final
// delay of its own). Nodes already solved for this generation are skipped,
// so shared sub-schedules and histories are computed once per chain.
func (s *Schedule) SetDecay(c *chain.Chain, gen Generation) {
	if s.setCode == gen {
		return
	}

	if s.top {
		for _, it := range s.items {
			it.SetDecay(c, gen)
		}
		s.history.SetDecay(c, gen)
		for k, tau := range s.coolingTimes {
			c.SetDecay(s.coolD[k], tau)
		}
	} else {
		c.SetDecay(s.decayD, s.delay)
		s.history.SetDecay(c, gen)
		for _, it := range s.items {
			it.SetDecay(c, gen)
		}
	}

	s.setCode = gen
}

// SetT evaluates the node for the current chain into st: fill or compose
// the operation block, wrap it in the pulsing history, and apply the
// pre-delay. At the root no final delay exists — the total equals the
// after-history matrix — and the cooled operators are built instead, one
// per cooling time.
func (s *Schedule) SetT(c *chain.Chain, st *Storage) error {
	if len(s.items) > 0 {
		if err := s.setSubTs(c, st); err != nil {
			return err
		}
	} else {
		c.FillTMat(st.opBlockT, s.opTime, s.fluxID)
	}

	hist, err := s.history.DoHistory(st.opBlockT)
	if err != nil {
		return err
	}

	if s.top {
		st.histT = hist
		st.totalT = hist
		for k := range s.coolD {
			c.Mult(st.coolT[k], s.coolD[k], st.totalT)
		}
		return nil
	}

	st.histT = hist
	c.Mult(st.totalT, s.decayD, st.histT)
	return nil
}

// setSubTs evaluates the ordered sub-schedules and accumulates their totals
// into the operation block. Item i+1 operates after item i, so each new
// total multiplies from the left.
func (s *Schedule) setSubTs(c *chain.Chain, st *Storage) error {
	st.opBlockT = trimat.Identity(0)
	for i, it := range s.items {
		if err := it.SetT(c, st.items[i]); err != nil {
			return err
		}
		prod, err := st.items[i].totalT.Mul(st.opBlockT)
		if err != nil {
			return err
		}
		st.opBlockT = prod
	}
	return nil
}
