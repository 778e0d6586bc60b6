package chain

import "github.com/katalvlaran/alara/nucdata"

// Build advances the depth-first traversal to the next valid chain.
// It returns true with the chain extended by exactly one rank (the first
// call seeds rank 0 with the target), or false when the target's tree is
// exhausted. After a true return, NewRank/SetRank identify the added rank.
func (c *Chain) Build() (bool, error) {
	if !c.started {
		c.started = true
		c.seedRoot()
		return true, nil
	}

	for c.length > 0 {
		tail := c.length - 1
		if !c.ranks[tail].truncated {
			grew, err := c.growOnce()
			if err != nil {
				return false, err
			}
			if grew {
				return true, nil
			}
		}

		// tail exhausted (or truncated): unwind one rank and retry its parent
		c.length--
		c.resizeRates()
	}
	return false, nil
}

// seedRoot installs rank 0. The target is always solved regardless of
// limits; its contribution is the reference against which daughters are
// measured.
func (c *Chain) seedRoot() {
	r := &c.ranks[0]
	*r = rank{
		kza:       c.root,
		destVec:   c.svc.DestructionRate(c.root),
		lambda:    c.svc.DecayConstant(c.root),
		loopRank:  -1,
		daughters: c.svc.Daughters(c.root),
		metric:    1,
	}
	c.length = 1
	c.newRank = 0
	c.setRank = 0
}

// growOnce extends the chain by the tail's next acceptable daughter.
func (c *Chain) growOnce() (bool, error) {
	tail := &c.ranks[c.length-1]

	for tail.cursor < len(tail.daughters) {
		d := tail.daughters[tail.cursor]
		tail.cursor++

		metric, err := c.childMetric(tail, d)
		if err != nil {
			return false, err
		}
		if metric < c.limits.Ignore {
			continue // prune this sub-tree entirely
		}

		c.push(d, metric)
		return true, nil
	}
	return false, nil
}

// childMetric estimates the relative contribution of extending the tail
// with daughter d, using the conservative reference flux: the parent metric
// scaled by the production-over-destruction ratio along the new edge.
func (c *Chain) childMetric(parent *rank, d nucdata.Daughter) (float64, error) {
	var prod float64
	switch d.Path.Kind {
	case nucdata.Transmutation:
		p, err := c.refCollapse(c.svc.ProductionRate(parent.kza, d.KZA, d.Path))
		if err != nil {
			return 0, err
		}
		prod = p
	case nucdata.Decay:
		prod = parent.lambda * c.svc.BranchRatio(parent.kza, d.KZA)
	}

	dest, err := c.refCollapse(parent.destVec)
	if err != nil {
		return 0, err
	}
	dest += parent.lambda

	if dest <= 0 || prod <= 0 {
		return 0, nil
	}
	ratio := prod / dest
	if ratio > 1 {
		ratio = 1
	}
	return parent.metric * ratio, nil
}

// push installs daughter d as the new tail rank.
func (c *Chain) push(d nucdata.Daughter, metric float64) {
	parentKza := c.ranks[c.length-1].kza

	if c.length == c.maxLength {
		c.expandRates()
	}

	nr := &c.ranks[c.length]
	*nr = rank{
		kza:       d.KZA,
		path:      d.Path,
		destVec:   c.svc.DestructionRate(d.KZA),
		lambda:    c.svc.DecayConstant(d.KZA),
		loopRank:  -1,
		daughters: c.svc.Daughters(d.KZA),
		metric:    metric,
		truncated: metric < c.limits.Trunc,
	}
	if d.Path.Kind == nucdata.Decay {
		nr.decayIn = c.ranks[c.length-1].lambda * c.svc.BranchRatio(parentKza, d.KZA)
	}

	// record the first earlier appearance of this nuclide: the kernel needs
	// it to switch to the degenerate-pole solution across the loop span
	for r := 0; r < c.length; r++ {
		if c.ranks[r].kza == d.KZA {
			nr.loopRank = r
			break
		}
	}

	c.length++
	c.newRank = c.length - 1
	c.setRank = c.newRank
}
