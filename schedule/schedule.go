package schedule

import (
	"fmt"

	"github.com/katalvlaran/alara/trimat"
)

// Schedule is one node of the schedule tree. A leaf (no items) is a single
// pulse with an operation time and a flux; a composite runs its items in
// order. Both carry a pre-delay and a pulsing history. The root node is the
// same type with top set: it has no pre-delay and carries the cooling times
// instead (see NewTop).
type Schedule struct {
	items   []*Schedule
	delay   float64
	history *PulseHistory
	opTime  float64
	fluxID  int

	setCode Generation
	decayD  *trimat.Tri

	top          bool
	coolingTimes []float64
	coolD        []*trimat.Tri
}

// NewPulse creates a leaf: a single pulse of opTime seconds under the given
// flux, preceded by delay seconds of decay and wrapped in hist (nil for no
// pulsing).
func NewPulse(delay, opTime float64, fluxID int, hist *PulseHistory) *Schedule {
	return &Schedule{
		delay:   delay,
		history: hist,
		opTime:  opTime,
		fluxID:  fluxID,
		setCode: -1,
		decayD:  trimat.Identity(0),
	}
}

// NewComposite creates an inner node running items in order, preceded by
// delay seconds of decay and wrapped in hist.
func NewComposite(delay float64, hist *PulseHistory, items ...*Schedule) *Schedule {
	return &Schedule{
		items:   items,
		delay:   delay,
		history: hist,
		setCode: -1,
		decayD:  trimat.Identity(0),
	}
}

// NewTop creates the root: no pre-delay, an optional history, and one decay
// checkpoint per cooling time (seconds after shutdown, ascending by
// convention but not enforced).
func NewTop(hist *PulseHistory, coolingTimes []float64, items ...*Schedule) *Schedule {
	s := &Schedule{
		items:        items,
		history:      hist,
		setCode:      -1,
		decayD:       trimat.Identity(0),
		top:          true,
		coolingTimes: append([]float64(nil), coolingTimes...),
	}
	s.coolD = make([]*trimat.Tri, len(s.coolingTimes))
	for i := range s.coolD {
		s.coolD[i] = trimat.Identity(0)
	}
	return s
}

// NItems returns the number of sub-schedules.
func (s *Schedule) NItems() int { return len(s.items) }

// Item returns the i-th sub-schedule.
func (s *Schedule) Item(i int) *Schedule { return s.items[i] }

// OpTime returns the leaf operation time in seconds (leaves only).
func (s *Schedule) OpTime() float64 { return s.opTime }

// FluxID returns the leaf flux identity (leaves only).
func (s *Schedule) FluxID() int { return s.fluxID }

// Delay returns the node's pre-delay in seconds (always 0 at the root).
func (s *Schedule) Delay() float64 { return s.delay }

// History returns the node's pulsing history, possibly nil.
func (s *Schedule) History() *PulseHistory { return s.history }

// CoolingTimes returns the root's after-shutdown checkpoints.
func (s *Schedule) CoolingTimes() []float64 { return s.coolingTimes }

// IsTop reports whether s is the root node.
func (s *Schedule) IsTop() bool { return s.top }

// NCoolingTimes returns the number of after-shutdown checkpoints (root only).
func (s *Schedule) NCoolingTimes() int { return len(s.coolingTimes) }

// Validate walks the tree and rejects a schedule that transitively
// references itself; evaluation of such a tree would never terminate.
// The error reports the depth at which a node already on the current path
// is reached again.
func (s *Schedule) Validate() error {
	onStack := make(map[*Schedule]bool)
	var walk func(n *Schedule, depth int) error
	walk = func(n *Schedule, depth int) error {
		if onStack[n] {
			return fmt.Errorf("at depth %d: %w", depth, ErrScheduleCycle)
		}
		onStack[n] = true
		for _, it := range n.items {
			if err := walk(it, depth+1); err != nil {
				return err
			}
		}
		onStack[n] = false
		return nil
	}
	return walk(s, 0)
}

// Collapse normalizes the tree: every node with exactly one child merges
// with it — the node adopts the child's items, operation time and flux, and
// the histories fuse as Merge(this.history, child.delay, child.history),
// the child's history being the inner one. Afterwards no composite has
// exactly one child and every leaf is a true pulse. Call once after
// Validate, before any solving. The node keeps its own pre-delay.
func (s *Schedule) Collapse() {
	for len(s.items) == 1 {
		child := s.items[0]
		s.history = Merge(s.history, child.delay, child.history)
		s.opTime = child.opTime
		s.fluxID = child.fluxID
		s.items = child.items
	}
	for _, it := range s.items {
		it.Collapse()
	}
}
