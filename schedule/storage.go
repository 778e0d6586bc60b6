package schedule

import "github.com/katalvlaran/alara/trimat"

// Storage is the transient numerical mirror of a Schedule for one solve:
// per node the operation block, the after-history matrix, and the
// after-delay total, plus sub-storage per item and — at the root — one
// cooled matrix per cooling time. Create one per (target, mixture) and
// discard it with the target; the mirrored Schedule itself stays read-only.
type Storage struct {
	opBlockT *trimat.Tri
	histT    *trimat.Tri
	totalT   *trimat.Tri
	items    []*Storage
	coolT    []*trimat.Tri
}

// NewStorage builds a storage tree mirroring sched. All matrices start as
// the empty neutral matrix; the first solve shapes them to the chain.
func NewStorage(sched *Schedule) *Storage {
	st := &Storage{
		opBlockT: trimat.Identity(0),
		histT:    trimat.Identity(0),
		totalT:   trimat.Identity(0),
	}
	if n := sched.NItems(); n > 0 {
		st.items = make([]*Storage, n)
		for i, it := range sched.items {
			st.items[i] = NewStorage(it)
		}
	}
	if sched.top {
		st.coolT = make([]*trimat.Tri, len(sched.coolingTimes))
		for i := range st.coolT {
			st.coolT[i] = trimat.Identity(0)
		}
	}
	return st
}

// Total returns the node's total transfer matrix (shutdown operator at the
// root, since the root applies no final delay).
func (st *Storage) Total() *trimat.Tri { return st.totalT }

// Hist returns the node's after-history matrix.
func (st *Storage) Hist() *trimat.Tri { return st.histT }

// Cool returns the cooled operator for cooling-time index k (root only).
func (st *Storage) Cool(k int) *trimat.Tri { return st.coolT[k] }

// Results extracts the concentration row for the given chain rank: the
// shutdown value from the total matrix followed by one value per cooling
// time. The linear index of the extracted entry depends on the calculation
// direction: a forward chain reads entry rank(rank+1)/2, a reverse chain
// the complementary entry from the far end of the storage.
func (st *Storage) Results(rank int, reverse bool) []float64 {
	idx := rank * (rank + 1) / 2
	if reverse {
		idx = st.totalT.Len() - 1 - rank
	}

	out := make([]float64, len(st.coolT)+1)
	out[0] = st.totalT.Linear(idx)
	for k, ct := range st.coolT {
		out[k+1] = ct.Linear(idx)
	}
	return out
}
