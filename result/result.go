package result

import (
	"github.com/katalvlaran/alara/chain"
	"github.com/katalvlaran/alara/nuclide"
	"github.com/katalvlaran/alara/schedule"
)

// Row is one daughter nuclide's accumulated concentrations: the shutdown
// value followed by one value per cooling time. Values are per unit initial
// target atom until scaled by a number density in post-processing.
type Row struct {
	KZA    nuclide.KZA
	Values []float64
}

// List accumulates rows for one target nuclide.
type List struct {
	target   nuclide.KZA
	nResults int
	rows     []*Row
	index    map[nuclide.KZA]*Row
}

// NewList creates an empty accumulator for the target with
// nCoolingTimes+1 values per row.
func NewList(target nuclide.KZA, nResults int) *List {
	return &List{
		target:   target,
		nResults: nResults,
		index:    make(map[nuclide.KZA]*Row),
	}
}

// Target returns the target nuclide this list belongs to.
func (l *List) Target() nuclide.KZA { return l.target }

// Rows returns the accumulated rows in first-touch order.
func (l *List) Rows() []*Row { return l.rows }

// Tally element-wise adds vals into the row for kza, creating the row on
// first touch.
func (l *List) Tally(kza nuclide.KZA, vals []float64) {
	row, ok := l.index[kza]
	if !ok {
		row = &Row{KZA: kza, Values: make([]float64, l.nResults)}
		l.rows = append(l.rows, row)
		l.index[kza] = row
	}
	for i, v := range vals {
		row.Values[i] += v
	}
}

// TallyChain extracts the result rows of the current chain from the root
// storage and adds them in, one row per rank from the chain's set rank to
// its tail. The zero KZA past the chain end terminates the walk.
func (l *List) TallyChain(c *chain.Chain, st *schedule.Storage, reverse bool) {
	for rank := c.SetRank(); ; rank++ {
		kza := c.KZA(rank)
		if kza == 0 {
			return
		}
		l.Tally(kza, st.Results(rank, reverse))
	}
}

// Scaled returns a copy of the list's rows with every value multiplied by
// density — the post-processing step that turns per-atom results into a
// component's contribution.
func (l *List) Scaled(density float64) []Row {
	out := make([]Row, len(l.rows))
	for i, row := range l.rows {
		vals := make([]float64, len(row.Values))
		for k, v := range row.Values {
			vals[k] = v * density
		}
		out[i] = Row{KZA: row.KZA, Values: vals}
	}
	return out
}
