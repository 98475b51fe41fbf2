package signal

import "sort"

// Table holds recorded samples and replays them with step-hold lookup:
// the sample at t is the last recorded value at or before t. Times must
// be sorted ascending. There is no closed-form integral.
type Table struct {
	times  []float64
	values []float64
}

func NewTable(times, values []float64) *Table {
	n := len(times)
	if len(values) < n {
		n = len(values)
	}
	return &Table{times: times[:n], values: values[:n]}
}

func (tb *Table) Name() string { return "table" }

func (tb *Table) Len() int { return len(tb.times) }

func (tb *Table) Sample(t float64) float64 {
	if len(tb.times) == 0 {
		return 0
	}
	i := sort.SearchFloat64s(tb.times, t)
	if i < len(tb.times) && tb.times[i] == t {
		return tb.values[i]
	}
	if i == 0 {
		return tb.values[0]
	}
	return tb.values[i-1]
}
