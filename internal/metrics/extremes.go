package metrics

import "math"

// Extremes tracks the peak magnitude of the accumulator over a run.
type Extremes struct {
	name    string
	min     float64
	max     float64
	samples int
}

func NewExtremes() *Extremes {
	return &Extremes{
		name: "peak",
		min:  math.Inf(1),
		max:  math.Inf(-1),
	}
}

func (e *Extremes) Name() string { return e.name }

func (e *Extremes) Observe(acc, sample, t float64) {
	if acc < e.min {
		e.min = acc
	}
	if acc > e.max {
		e.max = acc
	}
	e.samples++
}

func (e *Extremes) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return math.Max(math.Abs(e.min), math.Abs(e.max))
}

func (e *Extremes) Min() float64 { return e.min }
func (e *Extremes) Max() float64 { return e.max }

func (e *Extremes) Reset() {
	e.min = math.Inf(1)
	e.max = math.Inf(-1)
	e.samples = 0
}
