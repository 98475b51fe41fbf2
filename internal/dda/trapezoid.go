package dda

// Trapezoid averages the current and previous samples across the step.
// The previous sample is carried between calls, so an instance belongs
// to exactly one step sequence at a time.
//
// Seeding policy: an unprimed rule seeds the previous sample with the
// first sample it sees, so the first step degenerates to the rectangle
// rule on that sample. The behavior of an unseeded first step is
// otherwise undefined; callers that know the sample at t=0 can Prime
// explicitly instead.
type Trapezoid struct {
	prev   float64
	primed bool
}

func NewTrapezoid() *Trapezoid {
	return &Trapezoid{}
}

func (tr *Trapezoid) Method() Method { return MethodTrapezoid }
func (tr *Trapezoid) Stateful() bool { return true }

// Prime seeds the carried previous sample before the first step of a
// sequence.
func (tr *Trapezoid) Prime(sample float64) {
	tr.prev = sample
	tr.primed = true
}

func (tr *Trapezoid) Reset() {
	tr.prev = 0
	tr.primed = false
}

func (tr *Trapezoid) Step(acc, sample, dx float64) float64 {
	if !tr.primed {
		tr.Prime(sample)
	}
	acc -= (sample + tr.prev) / 2 * dx
	tr.prev = sample
	return acc
}
