// Package metrics provides run statistics observed step by step by the
// DDA driver.
package metrics

import (
	"math"

	"github.com/san-kum/ddalab/internal/signal"
)

// ExactError tracks the worst absolute deviation of the accumulator from
// the closed-form negative integral of the source. It reports zero for
// sources without a closed form.
type ExactError struct {
	name  string
	src   signal.Source
	acc0  float64
	seen  bool
	worst float64
}

func NewExactError(src signal.Source, acc0 float64) *ExactError {
	return &ExactError{
		name: "exact_error",
		src:  src,
		acc0: acc0,
	}
}

func (e *ExactError) Name() string { return e.name }

func (e *ExactError) Observe(acc, sample, t float64) {
	ex, ok := e.src.(signal.Exact)
	if !ok {
		return
	}
	e.seen = true

	want := e.acc0 - ex.Integral(0, t)
	if dev := math.Abs(acc - want); dev > e.worst {
		e.worst = dev
	}
}

func (e *ExactError) Value() float64 {
	if !e.seen {
		return 0
	}
	return e.worst
}

func (e *ExactError) Reset() {
	e.seen = false
	e.worst = 0
}
