package driver

import (
	"fmt"
	"math"
)

// Metric accumulates a summary statistic over a run. Observe is called
// once per step before the accumulator is advanced.
type Metric interface {
	Name() string
	Observe(acc, sample, t float64)
	Value() float64
	Reset()
}

// Observer receives every step of a run as it happens.
type Observer interface {
	OnStep(acc, sample, t float64)
}

type Config struct {
	Acc0          float64
	Dt            float64
	Duration      float64
	ValidateValue bool
}

func DefaultConfig() Config {
	return Config{
		Dt:            0.01,
		Duration:      10.0,
		ValidateValue: true,
	}
}

type Result struct {
	Values     []float64
	Samples    []float64
	Times      []float64
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

// Final returns the accumulator after the last completed step.
func (r *Result) Final() float64 {
	if len(r.Values) == 0 {
		return 0
	}
	return r.Values[len(r.Values)-1]
}

type StepError struct {
	Time    float64
	Step    int
	Message string
}

func (e StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
