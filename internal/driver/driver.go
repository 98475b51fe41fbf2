// Package driver runs the outer DDA loop: it walks time in discrete
// steps, samples a rate source, and feeds each sample through an
// integration rule, collecting the accumulator trace.
//
// Each iteration advances time first and samples the source at the new
// time, so a step over [t, t+dt] integrates the sample observed at
// t+dt. Rules that carry the previous sample are seeded with the sample
// at t=0 before the first step.
package driver

import (
	"context"
	"fmt"

	"github.com/san-kum/ddalab/internal/dda"
	"github.com/san-kum/ddalab/internal/signal"
)

// primer is implemented by rules that carry a previous sample and accept
// explicit seeding.
type primer interface {
	Prime(sample float64)
}

type Driver struct {
	src       signal.Source
	rule      dda.Rule
	metrics   []Metric
	observers []Observer
}

func New(src signal.Source, rule dda.Rule) *Driver {
	return &Driver{
		src:       src,
		rule:      rule,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (d *Driver) AddMetric(m Metric)     { d.metrics = append(d.metrics, m) }
func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

func (d *Driver) validateConfig(cfg Config) error {
	if d.rule == nil {
		return ErrNoRule
	}
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidConfig, cfg.Duration)
	}
	return nil
}

func (d *Driver) begin() {
	d.rule.Reset()
	if p, ok := d.rule.(primer); ok {
		p.Prime(d.src.Sample(0))
	}
	for _, m := range d.metrics {
		m.Reset()
	}
}

func (d *Driver) finish(result *Result) {
	for _, m := range d.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

// Run advances the accumulator from cfg.Acc0 across fixed-width steps
// until cfg.Duration is covered. The trace includes the initial value,
// so len(Values) == StepsTaken+1.
func (d *Driver) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := d.validateConfig(cfg); err != nil {
		return nil, err
	}

	// round so 2.0/0.1 covers 20 steps despite float truncation
	steps := int(cfg.Duration/cfg.Dt + 0.5)
	result := &Result{
		Values:  make([]float64, 0, steps+1),
		Samples: make([]float64, 0, steps),
		Times:   make([]float64, 0, steps+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	d.begin()

	acc := cfg.Acc0
	t := 0.0

	result.Values = append(result.Values, acc)
	result.Times = append(result.Times, t)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			d.finish(result)
			return result, ctx.Err()
		default:
		}

		t += cfg.Dt
		y := d.src.Sample(t)
		acc = d.rule.Step(acc, y, cfg.Dt)

		for _, m := range d.metrics {
			m.Observe(acc, y, t)
		}
		for _, obs := range d.observers {
			obs.OnStep(acc, y, t)
		}

		if cfg.ValidateValue && !finite(acc) {
			result.Errors = append(result.Errors, StepError{Time: t, Step: i, Message: "accumulator not finite"})
			break
		}

		result.StepsTaken++
		result.Values = append(result.Values, acc)
		result.Samples = append(result.Samples, y)
		result.Times = append(result.Times, t)
	}

	d.finish(result)
	return result, nil
}

// RunVariable walks a sequence of per-step widths instead of a fixed dt.
func (d *Driver) RunVariable(ctx context.Context, acc0 float64, widths []float64) (*Result, error) {
	if d.rule == nil {
		return nil, ErrNoRule
	}

	result := &Result{
		Values:  make([]float64, 0, len(widths)+1),
		Samples: make([]float64, 0, len(widths)),
		Times:   make([]float64, 0, len(widths)+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	d.begin()

	acc := acc0
	t := 0.0

	result.Values = append(result.Values, acc)
	result.Times = append(result.Times, t)

	for i, dx := range widths {
		select {
		case <-ctx.Done():
			d.finish(result)
			return result, ctx.Err()
		default:
		}

		t += dx
		y := d.src.Sample(t)
		acc = d.rule.Step(acc, y, dx)

		for _, m := range d.metrics {
			m.Observe(acc, y, t)
		}
		for _, obs := range d.observers {
			obs.OnStep(acc, y, t)
		}

		if !finite(acc) {
			result.Errors = append(result.Errors, StepError{Time: t, Step: i, Message: "accumulator not finite"})
			break
		}

		result.StepsTaken++
		result.Values = append(result.Values, acc)
		result.Samples = append(result.Samples, y)
		result.Times = append(result.Times, t)
	}

	d.finish(result)
	return result, nil
}

// RunWithCallback streams steps to fn without collecting a trace; fn
// receives the accumulator after each step and the run stops early when
// it returns false.
func (d *Driver) RunWithCallback(ctx context.Context, cfg Config, fn func(acc, sample, t float64) bool) error {
	if err := d.validateConfig(cfg); err != nil {
		return err
	}

	d.begin()

	acc := cfg.Acc0
	t := 0.0

	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		t += cfg.Dt
		y := d.src.Sample(t)
		acc = d.rule.Step(acc, y, cfg.Dt)

		if cfg.ValidateValue && !finite(acc) {
			return fmt.Errorf("%w at t=%.4f", ErrInvalidValue, t)
		}

		if !fn(acc, y, t) {
			return nil
		}
	}

	return nil
}
