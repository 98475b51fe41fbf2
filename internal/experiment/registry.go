package experiment

import (
	"fmt"

	"github.com/san-kum/ddalab/internal/dda"
	"github.com/san-kum/ddalab/internal/driver"
	"github.com/san-kum/ddalab/internal/metrics"
	"github.com/san-kum/ddalab/internal/signal"
)

type Registry struct {
	rules   map[string]func() (dda.Rule, error)
	signals map[string]func(params map[string]float64) signal.Source
}

func NewRegistry() *Registry {
	r := &Registry{
		rules:   make(map[string]func() (dda.Rule, error)),
		signals: make(map[string]func(map[string]float64) signal.Source),
	}

	for _, m := range []dda.Method{dda.MethodEuler, dda.MethodTrapezoid, dda.MethodRungeKutta} {
		method := m
		r.rules[method.String()] = func() (dda.Rule, error) { return dda.New(method) }
	}

	r.signals["constant"] = func(params map[string]float64) signal.Source {
		return signal.NewConstant(params["value"])
	}
	r.signals["ramp"] = func(params map[string]float64) signal.Source {
		return signal.NewRamp(params["offset"], params["slope"])
	}
	r.signals["sine"] = func(params map[string]float64) signal.Source {
		return signal.NewSine(params["amplitude"], params["omega"])
	}
	r.signals["decay"] = func(params map[string]float64) signal.Source {
		return signal.NewDecay(params["amplitude"], params["tau"])
	}

	return r
}

func (r *Registry) GetRule(name string) (dda.Rule, error) {
	fn, ok := r.rules[name]
	if !ok {
		return nil, fmt.Errorf("unknown rule: %s", name)
	}
	return fn()
}

func (r *Registry) GetSignal(name string, params map[string]float64) (signal.Source, error) {
	fn, ok := r.signals[name]
	if !ok {
		return nil, fmt.Errorf("unknown signal: %s", name)
	}
	return fn(params), nil
}

func (r *Registry) ListRules() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	return names
}

func (r *Registry) ListSignals() []string {
	names := make([]string, 0, len(r.signals))
	for name := range r.signals {
		names = append(names, name)
	}
	return names
}

func (r *Registry) DefaultMetrics(src signal.Source, acc0 float64) []driver.Metric {
	return []driver.Metric{
		metrics.NewExactError(src, acc0),
		metrics.NewExtremes(),
		metrics.NewCrossings(),
	}
}
