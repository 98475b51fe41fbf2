// Package analysis provides numerical experiments over the integration
// rules, currently empirical convergence-order estimation.
package analysis

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/ddalab/internal/dda"
	"github.com/san-kum/ddalab/internal/driver"
	"github.com/san-kum/ddalab/internal/signal"
)

type OrderReport struct {
	Method   dda.Method
	Dts      []float64
	Errors   []float64
	Observed float64
}

// EstimateOrder integrates src over [0, t1] with dt halved `halvings`
// times and reports the observed convergence order from consecutive
// error ratios. The source must have a closed-form integral.
func EstimateOrder(method dda.Method, src signal.Source, t1, dt float64, halvings int) (*OrderReport, error) {
	ex, ok := src.(signal.Exact)
	if !ok {
		return nil, fmt.Errorf("analysis: source %q has no closed-form integral", src.Name())
	}
	if halvings < 1 {
		return nil, fmt.Errorf("analysis: need at least one halving, got %d", halvings)
	}

	want := -ex.Integral(0, t1)

	report := &OrderReport{
		Method: method,
		Dts:    make([]float64, 0, halvings+1),
		Errors: make([]float64, 0, halvings+1),
	}

	h := dt
	for i := 0; i <= halvings; i++ {
		rule, err := dda.New(method)
		if err != nil {
			return nil, err
		}

		d := driver.New(src, rule)
		result, err := d.Run(context.Background(), driver.Config{Dt: h, Duration: t1})
		if err != nil {
			return nil, err
		}

		report.Dts = append(report.Dts, h)
		report.Errors = append(report.Errors, math.Abs(result.Final()-want))
		h /= 2
	}

	// mean log2 error ratio across halvings
	sum := 0.0
	count := 0
	for i := 0; i < len(report.Errors)-1; i++ {
		if report.Errors[i+1] == 0 || report.Errors[i] == 0 {
			continue
		}
		sum += math.Log2(report.Errors[i] / report.Errors[i+1])
		count++
	}
	if count > 0 {
		report.Observed = sum / float64(count)
	}

	return report, nil
}
