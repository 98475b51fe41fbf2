package driver

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/ddalab/internal/dda"
	"github.com/san-kum/ddalab/internal/signal"
)

func TestRunConstantEuler(t *testing.T) {
	d := New(signal.NewConstant(2.0), dda.NewEuler())

	cfg := Config{Acc0: 0, Dt: 1.0, Duration: 5.0, ValidateValue: true}
	result, err := d.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.StepsTaken != 5 {
		t.Errorf("expected 5 steps, got %d", result.StepsTaken)
	}
	if result.Final() != -10.0 {
		t.Errorf("expected -10.0, got %f", result.Final())
	}
	if len(result.Values) != 6 || len(result.Times) != 6 || len(result.Samples) != 5 {
		t.Errorf("unexpected trace lengths: %d values, %d times, %d samples",
			len(result.Values), len(result.Times), len(result.Samples))
	}
}

func TestRunConstantTrapezoid(t *testing.T) {
	// the driver seeds the carried sample with the t=0 sample
	d := New(signal.NewConstant(2.0), dda.NewTrapezoid())

	cfg := Config{Acc0: 0, Dt: 1.0, Duration: 5.0}
	result, err := d.Run(context.Background(), cfg)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Final() != -10.0 {
		t.Errorf("expected -10.0, got %f", result.Final())
	}
}

func TestRunTrapezoidBeatsEulerOnRamp(t *testing.T) {
	src := signal.NewRamp(0, 1.0)
	cfg := Config{Acc0: 0, Dt: 0.1, Duration: 4.0}

	eRes, err := New(src, dda.NewEuler()).Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	tRes, err := New(src, dda.NewTrapezoid()).Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	// accumulator tracks the negative integral
	want := -src.Integral(0, 4.0)

	eErr := math.Abs(eRes.Final() - want)
	tErr := math.Abs(tRes.Final() - want)
	if tErr > eErr {
		t.Errorf("trapezoid error %e exceeds euler error %e", tErr, eErr)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	d := New(signal.NewConstant(1.0), dda.NewEuler())

	if _, err := d.Run(context.Background(), Config{Dt: 0, Duration: 1}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for dt=0, got %v", err)
	}
	if _, err := d.Run(context.Background(), Config{Dt: 0.1, Duration: -1}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig for negative duration, got %v", err)
	}
}

func TestRunNoRule(t *testing.T) {
	d := New(signal.NewConstant(1.0), nil)
	if _, err := d.Run(context.Background(), DefaultConfig()); !errors.Is(err, ErrNoRule) {
		t.Errorf("expected ErrNoRule, got %v", err)
	}
}

func TestRunCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := New(signal.NewConstant(1.0), dda.NewEuler())
	_, err := d.Run(ctx, DefaultConfig())
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRunValidateStops(t *testing.T) {
	src := signal.NewTable([]float64{0, 1}, []float64{1, math.Inf(1)})
	d := New(src, dda.NewEuler())

	cfg := Config{Acc0: 0, Dt: 1.0, Duration: 5.0, ValidateValue: true}
	result, err := d.Run(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Errors) != 1 {
		t.Fatalf("expected one step error, got %d", len(result.Errors))
	}
	if result.StepsTaken >= 5 {
		t.Errorf("expected early stop, took %d steps", result.StepsTaken)
	}
}

func TestRunVariableWidths(t *testing.T) {
	d := New(signal.NewConstant(2.0), dda.NewEuler())

	widths := []float64{1.0, 0.5, 0.5, 2.0, 1.0}
	result, err := d.RunVariable(context.Background(), 0, widths)
	if err != nil {
		t.Fatal(err)
	}

	// sum of widths is 5, constant sample 2 => -10
	if math.Abs(result.Final()-(-10.0)) > 1e-12 {
		t.Errorf("expected -10.0, got %f", result.Final())
	}
	if result.StepsTaken != len(widths) {
		t.Errorf("expected %d steps, got %d", len(widths), result.StepsTaken)
	}
}

func TestRunWithCallbackStopsEarly(t *testing.T) {
	d := New(signal.NewConstant(1.0), dda.NewEuler())

	calls := 0
	err := d.RunWithCallback(context.Background(), Config{Dt: 0.1, Duration: 10}, func(acc, sample, t float64) bool {
		calls++
		return calls < 3
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 3 {
		t.Errorf("expected 3 callbacks, got %d", calls)
	}
}

type countingMetric struct {
	calls int
}

func (c *countingMetric) Name() string                   { return "calls" }
func (c *countingMetric) Observe(acc, sample, t float64) { c.calls++ }
func (c *countingMetric) Value() float64                 { return float64(c.calls) }
func (c *countingMetric) Reset()                         { c.calls = 0 }

func TestRunMetricsObserved(t *testing.T) {
	d := New(signal.NewConstant(1.0), dda.NewEuler())
	m := &countingMetric{}
	d.AddMetric(m)

	result, err := d.Run(context.Background(), Config{Dt: 1.0, Duration: 7.0})
	if err != nil {
		t.Fatal(err)
	}

	if result.Metrics["calls"] != 7 {
		t.Errorf("expected 7 observations, got %f", result.Metrics["calls"])
	}
}
