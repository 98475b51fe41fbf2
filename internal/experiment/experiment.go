package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/ddalab/internal/dda"
	"github.com/san-kum/ddalab/internal/driver"
	"github.com/san-kum/ddalab/internal/signal"
)

type Config struct {
	Signal   string
	Rule     string
	Acc0     float64
	Dt       float64
	Duration float64
	Params   map[string]float64
}

type Experiment struct {
	cfg Config
	drv *driver.Driver
}

func New(cfg Config) *Experiment {
	return &Experiment{cfg: cfg}
}

func (e *Experiment) Setup(src signal.Source, rule dda.Rule, mets []driver.Metric) error {
	e.drv = driver.New(src, rule)
	for _, m := range mets {
		e.drv.AddMetric(m)
	}
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*driver.Result, error) {
	if e.drv == nil {
		return nil, fmt.Errorf("experiment not setup")
	}

	cfg := driver.Config{
		Acc0:          e.cfg.Acc0,
		Dt:            e.cfg.Dt,
		Duration:      e.cfg.Duration,
		ValidateValue: true,
	}

	return e.drv.Run(ctx, cfg)
}

// Driver returns the underlying driver for adding observers.
func (e *Experiment) Driver() *driver.Driver {
	return e.drv
}
