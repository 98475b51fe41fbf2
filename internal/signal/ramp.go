package signal

type Ramp struct {
	Offset float64
	Slope  float64
}

func NewRamp(offset, slope float64) *Ramp {
	return &Ramp{Offset: offset, Slope: slope}
}

func (r *Ramp) Name() string { return "ramp" }

func (r *Ramp) Sample(t float64) float64 {
	return r.Offset + r.Slope*t
}

func (r *Ramp) Integral(t0, t1 float64) float64 {
	return r.Offset*(t1-t0) + r.Slope*(t1*t1-t0*t0)/2
}
