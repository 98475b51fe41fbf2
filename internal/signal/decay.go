package signal

import "math"

type Decay struct {
	Amplitude float64
	Tau       float64
}

func NewDecay(amplitude, tau float64) *Decay {
	return &Decay{Amplitude: amplitude, Tau: tau}
}

func (d *Decay) Name() string { return "decay" }

func (d *Decay) Sample(t float64) float64 {
	return d.Amplitude * math.Exp(-t/d.Tau)
}

func (d *Decay) Integral(t0, t1 float64) float64 {
	return d.Amplitude * d.Tau * (math.Exp(-t0/d.Tau) - math.Exp(-t1/d.Tau))
}
