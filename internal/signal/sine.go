package signal

import "math"

type Sine struct {
	Amplitude float64
	Omega     float64
}

func NewSine(amplitude, omega float64) *Sine {
	return &Sine{Amplitude: amplitude, Omega: omega}
}

func (s *Sine) Name() string { return "sine" }

func (s *Sine) Sample(t float64) float64 {
	return s.Amplitude * math.Sin(s.Omega*t)
}

func (s *Sine) Integral(t0, t1 float64) float64 {
	if s.Omega == 0 {
		return 0
	}
	return s.Amplitude / s.Omega * (math.Cos(s.Omega*t0) - math.Cos(s.Omega*t1))
}
