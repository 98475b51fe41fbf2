// Package signal provides the sampled rate sources that feed the DDA
// driver. Sources with a closed-form antiderivative implement [Exact],
// which the error metrics and convergence analysis use as ground truth.
package signal

// Source produces the rate sample at a given time.
type Source interface {
	Name() string
	Sample(t float64) float64
}

// Exact is implemented by sources whose integral has a closed form.
type Exact interface {
	Integral(t0, t1 float64) float64
}
