package dda

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Method() Method { return MethodEuler }
func (e *Euler) Stateful() bool { return false }
func (e *Euler) Reset()         {}

func (e *Euler) Step(acc, sample, dx float64) float64 {
	return acc - sample*dx
}
