package dda

import (
	"errors"
	"fmt"
)

// Errors for rule selection.
var (
	// ErrNotImplemented indicates a method that is recognized but has no
	// rule behind it.
	ErrNotImplemented = errors.New("dda: integration rule not implemented")

	// ErrUnknownMethod indicates a method name outside the known set.
	ErrUnknownMethod = errors.New("dda: unknown integration method")
)

type Method int

const (
	MethodEuler Method = iota
	MethodTrapezoid
	MethodRungeKutta
)

func (m Method) String() string {
	switch m {
	case MethodEuler:
		return "euler"
	case MethodTrapezoid:
		return "trapezoid"
	case MethodRungeKutta:
		return "rk"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

func ParseMethod(name string) (Method, error) {
	switch name {
	case "euler":
		return MethodEuler, nil
	case "trapezoid", "trapez":
		return MethodTrapezoid, nil
	case "rk", "runge-kutta":
		return MethodRungeKutta, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
}

// Rule is a single-step integration strategy. Step returns the
// accumulator after subtracting the rule's approximation of sample*dx.
type Rule interface {
	Method() Method
	Step(acc, sample, dx float64) float64

	// Stateful reports whether the rule carries state between steps.
	Stateful() bool

	// Reset discards any carried state so the rule can start a new
	// step sequence.
	Reset()
}

// New constructs the rule for a method. The choice is fixed for the
// lifetime of the instance.
//
// MethodRungeKutta is a recognized selection that fails with
// ErrNotImplemented: a Runge-Kutta rule needs to evaluate the rate at
// intermediate sub-step points, which the one-sample-per-step contract
// of Rule cannot provide. Implementing it means extending the contract
// with a derivative function, not picking an order here.
func New(m Method) (Rule, error) {
	switch m {
	case MethodEuler:
		return NewEuler(), nil
	case MethodTrapezoid:
		return NewTrapezoid(), nil
	case MethodRungeKutta:
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, m)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, m)
	}
}
