package dda_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/ddalab/internal/dda"
)

// Integrates a sampled signal over [0, t1] with a fixed step, sampling
// at the end of each step as the driver does, and returns the final
// accumulator.
func integrate(r dda.Rule, f func(t float64) float64, t1, dx float64) float64 {
	acc := 0.0
	t := 0.0
	steps := int(t1/dx + 0.5)
	for i := 0; i < steps; i++ {
		t += dx
		acc = r.Step(acc, f(t), dx)
	}
	return acc
}

var _ = Describe("integration rules", func() {
	Describe("euler", func() {
		It("is exact for a constant sample", func() {
			r := dda.NewEuler()
			acc := 1.0
			for i := 0; i < 100; i++ {
				acc = r.Step(acc, 3.0, 0.25)
			}
			Expect(acc).To(BeNumerically("~", 1.0-100*3.0*0.25, 1e-9))
		})

		It("carries no state between sequences", func() {
			r := dda.NewEuler()
			first := r.Step(0, 7.0, 0.1)
			r.Reset()
			Expect(r.Step(0, 7.0, 0.1)).To(Equal(first))
			Expect(r.Stateful()).To(BeFalse())
		})
	})

	Describe("trapezoid", func() {
		It("matches euler on a constant signal", func() {
			e := dda.NewEuler()
			tr := dda.NewTrapezoid()
			tr.Prime(2.0)

			accE, accT := 0.0, 0.0
			for i := 0; i < 50; i++ {
				accE = e.Step(accE, 2.0, 0.5)
				accT = tr.Step(accT, 2.0, 0.5)
			}
			Expect(accT).To(Equal(accE))
		})

		It("is at least as accurate as euler on a linear ramp", func() {
			// The accumulator tracks -t^2/2 for a ramp sample.
			ramp := func(t float64) float64 { return t }
			want := -4.0 * 4.0 / 2.0

			e := integrate(dda.NewEuler(), ramp, 4.0, 0.1)
			tr := dda.NewTrapezoid()
			tr.Prime(ramp(0))
			tz := integrate(tr, ramp, 4.0, 0.1)
			Expect(math.Abs(tz - want)).To(BeNumerically("<=", math.Abs(e-want)))
		})

		It("leaves the accumulator alone when dx is zero", func() {
			tr := dda.NewTrapezoid()
			tr.Prime(5.0)
			Expect(tr.Step(2.25, 9.0, 0)).To(Equal(2.25))
		})
	})

	Describe("runge-kutta", func() {
		It("is a recognized method that fails at construction", func() {
			r, err := dda.New(dda.MethodRungeKutta)
			Expect(r).To(BeNil())
			Expect(err).To(MatchError(dda.ErrNotImplemented))
		})
	})

	Describe("worked example", func() {
		It("reaches -10 after five unit steps of sample 2", func() {
			e, err := dda.New(dda.MethodEuler)
			Expect(err).NotTo(HaveOccurred())
			tr := dda.NewTrapezoid()
			tr.Prime(2.0)

			accE, accT := 0.0, 0.0
			for i := 0; i < 5; i++ {
				accE = e.Step(accE, 2.0, 1.0)
				accT = tr.Step(accT, 2.0, 1.0)
			}
			Expect(accE).To(Equal(-10.0))
			Expect(accT).To(Equal(-10.0))
		})
	})
})
