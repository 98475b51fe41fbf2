// Package dda implements the single-step integration rules used by the
// DDA driver loop.
//
// A rule advances a scalar accumulator holding the running integral of a
// sampled rate signal. Each step subtracts an approximation of
// sample*dx from the accumulator, so the accumulator tracks the negative
// integral of the signal over the elapsed steps:
//
//   - [Euler]: first-order, uses the current sample alone
//   - [Trapezoid]: second-order, averages the current and previous samples
//   - [MethodRungeKutta]: recognized but unimplemented, see [New]
//
// The rule is chosen once per instance via [New]; it is not switchable
// per call. Rules perform no validation of their numeric inputs. NaN and
// Inf propagate per IEEE-754, and the sign and magnitude of the step
// width are the caller's responsibility.
//
// # Thread Safety
//
// Rules are reentrant but not safe for concurrent use: a [Trapezoid]
// carries the previous sample between calls, so each concurrently
// running sequence must own its own Rule instance.
package dda
