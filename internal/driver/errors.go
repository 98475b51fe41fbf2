package driver

import "errors"

// Domain errors for driver runs.
var (
	// ErrInvalidConfig indicates a non-positive step width or duration.
	ErrInvalidConfig = errors.New("driver: invalid run configuration")

	// ErrInvalidValue indicates the accumulator became NaN or Inf.
	ErrInvalidValue = errors.New("driver: accumulator not finite")

	// ErrNoRule indicates a driver constructed without a rule.
	ErrNoRule = errors.New("driver: no integration rule")
)
