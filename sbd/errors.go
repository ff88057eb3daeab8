package sbd

import (
	"errors"
	"fmt"
)

var (
	// ErrNotImplemented marks a sensor type whose layout is declared but
	// whose unpack routine does not exist yet. Permanent for that type,
	// not retryable.
	ErrNotImplemented = errors.New("sensor type not implemented")
)

// UnsupportedSensorTypeError reports a sensor type code with no registry
// entry.
type UnsupportedSensorTypeError struct {
	Code uint8
}

func (e UnsupportedSensorTypeError) Error() string {
	return fmt.Sprintf("unsupported sensor type %d", e.Code)
}

// SizeMismatchError reports a message whose byte count disagrees with the
// layout declared for its sensor type. No partial decode is attempted.
type SizeMismatchError struct {
	Expected int
	Actual   int
}

func (e SizeMismatchError) Error() string {
	return fmt.Sprintf("expected %d bytes, but received %d bytes", e.Expected, e.Actual)
}

// ShapeMismatchError reports a variable whose array length matches neither
// the scalar nor the spectral shape of a batch. This is an internal
// consistency fault, not bad input, so materialization fails hard.
type ShapeMismatchError struct {
	Variable string
	Got      int
	Want     int
}

func (e ShapeMismatchError) Error() string {
	return fmt.Sprintf("variable %q has %d elements, expected %d", e.Variable, e.Got, e.Want)
}
