package angles

import (
	"errors"
	"fmt"
)

var ErrInvalidArgument = errors.New("invalid argument")

// ErrEmptySequence is returned by Max, Min, MaxMagnitude and MinMagnitude
// when called without any angle.
var ErrEmptySequence = fmt.Errorf("empty sequence: %w", ErrInvalidArgument)

var ErrUnknownUnit = fmt.Errorf("unknown unit: %w", ErrInvalidArgument)

// ErrDivideByZero is returned by the reciprocal trigonometric functions of
// Int angles at singular angles. Float and Double angles return ±Inf or NaN
// instead.
var ErrDivideByZero = errors.New("divide by zero")

// ErrOutOfRange is returned when an Int result does not fit into an int32.
var ErrOutOfRange = errors.New("value out of range")
