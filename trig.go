package angles

import (
	"fmt"

	"github.com/oliverbestmann/angles/gm"
)

// The trigonometric functions evaluate the angle in radians after folding it
// into one turn: Double angles into [0, 2π), Float and Int angles into
// (-π, π]. Int angles evaluate at the whole number of radians nearest to the
// folded angle, and round the result.

func (a Angle[T]) Sin() T {
	return a.evaluate(a.precision().sin)
}

func (a Angle[T]) Cos() T {
	return a.evaluate(a.precision().cos)
}

func (a Angle[T]) Tan() T {
	return a.evaluate(a.precision().tan)
}

func (a Angle[T]) Sinh() T {
	return a.evaluate(a.precision().sinh)
}

func (a Angle[T]) Cosh() T {
	return a.evaluate(a.precision().cosh)
}

func (a Angle[T]) Tanh() T {
	return a.evaluate(a.precision().tanh)
}

// Cot returns the cotangent. Float and Double angles never fail and return
// ±Inf at singular angles. Int angles fail with ErrDivideByZero, or with
// ErrOutOfRange if the result does not fit into an int32.
func (a Angle[T]) Cot() (T, error) {
	return a.reciprocal("cot", a.precision().tan)
}

// Sec returns the secant, see Cot for the failure modes.
func (a Angle[T]) Sec() (T, error) {
	return a.reciprocal("sec", a.precision().cos)
}

// Csc returns the cosecant, see Cot for the failure modes.
func (a Angle[T]) Csc() (T, error) {
	return a.reciprocal("csc", a.precision().sin)
}

func (a Angle[T]) Coth() (T, error) {
	return a.reciprocal("coth", a.precision().tanh)
}

func (a Angle[T]) Sech() (T, error) {
	return a.reciprocal("sech", a.precision().cosh)
}

func (a Angle[T]) Csch() (T, error) {
	return a.reciprocal("csch", a.precision().sinh)
}

func (a Angle[T]) evaluate(fn func(x float64) float64) T {
	return fromFloat[T](fn(a.trigArgument()))
}

func (a Angle[T]) reciprocal(name string, fn func(x float64) float64) (T, error) {
	p := a.precision()

	denominator := fn(a.trigArgument())

	if !p.integral {
		return fromFloat[T](p.div(1, denominator)), nil
	}

	if denominator == 0 {
		return 0, fmt.Errorf("%s of %s: %w", name, a, ErrDivideByZero)
	}

	value, ok := gm.TryRoundInt32(1 / denominator)
	if !ok {
		return 0, fmt.Errorf("%s of %s: %w", name, a, ErrOutOfRange)
	}

	return T(value), nil
}

// trigArgument returns the folded angle in radians.
func (a Angle[T]) trigArgument() float64 {
	p := a.precision()

	var folded float64
	switch p.trigRange {
	case ZeroToOneTurn:
		folded = p.zeroToOneTurn(float64(a.value), a.unit)
	default:
		folded = p.signedFold(float64(a.value), a.unit)
	}

	return p.store(p.convert(a.unit, Radians, folded))
}
