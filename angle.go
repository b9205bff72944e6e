package angles

import (
	"github.com/oliverbestmann/angles/gm"
)

// Angle is an angle with a magnitude of type T expressed in a Unit.
// The zero value is an angle of zero radians.
type Angle[T Number] struct {
	value T
	unit  Unit
}

type Int = Angle[int32]
type Float = Angle[float32]
type Double = Angle[float64]

// Measure is implemented by Int, Float and Double. Every binary operation
// takes its right hand side as a Measure.
type Measure interface {
	Unit() Unit
	Kind() Kind

	// Revolutions returns the magnitude divided by one turn.
	Revolutions() float64

	String() string

	measure() (value float64, unit Unit, p *precision)
}

var _ Measure = Int{}
var _ Measure = Float{}
var _ Measure = Double{}

// New creates an angle of the given magnitude and unit.
func New[T Number](value T, unit Unit) Angle[T] {
	mustBeValid(unit)
	return Angle[T]{value: value, unit: unit}
}

// Rad creates an angle in radians.
func Rad[T Number](value T) Angle[T] {
	return Angle[T]{value: value, unit: Radians}
}

// Deg creates an angle in degrees.
func Deg[T Number](value T) Angle[T] {
	return Angle[T]{value: value, unit: Degrees}
}

// Grad creates an angle in gradians.
func Grad[T Number](value T) Angle[T] {
	return Angle[T]{value: value, unit: Gradians}
}

func Zero[T Number]() Angle[T] {
	return Angle[T]{unit: precisionOf[T]().constants}
}

// RightAngle returns a quarter turn. Float and Double express it in radians,
// Int in degrees.
func RightAngle[T Number]() Angle[T] {
	return namedTurn[T](func(t turns) float64 { return t.quarter })
}

// StraightAngle returns half a turn. Float and Double express it in radians,
// Int in degrees.
func StraightAngle[T Number]() Angle[T] {
	return namedTurn[T](func(t turns) float64 { return t.half })
}

// CompleteAngle returns one full turn. Float and Double express it in
// radians, Int in degrees.
func CompleteAngle[T Number]() Angle[T] {
	return namedTurn[T](func(t turns) float64 { return t.one })
}

func OneDegree[T Number]() Angle[T] {
	return Deg(T(1))
}

func OneRadian[T Number]() Angle[T] {
	return Rad(T(1))
}

func OneGradian[T Number]() Angle[T] {
	return Grad(T(1))
}

func namedTurn[T Number](pick func(t turns) float64) Angle[T] {
	p := precisionOf[T]()
	return Angle[T]{value: fromFloat[T](pick(p.turns[p.constants])), unit: p.constants}
}

// Value returns the magnitude of the angle in its current unit.
func (a Angle[T]) Value() T {
	return a.value
}

func (a Angle[T]) Unit() Unit {
	return a.unit
}

func (a Angle[T]) Kind() Kind {
	return a.precision().kind
}

// Revolutions returns the number of turns the angle spans, computed in the
// precision of the angle's kind. The result keeps its fraction for Int
// angles too.
func (a Angle[T]) Revolutions() float64 {
	return a.precision().revolutions(float64(a.value), a.unit)
}

// SetValue returns a copy of the angle with the magnitude replaced. The unit
// is kept.
func (a Angle[T]) SetValue(value T) Angle[T] {
	a.value = value
	return a
}

// SetAngle returns an angle with the given magnitude and unit.
func (a Angle[T]) SetAngle(value T, unit Unit) Angle[T] {
	return New(value, unit)
}

// Identical reports whether both angles have the same unit and exactly the
// same magnitude. Use Equal for a tolerant comparison of the angles.
func (a Angle[T]) Identical(other Angle[T]) bool {
	return a == other
}

func (a Angle[T]) precision() *precision {
	return precisionOf[T]()
}

func (a Angle[T]) measure() (float64, Unit, *precision) {
	return float64(a.value), a.unit, a.precision()
}

// adopt converts other into the unit of a. The conversion uses the table
// of other's own kind, the result is then narrowed into T.
func (a Angle[T]) adopt(other Measure) T {
	value, unit, p := other.measure()
	return fromFloat[T](p.store(p.convert(unit, a.unit, value)))
}

// fromFloat narrows a computed value into T. Int magnitudes are rounded
// half away from zero and saturate at the int32 range.
func fromFloat[T Number](value float64) T {
	var zero T
	if _, ok := any(zero).(int32); ok {
		return T(gm.RoundInt32(value))
	}

	return T(value)
}
