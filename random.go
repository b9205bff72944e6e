package angles

import (
	"github.com/oliverbestmann/angles/gm"
)

// Random returns an angle in the given unit, uniformly sampled from
// [0, one turn).
func Random[T Number](unit Unit) Angle[T] {
	p := precisionOf[T]()
	return sampled[T](gm.RandomIn(0, p.oneTurn(unit)), unit)
}

// RandomWith is like Random, but draws from the given source of uniform
// values in [0, 1), e.g. the Float64 method of a seeded *rand.Rand.
func RandomWith[T Number](next func() float64, unit Unit) Angle[T] {
	p := precisionOf[T]()
	return sampled[T](gm.RandomInWith(next, 0, p.oneTurn(unit)), unit)
}

func sampled[T Number](value float64, unit Unit) Angle[T] {
	magnitude := fromFloat[T](value)
	if float64(magnitude) >= precisionOf[T]().oneTurn(unit) {
		// rounding can land on the excluded end
		magnitude = 0
	}

	return New(magnitude, unit)
}
