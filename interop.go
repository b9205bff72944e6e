package angles

import (
	"fmt"
	"log/slog"
	"math"
)

// Convert returns the angle as an angle of kind U, keeping its unit.
//
// Widening is exact. Narrowing rounds into U, an Int rounds half away from
// zero. Magnitudes beyond the range of U first get as many whole turns
// removed as needed to fit, which keeps the angle coterminal. If the removed
// turns cannot be represented exactly, the magnitude is reduced into a single
// turn instead. Infinite and NaN magnitudes are not folded.
func Convert[U, T Number](a Angle[T]) Angle[U] {
	source := a.precision()
	target := precisionOf[U]()

	value := float64(a.value)

	if math.Abs(value) > target.limit && !math.IsInf(value, 0) {
		one := source.oneTurn(a.unit)

		turns := math.Ceil((math.Abs(value) - target.limit) / one)
		folded := value - math.Copysign(turns*one, value)

		// both remainders are exact, they differ if the subtraction rounded
		if math.Abs(folded) > target.limit || math.Mod(folded, one) != math.Mod(value, one) {
			folded = math.Mod(value, one)
		}

		slog.Debug("Removed whole turns from angle exceeding the target kind",
			slog.String("from", source.kind.String()),
			slog.String("to", target.kind.String()),
			slog.Float64("turns", turns))

		value = folded
	}

	return Angle[U]{value: fromFloat[U](value), unit: a.unit}
}

func (a Angle[T]) ToInt() Int {
	return Convert[int32](a)
}

func (a Angle[T]) ToFloat() Float {
	return Convert[float32](a)
}

func (a Angle[T]) ToDouble() Double {
	return Convert[float64](a)
}

// PrecisionConservingAdd adds lhs to rhs and returns the result in the kind
// and unit of rhs. Use it with a wider rhs, where Add would truncate the sum
// to the kind of lhs:
//
//	angles.Deg[int32](10).Add(angles.Deg(0.4))                        // 10 Degrees (AngleInt)
//	angles.PrecisionConservingAdd(angles.Deg[int32](10), angles.Deg(0.4)) // 10.4 Degrees (AngleDouble)
//
// The kind of rhs must be at least as wide as the kind of lhs, it panics
// otherwise.
func PrecisionConservingAdd[N, W Number](lhs Angle[N], rhs Angle[W]) Angle[W] {
	mustBeWider[N, W]()
	return rhs.Add(lhs)
}

// PrecisionConservingSub subtracts rhs from lhs and returns the result in the
// kind and unit of rhs, see PrecisionConservingAdd.
func PrecisionConservingSub[N, W Number](lhs Angle[N], rhs Angle[W]) Angle[W] {
	mustBeWider[N, W]()
	return rhs.Sub(lhs).Neg()
}

func mustBeWider[N, W Number]() {
	narrow, wide := precisionOf[N]().kind, precisionOf[W]().kind
	if wide < narrow {
		panic(fmt.Sprintf("expected a kind at least as wide as %s, got %s", narrow, wide))
	}
}
