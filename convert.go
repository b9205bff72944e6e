package angles

// ConvertTo returns the angle converted into the given unit.
func (a Angle[T]) ConvertTo(unit Unit) Angle[T] {
	return Angle[T]{value: a.In(unit), unit: unit}
}

func (a Angle[T]) ToRadians() Angle[T] {
	return a.ConvertTo(Radians)
}

func (a Angle[T]) ToDegrees() Angle[T] {
	return a.ConvertTo(Degrees)
}

func (a Angle[T]) ToGradians() Angle[T] {
	return a.ConvertTo(Gradians)
}

// In returns the magnitude of the angle expressed in the given unit, without
// normalizing it.
func (a Angle[T]) In(unit Unit) T {
	p := a.precision()
	return fromFloat[T](p.convert(a.unit, unit, float64(a.value)))
}

func (a Angle[T]) Radians() T {
	return a.In(Radians)
}

func (a Angle[T]) Degrees() T {
	return a.In(Degrees)
}

func (a Angle[T]) Gradians() T {
	return a.In(Gradians)
}

// NormalizedIn normalizes the angle into the given range in its own unit and
// returns the result converted into unit.
//
//	angles.Rad(-math.Pi/2).NormalizedIn(angles.Degrees, angles.ZeroToOneTurn) // 270
func (a Angle[T]) NormalizedIn(unit Unit, r NormalizationRange) T {
	p := a.precision()
	normalized := p.normalize(float64(a.value), a.unit, r)
	return fromFloat[T](p.convert(a.unit, unit, normalized))
}
