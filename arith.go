package angles

// Add returns the sum of both angles in the receiver's unit and kind.
func (a Angle[T]) Add(other Measure) Angle[T] {
	a.value += a.adopt(other)
	return a
}

// AddValue adds a magnitude that is already expressed in the angle's unit.
func (a Angle[T]) AddValue(value T) Angle[T] {
	a.value += value
	return a
}

// AddIn adds a magnitude expressed in the given unit.
func (a Angle[T]) AddIn(value T, unit Unit) Angle[T] {
	a.value += a.from(unit, value)
	return a
}

// Sub returns the difference of both angles in the receiver's unit and kind.
func (a Angle[T]) Sub(other Measure) Angle[T] {
	a.value -= a.adopt(other)
	return a
}

// SubValue subtracts a magnitude that is already expressed in the angle's
// unit.
func (a Angle[T]) SubValue(value T) Angle[T] {
	a.value -= value
	return a
}

// SubIn subtracts a magnitude expressed in the given unit.
func (a Angle[T]) SubIn(value T, unit Unit) Angle[T] {
	a.value -= a.from(unit, value)
	return a
}

// SubFrom returns value minus the angle, in the angle's unit.
func (a Angle[T]) SubFrom(value T) Angle[T] {
	a.value = value - a.value
	return a
}

func (a Angle[T]) Neg() Angle[T] {
	a.value = -a.value
	return a
}

// Inc adds one to the magnitude.
func (a Angle[T]) Inc() Angle[T] {
	a.value++
	return a
}

// Dec subtracts one from the magnitude.
func (a Angle[T]) Dec() Angle[T] {
	a.value--
	return a
}

func (a Angle[T]) Mul(factor T) Angle[T] {
	a.value *= factor
	return a
}

// Div divides the magnitude. Dividing an Int by zero panics with a runtime
// error just like the integer division it is.
func (a Angle[T]) Div(divisor T) Angle[T] {
	a.value /= divisor
	return a
}

// Mod returns the truncated remainder of the magnitude divided by m.
// The result has the sign of the magnitude.
func (a Angle[T]) Mod(m T) Angle[T] {
	p := a.precision()
	if p.integral {
		a.value = T(int32(a.value) % int32(m))
		return a
	}

	a.value = fromFloat[T](p.mod(float64(a.value), float64(m)))
	return a
}

// from converts a magnitude given in unit into the angle's unit.
func (a Angle[T]) from(unit Unit, value T) T {
	p := a.precision()
	return fromFloat[T](p.store(p.convert(unit, a.unit, float64(value))))
}
