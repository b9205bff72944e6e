package angles

// DifferenceTo returns the signed smallest difference from other to a, in
// (-half turn, half turn] of the receiver's unit.
func (a Angle[T]) DifferenceTo(other Measure) Angle[T] {
	p := a.precision()

	difference := p.narrow(float64(a.value) - float64(a.adopt(other)))

	a.value = fromFloat[T](p.signedFold(difference, a.unit))
	return a
}

// Lerp does a linear interpolation from lhs to rhs along the shorter arc,
// using the factor f. A value for f of 0 returns lhs, a value of 1 returns
// an angle coterminal with rhs. The result has the unit and kind of lhs.
func Lerp[T Number](f float64, lhs Angle[T], rhs Measure) Angle[T] {
	p := lhs.precision()

	// the difference from lhs towards rhs
	d := lhs.DifferenceTo(rhs).Neg()

	lhs.value = fromFloat[T](p.narrow(float64(lhs.value) + f*float64(d.value)))
	return lhs
}
