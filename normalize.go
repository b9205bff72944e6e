package angles

// Normalize folds the angle into the given range. The unit is kept.
func (a Angle[T]) Normalize(r NormalizationRange) Angle[T] {
	switch r {
	case ZeroToOneTurn:
		return a.NormalizeZeroToOneTurn()
	default:
		return a.NormalizeMinusHalfToHalf()
	}
}

// NormalizeZeroToOneTurn folds the angle into [0, one turn). Negative angles
// are folded using a floored modulo, so -10 degrees becomes 350 degrees.
func (a Angle[T]) NormalizeZeroToOneTurn() Angle[T] {
	a.value = fromFloat[T](a.zeroToOneTurn())
	return a
}

// NormalizeMinusHalfToHalf folds angles above half a turn into
// (-half turn, half turn] using a truncated modulo: the result is
// (value mod half turn) - half turn.
//
// Angles at or below half a turn are returned unchanged, this includes large
// negative angles. Angles above one and a half turns are not mapped onto
// their coterminal angle: 370 degrees becomes -170 degrees.
func (a Angle[T]) NormalizeMinusHalfToHalf() Angle[T] {
	p := a.precision()
	a.value = fromFloat[T](p.minusHalfToHalf(float64(a.value), a.unit))
	return a
}

// Quadrant returns the quadrant, 1 to 4, the angle's terminal side lies in.
// Angles on an axis belong to the quadrant ending there, zero belongs to the
// first one.
func (a Angle[T]) Quadrant() int {
	p := a.precision()

	normalized := a.zeroToOneTurn()
	quarter := p.quarterTurn(a.unit)

	border := quarter
	for quadrant := 1; quadrant < 4; quadrant++ {
		if normalized <= border {
			return quadrant
		}

		border = p.narrow(border + quarter)
	}

	return 4
}

// Reference returns the reference angle: the acute angle between the
// terminal side and the x axis.
func (a Angle[T]) Reference() T {
	p := a.precision()

	normalized := a.zeroToOneTurn()

	var reference float64
	switch a.Quadrant() {
	case 1:
		reference = normalized
	case 2:
		reference = p.halfTurn(a.unit) - normalized
	case 3:
		reference = normalized - p.halfTurn(a.unit)
	default:
		reference = p.oneTurn(a.unit) - normalized
	}

	return fromFloat[T](p.narrow(reference))
}

// Complementary returns a quarter turn minus the normalized angle.
func (a Angle[T]) Complementary() T {
	p := a.precision()
	return fromFloat[T](p.narrow(p.quarterTurn(a.unit) - a.zeroToOneTurn()))
}

// Supplementary returns half a turn minus the normalized angle.
func (a Angle[T]) Supplementary() T {
	p := a.precision()
	return fromFloat[T](p.narrow(p.halfTurn(a.unit) - a.zeroToOneTurn()))
}

func (a Angle[T]) zeroToOneTurn() float64 {
	return a.precision().zeroToOneTurn(float64(a.value), a.unit)
}
