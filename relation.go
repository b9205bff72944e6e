package angles

// IsParallelTo reports whether the normalized angles differ by zero or by
// half a turn. Angles just below and just above a full turn are parallel.
func (a Angle[T]) IsParallelTo(other Measure) bool {
	p, lhs, rhs := a.normalizedWith(other)

	arc := p.arc(lhs, rhs, a.unit)

	return arc <= p.epsilon || p.abs(arc-p.halfTurn(a.unit)) <= p.epsilon
}

// IsPerpendicularTo reports whether the normalized angles differ by a quarter
// or by three quarters of a turn.
func (a Angle[T]) IsPerpendicularTo(other Measure) bool {
	p, lhs, rhs := a.normalizedWith(other)

	difference := p.abs(lhs - rhs)
	offset := p.narrow(difference - p.quarterTurn(a.unit))

	return p.abs(offset) <= p.epsilon || p.abs(offset-p.halfTurn(a.unit)) <= p.epsilon
}

// IsComplementaryTo reports whether the normalized angles add up to a quarter
// turn.
func (a Angle[T]) IsComplementaryTo(other Measure) bool {
	p, lhs, rhs := a.normalizedWith(other)
	return p.abs(p.narrow(lhs+rhs)-p.quarterTurn(a.unit)) <= p.epsilon
}

// IsSupplementaryTo reports whether the normalized angles add up to half a
// turn.
func (a Angle[T]) IsSupplementaryTo(other Measure) bool {
	p, lhs, rhs := a.normalizedWith(other)
	return p.abs(p.narrow(lhs+rhs)-p.halfTurn(a.unit)) <= p.epsilon
}

// IsCoterminalTo reports whether both angles share their terminal side, that
// is, they differ by a whole number of turns. The normalized difference is
// measured along the shorter arc, so 359.9999999 degrees is coterminal with
// zero.
func (a Angle[T]) IsCoterminalTo(other Measure) bool {
	p, lhs, rhs := a.normalizedWith(other)
	return p.arc(lhs, rhs, a.unit) <= p.epsilon
}

// DeltaTo returns the smaller arc between both angles, in [0, half turn],
// expressed in the receiver's unit.
func (a Angle[T]) DeltaTo(other Measure) Angle[T] {
	p, lhs, rhs := a.normalizedWith(other)
	return Angle[T]{value: fromFloat[T](p.arc(lhs, rhs, a.unit)), unit: a.unit}
}

func AreParallel[T Number](lhs Angle[T], rhs Measure) bool {
	return lhs.IsParallelTo(rhs)
}

func ArePerpendicular[T Number](lhs Angle[T], rhs Measure) bool {
	return lhs.IsPerpendicularTo(rhs)
}

func AreComplementary[T Number](lhs Angle[T], rhs Measure) bool {
	return lhs.IsComplementaryTo(rhs)
}

func AreSupplementary[T Number](lhs Angle[T], rhs Measure) bool {
	return lhs.IsSupplementaryTo(rhs)
}

func AreCoterminal[T Number](lhs Angle[T], rhs Measure) bool {
	return lhs.IsCoterminalTo(rhs)
}

// Delta returns the smaller arc between both angles, in [0, half turn],
// expressed in unit. Each angle is converted into unit and normalized in
// its own precision, the arc is computed in the precision of lhs.
func Delta[T Number](lhs Angle[T], rhs Measure, unit Unit) T {
	p := lhs.precision()

	lhsNormalized := lhs.ConvertTo(unit).zeroToOneTurn()

	value, rhsUnit, rp := rhs.measure()
	rhsNormalized := rp.zeroToOneTurn(rp.store(rp.convert(rhsUnit, unit, value)), unit)

	return fromFloat[T](p.arc(lhsNormalized, rhsNormalized, unit))
}

// arc returns the smaller arc between two normalized magnitudes.
func (p *precision) arc(lhs, rhs float64, unit Unit) float64 {
	delta := p.abs(lhs - rhs)
	if delta > p.halfTurn(unit)+p.epsilon {
		delta = p.narrow(p.oneTurn(unit) - delta)
	}

	return delta
}

// normalizedWith normalizes the receiver and other, converted into the
// receiver's unit and kind, into [0, one turn).
func (a Angle[T]) normalizedWith(other Measure) (*precision, float64, float64) {
	p := a.precision()

	lhs := p.zeroToOneTurn(float64(a.value), a.unit)
	rhs := p.zeroToOneTurn(float64(a.adopt(other)), a.unit)

	return p, lhs, rhs
}
