package angles

// Ordering is the result of comparing two angles.
type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1

	// Incomparable is returned by CompareAny for values that are not angles.
	Incomparable Ordering = 2
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "Incomparable"
	}
}

// Equal reports whether both angles span the same number of revolutions,
// within the tolerance of the receiver's kind.
func (a Angle[T]) Equal(other Measure) bool {
	tol, lhs, rhs := a.revolutionsWith(other)
	return tol.equal(lhs, rhs)
}

func (a Angle[T]) NotEqual(other Measure) bool {
	return !a.Equal(other)
}

// Greater reports whether a exceeds other by more than epsilon revolutions.
func (a Angle[T]) Greater(other Measure) bool {
	tol, lhs, rhs := a.revolutionsWith(other)
	return tol.greater(lhs, rhs)
}

// GreaterOrEqual reports whether a is at least other minus epsilon
// revolutions.
func (a Angle[T]) GreaterOrEqual(other Measure) bool {
	tol, lhs, rhs := a.revolutionsWith(other)
	return tol.greaterOrEqual(lhs, rhs)
}

// Less reports whether a falls short of other by more than epsilon
// revolutions.
func (a Angle[T]) Less(other Measure) bool {
	tol, lhs, rhs := a.revolutionsWith(other)
	return tol.less(lhs, rhs)
}

// LessOrEqual reports whether a is at most other plus epsilon revolutions.
func (a Angle[T]) LessOrEqual(other Measure) bool {
	tol, lhs, rhs := a.revolutionsWith(other)
	return tol.lessOrEqual(lhs, rhs)
}

// Compare orders both angles by their revolutions. A nil Measure is
// Incomparable.
func (a Angle[T]) Compare(other Measure) Ordering {
	if other == nil {
		return Incomparable
	}

	tol, lhs, rhs := a.revolutionsWith(other)
	return tol.compare(lhs, rhs)
}

// CompareAny is like Compare, but accepts any value. Values that are not an
// Int, Float or Double, or a non nil pointer to one, are Incomparable.
func (a Angle[T]) CompareAny(other any) Ordering {
	switch other := other.(type) {
	case Int:
		return a.Compare(other)
	case Float:
		return a.Compare(other)
	case Double:
		return a.Compare(other)
	case *Int:
		if other != nil {
			return a.Compare(*other)
		}
	case *Float:
		if other != nil {
			return a.Compare(*other)
		}
	case *Double:
		if other != nil {
			return a.Compare(*other)
		}
	}

	return Incomparable
}

// CompareNormalized compares both angles after normalizing them. Double and
// Int angles normalize into [0, one turn), Float angles use
// NormalizeMinusHalfToHalf. The tolerance is the receiver's epsilon, applied
// to the magnitudes in the receiver's unit.
func (a Angle[T]) CompareNormalized(other Measure) Ordering {
	p := a.precision()

	lhs := p.normalize(float64(a.value), a.unit, p.compareRange)
	rhs := p.normalize(float64(a.adopt(other)), a.unit, p.compareRange)

	return tolerance(p.epsilon).compare(lhs, rhs)
}

func (a Angle[T]) revolutionsWith(other Measure) (tolerance, float64, float64) {
	_, _, rhsPrecision := other.measure()
	return toleranceBetween(a.precision(), rhsPrecision), a.Revolutions(), other.Revolutions()
}
