package angles

import "github.com/oliverbestmann/angles/gm"

// tolerance compares values with a fixed epsilon. Each ordering is shifted by
// epsilon on its own and is not derived from the others.
type tolerance float64

// toleranceBetween picks the epsilon for comparing revolutions of lhs with
// rhs. The receiver's epsilon wins, unless the receiver is exact, in which
// case the epsilon of the other kind is borrowed.
func toleranceBetween(lhs, rhs *precision) tolerance {
	switch {
	case lhs.exact && rhs.exact:
		return 0
	case lhs.exact:
		return tolerance(rhs.epsilon)
	default:
		return tolerance(lhs.epsilon)
	}
}

func (t tolerance) equal(a, b float64) bool {
	return gm.Abs(a-b) <= float64(t)
}

func (t tolerance) greater(a, b float64) bool {
	return a > b+float64(t)
}

func (t tolerance) greaterOrEqual(a, b float64) bool {
	return a >= b-float64(t)
}

func (t tolerance) less(a, b float64) bool {
	return a+float64(t) < b
}

func (t tolerance) lessOrEqual(a, b float64) bool {
	return a-float64(t) <= b
}

func (t tolerance) compare(a, b float64) Ordering {
	switch {
	case t.less(a, b):
		return Less
	case t.greater(a, b):
		return Greater
	default:
		return Equal
	}
}
