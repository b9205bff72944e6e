package angles

import "github.com/oliverbestmann/angles/gm"

// Max returns the angle spanning the most revolutions. Ties keep the first
// angle. It fails with ErrEmptySequence if no angle is given.
func Max[T Number](angles ...Angle[T]) (Angle[T], error) {
	return pick(angles, Angle[T].Revolutions, greater)
}

// Min returns the angle spanning the least revolutions, see Max.
func Min[T Number](angles ...Angle[T]) (Angle[T], error) {
	return pick(angles, Angle[T].Revolutions, less)
}

// MaxMagnitude returns the angle spanning the most revolutions in either
// direction, see Max.
func MaxMagnitude[T Number](angles ...Angle[T]) (Angle[T], error) {
	return pick(angles, absRevolutions[T], greater)
}

// MinMagnitude returns the angle spanning the least revolutions in either
// direction, see Max.
func MinMagnitude[T Number](angles ...Angle[T]) (Angle[T], error) {
	return pick(angles, absRevolutions[T], less)
}

func absRevolutions[T Number](a Angle[T]) float64 {
	return gm.Abs(a.Revolutions())
}

func greater(a, b float64) bool { return a > b }

func less(a, b float64) bool { return a < b }

func pick[T Number](angles []Angle[T], key func(Angle[T]) float64, better func(a, b float64) bool) (Angle[T], error) {
	if len(angles) == 0 {
		return Angle[T]{}, ErrEmptySequence
	}

	best := 0
	bestKey := key(angles[0])

	for idx := 1; idx < len(angles); idx++ {
		if candidate := key(angles[idx]); better(candidate, bestKey) {
			best = idx
			bestKey = candidate
		}
	}

	return angles[best], nil
}
