package angles

import "github.com/oliverbestmann/angles/gm"

// The classification predicates compare the angle as it is, without folding it
// into one turn first. An angle of 450 degrees is neither acute nor reflex.
// Use the IsNormalized variants to classify the terminal side instead.

func (a Angle[T]) IsPositive() bool {
	return a.Greater(Zero[T]())
}

func (a Angle[T]) IsNegative() bool {
	return a.Less(Zero[T]())
}

func (a Angle[T]) IsZero() bool {
	return a.Equal(Zero[T]())
}

// IsAcute reports whether the angle lies strictly between zero and a right
// angle.
func (a Angle[T]) IsAcute() bool {
	return a.Greater(Zero[T]()) && a.Less(RightAngle[T]())
}

func (a Angle[T]) IsRight() bool {
	return a.Equal(RightAngle[T]())
}

// IsObtuse reports whether the angle lies strictly between a right and a
// straight angle.
func (a Angle[T]) IsObtuse() bool {
	return a.Greater(RightAngle[T]()) && a.Less(StraightAngle[T]())
}

func (a Angle[T]) IsStraight() bool {
	return a.Equal(StraightAngle[T]())
}

// IsReflex reports whether the angle lies strictly between a straight angle
// and a full turn.
func (a Angle[T]) IsReflex() bool {
	return a.Greater(StraightAngle[T]()) && a.Less(CompleteAngle[T]())
}

func (a Angle[T]) IsComplete() bool {
	return a.Equal(CompleteAngle[T]())
}

func (a Angle[T]) IsNormalizedAcute() bool {
	eps, r := a.normalizedRevolutions()
	return r > eps && r < 0.25-eps
}

func (a Angle[T]) IsNormalizedRight() bool {
	eps, r := a.normalizedRevolutions()
	return gm.Abs(r-0.25) <= eps
}

func (a Angle[T]) IsNormalizedObtuse() bool {
	eps, r := a.normalizedRevolutions()
	return r > 0.25+eps && r < 0.5-eps
}

func (a Angle[T]) IsNormalizedStraight() bool {
	eps, r := a.normalizedRevolutions()
	return gm.Abs(r-0.5) <= eps
}

func (a Angle[T]) IsNormalizedReflex() bool {
	eps, r := a.normalizedRevolutions()
	return r > 0.5+eps && r < 1.0-eps
}

// IsNormalizedComplete reports whether the normalized angle is within epsilon
// below a full turn. A normalized angle never reaches one turn itself.
func (a Angle[T]) IsNormalizedComplete() bool {
	eps, r := a.normalizedRevolutions()
	return gm.Abs(r-1.0) <= eps
}

func (a Angle[T]) normalizedRevolutions() (float64, float64) {
	p := a.precision()
	return p.epsilon, p.div(a.zeroToOneTurn(), p.oneTurn(a.unit))
}
