package gm

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the set of floating point types the kernels can evaluate in.
type Float interface {
	~float32 | ~float64
}

// Signed is every type Abs accepts.
type Signed interface {
	constraints.Signed | constraints.Float
}

func Abs[T Signed](value T) T {
	if value < 0 {
		return -value
	}

	return value
}

// Mod returns the truncated remainder of x/y. The result has the sign of x.
func Mod[F Float](x, y F) F {
	switch x := any(x).(type) {
	case float32:
		return F(math32.Mod(x, float32(y)))
	case float64:
		return F(math.Mod(x, float64(y)))
	}

	return F(math.Mod(float64(x), float64(y)))
}

// FlooredMod returns the floored remainder of x/y. For a positive y the
// result is always in [0, y), even for negative x.
//
// It equals x - floor(x/y)*y, but derives the result from the exact
// truncated remainder, so it stays exact for large x.
func FlooredMod[F Float](x, y F) F {
	r := Mod(x, y)
	if r != 0 && (r < 0) != (y < 0) {
		r += y
	}

	// adding y to a tiny negative remainder can round up to y itself
	if y > 0 && r >= y {
		r = 0
	}

	return r
}

func Sin[F Float](x F) F {
	switch x := any(x).(type) {
	case float32:
		return F(math32.Sin(x))
	}

	return F(math.Sin(float64(x)))
}

func Cos[F Float](x F) F {
	switch x := any(x).(type) {
	case float32:
		return F(math32.Cos(x))
	}

	return F(math.Cos(float64(x)))
}

func Tan[F Float](x F) F {
	switch x := any(x).(type) {
	case float32:
		return F(math32.Tan(x))
	}

	return F(math.Tan(float64(x)))
}

// Sinh, Cosh and Tanh always evaluate in float64 and round the result
// back into F.

func Sinh[F Float](x F) F {
	return F(math.Sinh(float64(x)))
}

func Cosh[F Float](x F) F {
	return F(math.Cosh(float64(x)))
}

func Tanh[F Float](x F) F {
	return F(math.Tanh(float64(x)))
}
