package angles

import "math"

// The inverse trigonometric functions compute the angle in radians and return
// it converted into the given unit. Int angles round the radians to a whole
// number before converting.

func Asin[T Number](sin float64, unit Unit) Angle[T] {
	return fromRadians[T](math.Asin(sin), unit)
}

func Acos[T Number](cos float64, unit Unit) Angle[T] {
	return fromRadians[T](math.Acos(cos), unit)
}

func Atan[T Number](tan float64, unit Unit) Angle[T] {
	return fromRadians[T](math.Atan(tan), unit)
}

// Atan2 returns the angle of the point (x, y), see math.Atan2.
func Atan2[T Number](y, x float64, unit Unit) Angle[T] {
	return fromRadians[T](math.Atan2(y, x), unit)
}

func Acot[T Number](cot float64, unit Unit) Angle[T] {
	return fromRadians[T](math.Atan(1/cot), unit)
}

// Acot2 returns the angle whose cotangent is y/x, measured from the y axis.
func Acot2[T Number](y, x float64, unit Unit) Angle[T] {
	return fromRadians[T](math.Atan2(x, y), unit)
}

func Asec[T Number](sec float64, unit Unit) Angle[T] {
	return fromRadians[T](math.Acos(1/sec), unit)
}

func Acsc[T Number](csc float64, unit Unit) Angle[T] {
	return fromRadians[T](math.Asin(1/csc), unit)
}

func Asinh[T Number](sinh float64, unit Unit) Angle[T] {
	return fromRadians[T](math.Asinh(sinh), unit)
}

func Acosh[T Number](cosh float64, unit Unit) Angle[T] {
	return fromRadians[T](math.Acosh(cosh), unit)
}

func Atanh[T Number](tanh float64, unit Unit) Angle[T] {
	return fromRadians[T](math.Atanh(tanh), unit)
}

func Acoth[T Number](coth float64, unit Unit) Angle[T] {
	return fromRadians[T](math.Atanh(1/coth), unit)
}

func Asech[T Number](sech float64, unit Unit) Angle[T] {
	return fromRadians[T](math.Acosh(1/sech), unit)
}

func Acsch[T Number](csch float64, unit Unit) Angle[T] {
	return fromRadians[T](math.Asinh(1/csch), unit)
}

func fromRadians[T Number](radians float64, unit Unit) Angle[T] {
	return Rad(fromFloat[T](radians)).ConvertTo(unit)
}
