// Package angles provides unit aware angle values in three numeric
// precisions.
//
// An Angle stores a magnitude together with the Unit it is expressed in:
// Radians, Degrees or Gradians. The magnitude is always read in terms of that
// unit, the library never assumes one. Three kinds of angles exist:
//
//	Int    = Angle[int32]    coarse constants, magnitudes rounded half away from zero
//	Float  = Angle[float32]  evaluated in single precision, epsilon 1e-4
//	Double = Angle[float64]  evaluated in double precision, epsilon 1e-8
//
// Angles are immutable values. Every method that changes an angle returns a
// new one.
//
// # Receiver unit wins
//
// Every binary operation accepts any of the three kinds through the Measure
// interface. The right hand side is first converted into the unit of the
// receiver, using the conversion table of its own kind, and then narrowed into
// the receiver's precision. The result always has the receiver's unit and
// kind:
//
//	angles.Deg(90.0).Add(angles.Rad[float32](math.Pi)) // ~270 Degrees (AngleDouble)
//
// Use PrecisionConservingAdd and PrecisionConservingSub to combine a narrow
// angle with a wider one without losing precision.
//
// # Tolerance
//
// Equality and ordering compare revolutions, the magnitude divided by one
// turn, tolerant to the epsilon of the receiver's kind. Each ordering operator
// is shifted by epsilon on its own, so tolerant equality is not transitive.
// Two Int angles compare exactly, an Int against a Float or Double borrows the
// other kind's epsilon.
package angles
