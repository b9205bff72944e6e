// Package gm (stands for generic math) provides the scalar kernels the angle
// types are built on.
//
// Every function is generic over the floating point width, and evaluates in
// that width: float32 operands go through github.com/chewxy/math32, float64
// operands through the standard math package. This keeps single precision
// angles from silently computing in double precision.
package gm
