// File: magnitude.go
// Title: Magnitude, Argument and Roots
// Description: Squared magnitude, magnitude, argument and the square root
//              of complex and real values.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package cmplxx

import "math"

// Abs2 returns re² + im²
func Abs2(z Complex) float64 {
	return z.re*z.re + z.im*z.im
}

// Abs returns the magnitude √(re² + im²)
func Abs(z Complex) float64 {
	return math.Sqrt(Abs2(z))
}

// Norm is an alias for Abs
func Norm(z Complex) float64 {
	return Abs(z)
}

// Arg returns the angle of z in (-π, π]. An angle outside [-π, π] from the
// underlying arctangent is reported as ErrDomain.
func Arg(z Complex) (float64, error) {
	arg := math.Atan2(z.im, z.re)
	if arg > math.Pi || arg < -math.Pi {
		return 0, domainError("arg", arg)
	}
	return arg, nil
}

// Angle is an alias for Arg
func Angle(z Complex) (float64, error) {
	return Arg(z)
}

// Sqrt returns the principal square root of z. Both parts are scaled by the
// larger magnitude before the inner root so that neither overflows.
func Sqrt(z Complex) Complex {
	x := math.Abs(z.re)
	y := math.Abs(z.im)
	if x == 0 && y == 0 {
		return Complex{}
	}

	var w float64
	if x >= y {
		t := y / x
		w = math.Sqrt(x) * math.Sqrt(0.5*(1+math.Sqrt(1+t*t)))
	} else {
		t := x / y
		w = math.Sqrt(y) * math.Sqrt(0.5*(t+math.Sqrt(1+t*t)))
	}

	if z.re >= 0 {
		return Complex{re: w, im: z.im / (2 * w)}
	}
	i := w
	if z.im < 0 {
		i = -w
	}
	return Complex{re: z.im / (2 * i), im: i}
}

// SqrtReal returns √x, purely imaginary for negative x.
func SqrtReal(x float64) Complex {
	if x >= 0 {
		return Complex{re: math.Sqrt(x)}
	}
	return Complex{im: math.Sqrt(-x)}
}
