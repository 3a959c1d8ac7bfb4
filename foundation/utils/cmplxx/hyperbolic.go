// File: hyperbolic.go
// Title: Hyperbolic Functions
// Description: Hyperbolic functions of complex arguments, their reciprocals
//              and inverses.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package cmplxx

import "math"

// Sinh returns sinh z
func Sinh(z Complex) Complex {
	return Complex{
		re: math.Sinh(z.re) * math.Cos(z.im),
		im: math.Cosh(z.re) * math.Sin(z.im),
	}
}

// Cosh returns cosh z
func Cosh(z Complex) Complex {
	return Complex{
		re: math.Cosh(z.re) * math.Cos(z.im),
		im: math.Sinh(z.re) * math.Sin(z.im),
	}
}

// Tanh returns tanh z over the shared denominator cos²im + sinh²re.
// A zero denominator is not trapped and yields infinite or NaN parts.
func Tanh(z Complex) Complex {
	r, i := z.re, z.im
	ci, sr := math.Cos(i), math.Sinh(r)
	d := ci*ci + sr*sr
	return Complex{
		re: sr * math.Cosh(r) / d,
		im: 0.5 * math.Sin(2*i) / d,
	}
}

// Sech returns 1/cosh z
func Sech(z Complex) (Complex, error) {
	return Inverse(Cosh(z))
}

// Csch returns 1/sinh z
func Csch(z Complex) (Complex, error) {
	return Inverse(Sinh(z))
}

// Coth returns 1/tanh z
func Coth(z Complex) (Complex, error) {
	return Inverse(Tanh(z))
}

// Asinh returns -i·asin(i·z)
func Asinh(z Complex) (Complex, error) {
	w, err := Asin(MultIm(z, 1))
	if err != nil {
		return Complex{}, err
	}
	return MultIm(w, -1), nil
}

// Acosh returns the principal inverse hyperbolic cosine: ±i·acos z with a
// non-negative real part. Real input is computed directly so that the
// imaginary sign on [-1, 1] does not depend on rounding in acos.
func Acosh(z Complex) (Complex, error) {
	if z.im == 0 {
		x := z.re
		switch {
		case x >= 1:
			return Complex{re: math.Acosh(x)}, nil
		case x >= -1:
			return Complex{im: math.Acos(x)}, nil
		case x < -1:
			return Complex{re: math.Acosh(-x), im: math.Pi}, nil
		}
	}

	w, err := Acos(z)
	if err != nil {
		return Complex{}, err
	}
	if w.im > 0 {
		return MultIm(w, -1), nil
	}
	return MultIm(w, 1), nil
}

// Atanh returns atanh z. Real input inside (-1, 1) uses the real function;
// real input outside uses atanh(1/x) with an imaginary part of ∓π/2 opposite
// to the sign of x. Other input is computed as -i·atan(i·z).
func Atanh(z Complex) (Complex, error) {
	if z.im == 0 {
		x := z.re
		if x > -1 && x < 1 {
			return Complex{re: math.Atanh(x)}, nil
		}
		im := -math.Pi / 2
		if x < 0 {
			im = math.Pi / 2
		}
		return Complex{re: math.Atanh(1 / x), im: im}, nil
	}
	w, err := Atan(MultIm(z, 1))
	if err != nil {
		return Complex{}, err
	}
	return MultIm(w, -1), nil
}

// Asech returns acosh(1/z)
func Asech(z Complex) (Complex, error) {
	inv, err := Inverse(z)
	if err != nil {
		return Complex{}, err
	}
	return Acosh(inv)
}

// Acsch returns asinh(1/z)
func Acsch(z Complex) (Complex, error) {
	inv, err := Inverse(z)
	if err != nil {
		return Complex{}, err
	}
	return Asinh(inv)
}

// Acoth returns atanh(1/z)
func Acoth(z Complex) (Complex, error) {
	inv, err := Inverse(z)
	if err != nil {
		return Complex{}, err
	}
	return Atanh(inv)
}
