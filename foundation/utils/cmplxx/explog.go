// File: explog.go
// Title: Exponential, Logarithms and Powers
// Description: Complex exponential, natural, decimal and arbitrary base
//              logarithms and powers with complex or real exponents.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package cmplxx

import "math"

// Exp returns e^z
func Exp(z Complex) Complex {
	rho := math.Exp(z.re)
	return Complex{re: rho * math.Cos(z.im), im: rho * math.Sin(z.im)}
}

// Log returns the principal natural logarithm (ln|z|, arg z).
// Log of zero has a real part of -Inf.
func Log(z Complex) (Complex, error) {
	arg, err := Arg(z)
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: math.Log(Abs(z)), im: arg}, nil
}

// Log10 returns the base 10 logarithm
func Log10(z Complex) (Complex, error) {
	l, err := Log(z)
	if err != nil {
		return Complex{}, err
	}
	return MultReal(l, 1/math.Ln10), nil
}

// LogBase returns log(a)/log(b). A base whose logarithm is zero (b = 1)
// yields ErrDivisionByZero.
func LogBase(a, b Complex) (Complex, error) {
	la, err := Log(a)
	if err != nil {
		return Complex{}, err
	}
	lb, err := Log(b)
	if err != nil {
		return Complex{}, err
	}
	return Div(la, lb)
}

// Pow returns a^b. Zero raised to anything is 0+0i.
func Pow(a, b Complex) (Complex, error) {
	if a.IsZero() {
		return Complex{}, nil
	}
	theta, err := Arg(a)
	if err != nil {
		return Complex{}, err
	}
	logr := math.Log(Abs(a))
	rho := math.Exp(logr*b.re - b.im*theta)
	beta := theta*b.re + b.im*logr
	return Complex{re: rho * math.Cos(beta), im: rho * math.Sin(beta)}, nil
}

// PowReal returns z^r for a real exponent. Zero raised to anything is 0+0i.
func PowReal(z Complex, r float64) (Complex, error) {
	if z.IsZero() {
		return Complex{}, nil
	}
	theta, err := Arg(z)
	if err != nil {
		return Complex{}, err
	}
	rho := math.Exp(math.Log(Abs(z)) * r)
	beta := theta * r
	return Complex{re: rho * math.Cos(beta), im: rho * math.Sin(beta)}, nil
}
