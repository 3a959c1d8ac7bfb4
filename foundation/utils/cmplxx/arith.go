// File: arith.go
// Title: Complex Arithmetic
// Description: Conjugate, negation, reciprocal, the four arithmetic operators
//              and multiplication by real and imaginary scalars.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package cmplxx

// Conjugate returns re - im·i
func Conjugate(z Complex) Complex {
	return Complex{re: z.re, im: -z.im}
}

// Negative returns -z
func Negative(z Complex) Complex {
	return Complex{re: -z.re, im: -z.im}
}

// Inverse returns 1/z; ErrDivisionByZero when |z| = 0.
func Inverse(z Complex) (Complex, error) {
	abs := Abs(z)
	if abs == 0 {
		return Complex{}, divisionByZero("inverse")
	}
	t := 1 / abs
	return Complex{re: z.re * t * t, im: -z.im * t * t}, nil
}

// AreEqual reports exact component equality of a and b
func AreEqual(a, b Complex) bool {
	return a.Equal(b)
}

// Add returns a + b
func Add(a, b Complex) Complex {
	return Complex{re: a.re + b.re, im: a.im + b.im}
}

// Sub returns a - b
func Sub(a, b Complex) Complex {
	return Add(a, Negative(b))
}

// Mult returns a · b
func Mult(a, b Complex) Complex {
	return Complex{
		re: a.re*b.re - a.im*b.im,
		im: a.re*b.im + b.re*a.im,
	}
}

// Div returns a / b; ErrDivisionByZero when b is 0+0i.
func Div(a, b Complex) (Complex, error) {
	den := b.re*b.re + b.im*b.im
	if den == 0 {
		return Complex{}, divisionByZero("div")
	}
	return Complex{
		re: (a.re*b.re + a.im*b.im) / den,
		im: (a.im*b.re - a.re*b.im) / den,
	}, nil
}

// MultReal returns z · r for a real r
func MultReal(z Complex, r float64) Complex {
	return Complex{re: z.re * r, im: z.im * r}
}

// MultIm returns z · (r·i) for a real r
func MultIm(z Complex, r float64) Complex {
	return Complex{re: -z.im * r, im: z.re * r}
}
