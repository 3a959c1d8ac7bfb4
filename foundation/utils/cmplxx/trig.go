// File: trig.go
// Title: Trigonometric Functions
// Description: Circular functions of complex arguments and their inverses,
//              including a cancellation free arcsine for real heavy inputs.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package cmplxx

import "math"

// Sin returns sin z
func Sin(z Complex) Complex {
	return Complex{
		re: math.Sin(z.re) * math.Cosh(z.im),
		im: math.Cos(z.re) * math.Sinh(z.im),
	}
}

// Cos returns (cos re · cosh im, sin re · sinh im).
//
// The imaginary part is not negated, so for non-real z the result is the
// conjugate of the textbook cos z. Sec and every caller inherit this.
func Cos(z Complex) Complex {
	return Complex{
		re: math.Cos(z.re) * math.Cosh(z.im),
		im: math.Sin(z.re) * math.Sinh(z.im),
	}
}

// Tan returns tan z; ErrDivisionByZero when 1 + tan²re·tanh²im is zero.
// At odd multiples of π/2 the parts are infinite rather than an error.
func Tan(z Complex) (Complex, error) {
	a, b := z.re, z.im
	ta, tb := math.Tan(a), math.Tanh(b)
	den := 1 + ta*ta*tb*tb
	if den == 0 {
		return Complex{}, divisionByZero("tan")
	}
	sech := 1 / math.Cosh(b)
	sec := 1 / math.Cos(a)
	return Complex{
		re: sech * sech * ta / den,
		im: sec * sec * tb / den,
	}, nil
}

// Sec returns 1/cos z
func Sec(z Complex) (Complex, error) {
	return Inverse(Cos(z))
}

// Csc returns 1/sin z
func Csc(z Complex) (Complex, error) {
	return Inverse(Sin(z))
}

// Cot returns 1/tan z
func Cot(z Complex) (Complex, error) {
	t, err := Tan(z)
	if err != nil {
		return Complex{}, err
	}
	return Inverse(t)
}

// Asin returns -i·log(i·z + √(1-z²)) without forming the imaginary unit.
func Asin(z Complex) (Complex, error) {
	t := Sqrt(Sub(One(), Mult(z, z)))
	l, err := Log(Complex{re: t.re - z.im, im: t.im + z.re})
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: l.im, im: -l.re}, nil
}

// Arcsine crossover points between the direct and the hypot based branches.
const (
	asinCrossoverA = 1.5
	asinCrossoverB = 0.6417
)

// AsinAlt returns asin z using hypot based formulas that avoid cancellation
// for large or nearly real arguments. Real input is delegated to AsinReal.
func AsinAlt(z Complex) Complex {
	if z.im == 0 {
		return AsinReal(z.re)
	}

	x := math.Abs(z.re)
	y := math.Abs(z.im)
	r := math.Hypot(x+1, y)
	s := math.Hypot(x-1, y)
	a := (r + s) / 2
	b := x / a
	y2 := y * y

	var re float64
	switch {
	case b <= asinCrossoverB:
		re = math.Asin(b)
	case x <= 1:
		d := 0.5 * (a + x) * (y2/(r+x+1) + (s + (1 - x)))
		re = math.Atan2(x, math.Sqrt(d))
	default:
		ax := a + x
		d := 0.5 * (ax/(r+x+1) + ax/(s+(x-1)))
		re = math.Atan2(x, y*math.Sqrt(d))
	}

	var im float64
	if a <= asinCrossoverA {
		var m float64
		if x < 1 {
			m = 0.5 * (y2/(r+(x+1)) + y2/(s+(1-x)))
		} else {
			m = 0.5 * (y2/(r+(x+1)) + (s + (x - 1)))
		}
		im = math.Log1p(m + math.Sqrt(m*(a+1)))
	} else {
		im = math.Log(a + math.Sqrt(a*a-1))
	}

	if z.re < 0 {
		re = -re
	}
	if z.im < 0 {
		im = -im
	}
	return Complex{re: re, im: im}
}

// AsinReal returns asin x for real x. Outside [-1, 1] the real part is ±π/2
// following the sign of x and the imaginary part is ∓acosh|x|.
func AsinReal(x float64) Complex {
	switch {
	case math.Abs(x) <= 1:
		return Complex{re: math.Asin(x)}
	case x < 0:
		return Complex{re: -math.Pi / 2, im: math.Acosh(-x)}
	default:
		return Complex{re: math.Pi / 2, im: -math.Acosh(x)}
	}
}

// Acos returns -i·log(z + i·√(1-z²))
func Acos(z Complex) (Complex, error) {
	t := Sqrt(Sub(One(), Mult(z, z)))
	l, err := Log(Complex{re: z.re - t.im, im: z.im + t.re})
	if err != nil {
		return Complex{}, err
	}
	return Complex{re: l.im, im: -l.re}, nil
}

// Atan returns (i/2)·log((1-iz)/(1+iz)); ErrDivisionByZero at z = i.
func Atan(z Complex) (Complex, error) {
	iz := Complex{re: -z.im, im: z.re}
	q, err := Div(Sub(One(), iz), Add(One(), iz))
	if err != nil {
		return Complex{}, err
	}
	l, err := Log(q)
	if err != nil {
		return Complex{}, err
	}
	return MultIm(l, 0.5), nil
}

// Asec returns acos(1/z)
func Asec(z Complex) (Complex, error) {
	inv, err := Inverse(z)
	if err != nil {
		return Complex{}, err
	}
	return Acos(inv)
}

// Acsc returns asin(1/z)
func Acsc(z Complex) (Complex, error) {
	inv, err := Inverse(z)
	if err != nil {
		return Complex{}, err
	}
	return Asin(inv)
}

// Acot returns atan(1/z)
func Acot(z Complex) (Complex, error) {
	inv, err := Inverse(z)
	if err != nil {
		return Complex{}, err
	}
	return Atan(inv)
}
