// File: doc.go
// Title: Package Documentation for cmplxx
// Description: Package cmplxx provides an immutable complex number type and
//              the elementary functions over it.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

// Package cmplxx provides complex numbers and the elementary functions over them.
//
// Package: cmplxx
// Title: Complex Arithmetic
// Description: An immutable Complex value together with arithmetic, exponential,
//              logarithmic, trigonometric, hyperbolic and inverse functions. All
//              functions are pure and safe for concurrent use; undefined results
//              are reported as structured errors rather than panics.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// # Overview
//
// Functions take their operands explicitly and return a new value:
//
//	a := cmplxx.New(0.3, 0.5)
//	b := cmplxx.New(1.0, -math.Pi/2)
//	fmt.Println(cmplxx.Add(a, b)) // 1.3-1.071i
//
// Operations that can be undefined return an error:
//
//	q, err := cmplxx.Div(a, cmplxx.Zero())
//	if errors.Is(err, cmplxx.ErrDivisionByZero) {
//		// zero denominator
//	}
//
// Must and MustFloat unwrap results where the operand is known to be valid.
//
// # Error Kinds
//
//   - ErrDivisionByZero: Inverse, Div, Tan and every function built on them
//     (Sec, Csc, Cot, Sech, Csch, Coth, the inverse reciprocals, Atan, LogBase)
//   - ErrDomain: raised by the range guard of Arg and propagated by Log, Pow,
//     PowReal and the inverse functions
//
// Both are *mdwerror.Error values carrying the module "cmplxx" and the failing
// operation as details. NaN and infinite values are never errors; they
// propagate by IEEE 754 rules.
//
// # Numerical Notes
//
// Sqrt scales by the larger component before the inner root. AsinAlt uses
// hypot based crossover formulas that stay accurate for large or nearly real
// arguments where Asin loses digits to cancellation.
//
// Cos returns (cos re·cosh im, sin re·sinh im) without negating the imaginary
// part; for non-real input this is the conjugate of the textbook value.
//
// Acosh returns the principal value: non-negative real part, and on the real
// segment [-1, 1] a non-negative imaginary part. Atanh of a real value
// outside (-1, 1) returns atanh(1/x) with an imaginary part of -π/2 for x > 1
// and π/2 for x < -1.
//
// # Formatting
//
// String renders with DefaultFormat ("%.4g%+.4gi"); Format accepts any
// pattern with two float verbs. Parsing from strings is not supported.
package cmplxx
