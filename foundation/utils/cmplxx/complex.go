// File: complex.go
// Title: Complex Value Type
// Description: Implements the immutable Complex value with constructors,
//              accessors, string rendering and JSON encoding.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package cmplxx

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// DefaultFormat renders both parts with four significant digits and an
// explicitly signed imaginary part, e.g. "0.3-0.5i".
const DefaultFormat = "%.4g%+.4gi"

// Complex is an immutable complex number re + im·i.
// The zero value is 0+0i. Values compare with == by exact component equality.
type Complex struct {
	re float64
	im float64
}

// New returns re + im·i. NaN and infinite parts are accepted as given.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// Zero returns 0+0i
func Zero() Complex {
	return Complex{}
}

// One returns 1+0i
func One() Complex {
	return Complex{re: 1}
}

// I returns the imaginary unit 0+1i
func I() Complex {
	return Complex{im: 1}
}

// FromPolar returns the value with magnitude r and angle theta (radians).
func FromPolar(r, theta float64) Complex {
	return Complex{re: r * math.Cos(theta), im: r * math.Sin(theta)}
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(c complex128) Complex {
	return Complex{re: real(c), im: imag(c)}
}

// Complex128 converts z to the builtin complex128.
func (z Complex) Complex128() complex128 {
	return complex(z.re, z.im)
}

// Real returns the real part
func (z Complex) Real() float64 {
	return z.re
}

// Imaginary returns the imaginary part
func (z Complex) Imaginary() float64 {
	return z.im
}

// Im is a short alias for Imaginary
func (z Complex) Im() float64 {
	return z.im
}

// Components returns the real and imaginary parts
func (z Complex) Components() (re, im float64) {
	return z.re, z.im
}

// Equal reports exact equality of both components. There is no tolerance;
// 0 and -0 are equal, NaN is never equal to anything.
func (z Complex) Equal(other Complex) bool {
	return z.re == other.re && z.im == other.im
}

// IsZero reports whether both parts are zero
func (z Complex) IsZero() bool {
	return z.re == 0 && z.im == 0
}

// IsNaN reports whether either part is NaN
func (z Complex) IsNaN() bool {
	return math.IsNaN(z.re) || math.IsNaN(z.im)
}

// IsInf reports whether either part is infinite
func (z Complex) IsInf() bool {
	return math.IsInf(z.re, 0) || math.IsInf(z.im, 0)
}

// String renders z with DefaultFormat
func (z Complex) String() string {
	return z.Format(DefaultFormat)
}

// Format renders z with a caller supplied pattern holding two float verbs,
// the first receiving the real part and the second the imaginary part.
func (z Complex) Format(pattern string) string {
	return fmt.Sprintf(pattern, z.re, z.im)
}

// GoString renders z as Go source
func (z Complex) GoString() string {
	return "cmplxx.New(" + strconv.FormatFloat(z.re, 'g', -1, 64) + ", " +
		strconv.FormatFloat(z.im, 'g', -1, 64) + ")"
}

type jsonComplex struct {
	Real      jsonFloat `json:"real"`
	Imaginary jsonFloat `json:"imaginary"`
}

// jsonFloat is a JSON number, or one of the strings "NaN", "+Inf" and
// "-Inf" for values JSON numbers cannot hold
type jsonFloat float64

func (f jsonFloat) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return []byte(strconv.Quote(strconv.FormatFloat(v, 'g', -1, 64))), nil
	}
	return json.Marshal(v)
}

func (f *jsonFloat) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		text, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return fmt.Errorf("cmplxx: invalid component %s", data)
		}
		*f = jsonFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = jsonFloat(v)
	return nil
}

// MarshalJSON encodes z as {"real":…,"imaginary":…}. NaN and infinite parts
// are written as the strings "NaN", "+Inf" and "-Inf".
func (z Complex) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonComplex{Real: jsonFloat(z.re), Imaginary: jsonFloat(z.im)})
}

// UnmarshalJSON decodes {"real":…,"imaginary":…}; missing parts are zero.
func (z *Complex) UnmarshalJSON(data []byte) error {
	var v jsonComplex
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*z = Complex{re: float64(v.Real), im: float64(v.Imaginary)}
	return nil
}

// IsComplex reports whether v holds a Complex or a non-nil *Complex.
func IsComplex(v interface{}) bool {
	switch c := v.(type) {
	case Complex:
		return true
	case *Complex:
		return c != nil
	default:
		return false
	}
}
