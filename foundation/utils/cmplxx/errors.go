// File: errors.go
// Title: Complex Arithmetic Errors
// Description: Sentinel errors and constructors for undefined complex
//              operations.
// Author: msto63
// Version: v0.1.0
// Created: 2025-08-02
// Modified: 2025-08-02
//
// Change History:
// - 2025-08-02 v0.1.0: Initial implementation

package cmplxx

import (
	"github.com/msto63/cardano/foundation/core/errors"
	mdwerror "github.com/msto63/cardano/foundation/core/error"
)

var (
	// ErrDivisionByZero matches every error raised for a zero denominator or
	// a zero magnitude operand.
	ErrDivisionByZero = mdwerror.New("division by zero").WithCode(mdwerror.CodeDivisionByZero)

	// ErrDomain matches every error raised when an argument falls outside
	// the range (-π, π].
	ErrDomain = mdwerror.New("argument outside (-pi, pi]").WithCode(mdwerror.CodeDomainError)
)

func divisionByZero(operation string) error {
	return errors.CmplxxDivisionByZero(operation)
}

func domainError(operation string, value float64) error {
	return errors.CmplxxDomainError(operation, value)
}

// Must returns z and panics if err is not nil.
//
//	w := cmplxx.Must(cmplxx.Div(a, b))
func Must(z Complex, err error) Complex {
	if err != nil {
		panic(err)
	}
	return z
}

// MustFloat is Must for scalar results such as Arg.
func MustFloat(f float64, err error) float64 {
	if err != nil {
		panic(err)
	}
	return f
}
