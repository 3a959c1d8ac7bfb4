// Package error provides structured error handling for the Cardano library.
//
// Package: error
// Title: Structured Error Handling
// Description: This package implements errors with codes, severities, details and
//              stack traces. Library packages create them through the module
//              constructors in core/errors; the logging and transport layers read
//              the code and severity back to choose log levels and status codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-08-02 v0.2.0: Code based errors.Is matching
//
// Usage:
//
//	import mdwerror "github.com/msto63/cardano/foundation/core/error"
//
//	err := mdwerror.New("division by zero").
//		WithCode(mdwerror.CodeDivisionByZero).
//		WithOperation("div").
//		WithDetail("module", "cmplxx")
//
//	wrapped := mdwerror.Wrap(err, "evaluation failed")
//	if mdwerror.HasCode(wrapped, mdwerror.CodeDivisionByZero) {
//		// the wrapped chain still carries the arithmetic code
//	}
//
// Sentinels: an *Error with a code matches every other *Error carrying the same
// code under errors.Is, so packages can export values such as
// cmplxx.ErrDivisionByZero for callers to test against.
package error
