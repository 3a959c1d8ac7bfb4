// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Provides the error builder and common constructors used across
//              Cardano modules for consistent error patterns.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2025-08-02 v0.2.0: cmplxx constructors, severity derived from code when
//                       not set explicitly

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/cardano/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module      string
	operation   string
	message     string
	cause       error
	details     map[string]interface{}
	severity    mdwerror.Severity
	severitySet bool
	code        string
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: mdwerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Details sets multiple details at once
func (eb *ErrorBuilder) Details(details map[string]interface{}) *ErrorBuilder {
	for k, v := range details {
		eb.details[k] = v
	}
	return eb
}

// Severity sets the error severity. Without it the severity follows the code.
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = severity
	eb.severitySet = true
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code string) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	if eb.code == "" {
		eb.code = getModuleErrorCode(eb.module)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, eb.message)
	} else {
		err = mdwerror.New(eb.message)
	}

	code := mdwerror.Code(eb.code)
	severity := mdwerror.GetSeverityFromCode(code)
	if eb.severitySet {
		severity = eb.severity
	}

	return err.
		WithCode(code).
		WithSeverity(severity).
		WithOperation(eb.operation).
		WithDetails(eb.details)
}

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s: expected %s", module, operation, expected)).
		Code(CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation("format").
		Message(fmt.Sprintf("invalid format in %s", module)).
		Code(CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Code(CodeOperationFailed).
		Severity(mdwerror.SeverityHigh).
		Build()
}

// OutOfRange creates a standardized out-of-range error
func OutOfRange(module, operation string, value, min, max interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("validation failed: value %v is out of range [%v, %v]", value, min, max)).
		Code(CodeOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("item %v not found in %s.%s", identifier, module, operation)).
		Code(CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// Utility functions for error analysis

// ExtractDetails extracts all details from a structured error
func ExtractDetails(err error) map[string]interface{} {
	if mdwErr, ok := err.(*mdwerror.Error); ok {
		return mdwErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	details := ExtractDetails(err)
	if details != nil {
		if module, ok := details["module"].(string); ok {
			return module
		}
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	details := ExtractDetails(err)
	if details != nil {
		if operation, ok := details["operation"].(string); ok {
			return operation
		}
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// Cmplxx convenience functions

// CmplxxDivisionByZero reports a zero denominator in operation.
func CmplxxDivisionByZero(operation string) *mdwerror.Error {
	return NewErrorBuilder(ModuleCmplxx).
		Operation(operation).
		Message("division by zero").
		Code(CodeCmplxxDivisionByZero).
		Build()
}

// CmplxxDomainError reports a value outside the domain of operation.
func CmplxxDomainError(operation string, value interface{}) *mdwerror.Error {
	return NewErrorBuilder(ModuleCmplxx).
		Operation(operation).
		Message(fmt.Sprintf("value %v outside the domain of %s", value, operation)).
		Code(CodeCmplxxDomainError).
		Detail("value", value).
		Build()
}
