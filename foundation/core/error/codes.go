// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error classification
//              across the Cardano library and its service surfaces. Codes drive
//              errors.Is matching, log levels and RPC status translation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-08-02 v0.2.0: Added arithmetic codes, dropped platform specific codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"
	CodeCanceled     Code = "CANCELED"

	// Arithmetic
	CodeDivisionByZero Code = "DIVISION_BY_ZERO"
	CodeDomainError    Code = "DOMAIN_ERROR"

	// Storage
	CodeDatabaseError    Code = "DATABASE_ERROR"
	CodeConnectionFailed Code = "CONNECTION_FAILED"

	// Service and network
	CodeServiceUnavailable    Code = "SERVICE_UNAVAILABLE"
	CodeServiceInitialization Code = "SERVICE_INITIALIZATION"
	CodeNetworkError          Code = "NETWORK_ERROR"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout, CodeCanceled,
		CodeDivisionByZero, CodeDomainError,
		CodeDatabaseError, CodeConnectionFailed,
		CodeServiceUnavailable, CodeServiceInitialization, CodeNetworkError,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeDivisionByZero, CodeDomainError:
		return "arithmetic"
	case CodeDatabaseError, CodeConnectionFailed:
		return "database"
	case CodeServiceUnavailable, CodeServiceInitialization, CodeNetworkError:
		return "service"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}
