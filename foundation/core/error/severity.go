// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper prioritization
//              and log level selection.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2025-08-02 v0.1.1: Severity mapping for arithmetic codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, unknown operation names
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects a single call
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: undefined arithmetic, database connection issues
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeServiceUnavailable:
		return SeverityCritical

	case CodeDivisionByZero, CodeDomainError, CodeDatabaseError,
		CodeConnectionFailed, CodeServiceInitialization:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed,
		CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
