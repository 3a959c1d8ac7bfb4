// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering and controlling log output.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2025-08-02 v0.1.1: Removed ANSI colors from levels, console styling moved
//                       to the console formatter

package log

import (
	"strings"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level, used for per-operation evaluation traces
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging purposes
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates potentially harmful situations
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError

	// LevelFatal represents critical errors that cause program termination
	LevelFatal

	// LevelAudit is always written regardless of the minimum level
	LevelAudit
)

var levelNames = map[Level][2]string{
	LevelTrace: {"trace", "TRC"},
	LevelDebug: {"debug", "DBG"},
	LevelInfo:  {"info", "INF"},
	LevelWarn:  {"warn", "WRN"},
	LevelError: {"error", "ERR"},
	LevelFatal: {"fatal", "FTL"},
	LevelAudit: {"audit", "AUD"},
}

// String returns the string representation of the log level
func (l Level) String() string {
	if names, ok := levelNames[l]; ok {
		return names[0]
	}
	return "unknown"
}

// ShortString returns a three letter representation of the log level
func (l Level) ShortString() string {
	if names, ok := levelNames[l]; ok {
		return names[1]
	}
	return "???"
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "information":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	case "audit", "aud":
		return LevelAudit, nil
	default:
		return LevelInfo, &ParseError{
			Input: level,
			Type:  "level",
		}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
