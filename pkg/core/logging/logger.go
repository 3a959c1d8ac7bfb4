// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     logging
// Description: Key/value logging facade over the foundation logger
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package logging

import (
	mdwlog "github.com/msto63/cardano/foundation/core/log"
)

// Level represents log severity as configured by the command line
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) foundation() mdwlog.Level {
	switch l {
	case LevelDebug:
		return mdwlog.LevelDebug
	case LevelWarn:
		return mdwlog.LevelWarn
	case LevelError:
		return mdwlog.LevelError
	default:
		return mdwlog.LevelInfo
	}
}

// Logger wraps the foundation logger with key/value methods
type Logger struct {
	*mdwlog.Logger
	name string
}

// New creates a named logger using the package defaults
func New(name string) *Logger {
	return &Logger{
		Logger: NewLogger(defaultConfig(name)),
		name:   name,
	}
}

// Wrap adapts an already configured foundation logger
func Wrap(name string, logger *mdwlog.Logger) *Logger {
	return &Logger{Logger: logger.WithName(name).WithCaller(1), name: name}
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// WithLevel returns a new logger with the specified level
func (l *Logger) WithLevel(level Level) *Logger {
	return &Logger{
		Logger: l.Logger.WithLevel(level.foundation()),
		name:   l.name,
	}
}

// With returns a new logger carrying the given key/value pairs
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		Logger: l.Logger.WithFields(toFields(keysAndValues...)),
		name:   l.name,
	}
}

// Trace logs a trace message with key-value pairs
func (l *Logger) Trace(msg string, keysAndValues ...interface{}) {
	l.Logger.Trace(msg, toFields(keysAndValues...))
}

// TraceEnabled reports whether trace entries are written
func (l *Logger) TraceEnabled() bool {
	return l.Logger.IsLevelEnabled(mdwlog.LevelTrace)
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// WarnWithErr logs a warning that carries err
func (l *Logger) WarnWithErr(msg string, err error, keysAndValues ...interface{}) {
	l.Logger.WarnWithErr(msg, err, toFields(keysAndValues...))
}

// Audit logs an entry that is written regardless of the level
func (l *Logger) Audit(msg string, keysAndValues ...interface{}) {
	l.Logger.Audit(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to mdwlog.Fields.
// Non-string keys and a trailing key without value are dropped.
func toFields(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
