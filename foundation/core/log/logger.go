// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type that provides structured logging with
//              contextual fields, selectable output formats and integration with
//              the structured error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2025-08-02 v0.2.0: Removed async buffering, user and correlation IDs;
//                       writes are serialized per output

package log

import (
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	mdwerror "github.com/msto63/cardano/foundation/core/error"
)

// Logger represents a structured logger with contextual information.
// The With* methods return modified copies; a Logger is never changed in place
// except through SetLevel.
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	writeMu   *sync.Mutex
	name      string

	contextFields Fields
	requestID     string

	enableCaller     bool
	callerSkipFrames int

	mutex sync.RWMutex
}

// Config represents logger configuration
type Config struct {
	Level            Level
	Format           Format
	Output           io.Writer
	Name             string
	EnableCaller     bool
	CallerSkipFrames int
}

// New creates a new logger with default configuration
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel()})
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stdout
	}

	return &Logger{
		level:            config.Level,
		formatter:        GetFormatter(config.Format),
		output:           output,
		writeMu:          &sync.Mutex{},
		name:             config.Name,
		contextFields:    make(Fields),
		enableCaller:     config.EnableCaller,
		callerSkipFrames: config.CallerSkipFrames,
	}
}

// WithLevel returns a copy with the minimum log level set
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat returns a copy writing in the given format
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.clone()
	clone.formatter = GetFormatter(format)
	return clone
}

// WithFormatter returns a copy using a custom formatter
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	clone := l.clone()
	clone.formatter = formatter
	return clone
}

// WithOutput returns a copy writing to output
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	clone.writeMu = &sync.Mutex{}
	return clone
}

// WithName returns a copy with the logger name set
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField returns a copy that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields returns a copy that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// WithRequestID returns a copy bound to a request ID
func (l *Logger) WithRequestID(requestID string) *Logger {
	clone := l.clone()
	clone.requestID = requestID
	return clone
}

// WithCaller returns a copy that records the calling function
func (l *Logger) WithCaller(skip int) *Logger {
	clone := l.clone()
	clone.enableCaller = true
	clone.callerSkipFrames = skip
	return clone
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// Fatal logs a fatal level message and exits the program
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields...)
	os.Exit(1)
}

// Audit logs an audit level message (always logged regardless of level)
func (l *Logger) Audit(message string, fields ...Fields) {
	l.log(LevelAudit, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// WarnWithErr logs a warning with an error object
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields...)
}

// LogError logs err at a level derived from its severity.
// Low severity errors are informational: a caller asked for something undefined.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	mdwErr, ok := err.(*mdwerror.Error)
	if !ok {
		l.log(LevelError, err.Error(), err)
		return
	}

	fields := Fields{
		"error_code":     mdwErr.Code().String(),
		"error_severity": mdwErr.Severity().String(),
	}
	if op := mdwErr.Operation(); op != "" {
		fields["error_operation"] = op
	}
	for k, v := range mdwErr.Details() {
		fields["error_"+k] = v
	}

	level := LevelError
	switch mdwErr.Severity() {
	case mdwerror.SeverityLow:
		level = LevelInfo
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, mdwErr.Message(), err, fields)
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.level
}

// SetLevel changes the log level in place
func (l *Logger) SetLevel(level Level) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.level = level
}

func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	l.mutex.RLock()
	if !level.ShouldLog(l.level) {
		l.mutex.RUnlock()
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.RequestID = l.requestID
	entry.Error = err

	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	formatter, output, writeMu := l.formatter, l.output, l.writeMu
	enableCaller, skip := l.enableCaller, l.callerSkipFrames
	l.mutex.RUnlock()

	for _, fieldSet := range fields {
		for k, v := range fieldSet {
			entry.Fields[k] = v
		}
	}

	if enableCaller {
		if function, file, line, ok := getCaller(skip); ok {
			entry.WithCaller(function, file, line)
		}
	}

	formatted, formatErr := formatter.Format(entry)
	if formatErr != nil {
		return
	}
	writeMu.Lock()
	output.Write(formatted)
	writeMu.Unlock()
}

func getCaller(extra int) (function, file string, line int, ok bool) {
	// getCaller, log, public method, user code
	pc, file, line, ok := runtime.Caller(3 + extra)
	if !ok {
		return "", "", 0, false
	}

	function = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if idx := strings.LastIndex(function, "."); idx != -1 {
			function = function[idx+1:]
		}
	}
	if idx := strings.LastIndex(file, "/"); idx != -1 {
		file = file[idx+1:]
	}

	return function, file, line, true
}

func (l *Logger) clone() *Logger {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return &Logger{
		level:            l.level,
		formatter:        l.formatter,
		output:           l.output,
		writeMu:          l.writeMu,
		name:             l.name,
		contextFields:    l.contextFields.Clone(),
		requestID:        l.requestID,
		enableCaller:     l.enableCaller,
		callerSkipFrames: l.callerSkipFrames,
	}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// Debug logs a debug message using the default logger
func Debug(message string, fields ...Fields) {
	GetDefault().Debug(message, fields...)
}

// Info logs an info message using the default logger
func Info(message string, fields ...Fields) {
	GetDefault().Info(message, fields...)
}

// Warn logs a warning message using the default logger
func Warn(message string, fields ...Fields) {
	GetDefault().Warn(message, fields...)
}

// Error logs an error message using the default logger
func Error(message string, fields ...Fields) {
	GetDefault().Error(message, fields...)
}
