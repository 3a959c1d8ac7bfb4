// File: timer.go
// Title: Performance Timer
// Description: Provides timing functionality for measuring operations and
//              logging their duration on completion.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2025-08-02 v0.1.1: Entry duration set on stop, checkpoints removed

package log

import (
	"time"
)

// Timer measures the duration of a single operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// WithFields adds multiple fields to be logged when the timer completes
func (t *Timer) WithFields(fields Fields) *Timer {
	for k, v := range fields {
		t.fields[k] = v
	}
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time.
// Stopping twice returns 0 and logs nothing.
func (t *Timer) Stop() time.Duration {
	return t.finish(t.level, t.operation+" completed", nil)
}

// StopWithError stops the timer and logs err with the elapsed time.
// The level is raised to at least warn.
func (t *Timer) StopWithError(err error) time.Duration {
	level := t.level
	if level < LevelWarn {
		level = LevelWarn
	}
	t.fields["success"] = false
	return t.finish(level, t.operation+" failed", err)
}

func (t *Timer) finish(level Level, message string, err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	t.fields["operation"] = t.operation
	t.fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6

	if t.logger != nil {
		t.logger.log(level, message, err, t.fields)
	}
	return elapsed
}

// Cancel cancels the timer without logging completion
func (t *Timer) Cancel() {
	t.stopped = true
}

// IsRunning returns true if the timer is still running
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

// Reset restarts the timer from now
func (t *Timer) Reset() {
	t.startTime = time.Now()
	t.stopped = false
}
