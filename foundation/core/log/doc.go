// Package log provides structured logging for the Cardano library and services.
//
// Package: log
// Title: Structured Logging Framework
// Description: This package implements structured logging with contextual fields,
//              JSON, text and console output, level filtering and integration with
//              the structured error type. Timers measure evaluations and log their
//              duration when stopped.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-08-02 v0.2.0: Reduced to synchronous output with deterministic field order
//
// Usage:
//
//	import mdwlog "github.com/msto63/cardano/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelInfo).
//		WithFormat(mdwlog.FormatJSON).
//		WithField("service", "cardano")
//
//	logger.Info("evaluation finished", mdwlog.Field("operation", "sqrt"))
//
//	timer := logger.StartTimer("evaluate")
//	// ... evaluate
//	timer.Stop()
//
//	// severity of a structured error selects the level
//	logger.LogError(err)
package log
