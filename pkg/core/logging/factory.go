// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     logging
// Description: Factory functions and process wide defaults for loggers
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	mdwlog "github.com/msto63/cardano/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json", "text" or "console" (default: text)
	Format string

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

var (
	defaultsMu sync.RWMutex
	defaults   = LoggerConfig{Level: "warn", Format: "text"}
)

// DefaultLoggerConfig returns the process defaults for serviceName
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return defaultConfig(serviceName)
}

// SetDefaults replaces the level, format and output used by New.
// Loggers created before the call keep their configuration.
func SetDefaults(cfg LoggerConfig) {
	defaultsMu.Lock()
	defer defaultsMu.Unlock()
	defaults = cfg
}

func defaultConfig(serviceName string) LoggerConfig {
	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	cfg := defaults
	cfg.ServiceName = serviceName
	return cfg
}

// NewLogger creates a new foundation logger from cfg
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatText
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:            parseLevel(cfg.Level),
		Format:           format,
		Output:           output,
		Name:             cfg.ServiceName,
		EnableCaller:     true,
		CallerSkipFrames: 1,
	})
}

// NewServiceLogger creates a logger for a service at the given level
func NewServiceLogger(serviceName, level string) *mdwlog.Logger {
	cfg := defaultConfig(serviceName)
	cfg.Level = level
	return NewLogger(cfg)
}

// parseLevel converts a string level to mdwlog.Level
func parseLevel(level string) mdwlog.Level {
	parsed, err := mdwlog.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return mdwlog.LevelInfo
	}
	return parsed
}
