// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     calculator
// Description: Transcript entries and message types of the calculator TUI
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package calculator

import (
	"time"

	"github.com/msto63/cardano/internal/cardano/service"
)

// EntryKind classifies a transcript line
type EntryKind int

const (
	EntryInput EntryKind = iota
	EntryResult
	EntryError
	EntryInfo
)

// Entry is one line of the transcript
type Entry struct {
	Kind     EntryKind
	Text     string
	Duration time.Duration
}

// evalResultMsg is sent when an evaluation finished
type evalResultMsg struct {
	result *service.Result
	err    error
}
