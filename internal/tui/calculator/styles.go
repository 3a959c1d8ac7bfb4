// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     calculator
// Description: Styles for the calculator TUI
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package calculator

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray

	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800
	ColorText    = lipgloss.Color("#F8FAFC") // Slate 50
)

var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	TranscriptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorMuted).
			Padding(0, 1)

	InputLineStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	ResultStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	DurationStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
