// ============================================================================
// Cardano - Complex Arithmetic Service
// ============================================================================
//
// Package:     version
// Description: Central version management for the library, service and CLI
// Author:      msto63
// Created:     2025-08-02
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for all Cardano components
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	Cmplxx     = "1.0.0"
	Calculator = "1.0.0"
	CLI        = "1.0.0"

	// API is the gRPC package version served by the calculator
	API = "v1"
)

// Build metadata, set through -ldflags "-X" at release time
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cmplxx":
		return Cmplxx
	case "calculator":
		return Calculator
	case "cli":
		return CLI
	default:
		return Platform
	}
}

// String returns a one line description of the build
func String() string {
	return fmt.Sprintf("cardano %s (api %s, commit %s, built %s)", Platform, API, Commit, BuildDate)
}
