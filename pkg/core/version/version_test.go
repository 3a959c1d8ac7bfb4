package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Platform", Platform},
		{"Cmplxx", Cmplxx},
		{"Calculator", Calculator},
		{"CLI", CLI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.version == "" {
				t.Errorf("%s version is empty", tt.name)
			}
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		name      string
		component string
		expected  string
	}{
		{"cmplxx library", "cmplxx", Cmplxx},
		{"calculator service", "calculator", Calculator},
		{"cli", "cli", CLI},
		{"unknown component", "unknown", Platform},
		{"empty component", "", Platform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComponentVersion(tt.component)
			if result != tt.expected {
				t.Errorf("ComponentVersion(%q) = %q, want %q", tt.component, result, tt.expected)
			}
		})
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, "cardano "+Platform) {
		t.Errorf("String() = %q", s)
	}
	if !strings.Contains(s, "api "+API) {
		t.Errorf("String() = %q, want api version", s)
	}
}
