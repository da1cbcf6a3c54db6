package generator

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// TestsMode selects how the RSpec capability is resolved.
type TestsMode string

const (
	// TestsAuto probes the project for RSpec.
	TestsAuto TestsMode = "auto"

	// TestsRSpec always generates spec files.
	TestsRSpec TestsMode = "rspec"

	// TestsNone never generates spec files.
	TestsNone TestsMode = "none"
)

// ValidTestsModes lists the accepted tests modes.
func ValidTestsModes() []string {
	return []string{string(TestsAuto), string(TestsRSpec), string(TestsNone)}
}

// ParseTestsMode parses a tests mode, defaulting "" to auto.
func ParseTestsMode(s string) (TestsMode, error) {
	switch TestsMode(s) {
	case "":
		return TestsAuto, nil
	case TestsAuto, TestsRSpec, TestsNone:
		return TestsMode(s), nil
	default:
		return "", fmt.Errorf("unknown tests mode %q", s)
	}
}

// Capabilities are facts about the host project resolved once per run.
type Capabilities struct {
	// RSpec enables the spec file steps.
	RSpec bool
}

// rspecMarkers are files whose presence means rspec-rails is set up.
var rspecMarkers = []string{"spec/rails_helper.rb", ".rspec"}

// DetectCapabilities resolves Capabilities for the project at root.
func DetectCapabilities(fs afero.Fs, root string, mode TestsMode) Capabilities {
	switch mode {
	case TestsRSpec:
		return Capabilities{RSpec: true}
	case TestsNone:
		return Capabilities{}
	}

	for _, marker := range rspecMarkers {
		if ok, _ := afero.Exists(fs, filepath.Join(root, filepath.FromSlash(marker))); ok {
			return Capabilities{RSpec: true}
		}
	}

	gemfile, err := afero.ReadFile(fs, filepath.Join(root, "Gemfile"))
	if err == nil && bytes.Contains(gemfile, []byte("rspec-rails")) {
		return Capabilities{RSpec: true}
	}
	return Capabilities{}
}
