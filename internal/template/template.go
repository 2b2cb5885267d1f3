package template

import (
	_ "embed"
)

//go:embed setupTests.js
var SetupTests string

//go:embed test-utils.jsx
var TestUtils string

//go:embed jest.config.js
var JestConfig string

//go:embed config.yaml
var DefaultConfig string

// RedphaseDir is the name of the redphase configuration directory.
const RedphaseDir = ".redphase"

// File name constants for consistent usage across the codebase.
const (
	ConfigFile     = "config.yaml"
	ConventionsDir = "conventions" // Project conventions fed into remote prompts
)

// DefaultFiles returns the boilerplate installed into a target project,
// keyed by path relative to the project root.
func DefaultFiles() map[string]string {
	return map[string]string{
		"jest.config.js":               JestConfig,
		"src/setupTests.js":            SetupTests,
		"src/test-utils.jsx":           TestUtils,
		RedphaseDir + "/" + ConfigFile: DefaultConfig,
	}
}
