package requirements

// Model holds the feature requirements a test scaffold is generated from.
// It is built once by a collector (interactive prompts, a markdown file,
// or an issue parser) and passed by value through the pipeline; nothing
// downstream mutates it.
type Model struct {
	Narrative          string   `json:"narrative"`
	AcceptanceCriteria []string `json:"acceptanceCriteria,omitempty"`
	HappyPath          []string `json:"happyPath,omitempty"`
	EdgeCases          []string `json:"edgeCases,omitempty"`
	ErrorCases         []string `json:"errorCases,omitempty"`
	Props              string   `json:"props,omitempty"`
	Events             string   `json:"events,omitempty"`
}

// ScenarioCount returns the total number of scenarios across all four lists.
func (m *Model) ScenarioCount() int {
	return len(m.AcceptanceCriteria) + len(m.HappyPath) + len(m.EdgeCases) + len(m.ErrorCases)
}

// ValidationResult holds the outcome of requirements validation.
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}
