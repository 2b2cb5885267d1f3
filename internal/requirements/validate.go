package requirements

import "strings"

// Validate checks that a Model is complete enough to generate from.
// A valid model has a non-empty narrative and at least one scenario in
// any of the four lists. Validation only produces errors, never warnings.
func Validate(m *Model) ValidationResult {
	var errors []string

	if m == nil {
		return ValidationResult{
			Valid:  false,
			Errors: []string{"requirements are missing"},
		}
	}

	if strings.TrimSpace(m.Narrative) == "" {
		errors = append(errors, "user story (narrative) is required")
	}

	if m.ScenarioCount() == 0 {
		errors = append(errors, "at least one test scenario is required (acceptance criteria, happy path, edge case, or error case)")
	}

	return ValidationResult{
		Valid:  len(errors) == 0,
		Errors: errors,
	}
}
