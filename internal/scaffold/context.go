package scaffold

import "context"

// Category classifies a scenario and selects the generation sub-variant.
type Category string

const (
	CategoryAcceptance    Category = "acceptance"
	CategoryHappy         Category = "happy"
	CategoryEdge          Category = "edge"
	CategoryError         Category = "error"
	CategoryAccessibility Category = "accessibility"
)

// Label returns the section title a category is grouped under in the
// generated file.
func (c Category) Label() string {
	switch c {
	case CategoryAcceptance:
		return "Acceptance Criteria"
	case CategoryHappy:
		return "Happy Path"
	case CategoryEdge:
		return "Edge Cases"
	case CategoryError:
		return "Error Handling"
	case CategoryAccessibility:
		return "Accessibility"
	}
	return string(c)
}

// CaseContext carries everything needed to generate one test case.
// It is built per scenario by the section builder and discarded once the
// test-case string has been produced.
type CaseContext struct {
	Subject     string   // component name, PascalCase
	Scenario    string   // one sentence describing the case
	Category    Category
	Description string   // normalized test name, "handle "-prefixed for edge/error
	Props       string   // free-text prop descriptor, may be empty
	Events      string   // free-text event descriptor, may be empty

	// Carried through for the assistant and remote generators only.
	Narrative          string
	AcceptanceCriteria []string
}

// NewCaseContext derives a CaseContext from a raw scenario sentence.
func NewCaseContext(subject, scenario string, category Category) CaseContext {
	desc := Normalize(scenario)
	if category == CategoryEdge || category == CategoryError {
		desc = "handle " + desc
	}
	return CaseContext{
		Subject:     subject,
		Scenario:    scenario,
		Category:    category,
		Description: desc,
	}
}

// IssueRef identifies the tracked issue a scaffold was generated for.
type IssueRef struct {
	Number int
	Title  string
}

// Options configures one generation call.
//
// When UseRemote is set the remote generator is tried first and the
// local scaffold (assistant or standard, per AssistantMode) is the
// fallback. With both flags false the standard scaffold is used.
type Options struct {
	Issue         *IssueRef
	UseRemote     bool
	AssistantMode bool
}

// Remote is the capability the orchestrator calls for remote-backed
// generation. Implementations must never fail loudly: any failure
// returns ok=false and the orchestrator falls back to a local scaffold.
type Remote interface {
	Generate(ctx context.Context, c CaseContext) (body string, ok bool)
}
