package remote

import (
	"fmt"
	"strings"

	"github.com/redphase/redphase/internal/scaffold"
)

// BuildPrompt constructs the natural-language prompt for one test case.
// The backend is instructed to return only a test body so the
// orchestrator can wrap it in its own it() declaration.
func BuildPrompt(c scaffold.CaseContext, conventions string) string {
	var b strings.Builder

	b.WriteString("You are writing the body of one React Testing Library test.\n\n")
	fmt.Fprintf(&b, "Component: %s\n", c.Subject)
	fmt.Fprintf(&b, "Test category: %s\n", c.Category.Label())
	fmt.Fprintf(&b, "Scenario: %s\n", c.Scenario)
	if c.Narrative != "" {
		fmt.Fprintf(&b, "User story: %s\n", strings.ReplaceAll(c.Narrative, "\n", " "))
	}
	if c.Props != "" {
		fmt.Fprintf(&b, "Props: %s\n", c.Props)
	}
	if c.Events != "" {
		fmt.Fprintf(&b, "Events: %s\n", c.Events)
	}
	if len(c.AcceptanceCriteria) > 0 {
		b.WriteString("Acceptance criteria:\n")
		for i, ac := range c.AcceptanceCriteria {
			fmt.Fprintf(&b, "%d. %s\n", i+1, ac)
		}
	}

	if conventions != "" {
		b.WriteString("\nProject conventions:\n")
		b.WriteString(conventions)
		b.WriteString("\n")
	}

	b.WriteString("\nRules:\n")
	b.WriteString("- Return ONLY the test body. No it()/test() wrapper, no imports, no markdown.\n")
	b.WriteString("- Query the DOM with accessible queries (getByRole, getByLabelText) over test ids.\n")
	b.WriteString("- Structure the body as Arrange / Act / Assert with short comments.\n")
	fmt.Fprintf(&b, "- The component is already imported; render it with render(<%s />).\n", c.Subject)
	b.WriteString("- Use userEvent for interactions, not fireEvent.\n")

	return b.String()
}
