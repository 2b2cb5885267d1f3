package scaffold

import (
	"fmt"
	"strings"
)

// AssistantScaffold produces a richly annotated test-case body. The
// dense, structured comments exist to give an in-editor completion
// assistant enough context to suggest a working implementation; the
// executable part of the body is the same red-phase placeholder the
// standard scaffold emits. It never fails.
func AssistantScaffold(c CaseContext) string {
	var b strings.Builder
	writeAssistantHeader(&b, c)

	switch c.Category {
	case CategoryAccessibility:
		writeAssistantAccessibilitySteps(&b, c)
	case CategoryError:
		writeAssistantErrorSteps(&b, c)
	default:
		writeAssistantStandardSteps(&b, c)
	}

	b.WriteString("const user = userEvent.setup();\n")
	fmt.Fprintf(&b, "render(<%s />);\n", c.Subject)
	b.WriteString("// TODO: follow the steps above\n")
	b.WriteString(Sentinel)
	return b.String()
}

func writeAssistantHeader(b *strings.Builder, c CaseContext) {
	fmt.Fprintf(b, "// Scenario: %s\n", c.Scenario)
	if c.Narrative != "" {
		fmt.Fprintf(b, "// Story: %s\n", strings.ReplaceAll(c.Narrative, "\n", " "))
	}
	if len(c.AcceptanceCriteria) > 0 {
		b.WriteString("// Acceptance criteria:\n")
		for i, ac := range c.AcceptanceCriteria {
			fmt.Fprintf(b, "//   %d. %s\n", i+1, ac)
		}
	}
	if c.Props != "" {
		fmt.Fprintf(b, "// Props: %s\n", c.Props)
	}
	if c.Events != "" {
		fmt.Fprintf(b, "// Events: %s\n", c.Events)
	}
	b.WriteString("//\n")
}

func writeAssistantStandardSteps(b *strings.Builder, c CaseContext) {
	fmt.Fprintf(b, "// STEP 1: Arrange - render %s in the state this scenario needs\n", c.Subject)
	b.WriteString("//   const user = userEvent.setup();\n")
	fmt.Fprintf(b, "//   render(<%s label=\"Submit\" onSubmit={handleSubmit} />);\n", c.Subject)
	b.WriteString("//\n")
	b.WriteString("// STEP 2: Act - perform the user behaviour\n")
	b.WriteString("//   await user.type(screen.getByLabelText(/email/i), 'person@example.com');\n")
	b.WriteString("//   await user.click(screen.getByRole('button', { name: /submit/i }));\n")
	b.WriteString("//\n")
	b.WriteString("// STEP 3: Assert - verify the visible outcome, not implementation details\n")
	b.WriteString("//   expect(screen.getByText(/success/i)).toBeInTheDocument();\n")
	b.WriteString("//   expect(handleSubmit).toHaveBeenCalledTimes(1);\n")
	b.WriteString("//\n")
}

func writeAssistantErrorSteps(b *strings.Builder, c CaseContext) {
	b.WriteString("// STEP 1: Arrange - mock the failure source and silence console noise\n")
	b.WriteString("//   const errorSpy = jest.spyOn(console, 'error').mockImplementation(() => {});\n")
	b.WriteString("//   const onError = jest.fn();\n")
	fmt.Fprintf(b, "//   render(<%s onError={onError} />);\n", c.Subject)
	b.WriteString("//\n")
	b.WriteString("// STEP 2: Act - trigger the failure described by the scenario\n")
	b.WriteString("//   await user.click(screen.getByRole('button', { name: /save/i }));\n")
	b.WriteString("//\n")
	b.WriteString("// STEP 3: Assert - the failure is reported, the component stays usable\n")
	b.WriteString("//   expect(onError).toHaveBeenCalledWith(expect.any(Error));\n")
	b.WriteString("//   expect(screen.getByRole('alert')).toBeInTheDocument();\n")
	b.WriteString("//\n")
}

func writeAssistantAccessibilitySteps(b *strings.Builder, c CaseContext) {
	switch {
	case mentionsAny(c, "keyboard"):
		b.WriteString("// STEP 1: Arrange - render and set up userEvent for keyboard input\n")
		fmt.Fprintf(b, "//   render(<%s />);\n", c.Subject)
		b.WriteString("//\n")
		b.WriteString("// STEP 2: Act - tab through every interactive element\n")
		b.WriteString("//   await user.tab();\n")
		b.WriteString("//   await user.keyboard('{Enter}');\n")
		b.WriteString("//\n")
		b.WriteString("// STEP 3: Assert - focus order is sensible and nothing is a keyboard trap\n")
		b.WriteString("//   expect(screen.getByRole('button')).toHaveFocus();\n")
	case mentionsAny(c, "screen reader", "aria"):
		b.WriteString("// STEP 1: Arrange - render with representative content\n")
		fmt.Fprintf(b, "//   render(<%s />);\n", c.Subject)
		b.WriteString("//\n")
		b.WriteString("// STEP 2: Assert - every element is reachable by role, not test id\n")
		b.WriteString("//   expect(screen.getByRole('heading')).toHaveAccessibleName(/.../ );\n")
		b.WriteString("//   expect(screen.getByLabelText(/email/i)).toBeInTheDocument();\n")
		b.WriteString("//\n")
		b.WriteString("// STEP 3: Assert - ARIA attributes cover what native semantics cannot\n")
		b.WriteString("//   expect(screen.getByRole('dialog')).toHaveAttribute('aria-modal', 'true');\n")
	default:
		b.WriteString("// STEP 1: Arrange - render with representative content\n")
		fmt.Fprintf(b, "//   render(<%s />);\n", c.Subject)
		b.WriteString("//\n")
		b.WriteString("// STEP 2: Assert - the accessibility checklist holds\n")
		b.WriteString("//   every interactive element is reachable by role\n")
		b.WriteString("//   images have alt text, form fields have labels\n")
		b.WriteString("//   colour is not the only carrier of meaning\n")
	}
	b.WriteString("//\n")
}
