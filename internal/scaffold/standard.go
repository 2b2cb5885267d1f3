package scaffold

import (
	"fmt"
	"strings"
)

// Sentinel is the failing assertion every freshly generated test body
// ends with. A scaffolded test must fail until someone implements it;
// the content linter greps for this exact line.
const Sentinel = `expect(true).toBe(false); // RED PHASE: implement this test`

// Scaffold produces a standard test-case body for the given context.
// The body is not yet wrapped in an it() declaration. It never fails.
func Scaffold(c CaseContext) string {
	switch c.Category {
	case CategoryAccessibility:
		return accessibilityBody(c)
	case CategoryError:
		return errorBody(c)
	default:
		return standardBody(c)
	}
}

func standardBody(c CaseContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// Arrange: render %s in the state this scenario needs\n", c.Subject)
	if c.Props != "" {
		fmt.Fprintf(&b, "// Props: %s\n", c.Props)
	} else {
		b.WriteString("// TODO: pass the props this scenario needs\n")
	}
	fmt.Fprintf(&b, "render(<%s />);\n", c.Subject)
	b.WriteString("\n")
	b.WriteString("// Act: simulate the user behaviour for this scenario\n")
	fmt.Fprintf(&b, "// TODO: %s\n", c.Scenario)
	b.WriteString("\n")
	b.WriteString("// Assert: verify the visible outcome\n")
	fmt.Fprintf(&b, "expect(screen.getByTestId('%s-container')).toBeInTheDocument();\n", strings.ToLower(c.Subject))
	b.WriteString(Sentinel)
	return b.String()
}

func errorBody(c CaseContext) string {
	var b strings.Builder
	b.WriteString("// Arrange: spy on console.error so the failure path can be asserted\n")
	b.WriteString("const errorSpy = jest.spyOn(console, 'error').mockImplementation(() => {});\n")
	fmt.Fprintf(&b, "render(<%s />);\n", c.Subject)
	b.WriteString("\n")
	b.WriteString("// Act: trigger the failure described by this scenario\n")
	fmt.Fprintf(&b, "// TODO: %s\n", c.Scenario)
	b.WriteString("\n")
	b.WriteString("// Assert: the component surfaces the error without crashing\n")
	b.WriteString("// TODO: expect(screen.getByRole('alert')).toBeInTheDocument();\n")
	b.WriteString("expect(errorSpy).not.toHaveBeenCalled();\n")
	b.WriteString(Sentinel)
	return b.String()
}

// accessibilityBody picks one of three guidance variants by inspecting
// the scenario for keyboard or screen-reader wording. Matching is
// case-insensitive against both the raw scenario and the derived
// description so a pre-normalized scenario still dispatches correctly.
func accessibilityBody(c CaseContext) string {
	switch {
	case mentionsAny(c, "keyboard"):
		return keyboardBody(c)
	case mentionsAny(c, "screen reader", "aria"):
		return screenReaderBody(c)
	default:
		return genericAccessibilityBody(c)
	}
}

func mentionsAny(c CaseContext, terms ...string) bool {
	scenario := strings.ToLower(c.Scenario)
	desc := strings.ToLower(c.Description)
	for _, t := range terms {
		if strings.Contains(scenario, t) || strings.Contains(desc, t) {
			return true
		}
	}
	return false
}

func keyboardBody(c CaseContext) string {
	var b strings.Builder
	b.WriteString("// Arrange\n")
	b.WriteString("const user = userEvent.setup();\n")
	fmt.Fprintf(&b, "render(<%s />);\n", c.Subject)
	b.WriteString("\n")
	b.WriteString("// Act: walk the interactive elements with the keyboard\n")
	b.WriteString("// TODO: await user.tab() through every focusable element\n")
	b.WriteString("\n")
	b.WriteString("// Assert: focus is visible and reachable in a sensible order\n")
	b.WriteString("// TODO: expect(screen.getByRole('button')).toHaveFocus();\n")
	b.WriteString(Sentinel)
	return b.String()
}

func screenReaderBody(c CaseContext) string {
	var b strings.Builder
	b.WriteString("// Arrange\n")
	fmt.Fprintf(&b, "render(<%s />);\n", c.Subject)
	b.WriteString("\n")
	b.WriteString("// Assert: roles and labels are exposed to assistive technology\n")
	b.WriteString("// TODO: expect(screen.getByRole('...')).toHaveAccessibleName('...');\n")
	b.WriteString("// TODO: interactive elements have ARIA attributes where semantics fall short\n")
	b.WriteString(Sentinel)
	return b.String()
}

func genericAccessibilityBody(c CaseContext) string {
	var b strings.Builder
	b.WriteString("// Arrange\n")
	fmt.Fprintf(&b, "render(<%s />);\n", c.Subject)
	b.WriteString("\n")
	b.WriteString("// Assert: run through the accessibility checklist\n")
	b.WriteString("// TODO: every interactive element is reachable by role\n")
	b.WriteString("// TODO: images have alt text, form fields have labels\n")
	b.WriteString("// TODO: colour is not the only carrier of meaning\n")
	b.WriteString(Sentinel)
	return b.String()
}
