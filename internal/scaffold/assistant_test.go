package scaffold

import (
	"strings"
	"testing"
)

func TestAssistantScaffoldHeader(t *testing.T) {
	c := NewCaseContext("LoginForm", "Enter valid credentials", CategoryHappy)
	c.Narrative = "As a user, I want to log in"
	c.AcceptanceCriteria = []string{"Valid credentials are accepted", "Invalid ones show an error"}
	c.Props = "email: string"
	c.Events = "onSubmit"

	body := AssistantScaffold(c)

	for _, want := range []string{
		"// Scenario: Enter valid credentials",
		"// Story: As a user, I want to log in",
		"//   1. Valid credentials are accepted",
		"//   2. Invalid ones show an error",
		"// Props: email: string",
		"// Events: onSubmit",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("assistant header missing %q\nGot:\n%s", want, body)
		}
	}
}

func TestAssistantScaffoldSteps(t *testing.T) {
	c := NewCaseContext("LoginForm", "Enter valid credentials", CategoryHappy)

	body := AssistantScaffold(c)

	for _, want := range []string{
		"// STEP 1: Arrange",
		"// STEP 2: Act",
		"// STEP 3: Assert",
		"userEvent.setup()",
		"render(<LoginForm />);",
		Sentinel,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("assistant body missing %q\nGot:\n%s", want, body)
		}
	}
}

func TestAssistantScaffoldErrorSteps(t *testing.T) {
	c := NewCaseContext("Uploader", "Upload fails", CategoryError)

	body := AssistantScaffold(c)

	for _, want := range []string{
		"// STEP 1: Arrange - mock the failure source",
		"jest.spyOn(console, 'error')",
		"expect(onError).toHaveBeenCalledWith(expect.any(Error));",
		Sentinel,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("assistant error body missing %q\nGot:\n%s", want, body)
		}
	}
}

func TestAssistantScaffoldAccessibilityVariants(t *testing.T) {
	tests := []struct {
		scenario string
		want     string
	}{
		{"be keyboard navigable", "keyboard trap"},
		{"be accessible to screen readers", "reachable by role"},
		{"meet accessibility guidelines", "accessibility checklist"},
	}
	for _, tt := range tests {
		c := NewCaseContext("Widget", tt.scenario, CategoryAccessibility)
		body := AssistantScaffold(c)
		if !strings.Contains(body, tt.want) {
			t.Errorf("assistant accessibility body for %q missing %q\nGot:\n%s", tt.scenario, tt.want, body)
		}
		if !strings.HasSuffix(body, Sentinel) {
			t.Errorf("assistant accessibility body for %q does not end with sentinel", tt.scenario)
		}
	}
}

func TestAssistantScaffoldLongerThanStandard(t *testing.T) {
	c := NewCaseContext("LoginForm", "Enter valid credentials", CategoryHappy)
	c.Narrative = "As a user, I want to log in"

	if len(AssistantScaffold(c)) <= len(Scaffold(c)) {
		t.Error("assistant scaffold should be substantially longer than the standard one")
	}
}
