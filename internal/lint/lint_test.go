package lint

import (
	"context"
	"strings"
	"testing"

	"github.com/redphase/redphase/internal/requirements"
	"github.com/redphase/redphase/internal/scaffold"
)

// generated produces a real scaffolder output so the linter is tested
// against what the pipeline actually emits.
func generated(t *testing.T, opts scaffold.Options) string {
	t.Helper()
	model := &requirements.Model{
		Narrative:  "As a user, I want to log in",
		HappyPath:  []string{"Enter valid credentials"},
		EdgeCases:  []string{"Empty email field"},
		ErrorCases: []string{"Server returns 500"},
	}
	out, err := scaffold.New(nil).Assemble(context.Background(), "LoginForm", model, opts)
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func TestValidateContentAcceptsGeneratedOutput(t *testing.T) {
	for _, assistant := range []bool{false, true} {
		result := ValidateContent(generated(t, scaffold.Options{AssistantMode: assistant}), "LoginForm")
		if !result.Valid {
			t.Errorf("assistant=%v: generated output failed content validation: %v", assistant, result.Errors)
		}
	}
}

func TestValidateContentErrors(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantError string
	}{
		{
			name:      "empty file",
			text:      "  \n",
			wantError: "empty",
		},
		{
			name:      "missing describe",
			text:      "it('does a thing', () => { expect(render(X)).toBe(1); }); import LoginForm from './LoginForm'",
			wantError: `missing required token "describe("`,
		},
		{
			name:      "missing subject import",
			text:      "describe('LoginForm', () => { it('does a thing', () => { expect(render).toBe(1); }); });",
			wantError: "missing subject import",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateContent(tt.text, "LoginForm")
			if result.Valid {
				t.Fatal("expected validation errors")
			}
			found := false
			for _, e := range result.Errors {
				if strings.Contains(e, tt.wantError) {
					found = true
				}
			}
			if !found {
				t.Errorf("no error containing %q in %v", tt.wantError, result.Errors)
			}
		})
	}
}

func TestValidateContentWarnings(t *testing.T) {
	// A structurally valid file that violates every soft convention.
	text := `import LoginForm from './LoginForm';
describe('LoginForm', () => {
  it('does a thing now', async () => {
    jest.mock('./api');
    render(<LoginForm />);
    expect(1).toBe(1);
  });
});`

	result := ValidateContent(text, "LoginForm")
	if !result.Valid {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	for _, want := range []string{
		"red-phase sentinel",
		"no TODO comments",
		"userEvent.setup()",
		"no Accessibility section",
		"async test cases",
		"afterEach restore",
	} {
		found := false
		for _, w := range result.Warnings {
			if strings.Contains(w, want) {
				found = true
			}
		}
		if !found {
			t.Errorf("no warning containing %q in %v", want, result.Warnings)
		}
	}
}

func TestRedPhaseCheckMatchesSentinel(t *testing.T) {
	withSentinel := generated(t, scaffold.Options{})
	if FullValidate(withSentinel, "LoginForm").Summary.FollowsRedPhase != true {
		t.Error("red-phase check should pass when the sentinel is present")
	}

	without := strings.ReplaceAll(withSentinel, scaffold.Sentinel, "expect(1).toBe(1);")
	if FullValidate(without, "LoginForm").Summary.FollowsRedPhase != false {
		t.Error("red-phase check should fail when the sentinel is absent")
	}
}

func TestValidateStructure(t *testing.T) {
	full := generated(t, scaffold.Options{})
	result := ValidateStructure(full)
	// Full model omits acceptance criteria, so exactly that section warning.
	foundAcceptance := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "Acceptance Criteria") {
			foundAcceptance = true
		} else if strings.Contains(w, "section") {
			t.Errorf("unexpected section warning: %s", w)
		}
	}
	if !foundAcceptance {
		t.Errorf("expected a warning for the missing Acceptance Criteria section, got %v", result.Warnings)
	}
}

func TestValidateStructureTerseNames(t *testing.T) {
	text := `describe('X', () => {
  it('works', () => {});
  it('renders the full dashboard', () => {});
});`

	result := ValidateStructure(text)
	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, `"works"`) {
			found = true
		}
		if strings.Contains(w, "renders the full dashboard") {
			t.Errorf("descriptive name flagged: %s", w)
		}
	}
	if !found {
		t.Errorf("terse test name not flagged, warnings: %v", result.Warnings)
	}
}

func TestFullValidateSummary(t *testing.T) {
	result := FullValidate(generated(t, scaffold.Options{}), "LoginForm")

	if !result.Valid {
		t.Fatalf("generated output should pass: %v", result.Errors)
	}
	if result.Summary.TotalErrors != 0 {
		t.Errorf("TotalErrors = %d, want 0", result.Summary.TotalErrors)
	}
	if result.Summary.TotalWarnings != len(result.Warnings) {
		t.Errorf("TotalWarnings = %d, want %d", result.Summary.TotalWarnings, len(result.Warnings))
	}
	if !result.Summary.HasAccessibility {
		t.Error("HasAccessibility should be true for generated output")
	}
	if !result.Summary.HasTODO {
		t.Error("HasTODO should be true for generated output")
	}
	if !result.Summary.FollowsRedPhase {
		t.Error("FollowsRedPhase should be true for generated output")
	}
}
