// Package lint checks generated test files for the tokens and
// conventions the scaffolder guarantees. Errors mean the file is not a
// usable test module; warnings flag quality drift. The generator never
// rejects its own output, so enforcement is the caller's call.
package lint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/redphase/redphase/internal/scaffold"
)

// Result holds the outcome of one validation pass.
type Result struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// Summary aggregates the quality signals FullValidate reports.
type Summary struct {
	TotalErrors      int
	TotalWarnings    int
	HasAccessibility bool
	HasTODO          bool
	FollowsRedPhase  bool
}

// FullResult is a Result with an aggregated Summary.
type FullResult struct {
	Result
	Summary Summary
}

// ValidateContent checks that text is a well-formed test file for the
// given subject: required tokens present, at least one describe and it
// block, and the subject imported from its expected relative path.
func ValidateContent(text, subject string) Result {
	var errors, warnings []string

	if strings.TrimSpace(text) == "" {
		return Result{Valid: false, Errors: []string{"generated file is empty"}}
	}

	for _, token := range []string{"describe(", "it(", "expect(", "render", subject} {
		if !strings.Contains(text, token) {
			errors = append(errors, fmt.Sprintf("missing required token %q", token))
		}
	}
	if !regexp.MustCompile(`describe\(\s*['"`+"`"+`]`).MatchString(text) {
		errors = append(errors, "no describe() block found")
	}
	if !regexp.MustCompile(`\bit\(\s*['"`+"`"+`]`).MatchString(text) {
		errors = append(errors, "no it() test case found")
	}
	importPattern := regexp.MustCompile(fmt.Sprintf(`import %s from ['"]\./%s['"]`, regexp.QuoteMeta(subject), regexp.QuoteMeta(subject)))
	if !importPattern.MatchString(text) {
		errors = append(errors, fmt.Sprintf("missing subject import: import %s from './%s'", subject, subject))
	}

	if !strings.Contains(text, scaffold.Sentinel) {
		warnings = append(warnings, "no red-phase sentinel assertion; scaffolded tests should fail until implemented")
	}
	if !strings.Contains(text, "TODO") {
		warnings = append(warnings, "no TODO comments; scaffolds normally carry implementation guidance")
	}
	if strings.Contains(text, "render(") && !strings.Contains(text, "userEvent.setup()") {
		warnings = append(warnings, "render() used without userEvent.setup(); interactions will be awkward to add")
	}
	if !strings.Contains(text, "describe('Accessibility'") {
		warnings = append(warnings, "no Accessibility section")
	}
	if asyncCases := strings.Count(text, "async ()"); asyncCases > strings.Count(text, "await ") {
		warnings = append(warnings, "more async test cases than await expressions; some async cases may be synchronous")
	}
	if strings.Contains(text, "jest.") && !strings.Contains(text, "jest.restoreAllMocks") {
		warnings = append(warnings, "mocks used without an afterEach restore hook")
	}

	return Result{Valid: len(errors) == 0, Errors: errors, Warnings: warnings}
}

// canonicalSections are the five section titles the assembler emits.
var canonicalSections = []string{
	"Acceptance Criteria",
	"Happy Path",
	"Edge Cases",
	"Error Handling",
	"Accessibility",
}

var caseNamePattern = regexp.MustCompile(`\bit\(\s*'([^']*)'`)

// ValidateStructure checks the section layout and test naming of a
// generated file. Structural issues are warnings only: a file can miss
// sections legitimately when the matching scenario list was empty.
func ValidateStructure(text string) Result {
	var warnings []string

	for _, title := range canonicalSections {
		if !strings.Contains(text, fmt.Sprintf("describe('%s'", title)) {
			warnings = append(warnings, fmt.Sprintf("no %q section", title))
		}
	}

	for _, m := range caseNamePattern.FindAllStringSubmatch(text, -1) {
		name := m[1]
		if len(name) < 10 || !strings.Contains(name, " ") {
			warnings = append(warnings, fmt.Sprintf("test name %q is too terse to describe a behaviour", name))
		}
	}

	return Result{Valid: true, Warnings: warnings}
}

// FullValidate runs the content and structure checks and aggregates a
// quality summary.
func FullValidate(text, subject string) FullResult {
	content := ValidateContent(text, subject)
	structure := ValidateStructure(text)

	errors := append([]string{}, content.Errors...)
	warnings := append([]string{}, content.Warnings...)
	warnings = append(warnings, structure.Warnings...)

	return FullResult{
		Result: Result{
			Valid:    len(errors) == 0,
			Errors:   errors,
			Warnings: warnings,
		},
		Summary: Summary{
			TotalErrors:      len(errors),
			TotalWarnings:    len(warnings),
			HasAccessibility: strings.Contains(text, "describe('Accessibility'"),
			HasTODO:          strings.Contains(text, "TODO"),
			FollowsRedPhase:  strings.Contains(text, scaffold.Sentinel),
		},
	}
}
