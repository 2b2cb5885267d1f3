package scaffold

import (
	"context"
	"fmt"
	"strings"

	"github.com/redphase/redphase/internal/requirements"
)

// The accessibility section is generated for every component whether or
// not the requirements asked for it.
var accessibilityScenarios = []string{
	"be accessible to screen readers",
	"be keyboard navigable",
}

// Assemble validates the requirements and produces a complete test
// source file for the subject component. This is the only place in the
// pipeline that fails loudly: invalid requirements return an error
// before any text is generated. Remote failures inside the sections
// degrade silently to local scaffolds.
//
// Sections appear in a fixed order (acceptance, happy path, edge cases,
// error handling, accessibility) regardless of which lists are
// populated; empty lists are omitted, accessibility never is.
func (e *Engine) Assemble(ctx context.Context, subject string, m *requirements.Model, opts Options) (string, error) {
	if result := requirements.Validate(m); !result.Valid {
		return "", fmt.Errorf("invalid requirements: %s", strings.Join(result.Errors, "; "))
	}

	var sections []string
	for _, s := range []struct {
		category  Category
		scenarios []string
	}{
		{CategoryAcceptance, m.AcceptanceCriteria},
		{CategoryHappy, m.HappyPath},
		{CategoryEdge, m.EdgeCases},
		{CategoryError, m.ErrorCases},
	} {
		if len(s.scenarios) == 0 {
			continue
		}
		sections = append(sections, e.BuildSection(ctx, s.category.Label(), s.scenarios, subject, s.category, m, opts))
	}
	sections = append(sections, e.BuildSection(ctx, CategoryAccessibility.Label(), accessibilityScenarios, subject, CategoryAccessibility, m, opts))

	var b strings.Builder
	b.WriteString(header(subject, m, opts))
	b.WriteString("\n")
	b.WriteString(importBlock(subject))
	b.WriteString("\n")
	fmt.Fprintf(&b, "describe('%s', () => {\n", subject)
	b.WriteString("  beforeEach(() => {\n    jest.clearAllMocks();\n  });\n\n")
	b.WriteString("  afterEach(() => {\n    jest.restoreAllMocks();\n  });\n\n")
	b.WriteString(indent(strings.Join(sections, "\n\n"), "  "))
	b.WriteString("\n});\n")
	return b.String(), nil
}

func header(subject string, m *requirements.Model, opts Options) string {
	var b strings.Builder
	b.WriteString("/**\n")
	fmt.Fprintf(&b, " * Tests for %s\n", subject)
	if opts.Issue != nil {
		fmt.Fprintf(&b, " * Issue #%d: %s\n", opts.Issue.Number, opts.Issue.Title)
	} else {
		b.WriteString(" * Auto-generated test scaffold\n")
	}
	b.WriteString(" *\n")
	for _, line := range strings.Split(strings.TrimSpace(m.Narrative), "\n") {
		fmt.Fprintf(&b, " * %s\n", line)
	}
	b.WriteString(" *\n")
	b.WriteString(" * Every test below intentionally fails (red phase). Implement the\n")
	b.WriteString(" * component until the suite goes green.\n")
	b.WriteString(" */\n")
	return b.String()
}

func importBlock(subject string) string {
	var b strings.Builder
	b.WriteString("import React from 'react';\n")
	b.WriteString("import { render, screen } from '@testing-library/react';\n")
	b.WriteString("import userEvent from '@testing-library/user-event';\n")
	b.WriteString("import '@testing-library/jest-dom';\n")
	fmt.Fprintf(&b, "import %s from './%s';\n", subject, subject)
	return b.String()
}
