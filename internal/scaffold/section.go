package scaffold

import (
	"context"
	"fmt"
	"strings"

	"github.com/redphase/redphase/internal/requirements"
)

// BuildSection groups the test cases for one scenario list under a
// labeled describe() block. Scenario order is preserved. Callers skip
// this for empty scenario lists; the assembler handles that.
func (e *Engine) BuildSection(ctx context.Context, title string, scenarios []string, subject string, category Category, m *requirements.Model, opts Options) string {
	var cases []string
	for _, scenario := range scenarios {
		c := NewCaseContext(subject, scenario, category)
		enrich(&c, m)
		cases = append(cases, e.BuildCase(ctx, c, opts))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "describe('%s', () => {\n", escapeSingleQuotes(title))
	b.WriteString(indent(strings.Join(cases, "\n\n"), "  "))
	b.WriteString("\n});")
	return b.String()
}

// enrich copies the model fields the assistant and remote generators
// use for context. The standard scaffold only reads Props.
func enrich(c *CaseContext, m *requirements.Model) {
	if m == nil {
		return
	}
	c.Props = m.Props
	c.Events = m.Events
	c.Narrative = m.Narrative
	c.AcceptanceCriteria = m.AcceptanceCriteria
}
