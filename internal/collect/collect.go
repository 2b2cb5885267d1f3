// Package collect gathers feature requirements from an operator through
// sequential free-text prompts. The collector owns no global state; it
// reads one answer per question and hands the finished model to the
// generation pipeline.
package collect

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/redphase/redphase/internal/requirements"
)

// Collector asks requirement questions on out and reads answers from in.
type Collector struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Collector reading answers from in and prompting on out.
func New(in io.Reader, out io.Writer) *Collector {
	return &Collector{in: bufio.NewReader(in), out: out}
}

// Run walks through the full question set and returns the collected
// requirements. Scenario lists end at the first blank answer; single
// questions accept a blank answer as "none".
func (c *Collector) Run() (*requirements.Model, error) {
	m := &requirements.Model{}

	narrative, err := c.ask("User story (As a ..., I want ..., so that ...): ")
	if err != nil {
		return nil, err
	}
	m.Narrative = narrative

	lists := []struct {
		intro string
		dest  *[]string
	}{
		{"Acceptance criteria (one per line, blank line to finish):", &m.AcceptanceCriteria},
		{"Happy path scenarios (one per line, blank line to finish):", &m.HappyPath},
		{"Edge cases (one per line, blank line to finish):", &m.EdgeCases},
		{"Error cases (one per line, blank line to finish):", &m.ErrorCases},
	}
	for _, l := range lists {
		fmt.Fprintln(c.out, l.intro)
		items, err := c.askList()
		if err != nil {
			return nil, err
		}
		*l.dest = items
	}

	if m.Props, err = c.ask("Props (e.g. \"label: string, disabled: boolean\", blank for none): "); err != nil {
		return nil, err
	}
	if m.Events, err = c.ask("Events (e.g. \"onClick, onSubmit\", blank for none): "); err != nil {
		return nil, err
	}

	return m, nil
}

func (c *Collector) ask(question string) (string, error) {
	fmt.Fprint(c.out, question)
	answer, err := c.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

func (c *Collector) askList() ([]string, error) {
	var items []string
	for {
		fmt.Fprint(c.out, "> ")
		line, err := c.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading answer: %w", err)
		}
		item := strings.TrimSpace(line)
		if item == "" {
			return items, nil
		}
		items = append(items, item)
		if err == io.EOF {
			return items, nil
		}
	}
}
