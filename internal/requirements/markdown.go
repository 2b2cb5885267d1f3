package requirements

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Section headings recognized by ParseMarkdown. Matching is
// case-insensitive and tolerates any heading level.
const (
	headingStory    = "user story"
	headingCriteria = "acceptance criteria"
	headingHappy    = "happy path"
	headingEdge     = "edge cases"
	headingError    = "error handling"
	headingErrorAlt = "error cases"
	headingProps    = "props"
	headingEvents   = "events"
)

// ParseMarkdown reads a requirements document and extracts a Model.
// It looks for markdown headings (## User Story, ## Happy Path, ...)
// followed by either free text (narrative, props, events) or "- " bullet
// lists (the scenario sections). Bullets outside the scenario sections
// are kept as free text. Unknown sections are ignored. Bullets with
// checked or unchecked checkbox markers are accepted; the marker is
// stripped.
func ParseMarkdown(r io.Reader) (*Model, error) {
	m := &Model{}
	scanner := bufio.NewScanner(r)

	section := ""
	var freeText []string

	flushFree := func() {
		text := strings.TrimSpace(strings.Join(freeText, "\n"))
		switch section {
		case headingStory:
			m.Narrative = text
		case headingProps:
			m.Props = text
		case headingEvents:
			m.Events = text
		}
		freeText = nil
	}

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "#") {
			flushFree()
			section = normalizeHeading(line)
			continue
		}

		if bullet, ok := parseBullet(line); ok {
			switch section {
			case headingCriteria:
				m.AcceptanceCriteria = append(m.AcceptanceCriteria, bullet)
			case headingHappy:
				m.HappyPath = append(m.HappyPath, bullet)
			case headingEdge:
				m.EdgeCases = append(m.EdgeCases, bullet)
			case headingError, headingErrorAlt:
				m.ErrorCases = append(m.ErrorCases, bullet)
			default:
				// Bulleted free text (a props list, say) is still text.
				freeText = append(freeText, bullet)
			}
			continue
		}

		freeText = append(freeText, line)
	}
	flushFree()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading requirements: %w", err)
	}

	return m, nil
}

func normalizeHeading(line string) string {
	h := strings.TrimLeft(line, "#")
	h = strings.ToLower(strings.TrimSpace(h))
	if h == headingErrorAlt {
		return headingError
	}
	return h
}

// parseBullet extracts the text of a "- " list item, stripping an
// optional "[ ]" / "[x]" checkbox marker.
func parseBullet(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "- ") && !strings.HasPrefix(trimmed, "* ") {
		return "", false
	}
	item := strings.TrimSpace(trimmed[2:])
	for _, marker := range []string{"[ ]", "[x]", "[X]"} {
		if strings.HasPrefix(item, marker) {
			item = strings.TrimSpace(strings.TrimPrefix(item, marker))
			break
		}
	}
	if item == "" {
		return "", false
	}
	return item, true
}
