package remote

import (
	"regexp"
	"strings"
)

// declPattern recognizes a full test declaration wrapping a body:
// it('name', () => { ... }) and the test()/function/async variants.
// This is the single documented unwrap rule; anything it does not match
// passes through trimmed.
var declPattern = regexp.MustCompile(`(?s)^(?:it|test)\(\s*(?:'.*?'|".*?"|` + "`.*?`" + `)\s*,\s*(?:async\s*)?(?:\(\s*\)\s*=>|function\s*\(\s*\))\s*\{(.*)\}\s*\)\s*;?$`)

// ExtractBody cleans a model response into a bare test body:
// markdown code fences are stripped, a wrapping test declaration is
// unwrapped, and the result is trimmed. Returns "" when nothing usable
// remains.
func ExtractBody(raw string) string {
	text := strings.TrimSpace(stripFences(raw))
	if m := declPattern.FindStringSubmatch(text); m != nil {
		return dedent(strings.Trim(m[1], "\n"))
	}
	return text
}

// stripFences removes markdown code-fence delimiters. If the text
// contains fenced blocks, only their contents are kept; otherwise the
// text is returned unchanged.
func stripFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	var kept []string
	inBlock := false
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			inBlock = !inBlock
			continue
		}
		if inBlock {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// dedent removes the common leading whitespace shared by all non-empty
// lines, preserving relative indentation.
func dedent(s string) string {
	lines := strings.Split(s, "\n")
	margin := -1
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		lead := len(line) - len(trimmed)
		if margin == -1 || lead < margin {
			margin = lead
		}
	}
	if margin <= 0 {
		return s
	}
	for i, line := range lines {
		if len(line) >= margin {
			lines[i] = line[margin:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}
	return strings.Join(lines, "\n")
}
