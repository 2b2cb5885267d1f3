package scaffold

import "strings"

// Normalize turns a scenario sentence into a test-description fragment:
// lowercase, punctuation stripped, whitespace collapsed and trimmed.
// The result may be empty if the input was all punctuation.
// Normalize is idempotent.
func Normalize(scenario string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(scenario) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
