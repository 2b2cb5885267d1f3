package scaffold

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "punctuation stripped",
			input: `User clicks the "Submit" button!`,
			want:  "user clicks the submit button",
		},
		{
			name:  "uppercase lowered",
			input: "Enter VALID Credentials",
			want:  "enter valid credentials",
		},
		{
			name:  "whitespace collapsed and trimmed",
			input: "  too   many\t\tspaces\n here ",
			want:  "too many spaces here",
		},
		{
			name:  "digits preserved",
			input: "retry 3 times",
			want:  "retry 3 times",
		},
		{
			name:  "all punctuation becomes empty",
			input: "?!...---",
			want:  "",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		`User clicks the "Submit" button!`,
		"Already normalized text",
		"  spaced   out  ",
		"MIXED Case, with; punctuation?",
		"",
	}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
