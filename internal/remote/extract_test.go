package remote

import "testing"

func TestExtractBody(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain body passes through trimmed",
			raw:  "\n\nexpect(1).toBe(1);\n",
			want: "expect(1).toBe(1);",
		},
		{
			name: "code fences stripped",
			raw:  "Here is the test:\n```jsx\nexpect(1).toBe(1);\n```\nLet me know!",
			want: "expect(1).toBe(1);",
		},
		{
			name: "bare fences stripped",
			raw:  "```\nrender(<Widget />);\nexpect(screen.getByText('hi')).toBeInTheDocument();\n```",
			want: "render(<Widget />);\nexpect(screen.getByText('hi')).toBeInTheDocument();",
		},
		{
			name: "it declaration unwrapped",
			raw:  "it('shows the greeting', () => {\n  render(<Widget />);\n  expect(screen.getByText('hi')).toBeInTheDocument();\n});",
			want: "render(<Widget />);\nexpect(screen.getByText('hi')).toBeInTheDocument();",
		},
		{
			name: "async test declaration unwrapped",
			raw:  "test(\"submits the form\", async () => {\n  await user.click(button);\n});",
			want: "await user.click(button);",
		},
		{
			name: "function callback unwrapped",
			raw:  "it('works', function () {\n  expect(1).toBe(1);\n})",
			want: "expect(1).toBe(1);",
		},
		{
			name: "fenced declaration unwrapped after stripping",
			raw:  "```js\nit('shows it', () => {\n  expect(2).toBe(2);\n});\n```",
			want: "expect(2).toBe(2);",
		},
		{
			name: "relative indentation preserved",
			raw:  "it('nests', () => {\n  if (x) {\n    expect(x).toBe(true);\n  }\n});",
			want: "if (x) {\n  expect(x).toBe(true);\n}",
		},
		{
			name: "empty response",
			raw:  "   \n\t",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractBody(tt.raw)
			if got != tt.want {
				t.Errorf("ExtractBody(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestExtractBodyLeavesPartialDeclarations(t *testing.T) {
	// Text that mentions it( but is not a full declaration must pass
	// through rather than be mangled.
	raw := "// like it('this') but incomplete\nexpect(1).toBe(1);"
	if got := ExtractBody(raw); got != raw {
		t.Errorf("partial declaration mangled: %q", got)
	}
}
