package scaffold

import (
	"context"
	"fmt"
	"strings"
)

// Engine generates test files. The zero value works for local-only
// generation; attach a Remote to enable the remote-first strategy.
type Engine struct {
	remote Remote
}

// New creates an Engine. remote may be nil, in which case UseRemote is
// a no-op and generation always uses the local scaffolds.
func New(remote Remote) *Engine {
	return &Engine{remote: remote}
}

// BuildCase produces one complete named test declaration for the given
// scenario context.
//
// Strategy order: when opts.UseRemote is set and a remote generator is
// attached, the remote tier is tried first; on absence the local tier
// (assistant or standard, per opts.AssistantMode) takes over. The local
// tier never fails, so BuildCase always returns a declaration.
func (e *Engine) BuildCase(ctx context.Context, c CaseContext, opts Options) string {
	if opts.UseRemote && e.remote != nil {
		if body, ok := e.remote.Generate(ctx, c); ok {
			return wrapCase(c.Description, body)
		}
	}
	if opts.AssistantMode {
		return wrapCase(c.Description, AssistantScaffold(c))
	}
	return wrapCase(c.Description, Scaffold(c))
}

// wrapCase wraps a body in an it() declaration. Bodies that await are
// given an async callback.
func wrapCase(name, body string) string {
	callback := "() => {"
	if strings.Contains(body, "await ") {
		callback = "async () => {"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "it('%s', %s\n", escapeSingleQuotes(name), callback)
	b.WriteString(indent(strings.TrimRight(body, "\n"), "  "))
	b.WriteString("\n});")
	return b.String()
}

func escapeSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", `\'`)
}

// indent prefixes every non-empty line of s with prefix.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
