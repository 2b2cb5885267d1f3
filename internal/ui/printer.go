package ui

import (
	"fmt"
	"io"
)

// Printer handles styled output for the CLI. All commands and the
// remote generator report through a Printer so that failures which
// degrade silently (remote fallbacks) still leave a visible trace.
type Printer struct {
	w io.Writer
}

// New creates a Printer that writes to the given writer.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Header prints a command header line.
// Format: "○ Generate LoginForm"
func (p *Printer) Header(command, detail string) {
	fmt.Fprintf(p.w, "%s %s %s\n", StyleAccent.Render("○"), StyleTitle.Render(command), detail)
}

// Successf prints a success message with checkmark.
func (p *Printer) Successf(format string, a ...any) {
	fmt.Fprintf(p.w, "%s %s\n", StyleSuccess.Render("✓"), fmt.Sprintf(format, a...))
}

// Errorf prints an error message with x.
func (p *Printer) Errorf(format string, a ...any) {
	fmt.Fprintf(p.w, "%s %s\n", StyleError.Render("✗"), fmt.Sprintf(format, a...))
}

// Warnf prints a warning message.
func (p *Printer) Warnf(format string, a ...any) {
	fmt.Fprintf(p.w, "%s %s\n", StyleWarning.Render("!"), fmt.Sprintf(format, a...))
}

// Infof prints an informational message in muted style.
func (p *Printer) Infof(format string, a ...any) {
	fmt.Fprintln(p.w, StyleMuted.Render(fmt.Sprintf(format, a...)))
}
