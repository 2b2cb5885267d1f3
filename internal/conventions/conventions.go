// Package conventions loads project-specific testing conventions that
// get appended to remote generation prompts.
package conventions

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/redphase/redphase/internal/template"
)

// Load reads every markdown file in dir's .redphase/conventions
// directory, sorted by name, and concatenates them with source markers.
// A missing directory is not an error; it returns "".
func Load(dir string) (string, error) {
	convDir := filepath.Join(dir, template.RedphaseDir, template.ConventionsDir)
	entries, err := os.ReadDir(convDir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("reading conventions: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(convDir, name))
		if err != nil {
			return "", fmt.Errorf("reading convention %s: %w", name, err)
		}
		fmt.Fprintf(&b, "<!-- %s -->\n", name)
		b.Write(content)
		if !strings.HasSuffix(string(content), "\n") {
			b.WriteByte('\n')
		}
	}
	return strings.TrimSpace(b.String()), nil
}
