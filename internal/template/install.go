package template

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Install copies the boilerplate files into dir. Existing files are
// skipped unless force is set. Returns the relative paths written, in
// sorted order.
func Install(dir string, force bool) ([]string, error) {
	var written []string
	for rel, content := range DefaultFiles() {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if !force {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", rel, err)
		}
		written = append(written, rel)
	}
	sort.Strings(written)
	return written, nil
}

// testScripts are the manifest scripts installed by UpdateManifest.
var testScripts = map[string]string{
	"test":          "jest",
	"test:watch":    "jest --watch",
	"test:coverage": "jest --coverage",
}

// UpdateManifest adds the test scripts to dir's package.json, creating
// the scripts block if needed and preserving everything else. Scripts
// already present are left alone unless force is set.
func UpdateManifest(dir string, force bool) error {
	path := filepath.Join(dir, "package.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading package.json: %w", err)
	}

	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		return fmt.Errorf("parsing package.json: %w", err)
	}

	scripts, _ := manifest["scripts"].(map[string]any)
	if scripts == nil {
		scripts = map[string]any{}
	}
	for name, cmd := range testScripts {
		if _, exists := scripts[name]; exists && !force {
			continue
		}
		scripts[name] = cmd
	}
	manifest["scripts"] = scripts

	updated, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding package.json: %w", err)
	}
	if err := os.WriteFile(path, append(updated, '\n'), 0644); err != nil {
		return fmt.Errorf("writing package.json: %w", err)
	}
	return nil
}
