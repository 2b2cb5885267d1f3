package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateSubjectName(t *testing.T) {
	tests := []struct {
		name    string
		subject string
		wantErr bool
	}{
		{"pascal case", "LoginForm", false},
		{"single word", "Button", false},
		{"with digits", "Grid2Column", false},
		{"empty", "", true},
		{"lowercase first", "loginForm", true},
		{"kebab case", "Login-Form", true},
		{"with spaces", "Login Form", true},
		{"with path", "src/LoginForm", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSubjectName(tt.subject)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateSubjectName(%q) error = %v, wantErr %v", tt.subject, err, tt.wantErr)
			}
		})
	}
}

func TestWriteGeneratedRefusesExistingTestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "LoginForm.test.jsx")
	if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
		t.Fatal(err)
	}

	err := writeGenerated(path, "new content", false)
	if err == nil {
		t.Fatal("expected an error for an existing test file without force")
	}
	if !strings.Contains(err.Error(), "--force") {
		t.Errorf("error should mention --force, got: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "existing" {
		t.Error("existing file must not be touched without force")
	}
}

func TestWriteGeneratedExistingStubSignalsErrExist(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "LoginForm.jsx")
	if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := writeGenerated(path, "stub", false); !os.IsExist(err) {
		t.Errorf("expected an existence error for a stub collision, got: %v", err)
	}
}

func TestWriteGeneratedForceOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "LoginForm.test.jsx")
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := writeGenerated(path, "fresh", true); err != nil {
		t.Fatal(err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "fresh" {
		t.Errorf("content = %q, want overwritten", data)
	}
}

func TestWriteGeneratedCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "src", "components", "LoginForm.test.jsx")

	if err := writeGenerated(path, "content", false); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("file not created: %v", err)
	}
}
