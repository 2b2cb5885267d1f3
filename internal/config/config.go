// Package config loads generation settings from .redphase/config.yaml.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/redphase/redphase/internal/template"
	"gopkg.in/yaml.v3"
)

// Config holds the generation defaults for a project. Flags override
// these per invocation.
type Config struct {
	Model       string  `yaml:"model"`
	MaxTokens   int     `yaml:"maxTokens"`
	Temperature float64 `yaml:"temperature"`
	Assistant   bool    `yaml:"assistant"`
	Remote      bool    `yaml:"remote"`
}

// rawConfig is used for unmarshaling so missing keys can be told apart
// from explicit zero values.
type rawConfig struct {
	Model       *string  `yaml:"model"`
	MaxTokens   *int     `yaml:"maxTokens"`
	Temperature *float64 `yaml:"temperature"`
	Assistant   *bool    `yaml:"assistant"`
	Remote      *bool    `yaml:"remote"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Model:       "gpt-4o-mini",
		MaxTokens:   1024,
		Temperature: 0.2,
	}
}

// Load reads .redphase/config.yaml from dir, merging with defaults for
// any missing keys. A missing file returns the defaults.
func Load(dir string) (Config, error) {
	cfg := Default()

	path := filepath.Join(dir, template.RedphaseDir, template.ConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}

	if raw.Model != nil {
		cfg.Model = *raw.Model
	}
	if raw.MaxTokens != nil {
		cfg.MaxTokens = *raw.MaxTokens
	}
	if raw.Temperature != nil {
		cfg.Temperature = *raw.Temperature
	}
	if raw.Assistant != nil {
		cfg.Assistant = *raw.Assistant
	}
	if raw.Remote != nil {
		cfg.Remote = *raw.Remote
	}

	if cfg.MaxTokens <= 0 {
		return cfg, fmt.Errorf("maxTokens must be greater than 0")
	}

	return cfg, nil
}
