package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/redphase/redphase/internal/config"
	"github.com/redphase/redphase/internal/template"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long: `Show the effective redphase configuration.

Displays settings from .redphase/config.yaml merged with defaults,
or the defaults alone when no config file exists.`,
	RunE: runConfig,
}

var addConventionCmd = &cobra.Command{
	Use:   "add-convention <name>",
	Short: "Add a testing convention file",
	Long: `Add a new convention to the .redphase/conventions/ directory.

Conventions are markdown files describing project-specific testing
rules. Their content is appended to remote generation prompts.

Example:
  redphase config add-convention queries   # Creates .redphase/conventions/queries.md`,
	Args: cobra.ExactArgs(1),
	RunE: runAddConvention,
}

func init() {
	configCmd.AddCommand(addConventionCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	configPath := filepath.Join(template.RedphaseDir, template.ConfigFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("No %s found (using defaults)\n", configPath)
		fmt.Println()
		fmt.Println("Run 'redphase init' to create a configuration file.")
	} else {
		fmt.Printf("Effective configuration (%s merged with defaults):\n", configPath)
	}
	fmt.Println()
	fmt.Printf("  model: %s\n", cfg.Model)
	fmt.Printf("  maxTokens: %d\n", cfg.MaxTokens)
	fmt.Printf("  temperature: %g\n", cfg.Temperature)
	fmt.Printf("  assistant: %v\n", cfg.Assistant)
	fmt.Printf("  remote: %v\n", cfg.Remote)

	return nil
}

func runAddConvention(cmd *cobra.Command, args []string) error {
	name := args[0]
	convDir := filepath.Join(template.RedphaseDir, template.ConventionsDir)
	convPath := filepath.Join(convDir, name+".md")

	if _, err := os.Stat(template.RedphaseDir); os.IsNotExist(err) {
		return fmt.Errorf("%s/ not found, run 'redphase init' first", template.RedphaseDir)
	}
	if err := os.MkdirAll(convDir, 0755); err != nil {
		return fmt.Errorf("creating conventions directory: %w", err)
	}
	if _, err := os.Stat(convPath); err == nil {
		return fmt.Errorf("convention %q already exists at %s", name, convPath)
	}

	content := fmt.Sprintf(`# Convention: %s

<!--
This convention is appended to remote generation prompts.
Describe the testing rules the generated cases should follow.
-->

- Add project-specific testing rules here
`, name)

	if err := os.WriteFile(convPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing convention file: %w", err)
	}

	fmt.Printf("Created convention: %s\n", convPath)
	return nil
}
