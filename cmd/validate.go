package cmd

import (
	"fmt"
	"os"

	"github.com/redphase/redphase/internal/lint"
	"github.com/redphase/redphase/internal/ui"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate FILE COMPONENT",
	Short: "Lint a generated test file",
	Long: `Check a generated test file for the tokens and conventions the
scaffolder guarantees.

Errors (missing describe/it/expect/render, missing subject import) mean
the file is not a usable test module and fail the command. Warnings
(missing red-phase sentinel, no Accessibility section, terse test
names) are printed but do not fail it.

Examples:
  redphase validate src/LoginForm.test.jsx LoginForm`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path, subject := args[0], args[1]

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	printer := ui.New(os.Stderr)
	printer.Header("Validate", fmt.Sprintf("%s (%s)", path, subject))

	result := lint.FullValidate(string(content), subject)
	for _, e := range result.Errors {
		printer.Errorf("%s", e)
	}
	for _, w := range result.Warnings {
		printer.Warnf("%s", w)
	}

	printer.Infof("%d error(s), %d warning(s); accessibility=%v todo=%v red-phase=%v",
		result.Summary.TotalErrors, result.Summary.TotalWarnings,
		result.Summary.HasAccessibility, result.Summary.HasTODO, result.Summary.FollowsRedPhase)

	if !result.Valid {
		return fmt.Errorf("%s failed validation", path)
	}
	printer.Successf("%s passed validation", path)
	return nil
}
