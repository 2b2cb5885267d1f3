package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "redphase",
	Short: "Redphase - TDD test scaffolds from natural-language requirements",
	Long: `Redphase turns feature requirements into failing React Testing Library
test files and paired component stubs. Every generated test fails on
purpose (the TDD red phase) until someone implements the component.

Workflow:
  redphase init                     Install testing boilerplate
  redphase generate LoginForm       Collect requirements, write test + stub
  redphase validate FILE NAME       Lint a generated test file

Remote generation:
  With --remote and an OPENAI_API_KEY or OPENROUTER_API_KEY, each test
  body is drafted by a chat-completion backend; any failure silently
  falls back to the local scaffold.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Best effort: a missing .env is the normal case.
		_ = godotenv.Load()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
