package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/redphase/redphase/internal/collect"
	"github.com/redphase/redphase/internal/config"
	"github.com/redphase/redphase/internal/conventions"
	"github.com/redphase/redphase/internal/lint"
	"github.com/redphase/redphase/internal/remote"
	"github.com/redphase/redphase/internal/requirements"
	"github.com/redphase/redphase/internal/scaffold"
	"github.com/redphase/redphase/internal/template"
	"github.com/redphase/redphase/internal/tracker"
	"github.com/redphase/redphase/internal/ui"
	"github.com/spf13/cobra"
)

var (
	generateFromFlag        string
	generateRemoteFlag      bool
	generateAssistantFlag   bool
	generateIssueNumberFlag int
	generateIssueTitleFlag  string
	generateOutFlag         string
	generateForceFlag       bool
	generateIssueRepoFlag   string
)

var generateCmd = &cobra.Command{
	Use:   "generate COMPONENT",
	Short: "Generate a failing test file and component stub",
	Long: `Generate a React Testing Library test scaffold and a paired component
stub for COMPONENT (PascalCase).

Requirements come from an interactive prompt session, or from a
markdown file via --from (headings: ## User Story, ## Acceptance
Criteria, ## Happy Path, ## Edge Cases, ## Error Handling, ## Props,
## Events).

Every generated test ends in a failing assertion: implement the
component until the suite goes green.

Examples:
  redphase generate LoginForm                      # Interactive
  redphase generate LoginForm --from login.md      # From a document
  redphase generate LoginForm --remote             # Remote-drafted bodies
  redphase generate LoginForm --assistant          # Dense guidance comments
  redphase generate LoginForm --issue-number 42 --issue-title "Login form"`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateFromFlag, "from", "", "Read requirements from a markdown file instead of prompting")
	generateCmd.Flags().BoolVar(&generateRemoteFlag, "remote", false, "Draft test bodies with the remote backend, falling back locally")
	generateCmd.Flags().BoolVar(&generateAssistantFlag, "assistant", false, "Emit assistant-oriented scaffolds with step-by-step guidance")
	generateCmd.Flags().IntVar(&generateIssueNumberFlag, "issue-number", 0, "Issue number for the file header")
	generateCmd.Flags().StringVar(&generateIssueTitleFlag, "issue-title", "", "Issue title for the file header")
	generateCmd.Flags().StringVarP(&generateOutFlag, "out", "o", "src", "Output directory for the test file and stub")
	generateCmd.Flags().BoolVarP(&generateForceFlag, "force", "f", false, "Overwrite existing files")
	generateCmd.Flags().StringVar(&generateIssueRepoFlag, "create-issue", "", "Create a tracking issue in owner/repo (needs GITHUB_TOKEN)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	subject := args[0]
	if err := validateSubjectName(subject); err != nil {
		return err
	}

	printer := ui.New(os.Stdout)
	printer.Header("Generate", subject)

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	useRemote := cfg.Remote
	if cmd.Flags().Changed("remote") {
		useRemote = generateRemoteFlag
	}
	assistant := cfg.Assistant
	if cmd.Flags().Changed("assistant") {
		assistant = generateAssistantFlag
	}

	model, err := loadRequirements(printer)
	if err != nil {
		return err
	}
	if result := requirements.Validate(model); !result.Valid {
		for _, e := range result.Errors {
			printer.Errorf("%s", e)
		}
		return fmt.Errorf("requirements are incomplete")
	}

	opts := scaffold.Options{
		UseRemote:     useRemote,
		AssistantMode: assistant,
	}
	if generateIssueNumberFlag > 0 {
		opts.Issue = &scaffold.IssueRef{Number: generateIssueNumberFlag, Title: generateIssueTitleFlag}
	}

	var backend scaffold.Remote
	if useRemote {
		conv, err := conventions.Load(".")
		if err != nil {
			return err
		}
		backend = remote.New(remote.Config{
			Model:       cfg.Model,
			MaxTokens:   cfg.MaxTokens,
			Temperature: &cfg.Temperature,
			Conventions: conv,
			Printer:     printer,
		})
	}

	ctx := context.Background()
	engine := scaffold.New(backend)
	content, err := engine.Assemble(ctx, subject, model, opts)
	if err != nil {
		return err
	}

	testPath := filepath.Join(generateOutFlag, subject+".test.jsx")
	if err := writeGenerated(testPath, content, generateForceFlag); err != nil {
		return err
	}
	printer.Successf("wrote %s", testPath)

	stubPath := filepath.Join(generateOutFlag, subject+".jsx")
	switch err := writeGenerated(stubPath, template.ComponentStub(subject), generateForceFlag); {
	case err == nil:
		printer.Successf("wrote %s", stubPath)
	case os.IsExist(err):
		printer.Infof("%s already exists; stub skipped", stubPath)
	default:
		return err
	}

	result := lint.FullValidate(content, subject)
	summary := fmt.Sprintf("Scaffolded %d test case(s) in %s: %d warning(s), red phase %v.",
		strings.Count(content, "it('"), testPath, result.Summary.TotalWarnings, result.Summary.FollowsRedPhase)
	printer.Infof("%s", summary)

	if generateIssueRepoFlag != "" {
		if err := createTrackingIssue(ctx, printer, model, summary); err != nil {
			return err
		}
	}

	return nil
}

func loadRequirements(printer *ui.Printer) (*requirements.Model, error) {
	if generateFromFlag == "" {
		return collect.New(os.Stdin, os.Stdout).Run()
	}
	f, err := os.Open(generateFromFlag)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", generateFromFlag, err)
	}
	defer f.Close()
	printer.Infof("requirements from %s", generateFromFlag)
	return requirements.ParseMarkdown(f)
}

func writeGenerated(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			if strings.HasSuffix(path, ".test.jsx") {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			return os.ErrExist
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func createTrackingIssue(ctx context.Context, printer *ui.Printer, model *requirements.Model, summary string) error {
	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return fmt.Errorf("--create-issue needs a GITHUB_TOKEN")
	}
	owner, repo, ok := strings.Cut(generateIssueRepoFlag, "/")
	if !ok || owner == "" || repo == "" {
		return fmt.Errorf("--create-issue expects owner/repo, got %q", generateIssueRepoFlag)
	}
	issue, err := tracker.New(token).CreateIssue(ctx, owner, repo, model, summary)
	if err != nil {
		return err
	}
	printer.Successf("created issue #%d: %s", issue.Number, issue.URL)
	return nil
}

// validateSubjectName enforces PascalCase component names: an uppercase
// first letter followed by letters and digits only.
func validateSubjectName(name string) error {
	if name == "" {
		return fmt.Errorf("component name is required")
	}
	runes := []rune(name)
	if !unicode.IsUpper(runes[0]) {
		return fmt.Errorf("component name %q must be PascalCase (start with an uppercase letter)", name)
	}
	for _, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("component name %q must contain only letters and digits", name)
		}
	}
	return nil
}
