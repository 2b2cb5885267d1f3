package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/redphase/redphase/internal/template"
	"github.com/redphase/redphase/internal/ui"
	"github.com/spf13/cobra"
)

var initForceFlag bool

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Install testing boilerplate into a project",
	Long: `Install the testing boilerplate into a target project directory
(default: current directory).

Creates:
  jest.config.js          # Jest configuration (jsdom, setup file)
  src/setupTests.js       # jest-dom matchers, mock restore hook
  src/test-utils.jsx      # render wrapper for providers
  .redphase/config.yaml   # generation defaults

Also adds test, test:watch and test:coverage scripts to package.json
when one is present. Existing files are skipped unless --force is set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForceFlag, "force", "f", false, "Overwrite existing files and scripts")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	printer := ui.New(os.Stdout)
	printer.Header("Init", dir)

	written, err := template.Install(dir, initForceFlag)
	if err != nil {
		return err
	}
	for _, rel := range written {
		printer.Successf("wrote %s", rel)
	}
	if len(written) == 0 {
		printer.Infof("all boilerplate already present (use --force to overwrite)")
	}

	if _, err := os.Stat(filepath.Join(dir, "package.json")); err == nil {
		if err := template.UpdateManifest(dir, initForceFlag); err != nil {
			return err
		}
		printer.Successf("updated package.json test scripts")
	} else {
		printer.Warnf("no package.json found; skipped manifest scripts")
	}

	fmt.Println()
	printer.Infof("next: redphase generate <ComponentName>")
	return nil
}
