// Package cli provides the Cobra command structure for semlint.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/semlint/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root semlint command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "semlint",
		Short: "An HTML5 semantic checker",
		Long: `semlint checks HTML documents for semantic HTML5 usage.

It reports missing structural elements (header, footer, nav, section,
article, aside), empty paragraphs, generic div identifiers, plain text
inputs, table layouts and deprecated tags or attributes. Findings are
either blocking or advisory; Markdown input is rendered to HTML first.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newServeCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	newHelpFormatter(color, os.Stdout).apply(rootCmd)

	return rootCmd
}
