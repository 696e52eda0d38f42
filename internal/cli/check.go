package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/semlint/internal/logging"
	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
	"github.com/yaklabco/semlint/pkg/reporter"
	"github.com/yaklabco/semlint/pkg/runner"
)

// stdinArg is the path argument that selects standard input.
const stdinArg = "-"

type checkFlags struct {
	format      string
	ruleFormat  string
	flavor      string
	pack        string
	ignore      []string
	enable      []string
	disable     []string
	stdinName   string
	strict      bool
	quiet       bool
	compact     bool
	noSummary   bool
	followLinks bool
	jobs        int
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:     "check [paths...]",
		Aliases: []string{"lint"},
		Short:   "Check HTML and Markdown files for semantic issues",
		Long:    checkLongDescription,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Check documents for semantic HTML5 usage.

By default, checks all .html, .htm, .xhtml, .md and .markdown files in the
current directory and subdirectories. Markdown is rendered to HTML before
checking. Pass "-" (or pipe into semlint) to check standard input.

Blocking findings make the command exit with status 1. Advisory findings
only affect the exit status with --strict.

Examples:
  semlint check                      # Check current directory
  semlint check site/                # Check a directory
  semlint check index.html           # Check a single file
  curl -s example.org | semlint check -
  semlint check --format json        # Output as JSON for CI
  semlint check --pack fragment      # Check partial templates
  semlint check --strict             # Fail on advisory findings too`

func runCheck(cmd *cobra.Command, args []string, flags *checkFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	cliCfg, err := flags.toConfig(cmd)
	if err != nil {
		return err
	}

	cfg, workDir, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}

	checkRunner := runner.New(lint.DefaultRegistry)

	var result *runner.Result
	if useStdin(cmd, args) {
		logger.Debug("checking standard input", logging.FieldInput, flags.stdinName)
		result, err = checkRunner.CheckReader(ctx, flags.stdinName, cmd.InOrStdin(), cfg)
	} else {
		runOpts := runner.Options{
			Paths:          args,
			WorkingDir:     workDir,
			Extensions:     runner.DefaultExtensions(),
			ExcludeGlobs:   cfg.Ignore,
			FollowSymlinks: flags.followLinks,
			Jobs:           cfg.Jobs,
			Config:         cfg,
		}

		logger.Debug("starting check run",
			logging.FieldPaths, runOpts.Paths,
			logging.FieldWorkingDir, runOpts.WorkingDir,
			logging.FieldJobs, runOpts.Jobs,
		)

		result, err = checkRunner.Run(ctx, runOpts)
	}
	if err != nil {
		return fmt.Errorf("check run failed: %w", err)
	}

	logger.Debug("check run finished",
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldBlocking, result.Stats.Blocking,
		logging.FieldAdvisory, result.Stats.Advisory,
	)

	rep, err := reporter.New(reporter.Options{
		Writer:       cmd.OutOrStdout(),
		Format:       reporter.Format(cfg.Format),
		Color:        colorMode(cmd),
		ShowSummary:  !flags.noSummary,
		HideAdvisory: flags.quiet,
		Compact:      flags.compact,
		RuleFormat:   cfg.RuleFormat,
		WorkingDir:   workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	switch ExitCodeFromResult(result, flags.strict) {
	case ExitBlocking:
		return ErrSemanticIssuesFound
	case ExitAdvisory:
		return ErrAdvisoryIssuesFound
	}

	if result.HasErrors() {
		for _, f := range result.Files {
			if f.Error != nil {
				return fmt.Errorf("%d file(s) could not be checked: %w", result.Stats.FilesErrored, f.Error)
			}
		}
	}

	return nil
}

// toConfig builds the CLI layer of the configuration. Only flags the user
// set are carried so that file and environment values are not masked.
func (f *checkFlags) toConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	changed := cmd.Flags().Changed

	if changed("format") {
		format, err := reporter.ParseFormat(f.format)
		if err != nil {
			return nil, errors.Join(ErrInvalidUsage, err)
		}
		cfg.Format = config.OutputFormat(format)
	}
	if changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(f.ruleFormat)
	}
	if changed("flavor") {
		cfg.Flavor = config.Flavor(f.flavor)
	}
	if changed("pack") {
		cfg.Pack = f.pack
	}
	if changed("jobs") {
		if f.jobs < 0 {
			return nil, fmt.Errorf("%w: --jobs must be >= 0", ErrInvalidUsage)
		}
		cfg.Jobs = f.jobs
	}
	if changed("ignore") {
		cfg.Ignore = f.ignore
	}
	if changed("enable") {
		cfg.EnableRules = f.enable
	}
	if changed("disable") {
		cfg.DisableRules = f.disable
	}

	return cfg, nil
}

// useStdin reports whether input should be read from standard input: either
// "-" was given explicitly, or no paths were given and stdin is a pipe.
func useStdin(cmd *cobra.Command, args []string) bool {
	if len(args) == 1 && args[0] == stdinArg {
		return true
	}
	if len(args) > 0 {
		return false
	}
	return isPiped(cmd.InOrStdin())
}

// isPiped reports whether r is a non-terminal standard input.
func isPiped(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok || f != os.Stdin {
		return false
	}
	info, err := f.Stat()
	if err != nil || term.IsTerminal(int(f.Fd())) {
		return false
	}
	// Only pipes and redirected files count; /dev/null under a test
	// harness or a daemon is a character device.
	return info.Mode()&os.ModeCharDevice == 0
}

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.flavor, "flavor", "commonmark", "Markdown flavor for .md input: commonmark, gfm")
	cmd.Flags().StringVar(&flags.pack, "pack", "", "rule pack: default, strict, structure, fragment")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().StringVar(&flags.stdinName, "stdin-filename", "<stdin>",
		"name used for standard input in output and format detection")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit with status 2 on advisory findings")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "hide advisory findings in text output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "omit the summary line")
	cmd.Flags().BoolVar(&flags.followLinks, "follow-symlinks", false, "follow symbolic links during discovery")
}
