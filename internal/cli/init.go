package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/semlint/internal/configloader"
	"github.com/yaklabco/semlint/internal/logging"
	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/fsutil"
	"github.com/yaklabco/semlint/pkg/lint"
	"github.com/yaklabco/semlint/pkg/lint/rules"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

const configHeader = "# semlint configuration.\n# Run 'semlint rules' to list rule IDs and names.\n"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	pack   string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new semlint configuration file",
		Long: `Create a new .semlint.yml configuration file in the current directory.
The file selects a rule pack and can be customized to enable or disable
rules and change their severities.

Examples:
  semlint init                       Create .semlint.yml using the default pack
  semlint init --pack fragment       Start from the fragment pack
  semlint init --full                List every rule with its resolved settings
  semlint init --output site.yml     Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Write every rule explicitly instead of the pack key")
	cmd.Flags().StringVar(&flags.pack, "pack", "default",
		"Rule pack: "+strings.Join(rules.PackNames(), ", "))
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigFiles[0],
		"Output file path")

	return cmd
}

func runInit(ctx context.Context, out io.Writer, flags *initFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.NewInteractive(out)

	content, err := initContent(flags.pack, flags.full, lint.DefaultRegistry)
	if err != nil {
		return err
	}

	absPath, err := filepath.Abs(flags.output)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrInvalidUsage, flags.output)
		}
	}

	written, err := fsutil.WriteIfChanged(ctx, absPath, content, configFilePermissions)
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	if !written {
		logger.Info("configuration file is already up to date", logging.FieldPath, flags.output)
		return nil
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output, logging.FieldPack, flags.pack)
	logger.Info("run 'semlint rules' to see all available rules")

	return nil
}

// initContent renders the configuration file for pack. With full set, the
// pack is expanded into explicit settings for every rule in registry.
func initContent(packName string, full bool, registry *lint.Registry) ([]byte, error) {
	pack := rules.PackByName(packName)
	if pack == nil {
		return nil, fmt.Errorf("%w: unknown pack %q; must be one of: %s",
			ErrInvalidUsage, packName, strings.Join(rules.PackNames(), ", "))
	}

	cfg := config.NewConfig()
	if full {
		cfg.Rules = expandPack(pack, registry)
	} else {
		cfg.Pack = pack.Name
	}

	body, err := cfg.ToYAML()
	if err != nil {
		return nil, fmt.Errorf("generate config: %w", err)
	}

	return append([]byte(configHeader), body...), nil
}

// expandPack resolves every rule against pack and records the outcome.
func expandPack(pack *rules.Pack, registry *lint.Registry) map[string]config.RuleConfig {
	resolved := lint.ResolveRules(registry, &config.Config{Rules: pack.Rules})

	enabled := make(map[string]lint.ResolvedRule, len(resolved))
	for _, rr := range resolved {
		enabled[rr.Rule.ID()] = rr
	}

	out := make(map[string]config.RuleConfig, registry.Len())
	for _, rule := range registry.Rules() {
		on := false
		severity := string(rule.DefaultSeverity())
		if rr, ok := enabled[rule.ID()]; ok {
			on = true
			severity = string(rr.Severity)
		}
		out[rule.ID()] = config.RuleConfig{Enabled: &on, Severity: &severity}
	}
	return out
}
