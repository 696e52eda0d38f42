package cli

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/yaklabco/semlint/internal/ui/pretty"
)

// flagTokenPattern matches flag names in pflag usage output ("-f", "--format").
var flagTokenPattern = regexp.MustCompile(`(^|\s)(--?[a-zA-Z][\w-]*)`)

const helpTemplate = `{{with (or .Long .Short)}}{{ trimRight . }}

{{end}}{{if or .Runnable .HasSubCommands}}{{ .UsageString }}{{end}}`

const usageTemplate = `{{ heading "Usage:" }}{{if .Runnable}}
  {{ command .UseLine }}{{end}}{{if .HasAvailableSubCommands}}
  {{ command .CommandPath }} [command]{{end}}{{if .HasExample}}

{{ heading "Examples:" }}
{{ dim .Example }}{{end}}{{if .HasAvailableSubCommands}}

{{ heading "Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ command (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}{{end}}{{if .HasAvailableInheritedFlags}}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}{{end}}{{if .HasAvailableSubCommands}}

Use "{{ .CommandPath }} [command] --help" for more information about a command.{{end}}
`

// helpFormatter renders Cobra help with the palette used for check output.
type helpFormatter struct {
	styles *pretty.Styles
}

func newHelpFormatter(colorMode string, writer io.Writer) *helpFormatter {
	return &helpFormatter{styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, writer))}
}

func (h *helpFormatter) funcs() template.FuncMap {
	return template.FuncMap{
		"heading": h.styles.Bold.Render,
		"command": h.styles.FilePath.Render,
		"dim":     h.styles.Dim.Render,
		"flags":   h.flagUsages,
		"rpad": func(s string, n int) string {
			return s + strings.Repeat(" ", max(0, n-len(s)))
		},
		"trimRight": func(s string) string {
			return strings.TrimRight(s, " \t\n")
		},
	}
}

// flagUsages highlights the flag names in pflag's aligned usage block.
func (h *helpFormatter) flagUsages(flags *pflag.FlagSet) string {
	usages := strings.TrimRight(flags.FlagUsages(), "\n")
	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		name, desc, found := strings.Cut(strings.TrimLeft(line, " "), "   ")
		if !found {
			continue
		}
		indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
		name = flagTokenPattern.ReplaceAllStringFunc(name, func(tok string) string {
			lead := tok[:len(tok)-len(strings.TrimLeft(tok, " "))]
			return lead + h.styles.RuleID.Render(strings.TrimLeft(tok, " "))
		})
		lines[i] = indent + name + "   " + desc
	}
	return strings.Join(lines, "\n")
}

// apply installs the templates on cmd. Subcommands inherit them.
func (h *helpFormatter) apply(cmd *cobra.Command) {
	usage := template.Must(template.New("usage").Funcs(h.funcs()).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(h.funcs()).Parse(helpTemplate))

	cmd.SetUsageFunc(func(c *cobra.Command) error {
		if err := usage.Execute(c.OutOrStderr(), c); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		// UsageString renders through the usage func into a buffer.
		if err := help.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
}
