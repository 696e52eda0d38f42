package reporter

import (
	"bufio"
	"context"
	"fmt"
	"slices"

	"github.com/yaklabco/semlint/internal/ui/pretty"
	"github.com/yaklabco/semlint/pkg/lint"
	"github.com/yaklabco/semlint/pkg/runner"
)

// TextReporter formats results as styled terminal output, grouped by file
// with blocking diagnostics before advisory ones.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		total += r.reportFile(file)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

// reportFile writes one file section and returns the number of diagnostics written.
func (r *TextReporter) reportFile(file runner.FileOutcome) int {
	path := displayPath(file.Path, r.opts.WorkingDir)

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
		)
		return 0
	}

	diagnostics := file.Report.Blocking
	advisory := len(file.Report.Advisory)
	if r.opts.HideAdvisory {
		advisory = 0
	} else {
		diagnostics = file.Report.All()
	}

	if len(diagnostics) == 0 && len(file.Report.RuleErrors) == 0 {
		return 0
	}

	fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(file.Report.Blocking), advisory))

	for _, diag := range diagnostics {
		fmt.Fprint(r.bw, r.styles.FormatDiagnostic(diag, r.opts.RuleFormat))
	}
	for _, id := range sortedRuleErrors(file.Report) {
		fmt.Fprintf(r.bw, "  %s %v\n",
			r.styles.Failure.Render("rule "+id+" failed:"),
			file.Report.RuleErrors[id],
		)
	}

	fmt.Fprintln(r.bw)

	return len(diagnostics)
}

// sortedRuleErrors returns the IDs of failed rules in ascending order.
func sortedRuleErrors(report lint.Report) []string {
	ids := make([]string, 0, len(report.RuleErrors))
	for id := range report.RuleErrors {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
