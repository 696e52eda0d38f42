package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/semlint/pkg/lint"
	"github.com/yaklabco/semlint/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path       string            `json:"path"`
	Format     string            `json:"format,omitempty"`
	Blocking   []JSONDiagnostic  `json:"blocking"`
	Advisory   []JSONDiagnostic  `json:"advisory"`
	RuleErrors map[string]string `json:"ruleErrors,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// JSONDiagnostic represents a single diagnostic.
type JSONDiagnostic struct {
	RuleID   string `json:"ruleId"`
	RuleName string `json:"ruleName"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int `json:"filesChecked"`
	FilesWithIssues int `json:"filesWithIssues"`
	FilesErrored    int `json:"filesErrored"`
	Blocking        int `json:"blocking"`
	Advisory        int `json:"advisory"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	encoder.SetEscapeHTML(false)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.Blocking + output.Summary.Advisory, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:     displayPath(file.Path, r.opts.WorkingDir),
			Format:   string(file.Format),
			Blocking: NewJSONDiagnostics(file.Report.Blocking),
			Advisory: NewJSONDiagnostics(file.Report.Advisory),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if len(file.Report.RuleErrors) > 0 {
			fileResult.RuleErrors = make(map[string]string, len(file.Report.RuleErrors))
			for id, ruleErr := range file.Report.RuleErrors {
				fileResult.RuleErrors[id] = ruleErr.Error()
			}
		}

		if file.Report.HasBlocking() {
			output.Summary.FilesWithIssues++
		}
		output.Summary.Blocking += len(fileResult.Blocking)
		output.Summary.Advisory += len(fileResult.Advisory)

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}

// NewJSONDiagnostics converts diagnostics to their JSON form.
// The result is never nil so that empty collections encode as [].
func NewJSONDiagnostics(diags []lint.Diagnostic) []JSONDiagnostic {
	out := make([]JSONDiagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, JSONDiagnostic{
			RuleID:   d.RuleID,
			RuleName: d.RuleName,
			Severity: string(d.Severity),
			Message:  d.Message,
		})
	}
	return out
}
