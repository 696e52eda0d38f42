package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
	"github.com/yaklabco/semlint/pkg/markup"
	"github.com/yaklabco/semlint/pkg/reporter"
	"github.com/yaklabco/semlint/pkg/runner"
)

func sampleResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path:   "/site/index.html",
				Format: markup.FormatHTML,
				Report: lint.Report{
					Blocking: []lint.Diagnostic{
						{RuleID: "SEM001", RuleName: "header-element", Severity: config.SeverityError,
							Message: "It is strongly recommended that your page contains a <header> element"},
						{RuleID: "SEM011", RuleName: "no-deprecated-tags", Severity: config.SeverityError,
							Message: "Use <strong> instead of <b>"},
					},
					Advisory: []lint.Diagnostic{
						{RuleID: "SEM010", RuleName: "tableless-design", Severity: config.SeverityInfo,
							Message: "Presence of <table> element(s) has been detected"},
					},
				},
			},
			{
				Path:   "/site/clean.html",
				Format: markup.FormatHTML,
				Report: lint.Report{
					Advisory: []lint.Diagnostic{
						{RuleID: "SEM013", RuleName: "semantic-success", Severity: config.SeverityInfo,
							Message: "Semantic validation succeeded! Congratulations!"},
					},
				},
			},
			{
				Path:  "/site/broken.html",
				Error: errors.New("permission denied"),
			},
		},
		Stats: runner.Stats{
			FilesDiscovered: 3,
			FilesProcessed:  2,
			FilesErrored:    1,
			FilesWithIssues: 1,
			Blocking:        2,
			Advisory:        2,
		},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{input: "", want: reporter.FormatText},
		{input: "text", want: reporter.FormatText},
		{input: "json", want: reporter.FormatJSON},
		{input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, format := range []reporter.Format{reporter.FormatText, reporter.FormatJSON, ""} {
		rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: format})
		require.NoError(t, err)
		assert.NotNil(t, rep)
	}

	_, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: "xml"})
	require.Error(t, err)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{
		Writer:      &buf,
		Color:       "never",
		ShowSummary: true,
		RuleFormat:  config.RuleFormatID,
		WorkingDir:  "/site",
	})

	n, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	out := buf.String()
	assert.Contains(t, out, "index.html (2 blocking, 1 advisory)\n")
	assert.Contains(t, out, "  error  Use <strong> instead of <b>  (SEM011)\n")
	assert.Contains(t, out, "clean.html (1 advisory)\n")
	assert.Contains(t, out, "broken.html: error: permission denied\n")
	assert.Contains(t, out, "4 findings (2 blocking, 2 advisories) in 1 file")
	assert.NotContains(t, out, "/site/")

	header := strings.Index(out, "SEM001")
	deprecated := strings.Index(out, "SEM011")
	table := strings.Index(out, "SEM010")
	assert.Less(t, header, deprecated)
	assert.Less(t, deprecated, table, "blocking diagnostics come before advisory ones")
}

func TestTextReporter_HideAdvisory(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", HideAdvisory: true})

	n, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	out := buf.String()
	assert.NotContains(t, out, "tableless-design")
	assert.NotContains(t, out, "clean.html")
}

func TestTextReporter_RuleErrors(t *testing.T) {
	t.Parallel()

	result := &runner.Result{Files: []runner.FileOutcome{{
		Path:   "page.html",
		Report: lint.Report{RuleErrors: map[string]error{"SEM007": errors.New("boom")}},
	}}}

	var buf bytes.Buffer
	_, err := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"}).Report(context.Background(), result)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "rule SEM007 failed: boom")
}

func TestTextReporter_NoFiles(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowSummary: true})

	n, err := rep.Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, "No files to check.\n", buf.String())
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, WorkingDir: "/site"})

	n, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	require.Len(t, output.Files, 3)
	index := output.Files[0]
	assert.Equal(t, "index.html", index.Path)
	assert.Equal(t, "html", index.Format)
	require.Len(t, index.Blocking, 2)
	assert.Equal(t, "SEM001", index.Blocking[0].RuleID)
	assert.Equal(t, "error", index.Blocking[0].Severity)
	require.Len(t, index.Advisory, 1)

	assert.Equal(t, "permission denied", output.Files[2].Error)

	assert.Equal(t, reporter.JSONSummary{
		FilesChecked:    3,
		FilesWithIssues: 1,
		FilesErrored:    1,
		Blocking:        2,
		Advisory:        2,
	}, output.Summary)

	assert.Contains(t, buf.String(), "Use <strong> instead of <b>", "angle brackets are not escaped")
}

func TestJSONReporter_EmptyCollections(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})

	_, err := rep.Report(context.Background(), &runner.Result{Files: []runner.FileOutcome{{Path: "a.html"}}})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"blocking":[]`)
	assert.Contains(t, buf.String(), `"advisory":[]`)
}
