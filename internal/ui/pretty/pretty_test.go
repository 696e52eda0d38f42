package pretty

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
	"github.com/yaklabco/semlint/pkg/runner"
)

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))
	assert.False(t, IsColorEnabled("auto", &buf), "buffers are not terminals")

	t.Setenv("NO_COLOR", "1")
	assert.False(t, IsColorEnabled("auto", &buf))
}

func TestFormatDiagnostic(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	diag := lint.Diagnostic{
		RuleID:   "SEM011",
		RuleName: "no-deprecated-tags",
		Severity: config.SeverityError,
		Message:  "Use <strong> instead of <b>",
	}

	tests := []struct {
		format config.RuleFormat
		want   string
	}{
		{config.RuleFormatName, "  error  Use <strong> instead of <b>  (no-deprecated-tags)\n"},
		{config.RuleFormatID, "  error  Use <strong> instead of <b>  (SEM011)\n"},
		{config.RuleFormatCombined, "  error  Use <strong> instead of <b>  (SEM011/no-deprecated-tags)\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatDiagnostic(diag, tt.format))
		})
	}
}

func TestFormatSeverity(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	assert.Equal(t, "error", styles.FormatSeverity(config.SeverityError))
	assert.Equal(t, "info ", styles.FormatSeverity(config.SeverityInfo))
	assert.Equal(t, "fatal", styles.FormatSeverity("fatal"))
}

func TestFormatFileHeader(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	assert.Equal(t, "index.html", styles.FormatFileHeader("index.html", 0, 0))
	assert.Equal(t, "index.html (1 blocking)", styles.FormatFileHeader("index.html", 1, 0))
	assert.Equal(t, "index.html (2 blocking, 1 advisory)", styles.FormatFileHeader("index.html", 2, 1))
	assert.Equal(t, "index.html (3 advisories)", styles.FormatFileHeader("index.html", 0, 3))
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)

	tests := []struct {
		name  string
		stats runner.Stats
		want  string
	}{
		{
			name:  "clean",
			stats: runner.Stats{FilesProcessed: 2, Advisory: 2},
			want:  "No blocking issues (2 files checked)\n",
		},
		{
			name:  "clean with failure",
			stats: runner.Stats{FilesProcessed: 1, FilesErrored: 1},
			want:  "No blocking issues (1 file checked), 1 file failed\n",
		},
		{
			name:  "findings",
			stats: runner.Stats{FilesProcessed: 4, FilesWithIssues: 2, Blocking: 3, Advisory: 2},
			want:  "5 findings (3 blocking, 2 advisories) in 2 files, 4 files checked\n",
		},
		{
			name:  "single finding",
			stats: runner.Stats{FilesProcessed: 1, FilesWithIssues: 1, Blocking: 1},
			want:  "1 finding (1 blocking) in 1 file, 1 file checked\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats))
		})
	}
}

type tableRule struct {
	lint.BaseRule
}

func TestFormatRuleTable(t *testing.T) {
	t.Parallel()

	rules := []lint.Rule{
		&tableRule{lint.NewBaseRule("SEM001", "header-element", "Pages should contain a <header> element", nil, config.SeverityError)},
		&tableRule{lint.NewBaseRule("SEM004", "section-element", "Pages should consider using <section> elements", nil, config.SeverityInfo)},
	}

	out := NewStyles(false).FormatRuleTable(rules, config.RuleFormatCombined)

	assert.Contains(t, out, "RULE")
	assert.Contains(t, out, "SEM001/header-element")
	assert.Contains(t, out, "SEM004/section-element")
	assert.Less(t, strings.Index(out, "SEM001"), strings.Index(out, "SEM004"))
	assert.Contains(t, out, "Pages should contain a <header> element")
}
