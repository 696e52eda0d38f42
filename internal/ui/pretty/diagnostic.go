package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
)

// FormatDiagnostic formats a single diagnostic for terminal output:
//
//	error  Use <strong> instead of <b>  (no-deprecated-tags)
func (s *Styles) FormatDiagnostic(diag lint.Diagnostic, ruleFormat config.RuleFormat) string {
	ruleIdentifier := config.FormatRuleID(ruleFormat, diag.RuleID, diag.RuleName)

	return fmt.Sprintf("  %s  %s  %s\n",
		s.FormatSeverity(diag.Severity),
		s.Message.Render(diag.Message),
		s.RuleID.Render("("+ruleIdentifier+")"),
	)
}

// FormatSeverity returns a styled, fixed-width severity label.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityInfo:
		return s.Info.Render("info") + " "
	default:
		return string(sev)
	}
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, blocking, advisory int) string {
	header := s.FilePath.Render(path)

	var counts []string
	if blocking > 0 {
		counts = append(counts, plural(blocking, "blocking", "blocking"))
	}
	if advisory > 0 {
		counts = append(counts, plural(advisory, "advisory", "advisories"))
	}
	if len(counts) > 0 {
		header += s.Dim.Render(" (" + strings.Join(counts, ", ") + ")")
	}

	return header
}

// plural returns "n word" with the singular or plural form.
func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}
