package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/semlint/pkg/runner"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "5 findings (3 blocking, 2 advisories) in 2 files, 4 files checked".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	checked := plural(stats.FilesProcessed, "file", "files") + " checked"

	if stats.Blocking == 0 {
		msg := s.Success.Render("No blocking issues") + s.Dim.Render(" ("+checked+")")
		if stats.FilesErrored > 0 {
			msg += ", " + s.Failure.Render(plural(stats.FilesErrored, "file", "files")+" failed")
		}
		return msg + "\n"
	}

	var severityParts []string
	severityParts = append(severityParts, s.Error.Render(plural(stats.Blocking, "blocking", "blocking")))
	if stats.Advisory > 0 {
		severityParts = append(severityParts, s.Info.Render(plural(stats.Advisory, "advisory", "advisories")))
	}

	total := stats.Blocking + stats.Advisory
	parts := []string{
		fmt.Sprintf("%s (%s)", plural(total, "finding", "findings"), strings.Join(severityParts, ", ")),
		"in " + plural(stats.FilesWithIssues, "file", "files"),
		s.Dim.Render(checked),
	}
	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(plural(stats.FilesErrored, "file", "files")+" failed"))
	}

	return strings.Join(parts, ", ") + "\n"
}
