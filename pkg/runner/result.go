package runner

import (
	"github.com/yaklabco/semlint/pkg/lint"
	"github.com/yaklabco/semlint/pkg/markup"
)

// FileOutcome is the check result for one document.
type FileOutcome struct {
	// Path is the file that was checked, or the display name of an in-memory input.
	Path string

	// Format is the detected input format.
	Format markup.Format

	// Report holds the diagnostics. It is empty when Error is set.
	Report lint.Report

	// Error is set if the document could not be read or checked.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	// FilesDiscovered is the total number of files found during discovery.
	FilesDiscovered int

	// FilesProcessed is the number of files checked without error.
	FilesProcessed int

	// FilesErrored is the number of files that could not be checked.
	FilesErrored int

	// FilesWithIssues is the number of files with at least one blocking diagnostic.
	FilesWithIssues int

	// Blocking is the number of blocking diagnostics across all files.
	Blocking int

	// Advisory is the number of advisory diagnostics across all files.
	Advisory int

	// RuleErrors is the number of internal rule failures across all files.
	RuleErrors int
}

// Result is the overall runner result.
type Result struct {
	// Files contains the outcome for each checked file, ordered by path.
	Files []FileOutcome

	// Stats contains aggregate statistics for the run.
	Stats Stats
}

// HasBlocking reports whether any blocking diagnostic was produced.
func (r *Result) HasBlocking() bool {
	if r == nil {
		return false
	}
	return r.Stats.Blocking > 0
}

// HasAdvisory reports whether any advisory diagnostic other than the
// success summary was produced.
func (r *Result) HasAdvisory() bool {
	if r == nil {
		return false
	}
	for _, f := range r.Files {
		for _, d := range f.Report.Advisory {
			if d.RuleID != SuccessRuleID {
				return true
			}
		}
	}
	return false
}

// HasErrors reports whether any file could not be checked.
func (r *Result) HasErrors() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// SuccessRuleID identifies the summary rule that acknowledges clean documents.
const SuccessRuleID = "SEM013"

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesProcessed++
	r.Stats.Blocking += len(outcome.Report.Blocking)
	r.Stats.Advisory += len(outcome.Report.Advisory)
	r.Stats.RuleErrors += len(outcome.Report.RuleErrors)

	if outcome.Report.HasBlocking() {
		r.Stats.FilesWithIssues++
	}
}
