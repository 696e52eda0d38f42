package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/semlint/internal/configloader"
	"github.com/yaklabco/semlint/pkg/fsutil"
	"github.com/yaklabco/semlint/pkg/runner"
)

// Exit codes for semlint.
const (
	// ExitSuccess indicates successful execution with no blocking issues.
	ExitSuccess = 0

	// ExitBlocking indicates the check completed but found blocking issues.
	ExitBlocking = 1

	// ExitAdvisory indicates the check found advisory issues (when strict mode).
	ExitAdvisory = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors that map to exit codes.
var (
	// ErrSemanticIssuesFound is returned when blocking diagnostics were reported.
	ErrSemanticIssuesFound = errors.New("semantic issues found")

	// ErrAdvisoryIssuesFound is returned in strict mode when only advisory
	// diagnostics were reported.
	ErrAdvisoryIssuesFound = errors.New("advisory issues found")

	// ErrInvalidUsage marks bad flags or arguments.
	ErrInvalidUsage = errors.New("invalid usage")
)

// ExitCodeFromResult determines the exit code based on result and strict mode.
// The success acknowledgement never counts as an advisory issue.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasBlocking() {
		return ExitBlocking
	}

	if strict && result.HasAdvisory() {
		return ExitAdvisory
	}

	return ExitSuccess
}

// ExitCodeFromError maps an error returned by a command to a process exit code.
func ExitCodeFromError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrSemanticIssuesFound):
		return ExitBlocking
	case errors.Is(err, ErrAdvisoryIssuesFound):
		return ExitAdvisory
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

// IsSignal reports whether err only signals an exit code and should not be
// logged as a failure.
func IsSignal(err error) bool {
	return errors.Is(err, ErrSemanticIssuesFound) || errors.Is(err, ErrAdvisoryIssuesFound)
}
