package runner

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/semlint/internal/logging"
	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/fsutil"
	"github.com/yaklabco/semlint/pkg/lint"
)

// Runner checks documents against a rule catalog.
type Runner struct {
	// Registry is the rule catalog. Nil means lint.DefaultRegistry.
	Registry *lint.Registry
}

// New creates a Runner over the given registry.
func New(registry *lint.Registry) *Runner {
	return &Runner{Registry: registry}
}

// Run discovers files under opts.Paths and checks them concurrently.
//
// Each worker owns one lint.Session, reused for every file it receives.
// Outcomes are returned in path order regardless of completion order.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)

	logging.FromContext(ctx).Debug("discovered files", logging.FieldFilesDiscovered, len(files))

	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	jobs = min(jobs, len(files))

	cfg := opts.effectiveConfig()

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	sessions := make([]*lint.Session, jobs)
	for i := range sessions {
		sessions[i], err = newSession(r.Registry, cfg)
		if err != nil {
			return nil, fmt.Errorf("create session: %w", err)
		}
	}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, session := range sessions {
		group.Go(func() error {
			r.worker(groupCtx, session, cfg, workCh, outCh)
			return nil
		})
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-groupCtx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		_ = group.Wait()
		close(outCh)
	}()

	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}

	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	return result, nil
}

// worker checks files from workCh with its own session.
func (r *Runner) worker(
	ctx context.Context,
	session *lint.Session,
	cfg *config.Config,
	workCh <-chan string,
	outCh chan<- FileOutcome,
) {
	for path := range workCh {
		if ctx.Err() != nil {
			return
		}

		outcome := checkFile(ctx, session, cfg, path)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

func checkFile(ctx context.Context, session *lint.Session, cfg *config.Config, path string) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	return checkContent(ctx, session, cfg, path, content)
}

func checkContent(
	ctx context.Context,
	session *lint.Session,
	cfg *config.Config,
	name string,
	content []byte,
) FileOutcome {
	outcome := FileOutcome{Path: name}

	raw, format, err := prepare(name, content, cfg)
	outcome.Format = format
	if err != nil {
		outcome.Error = err
		return outcome
	}

	report, err := session.Check(ctx, raw)
	if err != nil {
		outcome.Error = fmt.Errorf("check %s: %w", name, err)
		return outcome
	}
	outcome.Report = report

	logging.FromContext(ctx).Debug("checked",
		logging.FieldPath, name,
		logging.FieldBlocking, len(report.Blocking),
		logging.FieldAdvisory, len(report.Advisory),
	)

	return outcome
}

// CheckReader checks a single document read from rd, such as standard input.
// name is used for format detection and reporting; it need not exist on disk.
func (r *Runner) CheckReader(ctx context.Context, name string, rd io.Reader, cfg *config.Config) (*Result, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	content, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	session, err := newSession(r.Registry, cfg)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	result := &Result{}
	result.Stats.FilesDiscovered = 1
	result.accumulate(checkContent(ctx, session, cfg, name, content))

	return result, nil
}
