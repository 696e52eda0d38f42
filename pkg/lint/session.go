package lint

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/yaklabco/semlint/internal/logging"
	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/markup"
)

var (
	// ErrConfiguration is returned by Initialize when a sink is missing.
	ErrConfiguration = errors.New("invalid session configuration")

	// ErrNotInitialized is returned by Check before a successful Initialize.
	ErrNotInitialized = errors.New("session not initialized")
)

// Sink receives the diagnostics of one severity, in report order.
type Sink interface {
	// Clear discards everything appended since the previous Clear.
	Clear()

	// Append adds a diagnostic after the ones already received.
	Append(d Diagnostic)
}

// Collector is a Sink that keeps diagnostics in memory.
// The zero value is ready to use.
type Collector struct {
	items []Diagnostic
}

// Clear implements Sink.
func (c *Collector) Clear() {
	c.items = nil
}

// Append implements Sink.
func (c *Collector) Append(d Diagnostic) {
	c.items = append(c.items, d)
}

// Diagnostics returns a copy of the collected diagnostics.
func (c *Collector) Diagnostics() []Diagnostic {
	return slices.Clone(c.items)
}

// Messages returns the collected messages in order.
func (c *Collector) Messages() []string {
	messages := make([]string, 0, len(c.items))
	for _, d := range c.items {
		messages = append(messages, d.Message)
	}
	return messages
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	return len(c.items)
}

// Report is the outcome of one check pass.
type Report struct {
	// Blocking holds error-severity diagnostics in catalog order.
	Blocking []Diagnostic

	// Advisory holds info-severity diagnostics in catalog order.
	Advisory []Diagnostic

	// RuleErrors contains internal failures keyed by rule ID.
	// A failing rule contributes no diagnostics; the other rules still run.
	RuleErrors map[string]error
}

// HasBlocking reports whether any blocking diagnostic was produced.
func (r Report) HasBlocking() bool {
	return len(r.Blocking) > 0
}

// Total returns the number of diagnostics in both collections.
func (r Report) Total() int {
	return len(r.Blocking) + len(r.Advisory)
}

// All returns blocking diagnostics followed by advisory ones.
func (r Report) All() []Diagnostic {
	return slices.Concat(r.Blocking, r.Advisory)
}

// Session evaluates one document at a time against the rule catalog.
//
// A session starts uninitialized; Initialize attaches the two sinks, after
// which every Check call is a complete, synchronous pass that replaces the
// previous results. A Session is not safe for concurrent use: check documents
// in parallel with one session per goroutine.
type Session struct {
	cfg   *config.Config
	rules []ResolvedRule

	blockingSink Sink
	advisorySink Sink
	initialized  bool

	doc    *markup.Document
	report Report
}

// NewSession creates an uninitialized session over the rules in registry,
// resolved against cfg. A nil registry means DefaultRegistry and a nil cfg
// means the default configuration.
func NewSession(registry *Registry, cfg *config.Config) *Session {
	if registry == nil {
		registry = DefaultRegistry
	}
	if cfg == nil {
		cfg = config.NewConfig()
	}

	return &Session{
		cfg:   cfg,
		rules: ResolveRules(registry, cfg),
	}
}

// Initialize sets the destinations for blocking and advisory diagnostics.
// Calling it again replaces the sinks. If either sink is nil the session is
// left unchanged and an error wrapping ErrConfiguration is returned.
func (s *Session) Initialize(blocking, advisory Sink) error {
	if blocking == nil || advisory == nil {
		return fmt.Errorf("%w: blocking and advisory sinks must both be set", ErrConfiguration)
	}

	s.blockingSink = blocking
	s.advisorySink = advisory
	s.initialized = true

	return nil
}

// Initialized reports whether Initialize has succeeded.
func (s *Session) Initialized() bool {
	return s.initialized
}

// Rules returns the resolved rules the session evaluates, in order.
func (s *Session) Rules() []ResolvedRule {
	return slices.Clone(s.rules)
}

// Report returns the result of the most recent Check.
func (s *Session) Report() Report {
	return s.report
}

// Document returns the tree built by the most recent Check, or nil.
func (s *Session) Document() *markup.Document {
	return s.doc
}

// Check evaluates raw markup and delivers the diagnostics to the sinks.
//
// Both sinks are cleared first. Empty input yields an empty report without
// evaluating any rule, so the success summary is not emitted for it.
func (s *Session) Check(ctx context.Context, raw string) (Report, error) {
	if !s.initialized {
		return Report{}, ErrNotInitialized
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s.reset()

	if raw == "" {
		return s.report, nil
	}

	logger := logging.FromContext(ctx)

	doc, err := markup.Parse(markup.Normalize(raw))
	if err != nil {
		return Report{}, fmt.Errorf("build document tree: %w", err)
	}
	s.doc = doc

	var all []Diagnostic
	var ruleErrors map[string]error

	for _, rr := range s.rules {
		if err := ctx.Err(); err != nil {
			s.reset()
			return Report{}, fmt.Errorf("check cancelled: %w", err)
		}

		ruleCtx := NewRuleContext(ctx, doc, s.cfg, rr.Config)
		ruleCtx.Prior = slices.Clone(all)

		diags, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			if ruleErrors == nil {
				ruleErrors = make(map[string]error)
			}
			ruleErrors[rr.Rule.ID()] = err
			logger.Warn("rule failed", logging.FieldRule, rr.Rule.ID(), logging.FieldError, err)
			continue
		}

		for i := range diags {
			// Apply resolved severity.
			diags[i].Severity = rr.Severity
			if diags[i].RuleID == "" {
				diags[i].RuleID = rr.Rule.ID()
			}
			if diags[i].RuleName == "" {
				diags[i].RuleName = rr.Rule.Name()
			}
		}

		if len(diags) > 0 {
			logger.Debug("rule fired", logging.FieldRule, rr.Rule.ID(), logging.FieldCount, len(diags))
		}

		all = append(all, diags...)
	}

	report := Report{RuleErrors: ruleErrors}
	for _, d := range all {
		if d.IsBlocking() {
			report.Blocking = append(report.Blocking, d)
		} else {
			report.Advisory = append(report.Advisory, d)
		}
	}

	s.report = report
	s.deliver()

	logger.Debug("check complete",
		logging.FieldBlocking, len(report.Blocking),
		logging.FieldAdvisory, len(report.Advisory),
	)

	return report, nil
}

// reset clears the sinks and drops the previous tree and report.
func (s *Session) reset() {
	s.blockingSink.Clear()
	s.advisorySink.Clear()
	s.doc = nil
	s.report = Report{}
}

// deliver appends the current report to the sinks.
func (s *Session) deliver() {
	for _, d := range s.report.Blocking {
		s.blockingSink.Append(d)
	}
	for _, d := range s.report.Advisory {
		s.advisorySink.Append(d)
	}
}
