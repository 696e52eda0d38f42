package server

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yaklabco/semlint/pkg/lint"
	"github.com/yaklabco/semlint/pkg/runner"
)

// Check outcomes used as the "outcome" label.
const (
	outcomeClean    = "clean"
	outcomeAdvisory = "advisory"
	outcomeBlocking = "blocking"
	outcomeError    = "error"
)

// Metrics holds the Prometheus collectors for the HTTP API.
type Metrics struct {
	checks      *prometheus.CounterVec
	diagnostics *prometheus.CounterVec
	ruleErrors  *prometheus.CounterVec
	duration    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		checks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "semlint_checks_total",
				Help: "Documents checked, by input format and outcome",
			},
			[]string{"format", "outcome"},
		),
		diagnostics: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "semlint_diagnostics_total",
				Help: "Diagnostics reported, by severity and rule",
			},
			[]string{"severity", "rule"},
		),
		ruleErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "semlint_rule_errors_total",
				Help: "Rules that failed while checking a document",
			},
			[]string{"rule"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "semlint_check_duration_seconds",
				Help:    "Time spent checking one document",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
			},
		),
	}

	reg.MustRegister(m.checks, m.diagnostics, m.ruleErrors, m.duration)
	return m
}

// observe records one checked document.
func (m *Metrics) observe(outcome runner.FileOutcome, seconds float64) {
	m.duration.Observe(seconds)

	format := string(outcome.Format)
	if format == "" {
		format = "unknown"
	}

	switch {
	case outcome.Error != nil:
		m.checks.WithLabelValues(format, outcomeError).Inc()
		return
	case outcome.Report.HasBlocking():
		m.checks.WithLabelValues(format, outcomeBlocking).Inc()
	case hasAdvisory(outcome.Report):
		m.checks.WithLabelValues(format, outcomeAdvisory).Inc()
	default:
		m.checks.WithLabelValues(format, outcomeClean).Inc()
	}

	for _, d := range outcome.Report.All() {
		m.diagnostics.WithLabelValues(string(d.Severity), d.RuleID).Inc()
	}
	for id := range outcome.Report.RuleErrors {
		m.ruleErrors.WithLabelValues(id).Inc()
	}
}

// hasAdvisory ignores the success acknowledgement.
func hasAdvisory(report lint.Report) bool {
	for _, d := range report.Advisory {
		if d.RuleID != runner.SuccessRuleID {
			return true
		}
	}
	return false
}
