package lint

import (
	"errors"

	"github.com/yaklabco/semlint/pkg/config"
)

// mockRule emits a fixed list of messages, or fails with err.
type mockRule struct {
	BaseRule
	messages []string
	err      error
	disabled bool
	seen     [][]Diagnostic
}

func newMockRule(id string, severity config.Severity, messages ...string) *mockRule {
	return &mockRule{
		BaseRule: NewBaseRule(id, "mock-"+id, "mock rule", nil, severity),
		messages: messages,
	}
}

func (m *mockRule) DefaultEnabled() bool { return !m.disabled }

func (m *mockRule) Apply(ctx *RuleContext) ([]Diagnostic, error) {
	m.seen = append(m.seen, ctx.Prior)
	if m.err != nil {
		return nil, m.err
	}

	diags := make([]Diagnostic, 0, len(m.messages))
	for _, msg := range m.messages {
		diags = append(diags, m.Diagnostic(msg))
	}
	return diags, nil
}

var errMockFailure = errors.New("mock failure")
