package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/semlint/pkg/config"
)

func TestRegistry_Order(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newMockRule("SEM003", config.SeverityError))
	reg.Register(newMockRule("SEM001", config.SeverityError))
	reg.Register(newMockRule("SEM002", config.SeverityInfo))

	assert.Equal(t, []string{"SEM003", "SEM001", "SEM002"}, reg.IDs())
	assert.Equal(t, 3, reg.Len())
}

func TestRegistry_ReplaceKeepsPosition(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newMockRule("SEM001", config.SeverityError))
	reg.Register(newMockRule("SEM002", config.SeverityError))

	replacement := &mockRule{
		BaseRule: NewBaseRule("SEM001", "renamed", "replacement", nil, config.SeverityInfo),
	}
	reg.Register(replacement)

	assert.Equal(t, []string{"SEM001", "SEM002"}, reg.IDs())

	got, ok := reg.GetByID("SEM001")
	require.True(t, ok)
	assert.Equal(t, "renamed", got.Name())

	_, ok = reg.GetByName("mock-SEM001")
	assert.False(t, ok, "old name should be dropped")
}

func TestRegistry_Get(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newMockRule("SEM001", config.SeverityError))

	tests := []struct {
		key    string
		wantID string
		wantOK bool
	}{
		{"SEM001", "SEM001", true},
		{"mock-SEM001", "SEM001", true},
		{"SEM999", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Parallel()

			got, ok := reg.Get(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, got.ID())
			}
		})
	}
}

func TestRegistry_RulesReturnsCopy(t *testing.T) {
	t.Parallel()

	reg := NewRegistry()
	reg.Register(newMockRule("SEM001", config.SeverityError))

	rules := reg.Rules()
	rules[0] = newMockRule("SEM999", config.SeverityError)

	assert.Equal(t, []string{"SEM001"}, reg.IDs())
}
