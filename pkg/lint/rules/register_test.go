package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/lint"
)

func TestRegisterAll_Order(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	assert.Equal(t, []string{
		"SEM001", "SEM002", "SEM003", "SEM004", "SEM005", "SEM006", "SEM007",
		"SEM008", "SEM009", "SEM010", "SEM011", "SEM012", "SEM013",
	}, registry.IDs())
}

func TestRegisterAll_Metadata(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id       string
		name     string
		severity config.Severity
	}{
		{"SEM001", "header-element", config.SeverityError},
		{"SEM002", "footer-element", config.SeverityError},
		{"SEM003", "nav-element", config.SeverityError},
		{"SEM004", "section-element", config.SeverityInfo},
		{"SEM005", "article-element", config.SeverityInfo},
		{"SEM006", "aside-element", config.SeverityInfo},
		{"SEM007", "no-empty-paragraphs", config.SeverityError},
		{"SEM008", "semantic-identifiers", config.SeverityError},
		{"SEM009", "new-input-types", config.SeverityInfo},
		{"SEM010", "tableless-design", config.SeverityInfo},
		{"SEM011", "no-deprecated-tags", config.SeverityError},
		{"SEM012", "no-deprecated-attributes", config.SeverityError},
		{"SEM013", "semantic-success", config.SeverityInfo},
	}

	registry := NewRegistry()
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()

			rule, ok := registry.GetByID(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.name, rule.Name())
			assert.Equal(t, tt.severity, rule.DefaultSeverity())
			assert.True(t, rule.DefaultEnabled())
			assert.NotEmpty(t, rule.Description())
			assert.NotEmpty(t, rule.Tags())

			byName, ok := registry.GetByName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.id, byName.ID())
		})
	}
}

func TestDefaultRegistryHoldsCatalog(t *testing.T) {
	t.Parallel()

	assert.Equal(t, NewRegistry().IDs(), lint.DefaultRegistry.IDs())
}
