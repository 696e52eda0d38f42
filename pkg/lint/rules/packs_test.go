package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/semlint/pkg/config"
)

func TestPacks(t *testing.T) {
	t.Parallel()

	packs := Packs()
	require.Len(t, packs, 4)

	registry := NewRegistry()
	for _, pack := range packs {
		t.Run(pack.Name, func(t *testing.T) {
			t.Parallel()

			assert.NotEmpty(t, pack.Description)
			for id, rc := range pack.Rules {
				_, ok := registry.GetByID(id)
				assert.True(t, ok, "pack %s references unknown rule %s", pack.Name, id)
				require.NotNil(t, rc.Enabled, "rule %s", id)
				if rc.Severity != nil {
					assert.True(t, config.Severity(*rc.Severity).IsValid(), "rule %s", id)
				}
			}
		})
	}
}

func TestPackByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		found bool
	}{
		{"default", true},
		{"strict", true},
		{"structure", true},
		{"fragment", true},
		{"relaxed", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pack := PackByName(tt.name)
			if !tt.found {
				assert.Nil(t, pack)
				return
			}
			require.NotNil(t, pack)
			assert.Equal(t, tt.name, pack.Name)
		})
	}
}

func TestPackNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"default", "strict", "structure", "fragment"}, PackNames())
}

func TestStrictPack_EveryRuleBlocks(t *testing.T) {
	t.Parallel()

	strict := StrictPack()
	for _, rule := range NewRegistry().Rules() {
		if rule.ID() == "SEM013" || rule.DefaultSeverity() == config.SeverityError {
			continue
		}
		rc, ok := strict.Rules[rule.ID()]
		require.True(t, ok, "strict pack does not cover %s", rule.ID())
		require.NotNil(t, rc.Severity)
		assert.Equal(t, "error", *rc.Severity)
	}
}
