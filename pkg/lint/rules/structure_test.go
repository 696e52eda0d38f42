package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/semlint/pkg/config"
)

func TestTagNotionRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		wantN int
	}{
		{"absent", "<div><p>x</p></div>", 1},
		{"tag present", "<header>x</header>", 0},
		{"id present", `<div id="header"></div>`, 0},
		{"class present", `<div class="top header"></div>`, 0},
		{"uppercase tag", "<HEADER></HEADER>", 0},
		{"only in text", "<p>header</p>", 1},
		{"inside script is ignored", "<script><header></header></script>", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := applyRule(t, NewEssentialTagRule("SEM001", "header"), tt.input, nil)
			assert.Len(t, diags, tt.wantN)
		})
	}
}

func TestTagNotionRule_Messages(t *testing.T) {
	t.Parallel()

	essential := NewEssentialTagRule("SEM003", "nav")
	assert.Equal(t, "nav-element", essential.Name())
	assert.Equal(t, "nav", essential.Tag())
	assert.Equal(t, config.SeverityError, essential.DefaultSeverity())

	diags := applyRule(t, essential, "<p></p>", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "It is strongly recommended that your page contains a <nav> element", diags[0].Message)
	assert.Equal(t, "SEM003", diags[0].RuleID)

	secondary := NewSecondaryTagRule("SEM005", "article")
	assert.Equal(t, config.SeverityInfo, secondary.DefaultSeverity())

	diags = applyRule(t, secondary, "<p></p>", nil)
	require.Len(t, diags, 1)
	assert.Equal(t, "You should consider using <article> elements", diags[0].Message)
}

func TestEmptyParagraphRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		wantN int
	}{
		{"no paragraphs", "<div></div>", 0},
		{"one empty", "<p></p>", 1},
		{"each empty paragraph reported", "<p></p><div><p></p></div><p></p>", 3},
		{"text is content", "<p>text</p>", 0},
		{"whitespace is content", "<p> </p>", 0},
		{"child element is content", "<p><span></span></p>", 0},
		{"nbsp is stripped first", "<p>&nbsp;</p>", 1},
		{"image is stripped first", `<p><img src="spacer.gif"></p>`, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := applyRule(t, NewEmptyParagraphRule(), tt.input, nil)
			require.Len(t, diags, tt.wantN)
			for _, d := range diags {
				assert.Equal(t, EmptyParagraphMessage, d.Message)
			}
		})
	}
}
