package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeprecation_TagMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		dep  Deprecation
		want string
	}{
		{Deprecation{Name: "b", Advice: AdviceReplace, Replacement: "strong"}, "Use <strong> instead of <b>"},
		{Deprecation{Name: "i", Advice: AdviceReplace, Replacement: "em"}, "Use <em> instead of <i>"},
		{Deprecation{Name: "u", Advice: AdviceStyling}, "Don't use <u>, use CSS styling instead"},
		{Deprecation{Name: "font"}, "Don't use deprecated <font> element"},
	}

	for _, tt := range tests {
		t.Run(tt.dep.Name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.dep.TagMessage())
		})
	}
}

func TestDeprecation_AttrMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Don't use inline styles, use external CSS styling instead",
		Deprecation{Name: "style", Advice: AdviceStyling, Label: "inline styles"}.AttrMessage())
	assert.Equal(t, `Don't use deprecated "align" attributes`,
		Deprecation{Name: "align"}.AttrMessage())
	assert.Equal(t, `Use "headers" instead of "axis" attributes`,
		Deprecation{Name: "axis", Advice: AdviceReplace, Replacement: "headers"}.AttrMessage())
}

func TestDeprecatedTagsRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "clean",
			input: "<p><strong>a</strong> <em>b</em></p>",
			want:  []string{},
		},
		{
			name:  "bold",
			input: "<b>text</b>",
			want:  []string{"Use <strong> instead of <b>"},
		},
		{
			name:  "catalog order and one diagnostic per tag",
			input: "<u>x</u><font>y</font><b>1</b><b>2</b><center>z</center><i>w</i>",
			want: []string{
				"Use <strong> instead of <b>",
				"Don't use <center>, use CSS styling instead",
				"Don't use deprecated <font> element",
				"Use <em> instead of <i>",
				"Don't use <u>, use CSS styling instead",
			},
		},
		{
			name:  "unknown legacy elements",
			input: "<blackface>x</blackface><layer></layer>",
			want: []string{
				"Don't use deprecated <blackface> element",
				"Don't use deprecated <layer> element",
			},
		},
		{
			name:  "menu and blockquote",
			input: "<menu><li>a</li></menu><blockquote>q</blockquote>",
			want: []string{
				"Don't use deprecated <blockquote> element",
				"Don't use deprecated <menu> element",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			diags := applyRule(t, NewDeprecatedTagsRule(), tt.input, nil)
			assert.Equal(t, tt.want, messages(diags))
		})
	}
}

func TestDeprecatedTagsRule_EveryCatalogEntryFires(t *testing.T) {
	t.Parallel()

	for _, dep := range DeprecatedTags {
		t.Run(dep.Name, func(t *testing.T) {
			t.Parallel()

			input := "<" + dep.Name + ">x</" + dep.Name + ">"
			diags := applyRule(t, NewDeprecatedTagsRule(), input, nil)
			assert.Equal(t, []string{dep.TagMessage()}, messages(diags))
		})
	}
}

func TestDeprecatedTagsRule_AllowedOption(t *testing.T) {
	t.Parallel()

	diags := applyRule(t, NewDeprecatedTagsRule(), "<b>x</b><i>y</i>", map[string]any{
		"allowed": []any{"i"},
	})
	assert.Equal(t, []string{"Use <strong> instead of <b>"}, messages(diags))
}

func TestDeprecatedAttributesRule(t *testing.T) {
	t.Parallel()

	diags := applyRule(t, NewDeprecatedAttributesRule(), `<div class="x"></div>`, nil)
	assert.Empty(t, diags)

	diags = applyRule(t, NewDeprecatedAttributesRule(), `<div style="color:red"></div><p style=""></p>`, nil)
	assert.Equal(t, []string{"Don't use inline styles, use external CSS styling instead"}, messages(diags))
}
