package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/semlint/pkg/markup"
)

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("raw html passes through", func(t *testing.T) {
		t.Parallel()

		out, err := markup.RenderMarkdown([]byte("# Title\n\n<center>hi</center>\n"), markup.FlavorCommonMark)
		require.NoError(t, err)
		assert.Contains(t, out, "<h1>Title</h1>")
		assert.Contains(t, out, "<center>hi</center>")
	})

	t.Run("gfm renders tables", func(t *testing.T) {
		t.Parallel()

		src := []byte("| a | b |\n|---|---|\n| 1 | 2 |\n")

		gfm, err := markup.RenderMarkdown(src, markup.FlavorGFM)
		require.NoError(t, err)
		assert.Contains(t, gfm, "<table>")

		plain, err := markup.RenderMarkdown(src, markup.FlavorCommonMark)
		require.NoError(t, err)
		assert.NotContains(t, plain, "<table>")
	})
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		file    string
		content string
		want    markup.Format
	}{
		{"html extension", "index.html", "", markup.FormatHTML},
		{"htm extension", "INDEX.HTM", "", markup.FormatHTML},
		{"md extension", "README.md", "# hi", markup.FormatMarkdown},
		{"markdown extension", "notes.markdown", "", markup.FormatMarkdown},
		{"stdin markup", "", "  <div><p>x</p></div>", markup.FormatHTML},
		{"empty", "", "", markup.FormatHTML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, markup.DetectFormat(tt.file, []byte(tt.content)))
		})
	}
}
