package markup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/semlint/pkg/markup"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "fragment passes through",
			input: "<div><p>hello</p></div>",
			want:  "<div><p>hello</p></div>",
		},
		{
			name:  "body content extracted",
			input: "<html><head><title>t</title></head><body class=\"x\"><nav></nav></body></html>",
			want:  "<nav></nav>",
		},
		{
			name:  "body match is case insensitive and spans lines",
			input: "<HTML><BODY>\n<header>\n</header>\n</BODY></HTML>",
			want:  "\n<header>\n</header>\n",
		},
		{
			name:  "body spans to last closing tag",
			input: "<body>a</body>b</body>",
			want:  "a</body>b",
		},
		{
			name:  "script blocks removed",
			input: "<p>a</p><script type=\"text/javascript\">var x = '<b>';</script><p>b</p><SCRIPT>y()</SCRIPT>",
			want:  "<p>a</p><p>b</p>",
		},
		{
			name:  "script removal is non-greedy",
			input: "<script>1</script><header></header><script>2</script>",
			want:  "<header></header>",
		},
		{
			name:  "closing script tag with trailing junk",
			input: "<p>a</p><script>var b = '<b>';</script x><p>b</p><script></script\n>",
			want:  "<p>a</p><p>b</p>",
		},
		{
			name:  "images removed",
			input: "<p><img src=\"a.png\" alt=\"a\"><IMG SRC=b.png /></p>",
			want:  "<p></p>",
		},
		{
			name:  "nbsp removed",
			input: "<p>&nbsp;</p><p>a&NBSP;b</p>",
			want:  "<p></p><p>ab</p>",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, markup.Normalize(tt.input))
		})
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	t.Parallel()

	input := "<body><script>x</script><p>&nbsp;</p><img src=a></body>"
	first := markup.Normalize(input)
	assert.Equal(t, first, markup.Normalize(input))
	assert.Equal(t, first, markup.Normalize(first))
}
