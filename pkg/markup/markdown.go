package markup

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Markdown flavors understood by RenderMarkdown.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// RenderMarkdown converts Markdown source to HTML so that the markup it embeds
// can be checked. Raw HTML is passed through unchanged.
// Unknown flavors fall back to CommonMark.
func RenderMarkdown(src []byte, flavor string) (string, error) {
	var buf bytes.Buffer
	if err := newMarkdown(flavor).Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// newMarkdown creates a goldmark instance for the flavor.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newMarkdown(flavor string) goldmark.Markdown {
	opts := []goldmark.Option{
		goldmark.WithRendererOptions(html.WithUnsafe()),
	}

	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}

	return goldmark.New(opts...)
}
