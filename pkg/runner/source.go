package runner

import (
	"fmt"

	"github.com/yaklabco/semlint/pkg/config"
	"github.com/yaklabco/semlint/pkg/markup"
)

// prepare turns file content into the markup string handed to a session.
// Markdown is rendered to HTML first so that its embedded markup is checked.
func prepare(name string, content []byte, cfg *config.Config) (string, markup.Format, error) {
	format := markup.DetectFormat(name, content)
	if format != markup.FormatMarkdown {
		return string(content), format, nil
	}

	rendered, err := markup.RenderMarkdown(content, string(cfg.Flavor))
	if err != nil {
		return "", format, fmt.Errorf("render markdown %s: %w", name, err)
	}
	return rendered, format, nil
}
