package markup

import (
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Format identifies the kind of input a document is written in.
type Format string

const (
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
)

// Linguist language names as reported by go-enry.
const (
	langHTML     = "HTML"
	langMarkdown = "Markdown"
)

// DetectFormat decides whether content should be treated as HTML or Markdown.
//
// The file name is consulted first; when it is empty or inconclusive
// (e.g. standard input) the content is classified. Anything that is not
// recognized as Markdown is treated as HTML.
func DetectFormat(name string, content []byte) Format {
	if name != "" {
		// Extensions such as .md and .html are shared with other languages,
		// so look for ours among all candidates.
		for _, lang := range enry.GetLanguagesByExtension(filepath.Base(name), content, nil) {
			if lang == langMarkdown || lang == langHTML {
				return formatForLanguage(lang)
			}
		}
	}

	trimmed := strings.TrimSpace(string(content))
	if trimmed == "" || strings.HasPrefix(trimmed, "<") {
		return FormatHTML
	}

	candidates := []string{langHTML, langMarkdown}
	if lang, _ := enry.GetLanguageByClassifier(content, candidates); lang != "" {
		return formatForLanguage(lang)
	}

	return FormatHTML
}

func formatForLanguage(lang string) Format {
	if lang == langMarkdown {
		return FormatMarkdown
	}
	return FormatHTML
}
