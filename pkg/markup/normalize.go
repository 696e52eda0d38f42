// Package markup turns raw markup text into a queryable document tree.
//
// The package has three stages:
//
//   - Normalize reduces raw input to the analyzable fragment: body content only,
//     with script blocks, image tags and non-breaking-space entities removed.
//   - Parse builds a Document from the fragment. Parsing never fails on
//     malformed markup; the HTML5 parsing algorithm recovers from it.
//   - RenderMarkdown and DetectFormat let Markdown files with embedded HTML be
//     checked through the same pipeline.
package markup

import "regexp"

// Patterns used by Normalize. All matches are case-insensitive.
//
//nolint:gochecknoglobals // Compiled once, read-only.
var (
	// bodyPattern matches from the first opening body tag to the last closing one.
	bodyPattern   = regexp.MustCompile(`(?is)<body[^>]*>(.*)</body>`)
	scriptPattern = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\b[^>]*>`)
	imgPattern    = regexp.MustCompile(`(?i)<img\b[^>]*>`)
	nbspPattern   = regexp.MustCompile(`(?i)&nbsp;`)
)

// Normalize returns the analyzable fragment of raw.
//
// If raw contains a body element only its inner content is kept; otherwise
// the whole string is used. Script blocks, image tags and &nbsp; entities are
// then removed so that they never influence a rule.
func Normalize(raw string) string {
	fragment := raw
	if m := bodyPattern.FindStringSubmatch(raw); m != nil {
		fragment = m[1]
	}

	fragment = scriptPattern.ReplaceAllString(fragment, "")
	fragment = imgPattern.ReplaceAllString(fragment, "")
	fragment = nbspPattern.ReplaceAllString(fragment, "")

	return fragment
}
