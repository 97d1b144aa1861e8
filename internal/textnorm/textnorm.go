// Package textnorm provides the whitespace normalization and truncation
// policy shared by the file and web extractors.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	horizontalRuns = regexp.MustCompile(`[ \t\f\x{00a0}]+`)
	newlinePadding = regexp.MustCompile(` *\n *`)
	excessNewlines = regexp.MustCompile(`\n{3,}`)
)

// Normalize collapses runs of horizontal whitespace to single spaces,
// collapses three or more consecutive newlines to exactly two (paragraph
// breaks survive, excess blank lines do not), and trims the result.
// Normalizing already-normalized text is a no-op.
func Normalize(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	content = horizontalRuns.ReplaceAllString(content, " ")
	content = newlinePadding.ReplaceAllString(content, "\n")
	content = excessNewlines.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}

// Truncate caps text at max runes. When the text exceeds the cap it is cut
// at the boundary and marker is appended, so a truncated result is always
// exactly max+len(marker) runes. The boolean reports whether truncation
// happened.
func Truncate(text string, max int, marker string) (string, bool) {
	runes := []rune(text)
	if len(runes) <= max {
		return text, false
	}
	return string(runes[:max]) + marker, true
}
