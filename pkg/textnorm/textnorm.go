// Package textnorm canonicalizes free text before comparison.
// Classifier labels, audio transcripts, and lookup keys must all pass
// through Clean so that substring matching always sees one representation.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	punctuation = regexp.MustCompile(`[^\w\s]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Clean lower-cases the input, strips punctuation and collapses whitespace
// runs to single spaces. Empty input yields the empty string.
// Clean(Clean(s)) == Clean(s).
func Clean(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(strings.TrimSpace(text))
	text = punctuation.ReplaceAllString(text, "")
	text = whitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
