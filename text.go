package shopsight

import (
	"regexp"
	"strings"
)

var (
	tagRE        = regexp.MustCompile(`<[^>]+>`)
	whitespaceRE = regexp.MustCompile(`\s+`)
	// Keeps letters, digits, underscore, whitespace, and basic punctuation;
	// everything else is stripped. Unicode classes rather than \w, which is
	// ASCII-only in RE2 and would mangle non-English storefront text.
	punctuationRE = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?\-:;()]`)
)

// CleanText strips HTML tags, collapses whitespace, and removes characters
// outside a punctuation-safe set. When maxLength > 0 and the cleaned text is
// longer, it is truncated at the last word boundary within maxLength and an
// ellipsis is appended.
func CleanText(text string, maxLength int) string {
	if text == "" {
		return ""
	}

	text = tagRE.ReplaceAllString(text, "")
	text = whitespaceRE.ReplaceAllString(text, " ")
	text = punctuationRE.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	if maxLength > 0 && len(text) > maxLength {
		text = text[:maxLength]
		if idx := strings.LastIndex(text, " "); idx > 0 {
			text = text[:idx]
		}
		text += "..."
	}

	return text
}
