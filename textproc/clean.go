package textproc

import (
	"regexp"
	"strings"
)

var (
	// Angle-bracket spans, with no nesting awareness.
	tagPattern = regexp.MustCompile(`<[^>]+>`)

	// http/https URLs over the permissive character set used by legacy
	// scrapers: letters, digits, the $-_ range, a few extra marks, and
	// percent escapes.
	urlPattern = regexp.MustCompile(`https?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\\(),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)

	// Emoji code-point blocks: emoticons, symbols and pictographs,
	// transport and map symbols, regional indicators (flags), dingbats,
	// and enclosed characters.
	emojiPattern = regexp.MustCompile(`[` +
		`\x{1F600}-\x{1F64F}` +
		`\x{1F300}-\x{1F5FF}` +
		`\x{1F680}-\x{1F6FF}` +
		`\x{1F1E0}-\x{1F1FF}` +
		`\x{2702}-\x{27B0}` +
		`\x{24C2}-\x{1F251}` +
		`]+`)

	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Clean normalizes raw text for analysis. It strips HTML-like tags, then
// URLs, then optionally emoji runs, collapses whitespace runs to single
// spaces, and trims the result. Step order is fixed; each step operates on
// the output of the previous one. Empty input yields an empty string.
func Clean(text string, removeEmojis bool) string {
	if text == "" {
		return ""
	}

	text = tagPattern.ReplaceAllString(text, "")
	text = urlPattern.ReplaceAllString(text, "")

	if removeEmojis {
		text = emojiPattern.ReplaceAllString(text, "")
	}

	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
