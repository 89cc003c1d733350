package textproc

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Sentiment indicator keys returned by AnalyzeSentimentIndicators.
const (
	SentimentPositiveCount = "positive_count"
	SentimentNegativeCount = "negative_count"
	SentimentUrgencyCount  = "urgency_count"
)

const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var buzzwordStopwords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {},
	"at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
}

var ctaPhrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(shop now|buy today|get started|learn more|sign up|download)\b`),
	regexp.MustCompile(`(?i)\b(click here|tap to|visit us|try free|order now)\b`),
	regexp.MustCompile(`(?i)\b(limited time|act now|don't miss|hurry up)\b`),
}

var (
	positivePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(amazing|awesome|great|excellent|perfect|love|best)\b`),
		regexp.MustCompile(`(?i)\b(incredible|fantastic|wonderful|outstanding|brilliant)\b`),
	}
	negativePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(terrible|awful|worst|hate|horrible|bad)\b`),
		regexp.MustCompile(`(?i)\b(disappointing|frustrating|annoying|poor)\b`),
	}
	urgencyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(urgent|immediate|asap|quickly|fast|rapid)\b`),
		regexp.MustCompile(`(?i)\b(deadline|expires|limited|ending|final)\b`),
	}
)

// ExtractBuzzwords strips ASCII punctuation, lowercases, splits on
// whitespace, and keeps tokens of at least minLength runes that are not in
// the fixed stopword set. The result is deduplicated; ordering is not
// guaranteed.
func ExtractBuzzwords(text string, minLength int) []string {
	stripped := strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, text)

	seen := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(stripped)) {
		if utf8.RuneCountInString(word) < minLength {
			continue
		}
		if _, stop := buzzwordStopwords[word]; stop {
			continue
		}
		seen[word] = struct{}{}
	}

	buzzwords := make([]string, 0, len(seen))
	for word := range seen {
		buzzwords = append(buzzwords, word)
	}
	return buzzwords
}

// ExtractCTAPhrases returns every call-to-action phrase found in text,
// scanning three fixed case-insensitive pattern groups (action phrases,
// instruction phrases, urgency phrases). Matches appear in pattern-group
// order, then in within-group occurrence order. Unlike buzzword extraction,
// repeated occurrences are retained.
func ExtractCTAPhrases(text string) []string {
	var phrases []string
	for _, p := range ctaPhrasePatterns {
		phrases = append(phrases, p.FindAllString(text, -1)...)
	}
	return phrases
}

// AnalyzeSentimentIndicators counts case-insensitive whole-word matches
// against fixed positive, negative, and urgency lexicons. The returned map
// has exactly the keys positive_count, negative_count, and urgency_count.
func AnalyzeSentimentIndicators(text string) map[string]int {
	return map[string]int{
		SentimentPositiveCount: countMatches(text, positivePatterns),
		SentimentNegativeCount: countMatches(text, negativePatterns),
		SentimentUrgencyCount:  countMatches(text, urgencyPatterns),
	}
}

func countMatches(text string, patterns []*regexp.Regexp) int {
	n := 0
	for _, p := range patterns {
		n += len(p.FindAllString(text, -1))
	}
	return n
}
