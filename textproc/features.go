package textproc

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Feature keys produced by ExtractFeatures.
const (
	FeatureWordCount          = "word_count"
	FeatureCharCount          = "char_count"
	FeatureSentenceCount      = "sentence_count"
	FeatureAllCapsWords       = "all_caps_words"
	FeatureCapsRatio          = "caps_ratio"
	FeatureExclamationCount   = "exclamation_count"
	FeatureQuestionCount      = "question_count"
	FeatureEmojiCount         = "emoji_count"
	FeatureNumberCount        = "number_count"
	FeaturePercentageMentions = "percentage_mentions"
	FeaturePriceMentions      = "price_mentions"
	FeatureCTASignals         = "cta_signals"
)

// FeatureKeys lists every key in the mapping returned by ExtractFeatures, in
// a stable display order.
var FeatureKeys = []string{
	FeatureWordCount,
	FeatureCharCount,
	FeatureSentenceCount,
	FeatureAllCapsWords,
	FeatureCapsRatio,
	FeatureExclamationCount,
	FeatureQuestionCount,
	FeatureEmojiCount,
	FeatureNumberCount,
	FeaturePercentageMentions,
	FeaturePriceMentions,
	FeatureCTASignals,
}

var (
	allCapsPattern  = regexp.MustCompile(`\b[A-Z]{3,}\b`)
	digitRunPattern = regexp.MustCompile(`\d+`)
	percentPattern  = regexp.MustCompile(`\d+%`)
	pricePattern    = regexp.MustCompile(`\$\d+`)

	ctaSignalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(shop|buy|get|try|learn|discover|sign up|download)\b`),
		regexp.MustCompile(`(?i)\b(now|today|click|tap|visit)\b`),
	}
)

// ExtractFeatures derives the fixed feature mapping from cleaned text. All
// values are float64; every count fits losslessly, and caps_ratio is the one
// genuinely fractional entry. Empty input yields all-zero values.
//
// The counting rules are deliberately simple and must stay that way:
// sentence_count splits on the literal period, word_count on whitespace,
// emoji_count counts maximal runs of emoji code points rather than
// individual characters.
func ExtractFeatures(text string) map[string]float64 {
	features := make(map[string]float64, len(FeatureKeys))

	features[FeatureWordCount] = float64(len(strings.Fields(text)))
	features[FeatureCharCount] = float64(utf8.RuneCountInString(text))
	features[FeatureSentenceCount] = float64(countSentences(text))

	features[FeatureAllCapsWords] = float64(len(allCapsPattern.FindAllString(text, -1)))
	features[FeatureCapsRatio] = capsRatio(text)

	features[FeatureExclamationCount] = float64(strings.Count(text, "!"))
	features[FeatureQuestionCount] = float64(strings.Count(text, "?"))
	features[FeatureEmojiCount] = float64(len(emojiPattern.FindAllString(text, -1)))

	features[FeatureNumberCount] = float64(len(digitRunPattern.FindAllString(text, -1)))
	features[FeaturePercentageMentions] = float64(len(percentPattern.FindAllString(text, -1)))
	features[FeaturePriceMentions] = float64(len(pricePattern.FindAllString(text, -1)))

	signals := 0
	for _, p := range ctaSignalPatterns {
		signals += len(p.FindAllString(text, -1))
	}
	features[FeatureCTASignals] = float64(signals)

	return features
}

// countSentences counts the non-empty segments produced by splitting on the
// literal period character. Abbreviations and decimal numbers are not
// special-cased.
func countSentences(text string) int {
	n := 0
	for _, seg := range strings.Split(text, ".") {
		if strings.TrimSpace(seg) != "" {
			n++
		}
	}
	return n
}

// capsRatio is the fraction of characters that are uppercase letters,
// defined as 0 for empty text.
func capsRatio(text string) float64 {
	if text == "" {
		return 0
	}
	upper, total := 0, 0
	for _, r := range text {
		total++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper) / float64(total)
}
