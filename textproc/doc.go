// Package textproc provides text cleanup and lightweight feature extraction
// for ad and marketing copy: normalization of raw creative text, scalar
// feature counting (word/char/sentence counts, capitalization, punctuation,
// numeric mentions, call-to-action signals), buzzword extraction, CTA phrase
// matching, and sentiment indicator counting.
//
// Every operation is a pure function of its input plus pattern tables
// compiled once at package initialization. All functions are safe for
// concurrent use and never fail on degenerate input: an empty string yields
// empty or zero-valued results throughout.
//
// The tokenization here is intentionally naive. Sentence counting splits on
// the literal period character and word counting splits on whitespace runs.
// Downstream consumers depend on these exact counts, so smarter tokenizers
// must not be substituted.
package textproc
