// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize shortens article extracts to their first few sentences.
//
// Sentence boundaries are found with a punctuation heuristic: a sentence ends
// at '.', '!' or '?' when the next character is whitespace. Abbreviations
// ("U.S. economy"), decimals at the end of a clause, and punctuation inside
// quotes all produce early breaks. Callers depend on that exact behaviour, so
// it is not refined here.
package summarize

import (
	"regexp"
	"strings"
)

// DefaultSentences is the sentence count used when a caller passes n <= 0.
const DefaultSentences = 3

// boundary matches terminal punctuation plus the whitespace run after it.
// The whitespace class mirrors ECMAScript \s (Unicode spaces, BOM, line and
// paragraph separators) rather than RE2's ASCII-only \s.
var boundary = regexp.MustCompile(`[.!?][\s\v\p{Zs}\x{FEFF}\x{2028}\x{2029}]+`)

// Split breaks text into sentences. Terminal punctuation stays attached to
// its sentence; the whitespace separating sentences is dropped. Empty or
// all-whitespace input yields nil.
func Split(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []string
	start := 0
	for _, loc := range boundary.FindAllStringIndex(text, -1) {
		// loc[0] is the punctuation byte, always ASCII.
		sentences = append(sentences, text[start:loc[0]+1])
		start = loc[1]
	}
	return append(sentences, text[start:])
}

// Sentences returns the first n sentences of text joined by single spaces,
// with surrounding whitespace trimmed. If text has fewer than n sentences,
// all of them are returned.
func Sentences(text string, n int) string {
	if n <= 0 {
		n = DefaultSentences
	}
	parts := Split(text)
	if len(parts) > n {
		parts = parts[:n]
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

// Count reports how many sentences Split finds in text.
func Count(text string) int {
	return len(Split(text))
}
