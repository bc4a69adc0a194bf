// Package textnorm folds French text into the form every phrase table is written in.
package textnorm

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var diacritics = strings.NewReplacer(
	"é", "e", "è", "e", "ê", "e", "ë", "e",
	"à", "a", "â", "a", "ä", "a",
	"ù", "u", "û", "u", "ü", "u",
	"ô", "o", "ö", "o",
	"î", "i", "ï", "i",
	"ç", "c", "œ", "oe",
)

// Normalize lower-cases text and strips the French diacritics.
// Punctuation and whitespace are left untouched.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	// A Caser keeps state between calls, so build one per call to stay goroutine safe.
	lower := cases.Lower(language.Und).String(text)
	return diacritics.Replace(lower)
}

// Count returns the number of non-overlapping occurrences of phrase in text.
// Both arguments are expected to be normalized already.
func Count(text, phrase string) int {
	if phrase == "" || text == "" {
		return 0
	}
	return strings.Count(text, phrase)
}

// Contains reports whether phrase occurs in the normalized text.
func Contains(text, phrase string) bool {
	return phrase != "" && strings.Contains(text, phrase)
}
