package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CapitalizeWords trims the input and title-cases each whitespace-delimited
// word. All catalog names are stored in this form so display and search
// logic can assume canonical casing.
func CapitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		r, size := utf8.DecodeRuneInString(word)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
	}
	return strings.Join(words, " ")
}

// NormalizeName lower-cases and trims a name for case-insensitive
// comparison. Used by the creation flow and by picker ranking, never for
// storage.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
