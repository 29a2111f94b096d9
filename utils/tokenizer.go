package utils

import (
	"unicode"
)

// isWordRune matches the Unicode \w class: letters, marks, decimal
// digits and connector punctuation.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsMark(r) || unicode.IsDigit(r) || unicode.Is(unicode.Pc, r)
}

// tokenize splits text into maximal runs of word characters.
func tokenize(text string) []string {
	var tokens []string
	var token []rune

	for _, r := range text {
		if isWordRune(r) {
			token = append(token, r)
		} else if len(token) > 0 {
			tokens = append(tokens, string(token))
			token = token[:0]
		}
	}

	if len(token) > 0 {
		tokens = append(tokens, string(token))
	}
	return tokens
}
