package utils

import (
	"strings"
	"unicode/utf8"
)

var (
	stopwords = initStopwords()
)

func initStopwords() map[string]struct{} {
	return map[string]struct{}{
		"the": {}, "and": {}, "is": {}, "in": {}, "of": {}, "to": {},
		"a": {}, "an": {}, "it": {}, "for": {}, "on": {}, "with": {},
		"as": {}, "by": {}, "that": {}, "we": {}, "i": {},
	}
}

// IsStopword reports whether w is in the built-in stop-word set.
// The lookup is case-sensitive; the set holds lowercase words only.
func IsStopword(w string) bool {
	_, ok := stopwords[w]
	return ok
}

// lowercaseFilter folds every token to lowercase in place.
func lowercaseFilter(tokens []string) []string {
	for i := range tokens {
		tokens[i] = strings.ToLower(tokens[i])
	}
	return tokens
}

func lengthFilter(tokens []string, max int) []string {
	n := 0
	for _, token := range tokens {
		if utf8.RuneCountInString(token) <= max {
			tokens[n] = token
			n++
		}
	}
	return tokens[:n]
}

func stopwordFilter(tokens []string) []string {
	n := 0
	for _, token := range tokens {
		if !IsStopword(token) {
			tokens[n] = token
			n++
		}
	}
	return tokens[:n]
}
