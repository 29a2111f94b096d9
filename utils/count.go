package utils

// DefaultMaxLength is used when no maximum word length is given.
const DefaultMaxLength uint16 = 10

// Options controls how CountWords filters tokens.
type Options struct {
	IncludeCommon bool
	CaseSensitive bool
	MaxLength     uint16
}

// FrequencyTable maps an accepted word to its occurrence count.
type FrequencyTable map[string]int

// Len returns the number of distinct words.
func (t FrequencyTable) Len() int { return len(t) }

// Total returns the number of accepted tokens.
func (t FrequencyTable) Total() int {
	var n int
	for _, c := range t {
		n += c
	}
	return n
}

func analyze(text string, opts Options) []string {
	tokens := tokenize(text)
	if !opts.CaseSensitive {
		tokens = lowercaseFilter(tokens)
	}
	tokens = lengthFilter(tokens, int(opts.MaxLength))
	if !opts.IncludeCommon {
		tokens = stopwordFilter(tokens)
	}
	return tokens
}

// CountWords tokenizes text and tallies every token that passes the
// length and stop-word filters in opts.
func CountWords(text string, opts Options) FrequencyTable {
	table := make(FrequencyTable)
	for _, t := range analyze(text, opts) {
		table[t]++
	}
	return table
}
