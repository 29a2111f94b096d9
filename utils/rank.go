package utils

import (
	"fmt"
	"io"
	"sort"
)

// RankedEntry is a word and its count in ranked output.
type RankedEntry struct {
	Word  string
	Count int
}

// lessEntry orders higher counts first; equal counts by word ascending.
func lessEntry(a, b RankedEntry) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Word < b.Word
}

// Rank returns at most limit entries of table sorted by descending count.
func Rank(table FrequencyTable, limit int) []RankedEntry {
	if limit < 0 {
		limit = 0
	}
	ranked := make([]RankedEntry, 0, len(table))
	for word, count := range table {
		ranked = append(ranked, RankedEntry{Word: word, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return lessEntry(ranked[i], ranked[j])
	})

	if len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}

// Render writes the limit header followed by one "word: count" line per entry.
func Render(w io.Writer, entries []RankedEntry, limit uint16) error {
	if _, err := fmt.Fprintf(w, "\nLimit = %d:\n", limit); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s: %d\n", e.Word, e.Count); err != nil {
			return err
		}
	}
	return nil
}
