// Package search ranks, orders and pages trip-like collections in memory.
package search

import "strings"

// FuzzyThreshold is the lowest character-overlap score that counts as a hit.
const FuzzyThreshold = 0.6

// FuzzyScore is a cheap search-as-you-type score: 1.0 for an exact match,
// 0.8 when query is contained in text, otherwise the share of distinct
// characters the two have in common, zeroed below FuzzyThreshold.
// It is not an edit distance.
func FuzzyScore(query, text string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	t := strings.ToLower(strings.TrimSpace(text))
	if q == "" || t == "" {
		return 0
	}
	if q == t {
		return 1.0
	}
	if strings.Contains(t, q) {
		return 0.8
	}

	qs, ts := runeSet(q), runeSet(t)
	overlap := 0
	for r := range qs {
		if _, ok := ts[r]; ok {
			overlap++
		}
	}
	score := float64(overlap) / float64(max(len(qs), len(ts)))
	if score < FuzzyThreshold {
		return 0
	}
	return score
}

func runeSet(s string) map[rune]struct{} {
	out := make(map[rune]struct{}, len(s))
	for _, r := range s {
		out[r] = struct{}{}
	}
	return out
}
