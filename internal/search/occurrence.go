package search

import (
	"strings"

	"harshagw/docstats/internal/analysis"
)

// CountOccurrences counts the non-overlapping occurrences of pattern in
// haystack, scanning left to right.
//
// With caseSensitive unset both strings are folded with ASCII lower-casing.
// With wholeWord set a match only counts when the bytes on either side of it
// are non-word bytes or the string boundary. Only the outer ends are checked,
// so pattern may be a phrase spanning spaces or newlines.
func CountOccurrences(haystack, pattern string, caseSensitive, wholeWord bool) int {
	if pattern == "" {
		return 0
	}
	if !caseSensitive {
		haystack = analysis.FoldASCII(haystack)
		pattern = analysis.FoldASCII(pattern)
	}

	count := 0
	for pos := 0; pos <= len(haystack)-len(pattern); {
		i := strings.Index(haystack[pos:], pattern)
		if i < 0 {
			break
		}
		start := pos + i
		end := start + len(pattern)

		if wholeWord && !isWordBounded(haystack, start, end) {
			pos = start + 1
			continue
		}
		count++
		pos = end
	}
	return count
}

// isWordBounded reports whether s[start:end] has a non-word byte or the
// string boundary on both sides.
func isWordBounded(s string, start, end int) bool {
	if start > 0 && analysis.IsWord(s[start-1]) {
		return false
	}
	if end < len(s) && analysis.IsWord(s[end]) {
		return false
	}
	return true
}

// MostCommonString returns the candidate with the highest occurrence count in
// haystack. Ties go to the earliest candidate. It returns false when the list
// is empty or no candidate occurs at all.
func MostCommonString(haystack string, candidates []string, caseSensitive, wholeWord bool) (string, bool) {
	best := ""
	bestCount := 0
	for _, c := range candidates {
		if n := CountOccurrences(haystack, c, caseSensitive, wholeWord); n > bestCount {
			bestCount = n
			best = c
		}
	}
	return best, bestCount > 0
}
