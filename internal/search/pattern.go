package search

import (
	"regexp"
	"slices"

	"harshagw/docstats/internal/analysis"
)

// Match is a piece of text found at a byte offset of the document.
type Match struct {
	Offset int
	Text   string
}

// End returns the offset just past the match.
func (m Match) End() int { return m.Offset + len(m.Text) }

// MatchesWithOffsets runs pattern over haystack and returns every match in
// scan order. Offsets are unique and strictly increasing. It returns nil when
// nothing matched and an error when the pattern does not compile.
func MatchesWithOffsets(haystack, pattern string) ([]Match, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return matchesWithRegexp(haystack, re), nil
}

func matchesWithRegexp(haystack string, re *regexp.Regexp) []Match {
	locs := re.FindAllStringIndex(haystack, -1)
	if len(locs) == 0 {
		return nil
	}

	matches := make([]Match, 0, len(locs))
	for _, loc := range locs {
		if n := len(matches); n > 0 && matches[n-1].Offset == loc[0] {
			// An empty match directly after a non-empty one shares its offset.
			continue
		}
		matches = append(matches, Match{Offset: loc[0], Text: haystack[loc[0]:loc[1]]})
	}
	return matches
}

// Histogram counts every word of words in haystack with CountOccurrences.
// It returns nil for a nil word list and a possibly all-zero map otherwise.
func Histogram(haystack string, words []string, caseSensitive, wholeWord bool) map[string]int {
	if words == nil {
		return nil
	}
	hist := make(map[string]int, len(words))
	for _, w := range words {
		if _, ok := hist[w]; ok {
			continue
		}
		hist[w] = CountOccurrences(haystack, w, caseSensitive, wholeWord)
	}
	return hist
}

// DeduplicatedList returns the distinct entries of words in first-occurrence
// order. Without caseSensitive, entries are compared and returned lower-cased.
func DeduplicatedList(words []string, caseSensitive bool) []string {
	if words == nil {
		return nil
	}
	seen := make(map[string]bool, len(words))
	unique := make([]string, 0, len(words))
	for _, w := range words {
		if !caseSensitive {
			w = analysis.FoldASCII(w)
		}
		if seen[w] {
			continue
		}
		seen[w] = true
		unique = append(unique, w)
	}
	return unique
}

// MatchTexts returns the text of every match, in order.
func MatchTexts(matches []Match) []string {
	if matches == nil {
		return nil
	}
	texts := make([]string, len(matches))
	for i, m := range matches {
		texts[i] = m.Text
	}
	return texts
}

// MapValues returns the values of an offset-keyed map ordered by key.
func MapValues(m map[int]string) []string {
	if m == nil {
		return nil
	}
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	values := make([]string, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}
	return values
}
