package search

import "testing"

func TestCountOccurrences(t *testing.T) {
	tests := []struct {
		name          string
		haystack      string
		pattern       string
		caseSensitive bool
		wholeWord     bool
		expected      int
	}{
		{"case sensitive", "aaAAA", "A", true, false, 3},
		{"case insensitive", "aaAAA", "A", false, false, 5},
		{"whole word single", "a ba cac", "a", true, true, 1},
		{"substring single", "a ba cac", "a", true, false, 3},
		{"non-overlapping", "aaaa", "aa", true, false, 2},
		{"whole word rejects then accepts", "aa a", "a", true, true, 1},
		{"underscore is a word byte", "x_y x", "x", true, true, 1},
		{"digits are word bytes", "1a a1 a", "a", true, true, 1},
		{"whole word case insensitive", "The the THE them", "the", false, true, 3},
		{"empty pattern", "abc", "", true, false, 0},
		{"empty haystack", "", "a", true, false, 0},
		{"pattern longer than haystack", "ab", "abc", true, false, 0},
		{"phrase", "it has three, it has", "it has", true, true, 2},
		{"phrase inside word", "bit has", "it has", true, true, 0},
		{"punctuation pattern", "a , b ,c", ",", true, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountOccurrences(tt.haystack, tt.pattern, tt.caseSensitive, tt.wholeWord)
			if got != tt.expected {
				t.Errorf("CountOccurrences(%q, %q, %v, %v) = %d, want %d",
					tt.haystack, tt.pattern, tt.caseSensitive, tt.wholeWord, got, tt.expected)
			}
		})
	}
}

func TestCountOccurrences_MultiLinePhrase(t *testing.T) {
	haystack := "end of\nline here; end of\nlines\nEND OF\nLINE"

	if got := CountOccurrences(haystack, "of\nline", true, true); got != 1 {
		t.Errorf("whole word, case sensitive: got %d, want 1", got)
	}
	if got := CountOccurrences(haystack, "of\nline", true, false); got != 2 {
		t.Errorf("substring, case sensitive: got %d, want 2", got)
	}
	if got := CountOccurrences(haystack, "of\nline", false, true); got != 2 {
		t.Errorf("whole word, case insensitive: got %d, want 2", got)
	}
	if got := CountOccurrences(haystack, "end of\nline", false, false); got != 3 {
		t.Errorf("substring, case insensitive: got %d, want 3", got)
	}
}

func TestMostCommonString(t *testing.T) {
	haystack := "b a b a c"

	tests := []struct {
		name       string
		candidates []string
		want       string
		ok         bool
	}{
		{"first wins on tie", []string{"b", "a", "c"}, "b", true},
		{"order decides tie", []string{"a", "b"}, "a", true},
		{"strictly highest", []string{"c", "a"}, "a", true},
		{"no occurrences", []string{"x", "y"}, "", false},
		{"empty list", []string{}, "", false},
		{"nil list", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MostCommonString(haystack, tt.candidates, true, false)
			if got != tt.want || ok != tt.ok {
				t.Errorf("got %q, %v; want %q, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMostCommonString_WholeWord(t *testing.T) {
	haystack := "cat concat cat scatter"
	got, ok := MostCommonString(haystack, []string{"at", "cat"}, true, true)
	if !ok || got != "cat" {
		t.Errorf("got %q, %v; want cat", got, ok)
	}
	got, ok = MostCommonString(haystack, []string{"at", "cat"}, true, false)
	if !ok || got != "at" {
		t.Errorf("got %q, %v; want at", got, ok)
	}
}
