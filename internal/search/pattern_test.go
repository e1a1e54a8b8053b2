package search

import (
	"reflect"
	"testing"

	"harshagw/docstats/internal/document"
)

var exampleLines = []string{"a  bb ccc", "   it has three lines", "", "", "ACCURATE"}

func newExampleDocument(t *testing.T) *document.Document {
	t.Helper()
	d, err := document.FromLines(exampleLines)
	if err != nil {
		t.Fatalf("FromLines error: %v", err)
	}
	return d
}

func TestMatchesWithOffsets_Words(t *testing.T) {
	d := newExampleDocument(t)

	matches, err := MatchesWithOffsets(d.Text(), `\w+`)
	if err != nil {
		t.Fatalf("MatchesWithOffsets error: %v", err)
	}
	if len(matches) != d.WordCount() {
		t.Fatalf("got %d matches, want %d", len(matches), d.WordCount())
	}

	wordIndex := d.WordIndex()
	for i, m := range matches {
		if m.Offset != wordIndex[i] {
			t.Errorf("match %d offset: got %d, want %d", i, m.Offset, wordIndex[i])
		}
		if got := d.StringFromDocument(m.Offset, m.End()); got != m.Text {
			t.Errorf("round trip for %q at %d gave %q", m.Text, m.Offset, got)
		}
	}
}

func TestMatchesWithOffsets_Multiline(t *testing.T) {
	d := newExampleDocument(t)

	matches, err := MatchesWithOffsets(d.Text(), `(?m)^\w+`)
	if err != nil {
		t.Fatalf("MatchesWithOffsets error: %v", err)
	}
	want := []Match{{Offset: 0, Text: "a"}, {Offset: 34, Text: "ACCURATE"}}
	if !reflect.DeepEqual(matches, want) {
		t.Errorf("got %+v, want %+v", matches, want)
	}
}

func TestMatchesWithOffsets_WordsStartingWithT(t *testing.T) {
	matches, err := MatchesWithOffsets("The tall tree, the end", `\b[Tt]\w*\b`)
	if err != nil {
		t.Fatalf("MatchesWithOffsets error: %v", err)
	}
	if got := MatchTexts(matches); !reflect.DeepEqual(got, []string{"The", "tall", "tree", "the"}) {
		t.Errorf("got %v", got)
	}
}

func TestMatchesWithOffsets_EmptyMatches(t *testing.T) {
	matches, err := MatchesWithOffsets("baa", `a*`)
	if err != nil {
		t.Fatalf("MatchesWithOffsets error: %v", err)
	}
	want := []Match{{Offset: 0, Text: ""}, {Offset: 1, Text: "aa"}}
	if !reflect.DeepEqual(matches, want) {
		t.Errorf("got %+v, want %+v", matches, want)
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Offset >= matches[i].Offset {
			t.Errorf("offsets not strictly increasing: %+v", matches)
		}
	}
}

func TestMatchesWithOffsets_NoMatch(t *testing.T) {
	matches, err := MatchesWithOffsets("abc", `\d+`)
	if err != nil {
		t.Fatalf("MatchesWithOffsets error: %v", err)
	}
	if matches != nil {
		t.Errorf("expected nil, got %+v", matches)
	}
}

func TestMatchesWithOffsets_InvalidPattern(t *testing.T) {
	if _, err := MatchesWithOffsets("abc", `(`); err == nil {
		t.Error("expected compile error")
	}
}

func TestHistogram_AllWordsOnce(t *testing.T) {
	d := newExampleDocument(t)

	matches, err := MatchesWithOffsets(d.Text(), `\w+`)
	if err != nil {
		t.Fatalf("MatchesWithOffsets error: %v", err)
	}
	words := DeduplicatedList(MatchTexts(matches), false)
	hist := Histogram(d.Text(), words, false, true)

	if len(hist) != d.WordCount() {
		t.Errorf("histogram has %d entries, want %d", len(hist), d.WordCount())
	}
	for w, n := range hist {
		if n != 1 {
			t.Errorf("count of %q: got %d, want 1", w, n)
		}
	}
}

func TestHistogram(t *testing.T) {
	haystack := "the cat and the hat; The end"

	hist := Histogram(haystack, []string{"the", "at", "dog", "the"}, true, false)
	want := map[string]int{"the": 2, "at": 2, "dog": 0}
	if !reflect.DeepEqual(hist, want) {
		t.Errorf("got %v, want %v", hist, want)
	}

	hist = Histogram(haystack, []string{"the", "at"}, false, true)
	want = map[string]int{"the": 3, "at": 0}
	if !reflect.DeepEqual(hist, want) {
		t.Errorf("got %v, want %v", hist, want)
	}
}

func TestHistogram_NilAndEmpty(t *testing.T) {
	if Histogram("abc", nil, true, true) != nil {
		t.Error("nil words should give nil histogram")
	}
	hist := Histogram("abc", []string{}, true, true)
	if hist == nil || len(hist) != 0 {
		t.Errorf("empty words should give empty histogram, got %v", hist)
	}
}

func TestDeduplicatedList(t *testing.T) {
	words := []string{"The", "cat", "the", "THE", "Cat", "dog"}

	if got := DeduplicatedList(words, true); !reflect.DeepEqual(got, []string{"The", "cat", "the", "THE", "Cat", "dog"}) {
		t.Errorf("case sensitive: got %v", got)
	}
	if got := DeduplicatedList(words, false); !reflect.DeepEqual(got, []string{"the", "cat", "dog"}) {
		t.Errorf("case insensitive: got %v", got)
	}
	if got := DeduplicatedList([]string{"a", "b", "a"}, true); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("got %v", got)
	}
	if DeduplicatedList(nil, false) != nil {
		t.Error("nil input should give nil")
	}
}

func TestMapValues(t *testing.T) {
	got := MapValues(map[int]string{10: "c", 0: "a", 4: "b"})
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("got %v", got)
	}
	if MapValues(nil) != nil {
		t.Error("nil map should give nil")
	}
}
