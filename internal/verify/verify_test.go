package verify

import (
	"testing"

	"harshagw/docstats/internal/document"
)

func TestRun_AllPass(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{"example", []string{"a  bb ccc", "   it has three lines", "", "", "ACCURATE"}},
		{"empty", []string{}},
		{"tabs and punctuation", []string{"\tfoo,bar\tbaz.  ", "x_y  1.5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := document.FromLines(tt.lines)
			if err != nil {
				t.Fatalf("FromLines error: %v", err)
			}
			for _, r := range Run(tt.lines, doc) {
				if !r.Passed() {
					t.Errorf("%s / %s: %v", r.Category, r.Name, r.Err)
				}
			}
		})
	}
}

func TestRun_DetectsMismatchedLines(t *testing.T) {
	doc, err := document.FromLines([]string{"one two", "three"})
	if err != nil {
		t.Fatalf("FromLines error: %v", err)
	}

	failed := make(map[string]bool)
	for _, r := range Run([]string{"one two", "four"}, doc) {
		if !r.Passed() {
			failed[r.Name] = true
		}
	}
	for _, name := range []string{"each line round trips", "each word round trips", "char count is the sum of word lengths"} {
		if !failed[name] {
			t.Errorf("expected %q to fail", name)
		}
	}
	if failed["snapshot validates"] {
		t.Error("snapshot of a well-formed document should validate")
	}
}
