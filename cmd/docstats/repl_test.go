package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"harshagw/docstats/internal/config"
	"harshagw/docstats/internal/document"
	"harshagw/docstats/internal/search"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func newTestREPL(t *testing.T) *REPL {
	t.Helper()
	doc, err := document.FromLines([]string{"a  bb ccc", "   it has three lines", "", "", "ACCURATE"})
	if err != nil {
		t.Fatalf("FromLines error: %v", err)
	}
	s := search.New(doc)
	t.Cleanup(func() { s.Close() })
	return &REPL{path: "example", doc: doc, searcher: s, cfg: config.DefaultConfig()}
}

// captureStdout returns what fn prints to os.Stdout.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe error: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()
	w.Close()
	return <-done
}

func TestREPL_StatsReportsWriteError(t *testing.T) {
	r := newTestREPL(t)

	out := captureStdout(t, func() { r.cmdStats(failingWriter{}) })
	if !strings.Contains(out, "Error: disk full") {
		t.Errorf("expected write error to be printed, got %q", out)
	}
}

func TestREPL_Stats(t *testing.T) {
	r := newTestREPL(t)

	var buf bytes.Buffer
	out := captureStdout(t, func() { r.cmdStats(&buf) })
	if out != "" {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(buf.String(), "Word Count: 8") {
		t.Errorf("got %q", buf.String())
	}
}

func TestLineOf(t *testing.T) {
	lineIndex := []int{0, 10, 32, 33, 34}
	tests := []struct {
		offset, want int
	}{
		{0, 0}, {9, 0}, {10, 1}, {31, 1}, {33, 3}, {40, 4},
	}
	for _, tt := range tests {
		if got := lineOf(lineIndex, tt.offset); got != tt.want {
			t.Errorf("lineOf(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}
}
