package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"time"

	"harshagw/docstats/internal/document"
	"harshagw/docstats/internal/loader"
	"harshagw/docstats/internal/search"
	"harshagw/docstats/internal/store"
)

const numLines = 50000

var vocabulary = strings.Fields(`the of and to in a is that for it as was with be by on not he
this are or his from at which but have an they you were her she there been one all we their
has would when if so no will can more other into some could them than then its time two may
tortoise hare race slow fast laugh sooner think prove amused idea running agreed mocking`)

func main() {
	// Usage: go run ./cmd/bench [file]
	var lines []string
	source := "synthetic"
	if len(os.Args) >= 2 {
		var err error
		lines, err = loader.ReadLines(os.Args[1])
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", os.Args[1], err)
			os.Exit(1)
		}
		source = os.Args[1]
	} else {
		lines = syntheticLines(numLines)
	}

	fmt.Println("docstats Benchmark")
	fmt.Println("==================")
	fmt.Println()

	benchStart := time.Now()
	fmt.Printf("Loaded %d lines (%s)\n\n", len(lines), source)

	doc := runIndexingBenchmark(lines)
	printDocumentInfo(doc)
	runCacheBenchmark(doc)

	s := search.New(doc)
	defer s.Close()

	runAllQueryBenchmarks(s)

	fmt.Printf("Total time: %.2f seconds\n", time.Since(benchStart).Seconds())
}

// syntheticLines builds a deterministic corpus from a small vocabulary.
func syntheticLines(n int) []string {
	rng := rand.New(rand.NewSource(42))
	lines := make([]string, n)
	var sb strings.Builder
	for i := range lines {
		sb.Reset()
		words := 4 + rng.Intn(12)
		for w := 0; w < words; w++ {
			if w > 0 {
				sb.WriteByte(' ')
			}
			word := vocabulary[rng.Intn(len(vocabulary))]
			if w == 0 {
				word = strings.ToUpper(word[:1]) + word[1:]
			}
			sb.WriteString(word)
		}
		sb.WriteByte('.')
		lines[i] = sb.String()
	}
	return lines
}

func runIndexingBenchmark(lines []string) *document.Document {
	fmt.Println("INDEXING")
	fmt.Println("--------")

	// Warm up run
	if _, err := document.FromLines(lines[:min(100, len(lines))]); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	var totalTime time.Duration
	runs := 3

	var doc *document.Document
	for i := 0; i < runs; i++ {
		start := time.Now()
		d, err := document.FromLines(lines)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		totalTime += time.Since(start)
		doc = d
	}

	avgTime := totalTime / time.Duration(runs)
	throughput := float64(len(lines)) / avgTime.Seconds()

	fmt.Printf("  Lines:      %d\n", len(lines))
	fmt.Printf("  Time:       %v\n", avgTime.Round(time.Microsecond))
	fmt.Printf("  Throughput: %.0f lines/sec\n", throughput)
	fmt.Println()

	return doc
}

func formatBytes(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	if bytes >= MB {
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	}
	if bytes >= KB {
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	}
	return fmt.Sprintf("%d B", bytes)
}

func printDocumentInfo(doc *document.Document) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	fmt.Println("DOCUMENT INFO")
	fmt.Println("-------------")
	fmt.Printf("  Lines:      %d\n", doc.LineCount())
	fmt.Printf("  Words:      %d\n", doc.WordCount())
	fmt.Printf("  Text:       %s\n", formatBytes(int64(doc.AllCharCount())))
	fmt.Printf("  Avg word:   %.2f\n", doc.AvgWordLen())
	fmt.Printf("  Heap:       %s\n", formatBytes(int64(m.HeapAlloc)))
	fmt.Println()
}

func runCacheBenchmark(doc *document.Document) {
	fmt.Println("SNAPSHOT CODEC")
	fmt.Println("--------------")

	snap := doc.Snapshot()
	start := time.Now()
	data := store.EncodeSnapshot(snap)
	encode := time.Since(start)

	start = time.Now()
	if _, err := store.DecodeSnapshot(data); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	decode := time.Since(start)

	fmt.Printf("  Encoded:    %s (text %s)\n", formatBytes(int64(len(data))), formatBytes(int64(len(snap.Text))))
	fmt.Printf("  Encode:     %v\n", encode.Round(time.Microsecond))
	fmt.Printf("  Decode:     %v\n", decode.Round(time.Microsecond))
	fmt.Println()
}

func runAllQueryBenchmarks(s *search.Searcher) {
	// Build the vocabulary once so it is not charged to the first query.
	start := time.Now()
	v, err := s.Vocabulary()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("VOCABULARY")
	fmt.Println("----------")
	fmt.Printf("  Terms:      %d\n", v.NumTerms())
	fmt.Printf("  Positions:  %d\n", v.NumPositions())
	fmt.Printf("  Build:      %v\n", time.Since(start).Round(time.Microsecond))
	fmt.Println()

	fmt.Println("OCCURRENCE COUNTS")
	fmt.Println("-----------------")
	runBench([]string{"the", "tortoise", "it has", "zebra"}, func(p string) int {
		return s.CountOccurrences(p, false, true)
	})

	fmt.Println("MATCH QUERIES")
	fmt.Println("-------------")
	runBench([]string{
		"the",
		"tortoise",
		`"the hare"`,
		"ra*",
		"/s.*w/",
		"sloe~1",
		`"slow fast" tortoise run*`,
	}, func(q string) int {
		matches, _ := s.Query(q, 2)
		return len(matches)
	})
}

func runBench(inputs []string, run func(string) int) {
	for _, in := range inputs {
		latency, hits := benchmark(in, run)
		fmt.Printf("  %-40s %s  (%d hits)\n", in, formatLatency(latency), hits)
	}
	fmt.Println()
}

func benchmark(input string, run func(string) int) (time.Duration, int) {
	var hits int

	// Warm up
	for i := 0; i < 3; i++ {
		hits = run(input)
	}

	iterations := 20
	start := time.Now()
	for i := 0; i < iterations; i++ {
		run(input)
	}
	return time.Since(start) / time.Duration(iterations), hits
}

func formatLatency(d time.Duration) string {
	return fmt.Sprintf("%10.2f µs", float64(d.Nanoseconds())/1000)
}
