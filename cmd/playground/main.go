// Playground for the docstats library.
//
// Run with: go run ./cmd/playground
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"harshagw/docstats/internal/document"
	"harshagw/docstats/internal/loader"
	"harshagw/docstats/internal/report"
	"harshagw/docstats/internal/search"
)

const sample = `The Tortoise and the Hare
A Hare was making fun of the Tortoise one day for being so slow.
"Do you ever get anywhere?" he asked with a mocking laugh.
"Yes," replied the Tortoise, "and I get there sooner than you think.
I'll run you a race and prove it."

The Hare was much amused at the idea of running a race with the Tortoise,
but for the fun of the thing he agreed.`

func runQueries(s *search.Searcher, queries []string) {
	for _, q := range queries {
		fmt.Printf("Query: %s\n", q)
		fmt.Println(strings.Repeat("-", 60))

		matches, err := s.Query(q, 2)
		if err != nil {
			fmt.Printf("  Error: %v\n\n", err)
			continue
		}

		if len(matches) == 0 {
			fmt.Println("  No matches found")
		} else {
			for i, m := range matches {
				fmt.Printf("  %d. offset %d: %q\n", i+1, m.Offset, m.Text)
			}
		}
		fmt.Println()
	}
}

func main() {
	doc, err := document.FromLines(loader.SplitLines(sample))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== docstats Playground ===")
	fmt.Println()

	if err := report.Summarize("sample", doc).Write(os.Stdout); err != nil {
		log.Fatal(err)
	}

	s := search.New(doc)
	defer s.Close()

	fmt.Println("\n... Extras ...")
	fmt.Println()

	words := search.MatchTexts(s.Words())
	fmt.Printf("Unique words used: %d\n", len(search.DeduplicatedList(words, false)))

	second, _ := doc.StringFromLines(1, 2)
	fmt.Printf("Contents of the 2nd line: %s\n", second)

	tWords, err := s.Matches(`\b[Tt]\w*\b`)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Number of words beginning with 't': %d\n", len(tWords))

	uniqueT := search.DeduplicatedList(search.MatchTexts(tWords), false)
	fmt.Printf("Of those, how many are unique?: %d\n", len(uniqueT))

	hist := s.Histogram(uniqueT, false, true)
	fmt.Println("A list of those words and their count in the document:")
	for _, w := range uniqueT {
		fmt.Printf("   '%s' : %d\n", w, hist[w])
	}
	fmt.Println()

	fmt.Println("--- Match Queries ---")
	runQueries(s, []string{
		// Single term, case folded
		"tortoise",
		// Adjacent terms, punctuation ignored
		`"the tortoise and"`,
		// Prefix
		"run*",
		// Regex over terms
		"/h.*e/",
		// Within one edit
		"hair~1",
		// Several at once, merged by offset
		`fun "a race" sooner`,
	})
}
