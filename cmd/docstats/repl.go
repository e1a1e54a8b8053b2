package main

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/urfave/cli/v2"

	"harshagw/docstats/internal/config"
	"harshagw/docstats/internal/document"
	"harshagw/docstats/internal/report"
	"harshagw/docstats/internal/search"
)

type REPL struct {
	path     string
	doc      *document.Document
	searcher *search.Searcher
	cfg      config.Config
}

var commands = []prompt.Suggest{
	{Text: "lines", Description: "Text of lines [start, end)"},
	{Text: "words", Description: "Text of words [start, end)"},
	{Text: "count", Description: "Occurrences of a string"},
	{Text: "find", Description: "Run a match query"},
	{Text: "histogram", Description: "Counts of the distinct regex matches"},
	{Text: "unique", Description: "Distinct regex matches"},
	{Text: "common", Description: "Most common of the given strings"},
	{Text: "terms", Description: "Vocabulary terms with a prefix"},
	{Text: "stats", Description: "Document summary"},
	{Text: "set", Description: "Change case or word matching"},
	{Text: "help", Description: "Show help"},
	{Text: "quit", Description: "Exit"},
}

func replCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one file")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	path := c.Args().First()
	doc, err := openDocument(c, cfg, path)
	if err != nil {
		return err
	}

	r := &REPL{path: path, doc: doc, searcher: search.New(doc), cfg: cfg}
	defer r.searcher.Close()

	fmt.Println("docstats REPL")
	fmt.Println()
	printHelp()
	fmt.Println()
	fmt.Printf("Loaded %s (%d lines, %d words)\n\n", path, doc.LineCount(), doc.WordCount())

	p := prompt.New(
		r.executor,
		func(d prompt.Document) []prompt.Suggest {
			if strings.Contains(d.TextBeforeCursor(), " ") {
				return nil
			}
			return prompt.FilterHasPrefix(commands, d.GetWordBeforeCursor(), true)
		},
		prompt.OptionPrefix("docstats >> "),
		prompt.OptionTitle("docstats"),
	)
	p.Run()
	return nil
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  lines <start> <end>      - Text of lines start..end-1")
	fmt.Println("  words <start> <end>      - Text of words start..end-1")
	fmt.Println("  count <text>             - Count occurrences of text")
	fmt.Println("  find <query>             - term, \"phrase\", pre*, /regex/, term~k")
	fmt.Println("  histogram <regex>        - Count each distinct match of regex")
	fmt.Println("  unique <regex>           - List distinct matches of regex")
	fmt.Println("  common [<s>...]          - Most common of the strings (default: characters)")
	fmt.Println("  terms [prefix]           - Vocabulary terms and their counts")
	fmt.Println("  stats                    - Word, line and letter summary")
	fmt.Println("  set case|word on|off     - Case sensitive or whole word matching")
	fmt.Println("  help                     - Show this help")
	fmt.Println("  quit                     - Exit")
}

func (r *REPL) executor(input string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return
	}

	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)
	args := strings.Fields(rest)

	switch cmd {
	case "lines":
		r.cmdRange(args, r.doc.StringFromLines)
	case "words":
		r.cmdRange(args, r.doc.StringFromWords)
	case "count":
		r.cmdCount(rest)
	case "find":
		r.cmdFind(rest)
	case "histogram":
		r.cmdHistogram(rest)
	case "unique":
		r.cmdUnique(rest)
	case "common":
		r.cmdCommon(args)
	case "terms":
		r.cmdTerms(args)
	case "stats":
		r.cmdStats(os.Stdout)
	case "set":
		r.cmdSet(args)
	case "help":
		printHelp()
	case "quit", "exit":
		fmt.Println("Goodbye!")
		r.searcher.Close()
		os.Exit(0)
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
	}
}

func (r *REPL) cmdStats(w io.Writer) {
	if err := report.Summarize(r.path, r.doc).Write(w); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func (r *REPL) cmdRange(args []string, extract func(start, end int) (string, bool)) {
	if len(args) != 2 {
		fmt.Println("Usage: lines|words <start> <end>")
		return
	}
	start, err1 := strconv.Atoi(args[0])
	end, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil {
		fmt.Println("start and end must be integers")
		return
	}

	text, ok := extract(start, end)
	if !ok {
		fmt.Printf("Range [%d, %d) is out of bounds\n", start, end)
		return
	}
	fmt.Println(text)
}

func (r *REPL) cmdCount(text string) {
	if text == "" {
		fmt.Println("Usage: count <text>")
		return
	}
	n := r.searcher.CountOccurrences(text, r.cfg.CaseSensitive, r.cfg.WholeWord)
	fmt.Printf("%q occurs %d times\n", text, n)
}

func (r *REPL) cmdFind(q string) {
	if q == "" {
		fmt.Println("Usage: find <query>")
		return
	}

	matches, err := r.searcher.Query(q, r.cfg.MaxFuzziness)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(matches) == 0 {
		fmt.Printf("No matches for %s\n", q)
		return
	}

	lineIndex := r.doc.LineIndex()
	fmt.Printf("Found %d matches for %s:\n", len(matches), q)
	for _, m := range matches {
		fmt.Printf("  line %d, offset %d: %q\n", lineOf(lineIndex, m.Offset)+1, m.Offset, m.Text)
	}
}

// lineOf returns the zero-based line containing offset.
func lineOf(lineIndex []int, offset int) int {
	i, found := slices.BinarySearch(lineIndex, offset)
	if !found {
		i--
	}
	return i
}

func (r *REPL) distinctMatches(pattern string) ([]string, bool) {
	if pattern == "" {
		fmt.Println("Usage: histogram|unique <regex>")
		return nil, false
	}
	matches, err := r.searcher.Matches(pattern)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return nil, false
	}
	return search.DeduplicatedList(search.MatchTexts(matches), r.cfg.CaseSensitive), true
}

func (r *REPL) cmdHistogram(pattern string) {
	words, ok := r.distinctMatches(pattern)
	if !ok {
		return
	}
	hist := r.searcher.Histogram(words, r.cfg.CaseSensitive, r.cfg.WholeWord)

	slices.SortStableFunc(words, func(a, b string) int {
		return cmp.Compare(hist[b], hist[a])
	})
	if r.cfg.TopWords > 0 && len(words) > r.cfg.TopWords {
		words = words[:r.cfg.TopWords]
	}
	for _, w := range words {
		fmt.Printf("  '%s' : %d\n", w, hist[w])
	}
}

func (r *REPL) cmdUnique(pattern string) {
	words, ok := r.distinctMatches(pattern)
	if !ok {
		return
	}
	fmt.Printf("%d unique matches\n", len(words))
	for _, w := range words {
		fmt.Printf("  %s\n", w)
	}
}

func (r *REPL) cmdCommon(candidates []string) {
	wholeWord := r.cfg.WholeWord
	if len(candidates) == 0 {
		// Single characters are counted wherever they appear.
		candidates = r.searcher.CharactersUsed(r.cfg.CaseSensitive)
		wholeWord = false
	}
	best, ok := r.searcher.MostCommonString(candidates, r.cfg.CaseSensitive, wholeWord)
	if !ok {
		fmt.Println("None of the candidates occur")
		return
	}
	fmt.Printf("Most common: %s\n", best)
}

func (r *REPL) cmdTerms(args []string) {
	v, err := r.searcher.Vocabulary()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	var terms []string
	if len(args) > 0 {
		terms, err = v.PrefixTerms(strings.ToLower(args[0]))
	} else {
		terms, err = v.Terms()
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(terms) == 0 {
		fmt.Println("No terms")
		return
	}

	fmt.Printf("%d terms:\n", len(terms))
	for _, t := range terms {
		fmt.Printf("  %s (%d)\n", t, v.Count(t))
	}
}

func (r *REPL) cmdSet(args []string) {
	if len(args) != 2 || (args[1] != "on" && args[1] != "off") {
		fmt.Println("Usage: set case|word on|off")
		return
	}
	on := args[1] == "on"
	switch args[0] {
	case "case":
		r.cfg.CaseSensitive = on
	case "word":
		r.cfg.WholeWord = on
	default:
		fmt.Printf("Unknown setting: %s\n", args[0])
		return
	}
	fmt.Printf("case sensitive: %v, whole word: %v\n", r.cfg.CaseSensitive, r.cfg.WholeWord)
}
