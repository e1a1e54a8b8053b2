package main

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v2"

	"harshagw/docstats/internal/report"
)

// statsCommand prints the summary of every file matched by the arguments.
func statsCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("expected at least one file path or glob")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	paths, err := expandGlobs(c.Args().Slice())
	if err != nil {
		return err
	}

	for i, path := range paths {
		doc, err := openDocument(c, cfg, path)
		if err != nil {
			return err
		}
		if len(paths) > 1 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("== %s ==\n", path)
		}
		if err := report.Summarize(path, doc).Write(os.Stdout); err != nil {
			return err
		}
	}
	return nil
}

// expandGlobs resolves each pattern to the regular files it matches. A
// pattern without glob metacharacters is returned as is so a missing file
// is reported by the loader.
func expandGlobs(patterns []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		if !hasMeta(pattern) {
			if !seen[pattern] {
				seen[pattern] = true
				paths = append(paths, pattern)
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				paths = append(paths, m)
			}
		}
	}
	return paths, nil
}

func hasMeta(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
