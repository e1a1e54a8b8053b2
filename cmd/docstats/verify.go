package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"harshagw/docstats/internal/loader"
	"harshagw/docstats/internal/verify"
)

func verifyCommand(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one file")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	path := c.Args().First()
	lines, err := loader.ReadLines(path)
	if err != nil {
		return err
	}
	doc, err := openDocument(c, cfg, path)
	if err != nil {
		return err
	}

	fmt.Println("Document Verification")
	fmt.Println("=====================")
	fmt.Printf("%s: %d lines, %d words\n", path, doc.LineCount(), doc.WordCount())

	passed, failed := 0, 0
	category := ""
	for _, r := range verify.Run(lines, doc) {
		if r.Category != category {
			category = r.Category
			fmt.Printf("\n%s\n", category)
			fmt.Println(strings.Repeat("-", len(category)))
		}
		if r.Passed() {
			passed++
			fmt.Printf("  ✓ %s\n", r.Name)
			continue
		}
		failed++
		fmt.Printf("  ✗ %s\n", r.Name)
		fmt.Printf("    Error: %v\n", r.Err)
	}

	fmt.Println()
	fmt.Println("========================================")
	fmt.Printf("Results: %d passed, %d failed, %d total\n", passed, failed, passed+failed)

	if failed > 0 {
		return fmt.Errorf("%d checks failed", failed)
	}
	fmt.Println("\nAll checks passed!")
	return nil
}
