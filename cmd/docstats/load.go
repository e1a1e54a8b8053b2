package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"harshagw/docstats/internal/config"
	"harshagw/docstats/internal/document"
	"harshagw/docstats/internal/loader"
	"harshagw/docstats/internal/store"
)

// openDocument reads path and initialises a document from it. With caching
// enabled an unchanged file is restored from its stored snapshot instead of
// being analysed again.
func openDocument(c *cli.Context, cfg config.Config, path string) (*document.Document, error) {
	lines, err := loader.ReadLines(path)
	if err != nil {
		return nil, err
	}

	if !c.Bool("cache") {
		return document.FromLines(lines)
	}

	cache, err := store.Open(cfg.CacheDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	defer cache.Close()

	key := store.Key(lines)
	snap, found, err := cache.Get(key)
	if err != nil {
		return nil, err
	}

	doc := document.New()
	if found {
		if err := doc.Restore(snap); err == nil {
			return doc, cache.SetPath(path, key)
		}
		// Corrupt entry; analyse again and overwrite it.
		doc.Reset()
	}

	if err := doc.Initialise(lines); err != nil {
		return nil, err
	}
	if err := cache.Put(key, doc.Snapshot()); err != nil {
		return nil, err
	}
	return doc, cache.SetPath(path, key)
}
