package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"harshagw/docstats/internal/store"
)

func openCache(c *cli.Context) (*store.Cache, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}
	return store.Open(cfg.CacheDir)
}

func cacheListCommand(c *cli.Context) error {
	cache, err := openCache(c)
	if err != nil {
		return err
	}
	defer cache.Close()

	keys, err := cache.Keys()
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		fmt.Println("No cached snapshots")
		return nil
	}

	fmt.Printf("%d snapshots:\n", len(keys))
	for _, key := range keys {
		snap, _, err := cache.Get(key)
		if err != nil {
			fmt.Printf("  %s: %v\n", key, err)
			continue
		}
		fmt.Printf("  %s: %d lines, %d words\n", key, snap.LineCount, snap.WordCount)
	}

	paths, err := cache.Paths()
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

func cacheRemoveCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("expected at least one key")
	}

	cache, err := openCache(c)
	if err != nil {
		return err
	}
	defer cache.Close()

	for _, key := range c.Args().Slice() {
		if err := cache.Delete(key); err != nil {
			return err
		}
		fmt.Printf("Removed %s\n", key)
	}
	return nil
}
