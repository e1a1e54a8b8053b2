package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"harshagw/docstats/internal/config"
)

func loadConfig(c *cli.Context) (config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if dir := c.String("cache-dir"); dir != "" {
		cfg.CacheDir = dir
	}
	return cfg, nil
}

func main() {
	app := &cli.App{
		Name:  "docstats",
		Usage: "Word, line and pattern statistics for text documents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   "docstats.toml",
			},
			&cli.BoolFlag{
				Name:  "cache",
				Usage: "Load and store analysed documents in the snapshot cache",
			},
			&cli.StringFlag{
				Name:  "cache-dir",
				Usage: "Snapshot cache directory (overrides config)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "stats",
				Usage:     "Print word count, line count, average word length and most common letter",
				ArgsUsage: "<glob>...",
				Action:    statsCommand,
			},
			{
				Name:      "repl",
				Usage:     "Explore one document interactively",
				ArgsUsage: "<file>",
				Action:    replCommand,
			},
			{
				Name:      "verify",
				Usage:     "Check the index invariants of a document",
				ArgsUsage: "<file>",
				Action:    verifyCommand,
			},
			{
				Name:  "cache",
				Usage: "Inspect the snapshot cache",
				Subcommands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List cached snapshots and the paths that resolve to them",
						Action: cacheListCommand,
					},
					{
						Name:      "rm",
						Usage:     "Remove cached snapshots",
						ArgsUsage: "<key>...",
						Action:    cacheRemoveCommand,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(fmt.Errorf("docstats: %w", err))
	}
}
