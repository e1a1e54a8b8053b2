package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the defaults used by the docstats commands.
type Config struct {
	CacheDir      string `toml:"cache_dir"`
	CaseSensitive bool   `toml:"case_sensitive"`
	WholeWord     bool   `toml:"whole_word"`
	TopWords      int    `toml:"top_words"`
	MaxFuzziness  uint8  `toml:"max_fuzziness"`
}

func DefaultConfig() Config {
	return Config{
		CacheDir:      ".docstats",
		CaseSensitive: false,
		WholeWord:     true,
		TopWords:      10,
		MaxFuzziness:  2,
	}
}

// Load reads a TOML file over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TopWords < 0 {
		return fmt.Errorf("top_words must not be negative, got %d", c.TopWords)
	}
	// Fuzzy queries are capped at two edits.
	if c.MaxFuzziness > 2 {
		return fmt.Errorf("max_fuzziness must be at most 2, got %d", c.MaxFuzziness)
	}
	return nil
}
