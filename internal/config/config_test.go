package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docstats.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
cache_dir = "/var/cache/docstats"
case_sensitive = true
top_words = 3
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/var/cache/docstats", cfg.CacheDir)
	assert.True(t, cfg.CaseSensitive)
	assert.True(t, cfg.WholeWord, "unset keys keep their default")
	assert.Equal(t, 3, cfg.TopWords)
	assert.Equal(t, uint8(2), cfg.MaxFuzziness)
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeConfig(t, "top_words = ["))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(writeConfig(t, "max_fuzziness = 5"))
	assert.ErrorContains(t, err, "max_fuzziness")

	_, err = Load(writeConfig(t, "top_words = -1"))
	assert.ErrorContains(t, err, "top_words")
}

func TestValidate_FuzzinessCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxFuzziness = 2
	assert.NoError(t, cfg.Validate())

	cfg.MaxFuzziness = 3
	assert.ErrorContains(t, cfg.Validate(), "at most 2")
}
