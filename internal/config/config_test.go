package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"string-matcher/internal/config"
	"string-matcher/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "single", cfg.Match.Mode)
	assert.Equal(t, uint64(config.DefaultProgressInterval), cfg.Match.ProgressInterval)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Output.Banner)
	assert.NoError(t, config.Validate(cfg))
}

func TestLoadConfig_Values(t *testing.T) {
	path := writeConfig(t, `
[match]
mode = "words"
pattern = "^c.t$"
progress_interval = 5000

[output]
banner = true
pause_on_exit = true

[log]
level = "debug"
format = "json"
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "words", cfg.Match.Mode)
	assert.Equal(t, "^c.t$", cfg.Match.Pattern)
	assert.Equal(t, uint64(5000), cfg.Match.ProgressInterval)
	assert.True(t, cfg.Output.Banner)
	assert.True(t, cfg.Output.PauseOnExit)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.NoError(t, config.Validate(cfg))
}

func TestLoadConfig_UnknownKey(t *testing.T) {
	path := writeConfig(t, "[match]\nlength = 3\n")

	_, err := config.LoadConfig(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "match.length")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *types.Config)
	}{
		{"bad mode", func(c *types.Config) { c.Match.Mode = "lines" }},
		{"zero interval", func(c *types.Config) { c.Match.ProgressInterval = 0 }},
		{"bad level", func(c *types.Config) { c.Log.Level = "trace" }},
		{"bad format", func(c *types.Config) { c.Log.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := config.Validate(cfg)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoadConfig_Example(t *testing.T) {
	cfg, err := config.LoadConfig("../../config/config.example.toml")
	require.NoError(t, err)
	assert.NoError(t, config.Validate(cfg))
	assert.Equal(t, uint64(1_000_000), cfg.Match.ProgressInterval)
}
