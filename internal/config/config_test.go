package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blocks.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultBlocksConfig()
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML(), &cfg))

	want := DefaultBlocksConfig()
	assert.Equal(t, want.Board, cfg.Board)
	assert.Equal(t, want.Spawn, cfg.Spawn)
	assert.Equal(t, want.Gravity, cfg.Gravity)
	assert.Equal(t, want.Palette, cfg.Palette)
	assert.Empty(t, cfg.Shapes)
}

func TestLoadBlocksCustomPath(t *testing.T) {
	path := writeConfig(t, `
gravity:
  every_ticks: 30
shapes:
  - "##/##"
`)

	cfg, err := LoadBlocks(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Gravity.EveryTicks)
	assert.Equal(t, []string{"##/##"}, cfg.Shapes)
	// Unset sections keep their defaults.
	assert.Equal(t, 20, cfg.Board.Rows)
	assert.Equal(t, 10, cfg.Board.Cols)
	assert.Len(t, cfg.Palette, 8)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadBlocksMissingCustomPath(t *testing.T) {
	_, err := LoadBlocks(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadBlocksRejectsInvalid(t *testing.T) {
	path := writeConfig(t, `
board:
  rows: 2
  cols: 10
`)

	_, err := LoadBlocks(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadBlocksRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "board: [unterminated")

	_, err := LoadBlocks(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlocksConfig)
		ok     bool
	}{
		{"defaults", func(*BlocksConfig) {}, true},
		{"narrow board", func(c *BlocksConfig) { c.Board.Cols = 3 }, false},
		{"spawn column outside", func(c *BlocksConfig) { c.Spawn.Col = 10 }, false},
		{"spawn row outside", func(c *BlocksConfig) { c.Spawn.Row = -1 }, false},
		{"negative attempts", func(c *BlocksConfig) { c.Spawn.Attempts = -1 }, false},
		{"negative gravity", func(c *BlocksConfig) { c.Gravity.EveryTicks = -5 }, false},
		{"empty palette", func(c *BlocksConfig) { c.Palette = nil }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlocksConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}
