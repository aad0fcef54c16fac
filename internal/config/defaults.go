package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the hardcoded default configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Rows: 20,
			Cols: 10,
		},
		Spawn: SpawnConfig{
			Row:      2,
			Col:      3,
			Attempts: 3,
		},
		Gravity: GravityConfig{
			EveryTicks: 0,
		},
		Palette: []string{
			"white", "red", "yellow", "violet",
			"cyan", "skyblue", "limegreen", "orange",
		},
		Source: "builtin",
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBlocksYAML
}
