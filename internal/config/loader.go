package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlocks loads the game configuration.
// Search order: customPath -> ~/.blockfall/configs/blocks.yaml ->
// ./configs/blocks.yaml -> embedded default -> hardcoded default.
// Files are decoded over the defaults, so partial files are fine.
func LoadBlocks(customPath string) (BlocksConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlocksConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parseBlocks(data, customPath)
		if err != nil {
			return BlocksConfig{}, err
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory.
	candidates := []string{userConfigPath("blocks.yaml"), filepath.Join("configs", "blocks.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseBlocks(data, path); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parseBlocks(defaultBlocksYAML, "embedded"); err == nil {
		return cfg, nil
	}
	return DefaultBlocksConfig(), nil
}

// parseBlocks decodes YAML over the hardcoded defaults and validates it.
func parseBlocks(data []byte, source string) (BlocksConfig, error) {
	cfg := DefaultBlocksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlocksConfig{}, fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return BlocksConfig{}, fmt.Errorf("config: %s: %w", source, err)
	}
	cfg.Source = source
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}
