// Package config provides YAML-based game configuration loading for
// blockfall.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// BlocksConfig contains all configuration for the falling-block game.
type BlocksConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Gravity GravityConfig `yaml:"gravity"`

	// Shapes are square bitmaps, rows separated by '/', '#' occupied.
	// Empty means the game variant's built-in catalog.
	Shapes []string `yaml:"shapes"`

	// Palette lists color names indexed by piece color index.
	Palette []string `yaml:"palette"`

	// Source records where the config was loaded from.
	Source string `yaml:"-"`
}

// BoardConfig defines grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// SpawnConfig defines where new pieces appear.
type SpawnConfig struct {
	Row      int `yaml:"row"`
	Col      int `yaml:"col"`
	Attempts int `yaml:"attempts"` // rows above row 0 a spawn may retreat to
}

// GravityConfig defines automatic falling.
type GravityConfig struct {
	// EveryTicks moves the piece down once per N ticks; 0 disables gravity.
	EveryTicks int `yaml:"every_ticks"`
}

// Minimum board size that still admits every built-in shape.
const (
	minRows = 4
	minCols = 4
)

// Validate checks the settings the engine cannot recover from.
func (c BlocksConfig) Validate() error {
	if c.Board.Rows < minRows || c.Board.Cols < minCols {
		return fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			ErrInvalidConfig, c.Board.Rows, c.Board.Cols, minRows, minCols)
	}
	if c.Spawn.Col < 0 || c.Spawn.Col >= c.Board.Cols {
		return fmt.Errorf("%w: spawn column %d outside board", ErrInvalidConfig, c.Spawn.Col)
	}
	if c.Spawn.Row < 0 || c.Spawn.Row >= c.Board.Rows {
		return fmt.Errorf("%w: spawn row %d outside board", ErrInvalidConfig, c.Spawn.Row)
	}
	if c.Spawn.Attempts < 0 {
		return fmt.Errorf("%w: negative spawn attempts", ErrInvalidConfig)
	}
	if c.Gravity.EveryTicks < 0 {
		return fmt.Errorf("%w: negative gravity interval", ErrInvalidConfig)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("%w: palette is empty", ErrInvalidConfig)
	}
	return nil
}
