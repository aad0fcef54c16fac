package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/games/blocks"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

const defaultGame = "blocks"

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified variant (default: blocks).

Controls:
  Left/Right, A/D  - Move
  Down, S          - Step down
  Up, W            - Rotate clockwise
  Space            - Drop
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Configuration is read from --config, then ~/.blockfall/configs/blocks.yaml,
then ./configs/blocks.yaml, falling back to built-in defaults.

Examples:
  blockfall play
  blockfall play blocks_classic
  blockfall play --seed 7 --fps 30
  blockfall play --config ./my-blocks.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'blockfall list' to see available games)", gameID)
	}

	logger, closer := openLogger(flagLogFile, flagLogLevel, os.Stderr)
	defer closer.Close()

	// Set config path before the game is created
	blocks.SetConfigPath(flagConfig)

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, logger, runtimeConfig()); err != nil {
		logger.Error("game exited with error", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
