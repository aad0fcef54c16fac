package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse high scores interactively",
	Long: `Open the interactive scoreboard. Tab or left/right switches between
game variants; up/down scrolls.`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	cfg := runtimeConfig()
	if _, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
		return fmt.Errorf("scoreboard: %w", err)
	}
	return nil
}
