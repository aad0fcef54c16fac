package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

var (
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores for the specified game variant.

Examples:
  blockfall scores blocks
  blockfall scores blocks_classic --limit 20
  blockfall scores blocks --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the game")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q (run 'blockfall list' to see available games)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", info.Title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %-4s  %6s  %6s  %-20s  %s\n", "Rank", "Lines", "Pieces", "Seed", "Date")
	fmt.Printf("  %-4s  %6s  %6s  %-20s  %s\n", "----", "-----", "------", "----", "----")
	for i, s := range scores {
		fmt.Printf("  %-4d  %6d  %6d  %-20d  %s\n", i+1, s.Score, s.Pieces, s.Seed, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("  %d games, best %d, average %.1f lines\n", stats.GamesCount, stats.HighScore, stats.AvgScore)

	return nil
}
