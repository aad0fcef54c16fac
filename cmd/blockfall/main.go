// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall list              - List available game variants
//	blockfall play [game]       - Play a game (default: blocks)
//	blockfall menu              - Pick a variant interactively
//	blockfall scores <game>     - Show high scores for a game
//	blockfall board             - Browse high scores interactively
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible piece sequences
//	--db <path>         - Set database path (default: ~/.blockfall/scores.db)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
//	--log-file <path>   - Log destination (default: ~/.blockfall/blockfall.log)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/logging"
	"github.com/vovakirdan/blockfall/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/blockfall/internal/games/blocks"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle in your terminal",
	Long: `Blockfall drops pieces onto a 10x20 board. Fill a row to clear it;
the game ends when a new piece has no room to enter.

Available commands:
  list     - Show all game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  scores   - View high scores
  board    - Browse high scores interactively

Examples:
  blockfall play
  blockfall play blocks_classic --seed 42
  blockfall scores blocks`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultFile, "Path to log file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger opens the log file. On failure the problem is reported once on
// warn and logging is switched off, since the TUI owns the terminal.
func openLogger(path, level string, warn io.Writer) (*log.Logger, io.Closer) {
	logger, closer, err := logging.OpenFile(path, level)
	if err == nil {
		return logger, closer
	}

	fmt.Fprintf(warn, "Warning: could not open log file, logging disabled: %v\n", err)
	return logging.Discard(), io.NopCloser(nil)
}

// openStore opens the scores database, returning nil when it is unavailable.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
