// runner is a terminal endless runner: dodge obstacles on a three-lane track
// while a black hole looms on the horizon.
//
// Usage:
//
//	runner list              - List available games
//	runner play [game]       - Play in the terminal
//	runner menu              - Launcher with difficulty picker and run journal
//	runner serve             - Start SSH server for remote play
//	runner feed              - Start websocket frame feed for an external renderer
//	runner runs              - Browse journaled runs
//	runner replay <id>       - Re-simulate a journaled run and verify it
//	runner sim               - Run the autopilot headlessly
//	runner schema            - Print the frame feed JSON schema
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set journal path (default: ~/.void-runner/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/void-runner/internal/games/runner"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runner",
	Short: "Void Runner - an endless runner in your terminal",
	Long: `Void Runner is a three-lane endless runner. Shift lanes and jump to
avoid obstacles streaming out of a black hole.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  menu     - Launcher with difficulty picker and run journal
  serve    - Start SSH server for remote play
  feed     - Start websocket frame feed
  runs     - Browse journaled runs
  replay   - Verify a journaled run
  sim      - Run the autopilot headlessly
  schema   - Print the feed protocol schema

Examples:
  runner play
  runner play --difficulty hard
  runner serve --ssh :2222
  runner feed --addr :8080
  runner replay 12`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", config.DefaultJournalPath(), "Path to run journal database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(feedCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(schemaCmd)
}

// newLogger returns the CLI's stderr logger.
func newLogger(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a terminal.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// runtimeConfig builds the runtime config from the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := terminalSize()
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openJournal opens the run journal, or returns nil with a warning.
func openJournal() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		// Continue without storage - the game still works
		return nil
	}
	return store
}

// mustOpenJournal opens the run journal or exits.
func mustOpenJournal() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	return store
}
