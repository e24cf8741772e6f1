package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/games/runner"
	"github.com/vovakirdan/void-runner/internal/platform/tui"
	"github.com/vovakirdan/void-runner/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the launcher menu",
	Long: `Start in interactive menu mode.

Pick a difficulty, play, or browse the run journal. After a game ends
you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter        - Select
  Tab          - Run journal
  Q            - Quit

Examples:
  runner menu
  runner menu --fps 30
  runner menu --db ./runs.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openJournal()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()
	preset := config.DifficultyNormal

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg, preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config
		preset = menuResult.Preset

		switch menuResult.Choice {
		case tui.MenuPlay:
			gameCfg, err := runner.LoadConfig(flagConfig, string(preset))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
				return
			}
			game, err := runner.NewWithConfig(gameCfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				return
			}
			if err := tui.Run(game, store, cfg, nil); err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}

		case tui.MenuRuns:
			if _, err := browseRuns(store, cfg.ScreenW, cfg.ScreenH); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}

		default:
			return
		}
	}
}

// browseRuns shows the journal and plays back a chosen run.
// It reports whether a run was watched; false means the user left the list.
func browseRuns(store *storage.Store, width, height int) (bool, error) {
	id, err := tui.RunRuns(store, width, height)
	if err != nil || id == 0 {
		return false, err
	}
	return true, watchRun(store, id)
}
