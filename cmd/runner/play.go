package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/games/runner"
	"github.com/vovakirdan/void-runner/internal/platform/tui"
	"github.com/vovakirdan/void-runner/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRealtime   bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start playing. The game defaults to the runner.

Controls:
  A/D, Left/Right  - Shift lane
  Space/W/Up       - Jump
  C                - Toggle third/first person camera
  Enter            - Start a run
  P                - Pause
  R                - Restart (after game over)
  B/Esc            - Leave (menu, paused or game over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Start at the base speed, ramps up with score
  normal - Start at 30% of the ramp
  hard   - Start at 70% of the ramp
  fixed  - No ramp, constant speed

Finished runs are journaled for replay unless --realtime is set.

Examples:
  runner play
  runner play --difficulty hard
  runner play --seed 42 --fps 30
  runner play --config ./my-runner.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Step by wall-clock time instead of a fixed 1/fps (not replayable)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := runner.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if _, ok := registry.Lookup(gameID); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'runner list' to see available games.")
		os.Exit(1)
	}

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}

	// Surface config errors before entering the alt screen
	if _, err := runner.LoadConfig(flagConfig, flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	runner.SetConfigPath(flagConfig)
	runner.SetDifficultyPreset(flagDifficulty)

	cfg := runtimeConfig()
	cfg.Realtime = flagRealtime

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openJournal()

	runErr := tui.Run(game, store, cfg, nil)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
