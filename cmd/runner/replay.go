package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-runner/internal/headless"
	"github.com/vovakirdan/void-runner/internal/platform/tui"
	"github.com/vovakirdan/void-runner/internal/storage"
)

var flagWatch bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a journaled run and verify it",
	Long: `Re-simulate a journaled run from its seed, config and input edges,
then compare frames, distance, spawn count and the obstacle hit against
the journal. Exits non-zero on a mismatch.

With --watch the run is played back in the terminal instead.

Examples:
  runner replay 12
  runner replay 12 --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagWatch, "watch", false, "Play the run back in the terminal")
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", args[0])
		os.Exit(1)
	}

	store := mustOpenJournal()
	defer store.Close()

	if flagWatch {
		if err := watchRun(store, id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	rec, edges, err := loadRun(store, id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result, err := headless.Replay(context.Background(), *rec, edges)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error replaying run: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run #%d (seed %d, %d Hz)\n", rec.ID, rec.Seed, rec.TickRate)
	printTable([]string{"", "Journal", "Replay"}, [][]string{
		{"Frames", strconv.Itoa(rec.Frames), strconv.Itoa(result.Frames)},
		{"Distance", fmt.Sprintf("%.2f", rec.Distance), fmt.Sprintf("%.2f", result.Distance)},
		{"Spawned", strconv.Itoa(rec.Spawned), strconv.Itoa(result.Spawned)},
		{"Hit", orDash(rec.HitKind), orDash(result.HitKind)},
	})

	if !result.Match {
		fmt.Println("MISMATCH: the replay diverged from the journal.")
		os.Exit(1)
	}
	fmt.Println("OK: the replay matches the journal.")
}

// loadRun reads a run and its input edges.
func loadRun(store *storage.Store, id int64) (*storage.RunRecord, []storage.InputEdge, error) {
	rec, err := store.Run(id)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, fmt.Errorf("run %d not found", id)
	}
	edges, err := store.RunInputs(id)
	if err != nil {
		return nil, nil, err
	}
	return rec, edges, nil
}

// watchRun plays a journaled run back in the terminal.
func watchRun(store *storage.Store, id int64) error {
	rec, edges, err := loadRun(store, id)
	if err != nil {
		return err
	}

	game, session, err := headless.NewReplaySession(*rec)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	game.Resize(width, height)

	cfg := runtimeConfig()
	cfg.TickRate = rec.TickRate
	model := tui.NewReplayModel(game, session, cfg, headless.StartThen(headless.EdgeScript(edges)))
	return tui.RunModel(model)
}
