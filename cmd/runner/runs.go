package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	flagPlain bool
	flagLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse journaled runs",
	Long: `Browse the run journal. Select a run with Enter to watch it
played back, or press X to delete it.

With --plain the most recent runs are printed instead.

Examples:
  runner runs
  runner runs --plain --limit 5`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print runs as text instead of the interactive browser")
	runsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs printed with --plain")
}

func runRuns(_ *cobra.Command, _ []string) {
	store := mustOpenJournal()
	defer store.Close()

	if !flagPlain {
		width, height := terminalSize()
		// Back to the list after each playback, until the user leaves
		for {
			watched, err := browseRuns(store, width, height)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if !watched {
				return
			}
		}
	}

	runs, err := store.RecentRuns("", flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs journaled yet. Finish a run in 'runner play' to record one.")
		return
	}

	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Frames),
			strconv.FormatFloat(r.Distance, 'f', 1, 64),
			orDash(r.HitKind),
			r.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	printTable([]string{"ID", "Seed", "Frames", "Distance", "Hit", "Date"}, rows)
	fmt.Println("Run 'runner replay <id>' to verify a run.")
}
