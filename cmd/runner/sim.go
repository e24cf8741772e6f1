package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/games/runner"
	"github.com/vovakirdan/void-runner/internal/headless"
	"github.com/vovakirdan/void-runner/internal/storage"
)

var (
	flagSimRuns      int
	flagSimMaxFrames int
	flagSimJournal   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot headlessly",
	Long: `Play runs without a terminal using a simple autopilot that changes
lane around solid obstacles and jumps laser gates. Each run is stepped
at a fixed 1/fps and can be journaled for later replay.

Examples:
  runner sim
  runner sim --runs 20 --seed 7
  runner sim --journal --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs to simulate")
	simCmd.Flags().IntVar(&flagSimMaxFrames, "max-frames", 60*60*10, "Stop a run after this many steps")
	simCmd.Flags().BoolVar(&flagSimJournal, "journal", false, "Journal finished runs")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(_ *cobra.Command, _ []string) {
	gameCfg, err := runner.LoadConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var store *storage.Store
	if flagSimJournal {
		store = mustOpenJournal()
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := newLogger("runner-sim")
	var rows [][]string
	defer func() {
		printTable([]string{"Run", "Seed", "Frames", "Distance", "Hit", "Journal"}, rows)
	}()

	for i := 0; i < flagSimRuns; i++ {
		game, err := runner.NewWithConfig(gameCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			os.Exit(1)
		}

		rt := core.DefaultConfig()
		rt.TickRate = flagFPS
		rt.Seed = seed + int64(i)
		session := headless.NewSession(game, rt)

		journalID := "-"
		if store != nil {
			session.OnRunEnd(func(rec storage.RunRecord, edges []storage.InputEdge) {
				id, err := store.SaveRun(rec, edges)
				if err != nil {
					logger.Warn("could not journal run", "error", err)
					return
				}
				journalID = fmt.Sprintf("#%d", id)
			})
		}

		_, _, err = headless.Run(ctx, session, headless.StartThen(headless.Autopilot(game)), flagSimMaxFrames)
		if err != nil {
			logger.Info("interrupted", "run", i+1)
			return
		}

		hit := "-"
		if h, ok := game.Hit(); ok {
			hit = h.Kind.String()
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(game.RunSeed(), 10),
			strconv.Itoa(game.Frames()),
			strconv.FormatFloat(game.Distance(), 'f', 1, 64),
			hit,
			journalID,
		})
	}
}
