package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-runner/internal/games/runner"
	"github.com/vovakirdan/void-runner/internal/platform/web"
)

var flagFeedAddr string

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Start the websocket frame feed",
	Long: `Start an HTTP server streaming scene snapshots over a websocket.

Each connection to /ws gets its own run. The server sends one "frame"
message per tick (camera matrices plus mesh instances) and accepts
{"type":"input","action":"left"} style messages. GET /schema returns
the protocol's JSON schema.

Examples:
  runner feed
  runner feed --addr :9000 --fps 30
  runner feed --difficulty hard`,
	Run: runFeed,
}

func init() {
	feedCmd.Flags().StringVar(&flagFeedAddr, "addr", ":8080", "HTTP listen address (host:port)")
	feedCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	feedCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runFeed(_ *cobra.Command, _ []string) {
	gameCfg, err := runner.LoadConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store := openJournal()
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	server := web.NewServer(flagFeedAddr, web.HandlerConfig{
		Logger:   newLogger("runner-feed"),
		Runner:   gameCfg,
		TickRate: flagFPS,
		Store:    store,
	})

	fmt.Printf("Starting frame feed on %s (ws://localhost%s/ws)\n", flagFeedAddr, flagFeedAddr)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
