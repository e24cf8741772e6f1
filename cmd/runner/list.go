package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/void-runner/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered games",
	Long:  `Shows the registered games and how many runs each has in the journal.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games registered.")
		return
	}

	store := openJournal()
	if store != nil {
		defer store.Close()
	}

	rows := make([][]string, 0, len(games))
	for _, g := range games {
		runs := "-"
		if store != nil {
			if n, err := store.RunCount(g.ID); err == nil {
				runs = strconv.Itoa(n)
			}
		}
		rows = append(rows, []string{g.ID, g.Title, runs})
	}
	printTable([]string{"ID", "Title", "Journaled"}, rows)
	fmt.Println("Run 'runner play <id>' to play.")
}
