package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-sketches/internal/registry"
	"github.com/vovakirdan/arcade-sketches/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its best score and number of recorded runs.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	// Without a database the list still works, just without scores.
	var stats map[string]*storage.GameStats
	if store, err := storage.Open(flagDBPath); err == nil {
		stats, _ = store.GetAllGamesStats()
		store.Close()
	}

	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %5s  %4s\n", idW, "ID", titleW, "Title", "Best", "Runs")
	for _, g := range games {
		best, runs := "-", "-"
		if gs, ok := stats[g.ID]; ok {
			best, runs = fmt.Sprint(gs.HighScore), fmt.Sprint(gs.GamesCount)
		}
		fmt.Printf("  %-*s  %-*s  %5s  %4s\n", idW, g.ID, titleW, g.Title, best, runs)
	}
	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
