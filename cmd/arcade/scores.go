package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-sketches/internal/platform/tui"
	"github.com/vovakirdan/arcade-sketches/internal/registry"
	"github.com/vovakirdan/arcade-sketches/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 runs (or every run with --all) for the specified game.
Without a game, opens the interactive scoreboard.

Examples:
  arcade scores
  arcade scores platformer
  arcade scores maze --all
  arcade scores snake --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var (
	flagClear   bool
	flagAllRuns bool
)

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run of the game")
	scoresCmd.Flags().BoolVar(&flagAllRuns, "all", false, "List every run instead of the top 10")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a game")
			os.Exit(1)
		}
		cfg := runtimeConfig()
		if _, err := tui.RunScoreboard(store, cfg.TickRate, cfg.ScreenW, cfg.ScreenH); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return
	}

	gameID := args[0]
	info, ok := registry.Lookup(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if flagClear {
		n, err := store.ClearScores(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Removed %d runs of %s.\n", n, info.Title)
		return
	}

	var scores []storage.ScoreEntry
	if flagAllRuns {
		scores, err = store.AllScores(gameID)
	} else {
		scores, err = store.TopScores(gameID, 10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "Rank", "Score", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "----", "-----", "----", "----")

	for i, entry := range scores {
		score := fmt.Sprintf("%d", entry.Score)
		if entry.Won {
			score += "*"
		}
		seconds := fmt.Sprintf("%.1fs", float64(entry.Ticks)/float64(flagFPS))
		fmt.Printf("  %-4d  %-6s  %-8s  %s\n", i+1, score, seconds, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Runs: %d  Average: %.1f", stats.HighScore, stats.GamesCount, stats.AvgScore)
		if stats.Wins > 0 {
			fmt.Printf("  Wins: %d", stats.Wins)
		}
		fmt.Println()
	}
}
