package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-sketches/internal/config"
	"github.com/vovakirdan/arcade-sketches/internal/platform/tui"
	"github.com/vovakirdan/arcade-sketches/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Run (platformer) or steer
  Up/W, Space      - Jump (platformer) or steer up
  Down/S           - Steer down
  P                - Pause
  R                - Restart
  Esc/B            - Leave (when paused or over)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot to ~/.arcade/screenshots

Difficulty options (snake):
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at the configured speed

Examples:
  arcade play platformer
  arcade play platformer --config ./platforms.yaml
  arcade play snake --difficulty hard
  arcade play maze --log-file ./maze.log`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if flagDifficulty != "" {
		if _, err := config.ParsePreset(flagDifficulty); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	logger, logCloser := openLogger()
	defer logCloser.Close()

	configureGame(gameID, flagConfig, flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	logger.Info("starting", "game", gameID, "fps", flagFPS, "seed", flagSeed)
	runErr := tui.Run(game, store, logger, runtimeConfig())

	// Close before a potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		logCloser.Close()
		os.Exit(1)
	}
}
