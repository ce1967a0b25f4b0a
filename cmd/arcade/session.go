package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-sketches/internal/core"
	"github.com/vovakirdan/arcade-sketches/internal/games/maze"
	"github.com/vovakirdan/arcade-sketches/internal/games/platformer"
	"github.com/vovakirdan/arcade-sketches/internal/games/snake"
	"github.com/vovakirdan/arcade-sketches/internal/logging"
	"github.com/vovakirdan/arcade-sketches/internal/storage"
)

// openLogger builds the logger selected by --log-file and --debug and hands
// it to every game. Exits on failure.
func openLogger() (*log.Logger, io.Closer) {
	logger, closer, err := logging.Open(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	platformer.SetLogger(logger)
	snake.SetLogger(logger)
	maze.SetLogger(logger)
	return logger, closer
}

// openStore opens the scores database. Games still run without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "err", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen to the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// configureGame points one game at a custom config file and difficulty preset.
func configureGame(gameID, configPath, difficulty string) {
	switch gameID {
	case "platformer":
		platformer.SetConfigPath(configPath)
	case "snake":
		snake.SetConfigPath(configPath)
		snake.SetDifficultyPreset(difficulty)
	case "maze":
		maze.SetConfigPath(configPath)
	}
}
