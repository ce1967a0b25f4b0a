package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type validator interface {
	Validate() error
}

// load resolves a game's configuration.
// Search order: customPath -> ~/.arcade/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default -> fallback.
// Files are decoded over the hardcoded defaults, so they only need the keys
// they change. A custom path that cannot be read or parsed is an error; the
// other sources are skipped silently when missing or malformed.
func load[T validator](gameID, customPath string, fallback func() T) (T, error) {
	cfg := fallback()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	filename := gameID + ".yaml"
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		fromFile := fallback()
		if err := yaml.Unmarshal(data, &fromFile); err == nil && fromFile.Validate() == nil {
			return fromFile, nil
		}
	}

	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil || cfg.Validate() != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadPlatformer loads the platformer configuration.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	return load("platformer", customPath, DefaultPlatformerConfig)
}

// LoadSnake loads the snake configuration.
func LoadSnake(customPath string) (SnakeConfig, error) {
	return load("snake", customPath, DefaultSnakeConfig)
}

// LoadMaze loads the maze configuration.
func LoadMaze(customPath string) (MazeConfig, error) {
	return load("maze", customPath, DefaultMazeConfig)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplySnakePreset applies a command line difficulty to cfg. An empty
// preset keeps the file's settings.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	if level, ok := presetLevels[preset]; ok {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = level
	}
}
