package config

import (
	_ "embed"
	"slices"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultPlatformerConfig returns the reference platformer configuration:
// a 10x20 body at the origin above a 320px floor of 10px blocks.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:       0.1,
			RunSpeed:      2.0,
			JumpImpulse:   3.0,
			GroundY:       -105,
			TopSnapOffset: 15,
		},
		Body: PlatformerBody{
			X:      0,
			Y:      0,
			Width:  10,
			Height: 20,
		},
		Floor: PlatformerFloor{
			X:         -155,
			Y:         -120,
			Length:    320,
			BlockSize: 10,
		},
		View: PlatformerView{
			PixelsPerCol: 5,
			PixelsPerRow: 10,
			CenterX:      0,
			CenterY:      -25,
			Width:        320,
			Height:       200,
		},
		Gameplay: PlatformerGameplay{
			KillY: -200,
		},
	}
}

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Arena: SnakeArena{
			Width:  10,
			Height: 10,
		},
		Start: SnakeStart{
			X: 3,
			Y: 3,
		},
		Gameplay: SnakeGameplay{
			MoveEveryTicks:    9,   // ~150ms at 60fps
			MinMoveEveryTicks: 3,
			FoodEveryTicks:    120, // ~2s at 60fps
			MaxFood:           3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 30,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 5,
			},
		},
	}
}

var defaultMazeLayout = []string{
	"###########",
	"#....#....#",
	"#.##.#.##.#",
	"#....P....#",
	"#.##.#.##.#",
	"#....#....#",
	"###########",
}

// DefaultMazeConfig returns a small built-in maze.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		Layout:         slices.Clone(defaultMazeLayout),
		MoveEveryTicks: 8,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "platformer":
		return defaultPlatformerYAML
	case "snake":
		return defaultSnakeYAML
	case "maze":
		return defaultMazeYAML
	default:
		return nil
	}
}
