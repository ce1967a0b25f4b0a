// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/arcade-sketches/internal/physics"
)

// ErrInvalidConfig is returned by Validate when a loaded config cannot be used.
var ErrInvalidConfig = errors.New("config: invalid")

// PlatformerConfig contains all configuration for the platformer sketch.
type PlatformerConfig struct {
	Physics   PlatformerPhysics  `yaml:"physics"`
	Body      PlatformerBody     `yaml:"body"`
	Floor     PlatformerFloor    `yaml:"floor"`
	Platforms []PlatformRow      `yaml:"platforms"`
	View      PlatformerView     `yaml:"view"`
	Gameplay  PlatformerGameplay `yaml:"gameplay"`
}

// PlatformerPhysics defines the tuning constants of the physics core.
type PlatformerPhysics struct {
	Gravity       float64 `yaml:"gravity"`
	RunSpeed      float64 `yaml:"run_speed"`
	JumpImpulse   float64 `yaml:"jump_impulse"`
	GroundY       float64 `yaml:"ground_y"`
	TopSnapOffset float64 `yaml:"top_snap_offset"`
}

// PlatformerBody defines the controlled body's spawn point and extent.
type PlatformerBody struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformerFloor describes the row of square blocks the body walks on.
// Blocks are laid from X rightwards while x < X + Length.
type PlatformerFloor struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Length    float64 `yaml:"length"`
	BlockSize float64 `yaml:"block_size"`
}

// PlatformRow is an extra horizontal run of floor-sized blocks.
type PlatformRow struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Blocks int     `yaml:"blocks"`
}

// PlatformerView defines how world pixels map onto terminal cells.
type PlatformerView struct {
	PixelsPerCol float64 `yaml:"pixels_per_col"`
	PixelsPerRow float64 `yaml:"pixels_per_row"`
	CenterX      float64 `yaml:"center_x"`
	CenterY      float64 `yaml:"center_y"`
	Width        float64 `yaml:"width"`  // Visible world width in pixels
	Height       float64 `yaml:"height"` // Visible world height in pixels
}

// PlatformerGameplay defines run rules layered on top of the physics.
type PlatformerGameplay struct {
	KillY float64 `yaml:"kill_y"` // Falling below this ends the run
}

// Params converts the physics section to the core's parameter set.
func (c PlatformerConfig) Params() physics.Params {
	return physics.Params{
		Gravity:       c.Physics.Gravity,
		RunSpeed:      c.Physics.RunSpeed,
		JumpImpulse:   c.Physics.JumpImpulse,
		GroundY:       c.Physics.GroundY,
		TopSnapOffset: c.Physics.TopSnapOffset,
	}
}

// Validate checks that every extent and scale is usable.
func (c PlatformerConfig) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return fmt.Errorf("%w: platformer: %w", ErrInvalidConfig, err)
	}
	switch {
	case c.Body.Width <= 0 || c.Body.Height <= 0:
		return fmt.Errorf("%w: platformer: body size %vx%v", ErrInvalidConfig, c.Body.Width, c.Body.Height)
	case c.Floor.BlockSize <= 0:
		return fmt.Errorf("%w: platformer: floor block_size %v", ErrInvalidConfig, c.Floor.BlockSize)
	case c.Floor.Length < 0:
		return fmt.Errorf("%w: platformer: floor length %v", ErrInvalidConfig, c.Floor.Length)
	case c.View.PixelsPerCol <= 0 || c.View.PixelsPerRow <= 0:
		return fmt.Errorf("%w: platformer: view scale %vx%v", ErrInvalidConfig, c.View.PixelsPerCol, c.View.PixelsPerRow)
	case c.View.Width <= 0 || c.View.Height <= 0:
		return fmt.Errorf("%w: platformer: view size %vx%v", ErrInvalidConfig, c.View.Width, c.View.Height)
	}
	for i, p := range c.Platforms {
		if p.Blocks < 0 {
			return fmt.Errorf("%w: platformer: platform %d has %d blocks", ErrInvalidConfig, i, p.Blocks)
		}
	}
	return nil
}

// SnakeConfig contains all configuration for the snake sketch.
type SnakeConfig struct {
	Arena      SnakeArena       `yaml:"arena"`
	Start      SnakeStart       `yaml:"start"`
	Gameplay   SnakeGameplay    `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeArena is the playable area in cells, excluding the wall border.
type SnakeArena struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeStart is the head's starting cell.
type SnakeStart struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// SnakeGameplay defines the snake's timers.
type SnakeGameplay struct {
	MoveEveryTicks    int `yaml:"move_every_ticks"`
	MinMoveEveryTicks int `yaml:"min_move_every_ticks"`
	FoodEveryTicks    int `yaml:"food_every_ticks"`
	MaxFood           int `yaml:"max_food"`
}

// Validate checks arena bounds and timers.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Arena.Width < 2 || c.Arena.Height < 2:
		return fmt.Errorf("%w: snake: arena %dx%d", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	case c.Start.X < 0 || c.Start.X >= c.Arena.Width || c.Start.Y < 0 || c.Start.Y >= c.Arena.Height:
		return fmt.Errorf("%w: snake: start (%d, %d) outside arena", ErrInvalidConfig, c.Start.X, c.Start.Y)
	case c.Gameplay.MoveEveryTicks <= 0 || c.Gameplay.FoodEveryTicks <= 0:
		return fmt.Errorf("%w: snake: timers must be positive", ErrInvalidConfig)
	case c.Gameplay.MaxFood <= 0:
		return fmt.Errorf("%w: snake: max_food %d", ErrInvalidConfig, c.Gameplay.MaxFood)
	}
	return nil
}

// MazeConfig contains all configuration for the maze sketch.
// Layout rows use '#' for walls, '.' for a pellet, 'P' for the player's start
// and a space for empty floor.
type MazeConfig struct {
	Layout         []string `yaml:"layout"`
	MoveEveryTicks int      `yaml:"move_every_ticks"`
}

// Validate checks the layout is rectangular with exactly one start cell and
// at least one pellet, so every run can be cleared.
func (c MazeConfig) Validate() error {
	if len(c.Layout) == 0 {
		return fmt.Errorf("%w: maze: empty layout", ErrInvalidConfig)
	}
	if c.MoveEveryTicks <= 0 {
		return fmt.Errorf("%w: maze: move_every_ticks %d", ErrInvalidConfig, c.MoveEveryTicks)
	}
	width := len(c.Layout[0])
	starts, pellets := 0, 0
	for i, row := range c.Layout {
		if len(row) != width {
			return fmt.Errorf("%w: maze: row %d has width %d, expected %d", ErrInvalidConfig, i, len(row), width)
		}
		starts += strings.Count(row, "P")
		pellets += strings.Count(row, ".")
	}
	if starts != 1 {
		return fmt.Errorf("%w: maze: layout has %d start cells", ErrInvalidConfig, starts)
	}
	if pellets == 0 {
		return fmt.Errorf("%w: maze: layout has no pellets", ErrInvalidConfig)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction int `yaml:"interval_reduction"` // Ticks removed from move interval at max difficulty
}
