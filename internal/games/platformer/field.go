package platformer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/arcade-sketches/internal/config"
	"github.com/vovakirdan/arcade-sketches/internal/physics"
)

// BuildField lays out the static terrain: the floor row, then each extra
// platform row, all made of square blocks of the floor's block size.
func BuildField(cfg config.PlatformerConfig) ([]physics.Obstacle, error) {
	bs := cfg.Floor.BlockSize
	size := mgl64.Vec2{bs, bs}

	var blocks []physics.Obstacle
	add := func(x, y float64) error {
		o, err := physics.NewObstacle(mgl64.Vec3{x, y, 0}, size)
		if err != nil {
			return fmt.Errorf("platformer: block at (%v, %v): %w", x, y, err)
		}
		blocks = append(blocks, o)
		return nil
	}

	end := cfg.Floor.X + cfg.Floor.Length
	for i := 0; ; i++ {
		x := cfg.Floor.X + float64(i)*bs
		if x >= end {
			break
		}
		if err := add(x, cfg.Floor.Y); err != nil {
			return nil, err
		}
	}

	for _, row := range cfg.Platforms {
		for i := 0; i < row.Blocks; i++ {
			if err := add(row.X+float64(i)*bs, row.Y); err != nil {
				return nil, err
			}
		}
	}
	return blocks, nil
}

// newBody places the controlled body at its configured spawn point.
func newBody(cfg config.PlatformerConfig) (*physics.Body, error) {
	return physics.NewBody(
		mgl64.Vec3{cfg.Body.X, cfg.Body.Y, 0},
		mgl64.Vec2{cfg.Body.Width, cfg.Body.Height},
	)
}
