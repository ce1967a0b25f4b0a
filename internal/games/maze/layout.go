package maze

import (
	"fmt"

	"github.com/vovakirdan/arcade-sketches/internal/config"
)

// Tile is the content of one maze cell.
type Tile uint8

const (
	TileFloor Tile = iota
	TileWall
	TilePellet
)

// Layout is a parsed maze grid. Row 0 is the top row.
type Layout struct {
	Width, Height int
	Tiles         [][]Tile
	Start         Point
	Pellets       int
}

// ParseLayout converts the config rows into a Layout.
func ParseLayout(cfg config.MazeConfig) (*Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	l := &Layout{
		Width:  len(cfg.Layout[0]),
		Height: len(cfg.Layout),
		Tiles:  make([][]Tile, len(cfg.Layout)),
	}
	for y, row := range cfg.Layout {
		l.Tiles[y] = make([]Tile, l.Width)
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case '#':
				l.Tiles[y][x] = TileWall
			case '.':
				l.Tiles[y][x] = TilePellet
				l.Pellets++
			case 'P':
				l.Start = Point{X: x, Y: y}
			case ' ':
			default:
				return nil, fmt.Errorf("%w: maze: unknown tile %q at (%d, %d)", config.ErrInvalidConfig, row[x], x, y)
			}
		}
	}
	return l, nil
}

// At returns the tile at p. Cells outside the grid read as walls.
func (l *Layout) At(p Point) Tile {
	if p.X < 0 || p.Y < 0 || p.X >= l.Width || p.Y >= l.Height {
		return TileWall
	}
	return l.Tiles[p.Y][p.X]
}
