// Package maze implements a pellet maze: the player steers through a walled
// grid eating pellets, and the run is won once the grid is clear.
package maze

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-sketches/internal/config"
	"github.com/vovakirdan/arcade-sketches/internal/core"
	"github.com/vovakirdan/arcade-sketches/internal/logging"
	"github.com/vovakirdan/arcade-sketches/internal/registry"
)

// Direction is a grid heading.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Point is a grid cell, y growing downwards like the layout rows.
type Point struct {
	X, Y int
}

// Event kinds reported in core.StepResult.
const (
	EventPellet  = "pellet"
	EventCleared = "cleared"
)

// Visual characters for rendering
const (
	WallChar   = '█'
	PelletChar = '·'
	PlayerChar = '●'
	cellW      = 2
	hudRows    = 2
)

// Game implements the maze sketch.
type Game struct {
	cfg    config.MazeConfig
	layout *Layout
	log    *log.Logger

	tick       uint64
	moveTicker int
	player     Point
	direction  Direction
	wanted     Direction
	eaten      int

	gameOver bool
	won      bool
	paused   bool
	events   []core.Event
}

var (
	configPath string
	logger     = logging.Discard()
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger routes layout warnings to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		logger = logging.Discard()
		return
	}
	logger = l.WithPrefix("maze")
}

// New creates a new maze instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("maze", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "maze"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pacman!"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(_ core.RuntimeConfig) {
	g.log = logger

	cfg, err := config.LoadMaze(configPath)
	if err != nil {
		g.log.Warn("using default maze", "err", err)
		cfg = config.DefaultMazeConfig()
	}
	layout, err := ParseLayout(cfg)
	if err != nil {
		g.log.Warn("using default maze", "err", err)
		cfg = config.DefaultMazeConfig()
		if layout, err = ParseLayout(cfg); err != nil {
			panic(fmt.Sprintf("maze: default layout: %v", err))
		}
	}

	g.cfg = cfg
	g.layout = layout
	g.tick = 0
	g.moveTicker = 0
	g.player = layout.Start
	g.direction = DirNone
	g.wanted = DirNone
	g.eaten = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.events = g.events[:0]
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.gameOver || g.paused {
		return g.result()
	}

	g.tick++
	switch {
	case input.Has(core.ActionUp):
		g.wanted = DirUp
	case input.Has(core.ActionDown):
		g.wanted = DirDown
	case input.Has(core.ActionLeft):
		g.wanted = DirLeft
	case input.Has(core.ActionRight):
		g.wanted = DirRight
	}

	g.moveTicker++
	if g.moveTicker >= g.cfg.MoveEveryTicks {
		g.moveTicker = 0
		g.movePlayer()
	}

	return g.result()
}

// movePlayer turns into the wanted direction when it is open, otherwise keeps
// the current heading. Walls stop the player in place.
func (g *Game) movePlayer() {
	if g.wanted != DirNone && g.open(g.player.step(g.wanted)) {
		g.direction = g.wanted
	}
	if g.direction == DirNone {
		return
	}

	next := g.player.step(g.direction)
	if !g.open(next) {
		return
	}
	g.player = next

	if g.layout.At(next) == TilePellet {
		g.layout.Tiles[next.Y][next.X] = TileFloor
		g.eaten++
		g.emit(EventPellet, fmt.Sprintf("(%d, %d)", next.X, next.Y))

		if g.eaten == g.layout.Pellets {
			g.won = true
			g.gameOver = true
			g.emit(EventCleared, fmt.Sprintf("%d ticks", g.tick))
		}
	}
}

func (g *Game) open(p Point) bool {
	return g.layout.At(p) != TileWall
}

func (p Point) step(d Direction) Point {
	switch d {
	case DirUp:
		p.Y--
	case DirDown:
		p.Y++
	case DirLeft:
		p.X--
	case DirRight:
		p.X++
	}
	return p
}

func (g *Game) emit(kind, detail string) {
	g.events = append(g.events, core.Event{Kind: kind, Detail: detail})
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	needW, needH := g.layout.Width*cellW, g.layout.Height+hudRows
	if dst.Width() < needW || dst.Height() < needH {
		dst.DrawMessageBox("Window too small", fmt.Sprintf("Need at least %dx%d", needW, needH))
		return
	}

	dst.DrawText(1, 0, fmt.Sprintf("Pacman!  Score: %d  Pellets left: %d", g.eaten, g.layout.Pellets-g.eaten))
	dst.DrawHLine(0, 1, dst.Width(), '─')

	offX := (dst.Width() - needW) / 2
	offY := hudRows + (dst.Height()-needH)/2
	for y := 0; y < g.layout.Height; y++ {
		for x := 0; x < g.layout.Width; x++ {
			sx, sy := offX+x*cellW, offY+y
			switch g.layout.Tiles[y][x] {
			case TileWall:
				dst.SetColor(sx, sy, WallChar, core.ColorBlue)
				dst.SetColor(sx+1, sy, WallChar, core.ColorBlue)
			case TilePellet:
				dst.SetColor(sx, sy, PelletChar, core.ColorYellow)
			}
		}
	}
	dst.SetColor(offX+g.player.X*cellW, offY+g.player.Y, PlayerChar, core.ColorBrightYellow)

	switch {
	case g.won:
		dst.DrawMessageBox("CLEARED!", fmt.Sprintf("Score: %d  |  Press R to play again", g.eaten))
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.eaten,
		GameOver: g.gameOver,
		Paused:   g.paused,
		Won:      g.won,
	}
}

// Player returns the player's cell.
func (g *Game) Player() Point {
	return g.player
}
