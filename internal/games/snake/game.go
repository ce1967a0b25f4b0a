// Package snake implements the snake sketch: a head that steps across a small
// walled arena, food that appears on a timer, and a tail that grows by one
// segment for every food eaten.
//
// Arena coordinates have y growing upwards; rendering flips them.
package snake

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-sketches/internal/config"
	"github.com/vovakirdan/arcade-sketches/internal/core"
	"github.com/vovakirdan/arcade-sketches/internal/logging"
	"github.com/vovakirdan/arcade-sketches/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirNone Direction = iota // Waiting for the first key press
	DirRight
	DirDown
	DirLeft
	DirUp
)

// Point represents an arena cell.
type Point struct {
	X, Y int
}

// Event kinds reported in core.StepResult.
const (
	EventAte         = "ate"
	EventFoodSpawned = "food_spawned"
	EventCrashed     = "crashed"
)

// Visual characters for rendering
const (
	HeadChar = '█'
	BodyChar = '▓'
	FoodChar = '●'
	cellW    = 2 // Terminal columns per arena cell
	hudRows  = 2
)

// Game implements the snake sketch.
type Game struct {
	cfg        config.SnakeConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
	tick       uint64
	score      int

	moveEveryTicks int
	moveTicker     int
	foodTicker     int

	snake     []Point // Head at index 0
	direction Direction
	nextDir   Direction
	growing   bool // Keep the tail on the next move
	food      []Point

	gameOver bool
	paused   bool
	events   []core.Event
	log      *log.Logger
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = logging.Discard()
)

// SetLogger routes config warnings to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		logger = logging.Discard()
		return
	}
	logger = l.WithPrefix("snake")
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back to
// the config's own difficulty section.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// New creates a new snake instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.log = logger

	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		g.log.Warn("using default config", "path", configPath, "error", err)
		cfg = config.DefaultSnakeConfig()
	}
	if difficultyPreset != "" {
		config.ApplySnakePreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.score = 0
	g.moveTicker = 0
	g.foodTicker = 0
	g.moveEveryTicks = g.difficulty.Interval(cfg.Gameplay.MoveEveryTicks, cfg.Gameplay.MinMoveEveryTicks, 0, 0)

	g.snake = []Point{{X: cfg.Start.X, Y: cfg.Start.Y}}
	g.direction = DirNone
	g.nextDir = DirNone
	g.growing = false
	g.food = nil
	g.gameOver = false
	g.paused = false
	g.events = g.events[:0]
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if input.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.gameOver || g.paused || len(g.snake) == 0 {
		return g.result()
	}

	g.tick++
	g.processInput(input)

	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.moveSnake()
	}

	g.foodTicker++
	if g.foodTicker >= g.cfg.Gameplay.FoodEveryTicks {
		g.foodTicker = 0
		g.spawnFood()
	}

	return g.result()
}

// processInput buffers the next direction. A snake longer than its head
// cannot reverse onto itself.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	if len(g.snake) > 1 && isOpposite(newDir, g.direction) {
		return
	}
	g.nextDir = newDir
}

func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

func (d Direction) delta() Point {
	switch d {
	case DirUp:
		return Point{Y: 1}
	case DirDown:
		return Point{Y: -1}
	case DirLeft:
		return Point{X: -1}
	case DirRight:
		return Point{X: 1}
	}
	return Point{}
}

func (g *Game) inArena(p Point) bool {
	return p.X >= 0 && p.X < g.cfg.Arena.Width && p.Y >= 0 && p.Y < g.cfg.Arena.Height
}

// moveSnake moves the snake one cell in the buffered direction.
func (g *Game) moveSnake() {
	g.direction = g.nextDir
	if g.direction == DirNone {
		return
	}

	d := g.direction.delta()
	head := g.snake[0]
	newHead := Point{X: head.X + d.X, Y: head.Y + d.Y}

	if !g.inArena(newHead) {
		g.crash("wall", newHead)
		return
	}

	// The tail moves out of the way unless the snake is growing.
	body := g.snake
	if !g.growing {
		body = body[:len(body)-1]
	}
	if slices.Contains(body, newHead) {
		g.crash("self", newHead)
		return
	}

	g.snake = append([]Point{newHead}, g.snake...)
	if g.growing {
		g.growing = false
	} else {
		g.snake = g.snake[:len(g.snake)-1]
	}

	if i := slices.Index(g.food, newHead); i >= 0 {
		g.food = slices.Delete(g.food, i, i+1)
		g.score++
		g.growing = true
		g.moveEveryTicks = g.difficulty.Interval(
			g.cfg.Gameplay.MoveEveryTicks, g.cfg.Gameplay.MinMoveEveryTicks, g.score, int(g.tick))
		g.emit(EventAte, fmt.Sprintf("length %d", len(g.snake)+1))
	}
}

func (g *Game) crash(what string, at Point) {
	g.gameOver = true
	g.emit(EventCrashed, fmt.Sprintf("%s at (%d, %d)", what, at.X, at.Y))
}

// spawnFood places food on a random free cell while fewer than max_food are out.
func (g *Game) spawnFood() {
	if len(g.food) >= g.cfg.Gameplay.MaxFood {
		return
	}

	var free []Point
	for y := 0; y < g.cfg.Arena.Height; y++ {
		for x := 0; x < g.cfg.Arena.Width; x++ {
			p := Point{X: x, Y: y}
			if !slices.Contains(g.snake, p) && !slices.Contains(g.food, p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return
	}

	p := free[g.rng.Intn(len(free))]
	g.food = append(g.food, p)
	g.emit(EventFoodSpawned, fmt.Sprintf("(%d, %d)", p.X, p.Y))
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

	w, h := g.cfg.Arena.Width, g.cfg.Arena.Height
	needW, needH := w*cellW+2, h+2+hudRows
	if dst.Width() < needW || dst.Height() < needH {
		dst.DrawMessageBox("Window too small", fmt.Sprintf("Need at least %dx%d", needW, needH))
		return
	}

	g.renderHUD(dst)

	offX := (dst.Width()-needW)/2 + 1
	offY := hudRows + 1
	dst.DrawBox(core.NewRect(offX-1, offY-1, needW, h+2))

	cell := func(p Point, ch rune, c core.Color) {
		sx := offX + p.X*cellW
		sy := offY + (h - 1 - p.Y)
		for i := 0; i < cellW; i++ {
			dst.SetColor(sx+i, sy, ch, c)
		}
	}

	for _, f := range g.food {
		cell(f, FoodChar, core.ColorMagenta)
	}
	for i := len(g.snake) - 1; i >= 0; i-- {
		if i == 0 {
			cell(g.snake[i], HeadChar, core.ColorBrightWhite)
		} else {
			cell(g.snake[i], BodyChar, core.ColorGray)
		}
	}

	switch {
	case g.gameOver:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	case g.direction == DirNone && g.nextDir == DirNone:
		dst.DrawTextCentered(dst.Height()-1, "Arrow keys to start")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Snake  Score: %d  Length: %d  Food: %d/%d  Step: %d ticks",
		g.score, len(g.snake), len(g.food), g.cfg.Gameplay.MaxFood, g.moveEveryTicks))
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}
