// Package platformer implements the side-view platformer sketch: one body
// that runs and jumps over a floor of square blocks. Movement and collision
// are delegated to the physics package; this package adds input mapping,
// scoring, the fall-off game over and terminal rendering.
package platformer

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-sketches/internal/config"
	"github.com/vovakirdan/arcade-sketches/internal/core"
	"github.com/vovakirdan/arcade-sketches/internal/logging"
	"github.com/vovakirdan/arcade-sketches/internal/physics"
	"github.com/vovakirdan/arcade-sketches/internal/registry"
)

// Event kinds reported in core.StepResult.
const (
	EventJumped  = "jumped"
	EventLanded  = "landed"
	EventBumped  = "bumped"
	EventFellOff = "fell_off"
	EventNewBest = "new_best"
)

// Game implements the platformer sketch.
type Game struct {
	cfg     config.PlatformerConfig
	world   *physics.World
	runtime core.RuntimeConfig
	log     *log.Logger

	startX     float64
	bestColumn int
	gameOver   bool
	paused     bool

	airTicks int // Ticks since the last top contact
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

// SetLogger routes the game's diagnostics (ground checks, contacts) to l.
// A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		logger = logging.Discard()
		return
	}
	logger = l.WithPrefix("platformer")
}

// New creates a new platformer instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "platformer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset rebuilds the world from configuration and respawns the body.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.log = logger
	g.events = g.events[:0]

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		g.log.Warn("using default config", "path", configPath, "error", err)
		cfg = config.DefaultPlatformerConfig()
	}

	world, err := g.buildWorld(cfg)
	if err != nil {
		g.log.Error("config does not produce a valid world, using defaults", "error", err)
		cfg = config.DefaultPlatformerConfig()
		world, err = g.buildWorld(cfg)
		if err != nil {
			// The built-in field is known to be valid.
			panic(err)
		}
	}

	g.cfg = cfg
	g.world = world
	g.startX = cfg.Body.X
	g.bestColumn = 0
	g.gameOver = false
	g.paused = false
	g.airTicks = 0

	g.log.Info("world ready", "blocks", len(world.Obstacles()), "spawn", world.Position())
}

func (g *Game) buildWorld(cfg config.PlatformerConfig) (*physics.World, error) {
	obstacles, err := BuildField(cfg)
	if err != nil {
		return nil, err
	}
	body, err := newBody(cfg)
	if err != nil {
		return nil, err
	}
	return physics.NewWorld(cfg.Params(), body, obstacles,
		physics.WithGroundObserver(g.observeGround),
		physics.WithContactObserver(g.observeContact),
	)
}

// observeGround is the ground-check hook of the physics world.
func (g *Game) observeGround(y float64, grounded bool) {
	g.log.Debug("ground check", "y", y, "grounded", grounded)
}

// observeContact is the contact hook of the physics world.
func (g *Game) observeContact(c physics.Contact) {
	g.log.Debug("contact", "side", c.Side, "obstacle", c.Obstacle, "tick", c.Tick)

	switch c.Side {
	case physics.CollisionTop:
		// Resting bodies touch down every other tick.
		if g.airTicks > 2 {
			g.emit(EventLanded, c.Side.String())
		}
		g.airTicks = 0
	case physics.CollisionBottom:
		g.emit(EventBumped, c.Side.String())
	}
}

func (g *Game) emit(kind, detail string) {
	g.events = append(g.events, core.Event{Kind: kind, Detail: detail})
}

// IntentFromInput maps platform actions to physics intents.
// Jump is an alias of Up.
func IntentFromInput(in core.InputFrame) physics.Intent {
	intent := physics.IntentNone
	if in.Has(core.ActionLeft) {
		intent = intent.With(physics.IntentLeft)
	}
	if in.Has(core.ActionRight) {
		intent = intent.With(physics.IntentRight)
	}
	if in.Any(core.ActionUp, core.ActionJump) {
		intent = intent.With(physics.IntentUp)
	}
	if in.Has(core.ActionDown) {
		intent = intent.With(physics.IntentDown)
	}
	return intent
}

// Step advances the world by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.world == nil || g.gameOver {
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	intent := IntentFromInput(in)
	grounded := g.world.Body().Grounded(g.world.Params())
	if grounded && intent.Has(physics.IntentUp) {
		g.emit(EventJumped, "")
	}

	if err := g.world.Step(intent); err != nil {
		g.log.Error("step failed", "error", err)
		g.gameOver = true
		return g.result()
	}
	g.airTicks++

	pos := g.world.Position()
	if col := g.column(pos.X()); col > g.bestColumn {
		g.bestColumn = col
		g.emit(EventNewBest, "")
	}

	if pos.Y() < g.cfg.Gameplay.KillY {
		g.gameOver = true
		g.emit(EventFellOff, "")
		g.log.Info("fell off the field", "x", pos.X(), "tick", g.world.Tick(), "score", g.bestColumn)
	}

	return g.result()
}

// column returns how many whole blocks x lies right of the spawn point.
func (g *Game) column(x float64) int {
	return int(math.Floor((x - g.startX) / g.cfg.Floor.BlockSize))
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.bestColumn,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// World exposes the physics world for inspection.
func (g *Game) World() *physics.World {
	return g.world
}

func init() {
	registry.Register("platformer", func() registry.Game {
		return New()
	})
}
