package snake

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/arcade-sketches/internal/core"
	"github.com/vovakirdan/arcade-sketches/internal/logging"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")

	g := New()
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func idle(g *Game, n int) []core.Event {
	var events []core.Event
	for i := 0; i < n; i++ {
		events = append(events, g.Step(core.NewInputFrame()).Events...)
	}
	return events
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	for i := 0; i < 400; i++ {
		input := core.NewInputFrame()
		switch i {
		case 5:
			input.Set(core.ActionUp)
		case 40:
			input.Set(core.ActionRight)
		case 80:
			input.Set(core.ActionDown)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if !reflect.DeepEqual(g1.Snapshot(), g2.Snapshot()) {
		t.Errorf("snapshots differ:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
	if len(g1.Snapshot().Food) == 0 {
		t.Error("expected food after 400 ticks")
	}
}

func TestStartsWaitingAtSpawn(t *testing.T) {
	g := newTestGame(t, 1)

	idle(g, 100)

	snap := g.Snapshot()
	if !reflect.DeepEqual(snap.Body, []Point{{3, 3}}) {
		t.Errorf("expected lone head at (3, 3), got %v", snap.Body)
	}
	if snap.Phase != PhaseWaiting {
		t.Errorf("phase = %s, expected waiting", snap.Phase)
	}
}

func TestMovesOnInterval(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(press(core.ActionRight))
	idle(g, 7)
	if g.snake[0] != (Point{X: 3, Y: 3}) {
		t.Fatalf("head moved early: %v", g.snake[0])
	}

	idle(g, 1)
	if g.snake[0] != (Point{X: 4, Y: 3}) {
		t.Fatalf("head after 9 ticks = %v, expected (4, 3)", g.snake[0])
	}

	// Keeps going without further input.
	idle(g, 9)
	if g.snake[0] != (Point{X: 5, Y: 3}) {
		t.Errorf("head after 18 ticks = %v, expected (5, 3)", g.snake[0])
	}
}

func TestUpIncreasesY(t *testing.T) {
	g := newTestGame(t, 1)

	g.Step(press(core.ActionUp))
	idle(g, 8)

	if g.snake[0] != (Point{X: 3, Y: 4}) {
		t.Errorf("head = %v, expected (3, 4)", g.snake[0])
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(t, 42)
	g.snake = []Point{{X: 5, Y: 5}, {X: 4, Y: 5}}
	g.direction = DirRight
	g.nextDir = DirRight

	g.Step(press(core.ActionLeft))
	if g.nextDir == DirLeft {
		t.Error("Should not allow immediate reversal from Right to Left")
	}

	g.Step(press(core.ActionDown))
	if g.nextDir != DirDown {
		t.Errorf("Expected nextDir to be Down, got %v", g.nextDir)
	}
}

func TestLoneHeadMayReverse(t *testing.T) {
	g := newTestGame(t, 42)
	g.direction = DirRight
	g.nextDir = DirRight

	g.Step(press(core.ActionLeft))
	if g.nextDir != DirLeft {
		t.Errorf("a single-cell snake should turn around, nextDir = %v", g.nextDir)
	}
}

func TestWallCrash(t *testing.T) {
	g := newTestGame(t, 7)

	g.Step(press(core.ActionRight))
	events := idle(g, 53)
	if g.gameOver {
		t.Fatalf("crashed early at head %v", g.snake[0])
	}
	if g.snake[0] != (Point{X: 9, Y: 3}) {
		t.Fatalf("head = %v, expected (9, 3) at the wall", g.snake[0])
	}

	events = append(events, idle(g, 9)...)
	if !g.State().GameOver {
		t.Fatal("expected game over after leaving the arena")
	}
	found := false
	for _, e := range events {
		if e.Kind == EventCrashed && strings.HasPrefix(e.Detail, "wall") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected wall crash event, got %+v", events)
	}
}

func TestSelfCollision(t *testing.T) {
	g := newTestGame(t, 111)

	g.snake = []Point{
		{X: 5, Y: 5}, // Head
		{X: 5, Y: 6},
		{X: 6, Y: 6},
		{X: 6, Y: 5},
		{X: 6, Y: 4},
	}
	g.direction = DirRight
	g.nextDir = DirRight

	// Moving right puts the head on (6, 5).
	g.moveSnake()

	if !g.gameOver {
		t.Error("Game should be over after self collision")
	}
}

func TestChasingTailIsSafe(t *testing.T) {
	g := newTestGame(t, 111)

	// A 2x2 loop: the head moves onto the cell the tail is leaving.
	g.snake = []Point{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 5}}
	g.direction = DirRight
	g.nextDir = DirRight

	g.moveSnake()
	if g.gameOver {
		t.Error("moving into the vacated tail cell should be allowed")
	}
}

func TestSnakeGrowth(t *testing.T) {
	g := newTestGame(t, 222)
	g.food = []Point{{X: 4, Y: 3}}
	g.nextDir = DirRight

	g.moveSnake()
	if g.score != 1 {
		t.Errorf("Score should be 1 after eating food, got %d", g.score)
	}
	if len(g.food) != 0 {
		t.Errorf("eaten food should disappear, got %v", g.food)
	}
	if len(g.events) != 1 || g.events[0].Kind != EventAte {
		t.Errorf("expected ate event, got %+v", g.events)
	}

	g.moveSnake()
	if len(g.snake) != 2 {
		t.Errorf("Snake should grow by 1 after eating food, got length %d", len(g.snake))
	}
	if g.snake[1] != (Point{X: 4, Y: 3}) {
		t.Errorf("tail = %v, expected (4, 3)", g.snake[1])
	}
}

func TestFoodSpawnTimer(t *testing.T) {
	g := newTestGame(t, 999)

	idle(g, 119)
	if len(g.food) != 0 {
		t.Fatalf("food spawned early: %v", g.food)
	}

	events := idle(g, 1)
	if len(g.food) != 1 || len(events) != 1 || events[0].Kind != EventFoodSpawned {
		t.Fatalf("expected one food after 120 ticks, got %v / %+v", g.food, events)
	}

	idle(g, 600)
	if len(g.food) != g.cfg.Gameplay.MaxFood {
		t.Errorf("food count = %d, expected cap %d", len(g.food), g.cfg.Gameplay.MaxFood)
	}

	seen := map[Point]bool{}
	for _, f := range g.food {
		if !g.inArena(f) {
			t.Errorf("food out of bounds at %v", f)
		}
		if seen[f] {
			t.Errorf("two foods on %v", f)
		}
		if f == g.snake[0] {
			t.Errorf("food spawned on snake at %v", f)
		}
		seen[f] = true
	}
}

func TestDifficultyShortensInterval(t *testing.T) {
	g := newTestGame(t, 5)
	if g.moveEveryTicks != 9 {
		t.Fatalf("initial interval = %d, expected 9", g.moveEveryTicks)
	}

	g.score = 29
	g.food = []Point{{X: 4, Y: 3}}
	g.nextDir = DirRight
	g.moveSnake()

	if g.moveEveryTicks != 4 {
		t.Errorf("interval at max difficulty = %d, expected 4", g.moveEveryTicks)
	}
}

func TestFixedPresetKeepsInterval(t *testing.T) {
	g := newTestGame(t, 5)
	SetDifficultyPreset("fixed")
	defer SetDifficultyPreset("")
	g.Reset(core.RuntimeConfig{Seed: 5})

	g.score = 29
	g.food = []Point{{X: 4, Y: 3}}
	g.nextDir = DirRight
	g.moveSnake()

	if g.moveEveryTicks != 9 {
		t.Errorf("fixed difficulty interval = %d, expected 9", g.moveEveryTicks)
	}
}

func TestPause(t *testing.T) {
	g := newTestGame(t, 3)
	g.Step(press(core.ActionRight))

	g.Step(press(core.ActionPause))
	before := g.Snapshot()
	idle(g, 50)
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("game advanced while paused")
	}
	if before.Phase != PhasePaused {
		t.Errorf("phase = %s, expected paused", before.Phase)
	}

	g.Step(press(core.ActionPause))
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameID(t *testing.T) {
	g := New()
	if g.ID() != "snake" || g.Title() != "Snake" {
		t.Errorf("unexpected identity %q / %q", g.ID(), g.Title())
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 444)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Snake") {
		t.Error("HUD should contain 'Snake'")
	}

	// Arena is 22 columns wide including the border, centered; y is flipped.
	head := screen.GetCell(36, 9)
	if head.Rune != HeadChar || head.Color != core.ColorBrightWhite {
		t.Errorf("head cell = %+v, expected bright white %q", head, HeadChar)
	}
	if screen.GetCell(29, 2).Rune != '┌' {
		t.Errorf("arena border missing, got %q", screen.GetCell(29, 2).Rune)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 333)
	screen := core.NewScreen(21, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected size warning, got:\n%s", screen.String())
	}
}

func TestMissingConfigIsLogged(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(logging.New(&buf, logging.Options{}))
	defer SetLogger(nil)

	t.Setenv("HOME", t.TempDir())
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	defer SetConfigPath("")

	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60})

	if got := g.Snapshot().Body; !reflect.DeepEqual(got, []Point{{3, 3}}) {
		t.Errorf("default start expected, got %v", got)
	}
	out := buf.String()
	if !strings.Contains(out, "using default config") || !strings.Contains(out, "snake") {
		t.Errorf("config failure not logged: %q", out)
	}
}
