package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-sketches/internal/core"
	"github.com/vovakirdan/arcade-sketches/internal/logging"
	"github.com/vovakirdan/arcade-sketches/internal/storage"
)

// recorderGame remembers every input frame and ends after a fixed number of steps.
type recorderGame struct {
	frames []core.InputFrame
	resets int
	endAt  int
	score  int
	paused bool
	ended  bool
}

func (g *recorderGame) ID() string    { return "recorder" }
func (g *recorderGame) Title() string { return "Recorder" }

func (g *recorderGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.frames = nil
	g.ended = false
	g.paused = false
}

func (g *recorderGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	var events []core.Event
	if g.endAt > 0 && len(g.frames) == g.endAt {
		g.ended = true
		events = append(events, core.Event{Kind: "finished", Detail: "done"})
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *recorderGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "recorder")
}

func (g *recorderGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.ended, Paused: g.paused}
}

func newTestModel(g *recorderGame, store *storage.Store) *Model {
	m := NewModel(g, store, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.Init()
	return m
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHeldDirectionLatches(t *testing.T) {
	g := &recorderGame{}
	m := newTestModel(g, nil)

	m.Update(keyPress("right"))
	for i := 0; i < HoldTicks+2; i++ {
		m.Advance()
	}

	for i, f := range g.frames {
		held := i < HoldTicks-1
		if f.Has(core.ActionRight) != held {
			t.Errorf("frame %d: right held = %v, expected %v", i, f.Has(core.ActionRight), held)
		}
	}
}

func TestNewDirectionReplacesHeldOne(t *testing.T) {
	g := &recorderGame{}
	m := newTestModel(g, nil)

	m.Press(core.ActionRight)
	m.Advance()
	m.Press(core.ActionUp)
	m.Advance()

	last := g.frames[len(g.frames)-1]
	if !last.Has(core.ActionUp) || last.Has(core.ActionRight) {
		t.Errorf("expected only up held, got %v", last.Actions)
	}
}

func TestOneShotActionsFireOnce(t *testing.T) {
	g := &recorderGame{}
	m := newTestModel(g, nil)

	m.Update(keyPress("p"))
	m.Advance()
	m.Advance()

	if !g.frames[0].Has(core.ActionPause) {
		t.Error("pause missing from first frame")
	}
	if g.frames[1].Has(core.ActionPause) {
		t.Error("pause should not repeat")
	}
}

func TestRestartResetsGame(t *testing.T) {
	g := &recorderGame{}
	m := newTestModel(g, nil)
	m.Advance()

	m.Update(keyPress("r"))
	m.Advance()

	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2", g.resets)
	}
	if len(g.frames) != 0 {
		t.Error("restart tick should not step the game")
	}
}

func TestScoreSavedOnceWithTicks(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := &recorderGame{endAt: 30, score: 5}
	m := newTestModel(g, store)
	for i := 0; i < 40; i++ {
		m.Advance()
	}

	scores, err := store.TopScores("recorder", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved run, got %d", len(scores))
	}
	if scores[0].Score != 5 || scores[0].Ticks != 29 {
		t.Errorf("saved %+v, expected score 5 over 29 ticks", scores[0])
	}
}

func TestEventsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	g := &recorderGame{endAt: 3}
	m := NewModel(g, nil, logging.New(&buf, logging.Options{Debug: true}), core.RuntimeConfig{TickRate: 60})
	m.Init()
	for i := 0; i < 3; i++ {
		m.Advance()
	}

	out := buf.String()
	for _, want := range []string{"finished", "run over", "game=recorder"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestBackLeavesFinishedGame(t *testing.T) {
	g := &recorderGame{endAt: 1}
	m := newTestModel(g, nil)

	m.Update(keyPress("esc"))
	if m.BackToMenu() {
		t.Fatal("back should be ignored while the run is live")
	}

	m.Advance()
	m.Update(keyPress("esc"))
	if !m.BackToMenu() {
		t.Error("back after game over should leave the game")
	}

	if _, cmd := m.Update(TickMsg{Loop: m.loop}); cmd != nil {
		t.Error("a model that left should stop ticking")
	}
}

func TestStaleTicksAreDropped(t *testing.T) {
	g := &recorderGame{}
	m := newTestModel(g, nil)

	if _, cmd := m.Update(TickMsg{Loop: m.loop + 1000}); cmd != nil {
		t.Error("tick from another loop should not reschedule")
	}
	if len(g.frames) != 0 {
		t.Error("tick from another loop should not step the game")
	}

	if _, cmd := m.Update(TickMsg{Loop: m.loop}); cmd == nil {
		t.Error("own tick should reschedule")
	}
	if len(g.frames) != 1 {
		t.Errorf("expected one step, got %d", len(g.frames))
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(&recorderGame{}, nil)
	if _, cmd := m.Update(keyPress("q")); cmd == nil || !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
