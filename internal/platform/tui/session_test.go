package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-sketches/internal/core"
	"github.com/vovakirdan/arcade-sketches/internal/registry"
)

func init() {
	registry.Register("recorder", func() registry.Game {
		return &recorderGame{endAt: 1}
	})
}

func TestSessionMenuGameMenu(t *testing.T) {
	s := NewSessionModel(nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	s.Init()

	if !strings.Contains(s.View(), "Recorder") {
		t.Fatalf("menu should list the registered game:\n%s", s.View())
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if s.screen != screenGame || s.game == nil {
		t.Fatal("enter should start the selected game")
	}
	if !strings.Contains(s.View(), "recorder") {
		t.Error("game view not shown")
	}

	s.Update(TickMsg{Loop: s.game.loop})
	if !s.game.State().GameOver {
		t.Fatal("recorder should be over after one tick")
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu || s.game != nil {
		t.Error("esc after game over should return to the menu")
	}
}

func TestSessionScoreboard(t *testing.T) {
	s := NewSessionModel(nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	s.Init()

	s.Update(tea.KeyMsg{Type: tea.KeyTab})
	if s.screen != screenScores {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(s.View(), "HIGH SCORES") {
		t.Error("scoreboard title missing")
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if s.screen != screenMenu {
		t.Error("esc should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	s := NewSessionModel(nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	s.Init()

	if _, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("q in the menu should quit")
	}
	if s.View() != "" {
		t.Error("view should be empty after quitting")
	}
}
