package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-sketches/internal/core"
	"github.com/vovakirdan/arcade-sketches/internal/logging"
	"github.com/vovakirdan/arcade-sketches/internal/registry"
	"github.com/vovakirdan/arcade-sketches/internal/storage"
)

// Model is the Bubble Tea model for running one game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	log       *log.Logger
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	loop      uint64 // Tick chain ID

	held     heldKeys
	pressed  core.InputFrame // One-shot presses since the last tick
	tick     uint64          // Platform ticks, never reset
	runTicks int             // Ticks of the current run

	gameState  core.GameState
	quitting   bool
	quitOnBack bool // Back ends the program instead of returning to a menu
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards everything.
func NewModel(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) *Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		log:       logger.With("game", game.ID()),
		config:    cfg,
		keyMapper: NewKeyMapper(),
		loop:      nextLoop(),
		held:      newHeldKeys(),
		pressed:   core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m *Model) Init() tea.Cmd {
	m.restart(false)
	return tickCmd(m.config.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop || m.quitting || m.backToMenu {
			return m, nil
		}
		m.Advance()
		return m, tickCmd(m.config.TickRate, m.loop)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game once it is over or paused.
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		if m.quitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}
	m.Press(action)
	return m, nil
}

// Press feeds one key press into the next tick.
func (m *Model) Press(action core.Action) {
	if action == core.ActionNone {
		return
	}
	m.pressed.Set(action)
	m.held.press(action, m.tick)
}

// Advance runs one simulation tick with the buffered input.
func (m *Model) Advance() core.StepResult {
	m.tick++

	if m.pressed.Has(core.ActionRestart) {
		m.restart(true)
		m.pressed.Clear()
		return core.StepResult{State: m.gameState}
	}

	frame := m.pressed.Clone()
	m.held.apply(&frame, m.tick)
	m.pressed.Clear()

	wasOver := m.gameState.GameOver
	result := m.game.Step(frame)
	m.gameState = result.State
	if !m.gameState.GameOver && !m.gameState.Paused {
		m.runTicks++
	}

	for _, e := range result.Events {
		m.log.Debug(e.Kind, "detail", e.Detail, "tick", m.runTicks)
	}
	if m.gameState.GameOver && !wasOver {
		m.log.Info("run over", "score", m.gameState.Score, "won", m.gameState.Won, "ticks", m.runTicks)
	}

	m.saveScore()
	return result
}

func (m *Model) restart(reseed bool) {
	if reseed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.held.reset()
	m.runTicks = 0
	m.scoreSaved = false
	m.log.Debug("reset", "seed", m.config.Seed)
}

// saveScore records a finished run once.
func (m *Model) saveScore() {
	if !m.gameState.GameOver || m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.runTicks, m.gameState.Won); err != nil {
		m.log.Error("cannot save score", "err", err)
	}
}

// saveScreenshot saves the current screen to ~/.arcade/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// BackToMenu reports whether the player asked to leave the game.
func (m *Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player asked to quit entirely.
func (m *Model) IsQuitting() bool {
	return m.quitting
}

// State returns the last reported game state.
func (m *Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, store, logger, cfg)
	model.quitOnBack = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
