package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-classics/internal/core"
	"github.com/vovakirdan/tui-classics/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-classics/internal/registry"
	"github.com/vovakirdan/tui-classics/internal/storage"
)

// LevelsReloadedMsg carries a level pack re-read by the file watcher.
type LevelsReloadedMsg struct {
	Set levels.Set
	Err error
}

// levelReloader is implemented by games that accept a new level pack
// while running.
type levelReloader interface {
	ReloadLevels(set levels.Set)
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tickCmd(m.config.TickDuration())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case LevelsReloadedMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Event-driven games get each key
// immediately; the others collect actions into the next tick's frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit || action == core.ActionBack {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}

	if action == core.ActionRestart && m.gameState.GameOver {
		m.restart()
		return m, nil
	}

	if h, ok := m.game.(registry.EventHandler); ok {
		m.gameState = h.HandleAction(action).State
		m.collectResult()
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// restart begins a new round after game over.
func (m *Model) restart() {
	if h, ok := m.game.(registry.EventHandler); ok {
		m.gameState = h.HandleAction(core.ActionRestart).State
	} else {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}
	m.scoreSaved = false
	m.inputFrame.Clear()
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Puzzle games keep their round across Reset; action games restart.
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
				log.Warn("saving score", "game", m.game.ID(), "error", err)
			}
		}
		m.scoreSaved = true
	}
	m.collectResult()

	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickDuration())
}

// collectResult stores a finished puzzle result, if the game has one.
func (m *Model) collectResult() {
	rr, ok := m.game.(registry.ResultReporter)
	if !ok {
		return
	}
	r, ok := rr.TakeResult()
	if !ok || m.store == nil {
		return
	}
	if _, err := m.store.SaveResult(r); err != nil {
		log.Warn("saving result", "game", r.GameID, "error", err)
	}
}

// handleReload hands a re-read level pack to the game.
func (m Model) handleReload(msg LevelsReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		log.Warn("level reload failed", "error", msg.Err)
		return m, nil
	}
	if r, ok := m.game.(levelReloader); ok {
		r.ReloadLevels(msg.Set)
	}
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn("screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		log.Warn("saving screenshot", "path", path, "error", err)
		return
	}
	log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	return RenderScreen(m.screen)
}

// runOptions holds optional features of Run.
type runOptions struct {
	watchLoader *levels.Loader
	watchPath   string
}

// RunOption configures Run.
type RunOption func(*runOptions)

// WithLevelWatch reloads the level pack at path while the game runs.
func WithLevelWatch(loader *levels.Loader, path string) RunOption {
	return func(o *runOptions) {
		o.watchLoader = loader
		o.watchPath = path
	}
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...RunOption) error {
	var o runOptions
	for _, opt := range opts {
		opt(&o)
	}

	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if o.watchLoader != nil && o.watchPath != "" {
		go func() {
			err := o.watchLoader.Watch(ctx, o.watchPath, func(set levels.Set, err error) {
				p.Send(LevelsReloadedMsg{Set: set, Err: err})
			})
			if err != nil {
				log.Error("level watcher stopped", "path", o.watchPath, "error", err)
			}
		}()
	}

	_, err := p.Run()
	return err
}
