// Package sokoban provides the Sokoban box-pushing puzzle for the arcade.
package sokoban

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-classics/internal/config"
	platformcore "github.com/vovakirdan/tui-classics/internal/core"
	"github.com/vovakirdan/tui-classics/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-classics/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-classics/internal/registry"
)

// GameID is the registry identifier.
const GameID = "sokoban"

// Game implements the Sokoban puzzle.
type Game struct {
	cfg config.SokobanConfig
	set levels.Set

	index  int
	grid   *core.Grid
	won    bool
	paused bool
	solved int // Levels solved this session

	elapsed  time.Duration
	tickStep time.Duration
	pending  *platformcore.Result

	loadErr error

	screenW int
	screenH int
}

// Package-level variables for configuration, set by the CLI before the
// game is created.
var (
	configured  bool
	selectedCfg config.SokobanConfig
	selectedSet levels.Set
	startLevel  int
)

// Configure sets the level pack, config and 1-based start level used by
// the next Reset. A start level of 0 uses the config's start_level.
func Configure(set levels.Set, cfg config.SokobanConfig, start int) {
	configured = true
	selectedSet = set
	selectedCfg = cfg
	startLevel = start
}

// LoadSet resolves the level pack for a config. A non-empty override
// path wins over the config's levels path; with neither the embedded
// pack is used.
func LoadSet(cfg config.SokobanConfig, override string) (levels.Set, error) {
	path := cfg.Levels
	if override != "" {
		path = override
	}
	if path == "" {
		return levels.Default(), nil
	}
	return levels.NewLoader(cfg.Strict).LoadFile(path)
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a new Sokoban game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Sokoban"
}

// Reset initializes the game and starts the selected level. Later calls,
// such as on terminal resize, keep the level in progress.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickStep = cfg.TickDuration()
	if g.grid != nil {
		return
	}

	g.paused = false
	g.pending = nil
	g.loadErr = nil

	start := startLevel
	if configured {
		g.cfg = selectedCfg
		g.set = selectedSet
	} else {
		g.loadDefaults()
	}
	if start <= 0 {
		start = g.cfg.StartLevel
	}

	if g.set.Len() == 0 {
		if g.loadErr == nil {
			g.loadErr = levels.ErrNoLevels
		}
		return
	}

	g.index = 0
	if start > 0 && start <= g.set.Len() {
		g.index = start - 1
	}
	g.playLevel(g.index)
}

// loadDefaults reads the config search path and its level pack.
func (g *Game) loadDefaults() {
	cfg, err := config.LoadSokoban("")
	if err != nil {
		log.Warn("sokoban config", "error", err)
		cfg = config.DefaultSokobanConfig()
	}
	g.cfg = cfg

	set, err := LoadSet(cfg, "")
	if err != nil {
		g.loadErr = err
		return
	}
	g.set = set
}

// playLevel starts level i with a fresh grid.
func (g *Game) playLevel(i int) {
	g.index = i
	g.grid = core.NewGrid(g.set.Level(i))
	g.won = false
	g.elapsed = 0
	log.Debug("sokoban level", "index", i+1, "name", g.set.Title(i))
}

// HandleAction processes one input event. Directions move the player,
// Restart replays the level and Confirm advances after a win.
func (g *Game) HandleAction(a platformcore.Action) platformcore.StepResult {
	if g.grid == nil {
		return platformcore.StepResult{State: g.State()}
	}

	switch a {
	case platformcore.ActionRestart:
		g.playLevel(g.index)
	case platformcore.ActionNextLevel:
		g.playLevel((g.index + 1) % g.set.Len())
	case platformcore.ActionPrevLevel:
		g.playLevel((g.index - 1 + g.set.Len()) % g.set.Len())
	case platformcore.ActionPause:
		if !g.won {
			g.paused = !g.paused
		}
	case platformcore.ActionConfirm:
		if g.won {
			g.playLevel((g.index + 1) % g.set.Len())
		}
	case platformcore.ActionUp, platformcore.ActionDown, platformcore.ActionLeft, platformcore.ActionRight:
		if g.won || g.paused {
			break
		}
		g.grid.AttemptMove(direction(a))
		if g.grid.CheckWin() {
			g.finishLevel()
		}
	}

	return platformcore.StepResult{State: g.State()}
}

// finishLevel marks the level won and queues its result.
func (g *Game) finishLevel() {
	g.won = true
	g.solved++
	g.pending = &platformcore.Result{
		GameID:  GameID,
		Variant: g.set.Name,
		Level:   g.index + 1,
		Name:    g.set.Title(g.index),
		Moves:   g.grid.Moves(),
		Pushes:  g.grid.Pushes(),
		Elapsed: g.elapsed,
	}
	log.Info("sokoban level solved", "level", g.index+1, "moves", g.grid.Moves(), "pushes", g.grid.Pushes())
}

// direction maps a platform action to a grid direction.
func direction(a platformcore.Action) core.Dir {
	switch a {
	case platformcore.ActionUp:
		return core.DirUp
	case platformcore.ActionDown:
		return core.DirDown
	case platformcore.ActionLeft:
		return core.DirLeft
	default:
		return core.DirRight
	}
}

// Step advances the level timer by one tick. Actions in the frame are
// handled as events in Action order.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	for a := platformcore.ActionUp; a <= platformcore.ActionPause; a++ {
		if in.Has(a) {
			g.HandleAction(a)
		}
	}

	if g.grid != nil && !g.won && !g.paused {
		g.elapsed += g.tickStep
	}
	return platformcore.StepResult{State: g.State()}
}

// TakeResult returns the result of the last solved level once.
func (g *Game) TakeResult() (platformcore.Result, bool) {
	if g.pending == nil {
		return platformcore.Result{}, false
	}
	r := *g.pending
	g.pending = nil
	return r, true
}

// ReloadLevels swaps in a new level pack. The current level index is
// kept when it still exists and that level restarts from scratch.
func (g *Game) ReloadLevels(set levels.Set) {
	if set.Len() == 0 {
		return
	}
	g.set = set
	g.loadErr = nil
	idx := g.index
	if idx >= set.Len() {
		idx = 0
	}
	g.playLevel(idx)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:  g.solved,
		Paused: g.paused,
	}
}

// Grid exposes the active grid, nil when no level is loaded.
func (g *Game) Grid() *core.Grid { return g.grid }

// LevelIndex returns the 0-based index of the current level.
func (g *Game) LevelIndex() int { return g.index }

// Won reports whether the current level is solved.
func (g *Game) Won() bool { return g.won }
