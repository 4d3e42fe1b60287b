// Package minesweeper implements the classic mine-clearing puzzle.
package minesweeper

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-classics/internal/config"
	"github.com/vovakirdan/tui-classics/internal/core"
	"github.com/vovakirdan/tui-classics/internal/registry"
)

// GameID is the registry identifier.
const GameID = "minesweeper"

// Game implements Minesweeper.
type Game struct {
	cfg    config.MinesweeperConfig
	preset string
	size   config.BoardPreset

	rng   *rand.Rand
	board *Board

	cursorX int
	cursorY int

	lost   bool
	won    bool
	paused bool

	elapsed  time.Duration
	tickStep time.Duration
	pending  *core.Result

	screenW int
	screenH int
}

// configPath stores the custom config path set via CLI
var configPath string
var selectedPreset string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetPreset selects the board preset by name. Empty uses the config default.
func SetPreset(name string) {
	selectedPreset = name
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// New creates a new Minesweeper game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minesweeper"
}

// Reset loads the config and deals the first board. Later calls only
// update the screen size so a resize keeps the board in play.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.tickStep = runtime.TickDuration()
	if g.board != nil {
		return
	}

	cfg, err := config.LoadMinesweeper(configPath)
	if err != nil {
		log.Warn("minesweeper config", "error", err)
		cfg = config.DefaultMinesweeperConfig()
	}
	g.cfg = cfg
	g.preset, g.size = cfg.Preset(selectedPreset)

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.newBoard()
}

// newBoard deals a fresh board with the current preset.
func (g *Game) newBoard() {
	g.board = NewBoard(g.size.Width, g.size.Height, g.size.Mines, g.rng)
	g.cursorX = g.board.Width / 2
	g.cursorY = g.board.Height / 2
	g.lost = false
	g.won = false
	g.paused = false
	g.elapsed = 0
	log.Debug("minesweeper board", "preset", g.preset, "width", g.board.Width, "height", g.board.Height, "mines", g.board.Mines)
}

// HandleAction processes one key press.
func (g *Game) HandleAction(a core.Action) core.StepResult {
	if g.board == nil {
		return core.StepResult{State: g.State()}
	}

	switch a {
	case core.ActionRestart:
		g.newBoard()
	case core.ActionPause:
		if !g.over() {
			g.paused = !g.paused
		}
	}
	if g.over() || g.paused {
		return core.StepResult{State: g.State()}
	}

	switch a {
	case core.ActionUp:
		g.moveCursor(0, -1)
	case core.ActionDown:
		g.moveCursor(0, 1)
	case core.ActionLeft:
		g.moveCursor(-1, 0)
	case core.ActionRight:
		g.moveCursor(1, 0)
	case core.ActionConfirm, core.ActionFire:
		g.reveal()
	case core.ActionFlag:
		g.board.ToggleFlag(g.cursorX, g.cursorY)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(dx, dy int) {
	g.cursorX = core.Clamp(g.cursorX+dx, 0, g.board.Width-1)
	g.cursorY = core.Clamp(g.cursorY+dy, 0, g.board.Height-1)
}

// reveal opens the cell under the cursor and settles the round.
func (g *Game) reveal() {
	switch g.board.Reveal(g.cursorX, g.cursorY) {
	case RevealIgnored:
		return
	case RevealExploded:
		g.lost = true
		g.board.RevealMines()
		log.Info("minesweeper lost", "preset", g.preset, "revealed", g.board.Revealed())
		return
	}

	if g.board.Cleared() {
		g.won = true
		g.pending = &core.Result{
			GameID:  GameID,
			Variant: g.preset,
			Elapsed: g.elapsed,
		}
		log.Info("minesweeper cleared", "preset", g.preset, "elapsed", g.elapsed)
	}
}

// Step advances the clock from the moment the board is dealt until the
// round ends. Actions in the
// frame are handled as events.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for a := core.ActionUp; a <= core.ActionPause; a++ {
		if in.Has(a) {
			g.HandleAction(a)
		}
	}

	if !g.over() && !g.paused {
		g.elapsed += g.tickStep
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) over() bool {
	return g.lost || g.won
}

// TakeResult returns the result of a cleared board once.
func (g *Game) TakeResult() (core.Result, bool) {
	if g.pending == nil {
		return core.Result{}, false
	}
	r := *g.pending
	g.pending = nil
	return r, true
}

// State returns the current game state. The score is the number of safe
// cells revealed.
func (g *Game) State() core.GameState {
	score := 0
	if g.board != nil {
		score = g.board.Revealed()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.over(),
		Paused:   g.paused,
	}
}

// Board exposes the current board.
func (g *Game) Board() *Board { return g.board }

// Cursor returns the selected cell.
func (g *Game) Cursor() (x, y int) { return g.cursorX, g.cursorY }

// Won reports whether the board was cleared.
func (g *Game) Won() bool { return g.won }

// Lost reports whether a mine was revealed.
func (g *Game) Lost() bool { return g.lost }
