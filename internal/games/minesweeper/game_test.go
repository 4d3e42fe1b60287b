package minesweeper

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-classics/internal/core"
	"github.com/vovakirdan/tui-classics/internal/registry"
)

// newTestGame starts a game and swaps in a fixed board.
func newTestGame(t *testing.T, b *Board) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 3})
	if b != nil {
		g.board = b
		g.cursorX, g.cursorY = 0, 0
	}
	return g
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := g.(registry.EventHandler); !ok {
		t.Error("minesweeper should handle discrete events")
	}
}

func TestPresetSelection(t *testing.T) {
	tests := []struct {
		preset        string
		expectedName  string
		width, height int
		mines         int
	}{
		{"", "beginner", 9, 9, 10},
		{"intermediate", "intermediate", 16, 16, 40},
		{"advanced", "advanced", 24, 24, 99},
		{"bogus", "beginner", 9, 9, 10},
	}

	for _, tt := range tests {
		t.Run(tt.expectedName+"/"+tt.preset, func(t *testing.T) {
			SetPreset(tt.preset)
			defer SetPreset("")

			g := newTestGame(t, nil)
			b := g.Board()
			if g.preset != tt.expectedName {
				t.Errorf("preset = %q, expected %q", g.preset, tt.expectedName)
			}
			if b.Width != tt.width || b.Height != tt.height || b.Mines != tt.mines {
				t.Errorf("board %dx%d/%d, expected %dx%d/%d", b.Width, b.Height, b.Mines, tt.width, tt.height, tt.mines)
			}
		})
	}
}

func TestCursorClamped(t *testing.T) {
	g := newTestGame(t, NewBoardWithMines(3, 3, nil))

	g.HandleAction(core.ActionLeft)
	g.HandleAction(core.ActionUp)
	if x, y := g.Cursor(); x != 0 || y != 0 {
		t.Errorf("cursor (%d,%d), expected (0,0)", x, y)
	}

	for i := 0; i < 5; i++ {
		g.HandleAction(core.ActionRight)
		g.HandleAction(core.ActionDown)
	}
	if x, y := g.Cursor(); x != 2 || y != 2 {
		t.Errorf("cursor (%d,%d), expected (2,2)", x, y)
	}
}

func TestWinQueuesResult(t *testing.T) {
	g := newTestGame(t, NewBoardWithMines(4, 4, [][2]int{{3, 3}}))
	g.preset = "beginner"

	g.Step(core.NewInputFrame())
	g.HandleAction(core.ActionConfirm)
	if !g.Won() {
		t.Fatal("flood from the corner should clear the board")
	}
	if !g.State().GameOver {
		t.Error("a cleared board ends the round")
	}

	r, ok := g.TakeResult()
	if !ok {
		t.Fatal("no result after clearing")
	}
	if r.GameID != GameID || r.Variant != "beginner" || r.Elapsed != 100*time.Millisecond {
		t.Errorf("unexpected result %+v", r)
	}
	if _, ok := g.TakeResult(); ok {
		t.Error("result returned twice")
	}
}

func TestTimer(t *testing.T) {
	g := newTestGame(t, NewBoardWithMines(3, 3, [][2]int{{2, 2}, {0, 2}}))

	g.HandleAction(core.ActionConfirm)
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.elapsed != time.Second {
		t.Errorf("elapsed = %v, expected 1s", g.elapsed)
	}

	g.HandleAction(core.ActionPause)
	g.Step(core.NewInputFrame())
	if g.elapsed != time.Second {
		t.Error("timer advanced while paused")
	}
}

func TestTimerRunsFromDeal(t *testing.T) {
	g := newTestGame(t, NewBoardWithMines(3, 3, [][2]int{{2, 2}}))

	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.elapsed != time.Second {
		t.Errorf("elapsed before any reveal = %v, expected 1s", g.elapsed)
	}

	g.HandleAction(core.ActionPause)
	if !g.State().Paused {
		t.Error("pause should work before the first reveal")
	}
	g.HandleAction(core.ActionPause)

	g.HandleAction(core.ActionRestart)
	if g.elapsed != 0 {
		t.Errorf("elapsed after restart = %v, expected 0", g.elapsed)
	}
}

func TestLoseRevealsMines(t *testing.T) {
	g := newTestGame(t, NewBoardWithMines(3, 3, [][2]int{{0, 0}, {2, 2}}))

	g.HandleAction(core.ActionConfirm)
	if !g.Lost() || !g.State().GameOver {
		t.Fatal("revealing a mine should lose")
	}
	if !g.Board().Cell(2, 2).Revealed {
		t.Error("mines not shown after loss")
	}
	if _, ok := g.TakeResult(); ok {
		t.Error("a lost board has no result")
	}

	g.HandleAction(core.ActionFlag)
	if g.Board().Flags() != 0 {
		t.Error("input accepted after game over")
	}

	g.HandleAction(core.ActionRestart)
	if g.Lost() || g.Board().Revealed() != 0 {
		t.Error("restart should deal a fresh board")
	}
}

func TestFlagAction(t *testing.T) {
	g := newTestGame(t, NewBoardWithMines(3, 3, [][2]int{{0, 0}}))

	g.HandleAction(core.ActionFlag)
	g.HandleAction(core.ActionConfirm)
	if g.Lost() {
		t.Error("flagged mine was revealed")
	}
	if g.Board().Flags() != 1 {
		t.Errorf("Flags() = %d, expected 1", g.Board().Flags())
	}
}

func TestResizeKeepsBoard(t *testing.T) {
	g := newTestGame(t, NewBoardWithMines(3, 3, [][2]int{{0, 0}}))
	g.HandleAction(core.ActionRight)
	g.HandleAction(core.ActionConfirm)
	b := g.Board()

	g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 40})
	if g.Board() != b {
		t.Error("resize replaced the board")
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, NewBoardWithMines(3, 3, [][2]int{{0, 0}}))
	g.preset = "beginner"

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.Row(0), "Minesweeper") {
		t.Errorf("HUD = %q", scr.Row(0))
	}
	if !strings.Contains(scr.String(), "[·]") {
		t.Error("cursor not drawn")
	}

	g.HandleAction(core.ActionConfirm)
	scr.Clear()
	g.Render(scr)
	if !strings.Contains(scr.String(), "BOOM!") {
		t.Error("loss overlay missing")
	}
}
