package minesweeper

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vovakirdan/tui-classics/internal/core"
)

const (
	hudHeight = 4
	cellWidth = 3 // "[x]" with the cursor brackets
)

var numberColors = [...]core.Color{
	1: core.ColorBrightBlue,
	2: core.ColorGreen,
	3: core.ColorBrightRed,
	4: core.ColorMagenta,
	5: core.ColorBrown,
	6: core.ColorCyan,
	7: core.ColorWhite,
	8: core.ColorGray,
}

// Render draws the board and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.board == nil {
		return
	}

	g.renderHUD(dst)

	boardW := g.board.Width * cellWidth
	boardH := g.board.Height
	if dst.Width() < boardW || dst.Height() < hudHeight+boardH {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", boardW, hudHeight+boardH))
		return
	}

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight).CenterIn(boardW, boardH)
	for y := 0; y < g.board.Height; y++ {
		for x := 0; x < g.board.Width; x++ {
			g.renderCell(dst, area.X+x*cellWidth, area.Y+y, x, y)
		}
	}

	switch {
	case g.won:
		dst.DrawOverlay("CLEARED!", "Time: "+formatElapsed(g.elapsed), "Press R for a new board")
	case g.lost:
		dst.DrawOverlay("BOOM!", "Press R for a new board")
	case g.paused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Minesweeper | %s %dx%d | Mines: %d | Flags: %d | Time: %s",
		g.preset, g.board.Width, g.board.Height, g.board.Mines, g.board.Flags(), formatElapsed(g.elapsed))
	dst.DrawTextColored(0, 0, hud, core.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
		dst.SetColored(x, 3, '─', core.ColorGray)
	}
	dst.DrawTextColored(0, 2, " Arrows/WASD: Move | Enter/Space: Reveal | F: Flag | R: New board | Q: Quit", core.ColorGray)
}

// renderCell draws the cell at board (bx, by) with its left edge at (sx, sy).
func (g *Game) renderCell(dst *core.Screen, sx, sy, bx, by int) {
	c := g.board.Cell(bx, by)

	glyph, color := '·', core.ColorGray
	switch {
	case c.Revealed && c.Mine:
		glyph, color = '*', core.ColorBrightRed
	case c.Revealed && c.Neighbors > 0:
		glyph, color = rune(strconv.Itoa(c.Neighbors)[0]), numberColors[c.Neighbors]
	case c.Revealed:
		glyph, color = ' ', core.ColorDefault
	case c.Flagged:
		glyph, color = '⚑', core.ColorRed
	}
	if g.lost && c.Flagged && !c.Mine {
		glyph, color = 'x', core.ColorOrange
	}

	dst.SetColored(sx+1, sy, glyph, color)
	if bx == g.cursorX && by == g.cursorY && !g.over() {
		dst.SetColored(sx, sy, '[', core.ColorBrightYellow)
		dst.SetColored(sx+2, sy, ']', core.ColorBrightYellow)
	}
}

// formatElapsed renders a duration as m:ss.
func formatElapsed(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
