package sokoban

import (
	"fmt"
	"time"

	platformcore "github.com/vovakirdan/tui-classics/internal/core"
	"github.com/vovakirdan/tui-classics/internal/games/sokoban/core"
)

const (
	hudHeight = 4
	cellW     = 2 // Terminal columns per grid cell
)

// facingArrows completes a one-rune player glyph.
var facingArrows = map[core.Dir]rune{
	core.DirUp:    '↑',
	core.DirRight: '→',
	core.DirDown:  '↓',
	core.DirLeft:  '←',
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.grid == nil {
		msg := "No levels loaded"
		if g.loadErr != nil {
			msg = g.loadErr.Error()
		}
		dst.DrawOverlay("Cannot start Sokoban", msg)
		return
	}

	w, h := g.grid.Width()*cellW, g.grid.Height()
	if dst.Width() < w || dst.Height() < hudHeight+h {
		dst.DrawOverlay("Window too small", "Resize to continue")
		return
	}

	area := platformcore.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight).CenterIn(w, h)
	g.renderGrid(dst, area.X, area.Y)

	switch {
	case g.won:
		dst.DrawOverlay(
			"COMPLETE!",
			fmt.Sprintf("%d moves, %d pushes, %s", g.grid.Moves(), g.grid.Pushes(), formatElapsed(g.elapsed)),
			"Press Enter for the next level",
		)
	case g.paused:
		dst.DrawOverlay("Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " Sokoban"
	if g.grid != nil {
		hud = fmt.Sprintf(" Sokoban | %s %d/%d: %s | Moves: %d | Pushes: %d | Boxes: %d/%d | %s",
			g.set.Name, g.index+1, g.set.Len(), g.set.Title(g.index),
			g.grid.Moves(), g.grid.Pushes(), g.grid.BoxesOnGoals(), g.grid.GoalCount(),
			formatElapsed(g.elapsed))
	}
	dst.DrawTextColored(0, 0, hud, platformcore.ColorCyan)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', platformcore.ColorGray)
		dst.SetColored(x, 3, '─', platformcore.ColorGray)
	}

	controls := " Arrows/WASD: Move | R: Restart | N/[: Next/Prev level | P: Pause | Q: Quit"
	dst.DrawTextColored(0, 2, controls, platformcore.ColorGray)
}

// renderGrid draws the tiles, boxes and player with the top-left cell at
// (ox, oy).
func (g *Game) renderGrid(dst *platformcore.Screen, ox, oy int) {
	glyphs := g.cfg.Glyphs.WithDefaults()

	g.grid.Cells(func(c core.Coord, cell core.Cell) {
		var text string
		var color platformcore.Color

		switch {
		case cell.Kind == core.TileEmpty:
			return
		case cell.Player:
			text = glyphs.Player
			if cell.Kind == core.TileGoal {
				text = glyphs.PlayerOnGoal
			}
			if len([]rune(text)) == 1 {
				text += string(facingArrows[g.grid.Facing()])
			}
			color = platformcore.ColorBrightCyan
		case cell.HasBox && cell.Kind == core.TileGoal:
			text, color = glyphs.BoxOnGoal, platformcore.ColorBrightGreen
		case cell.HasBox:
			text, color = glyphs.Box, platformcore.ColorBrown
		case cell.Kind == core.TileWall:
			text, color = glyphs.Wall, platformcore.ColorGray
		case cell.Kind == core.TileGoal:
			text, color = glyphs.Goal, platformcore.ColorYellow
		default:
			text, color = glyphs.Floor, platformcore.ColorDefault
		}

		x := ox + c.X*cellW
		runes := []rune(text)
		for i := 0; i < cellW; i++ {
			r := ' '
			if i < len(runes) {
				r = runes[i]
			}
			dst.SetColored(x+i, oy+c.Y, r, color)
		}
	})
}

// formatElapsed renders a duration as m:ss.
func formatElapsed(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
