package asteroids

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-classics/internal/core"
)

// Render characters
const (
	RockChar   = '█'
	ShipChar   = '▓'
	BulletChar = '•'
)

var sizeColors = map[Size]core.Color{
	SizeSmall:  core.ColorWhite,
	SizeMedium: core.ColorGray,
	SizeLarge:  core.ColorBrown,
}

// noseArrows indexed by heading octant, starting at 0 degrees (right).
var noseArrows = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawOverlay("Window too small", fmt.Sprintf("Need %dx%d", minWorldW, minWorldRows+hudHeight))
		return
	}

	for _, a := range g.asteroids {
		g.fillPolygon(dst, a.Points(), RockChar, sizeColors[a.Size])
	}

	for _, b := range g.bullets {
		x, y := g.toScreen(b.Pos)
		dst.SetColored(x, y, BulletChar, core.ColorBrightYellow)
	}

	if g.ship.Alive && g.shipVisible() {
		g.fillPolygon(dst, g.ship.Points(), ShipChar, core.ColorBrightCyan)
		x, y := g.toScreen(g.ship.Pos)
		dst.SetColored(x, y, noseArrow(g.ship.Rotation), core.ColorBrightCyan)
	}

	g.renderHUD(dst)

	switch {
	case g.gameOver:
		dst.DrawOverlay("GAME OVER", fmt.Sprintf("Score: %d  Wave: %d", g.score, g.wave), "Press R to restart")
	case g.paused:
		dst.DrawOverlay("PAUSED", "Press P to resume")
	}
}

// renderHUD draws score, lives and wave across the top.
func (g *Game) renderHUD(dst *core.Screen) {
	lives := strings.Repeat("▲", max(g.lives, 0))
	hud := fmt.Sprintf(" Score: %d | Wave: %d | Lives: %s | ←→ turn  ↑ thrust  ↓ brake  Space fire", g.score, g.wave, lives)
	dst.DrawTextColored(0, 0, hud, core.ColorCyan)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// shipVisible blinks the ship while it is invulnerable.
func (g *Game) shipVisible() bool {
	return !g.ship.Invulnerable() || g.ticks%10 < 5
}

// toScreen maps a world point to the cell containing it.
func (g *Game) toScreen(p core.Vec) (x, y int) {
	return int(math.Floor(p.X)), hudHeight + int(math.Floor(p.Y/rowUnits))
}

// fillPolygon marks every cell whose center lies inside the polygon.
// A polygon smaller than a cell still shows as the cell of its first vertex.
func (g *Game) fillPolygon(dst *core.Screen, poly []core.Vec, ch rune, color core.Color) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range poly {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	drawn := false
	for row := int(math.Floor(minY / rowUnits)); row <= int(math.Ceil(maxY/rowUnits)); row++ {
		for col := int(math.Floor(minX)); col <= int(math.Ceil(maxX)); col++ {
			center := core.V(float64(col)+0.5, float64(row)*rowUnits+rowUnits/2)
			if !core.PointInPolygon(center, poly) {
				continue
			}
			sy := hudHeight + row
			if sy < hudHeight {
				continue
			}
			dst.SetColored(col, sy, ch, color)
			drawn = true
		}
	}

	if !drawn {
		x, y := g.toScreen(poly[0])
		if y >= hudHeight {
			dst.SetColored(x, y, ch, color)
		}
	}
}

// noseArrow picks the arrow closest to a heading in degrees.
func noseArrow(rotation float64) rune {
	octant := int(math.Floor(core.Wrap(rotation+22.5, 360) / 45))
	return noseArrows[octant%8]
}
