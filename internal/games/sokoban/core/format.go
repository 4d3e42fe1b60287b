package core

import "strings"

// Format serializes the definition's initial state back to level text.
// The first line is the name metadata when the level has a name.
func Format(def *Definition) []string {
	return NewGrid(def).Lines()
}

// Lines serializes the grid's current state to level text, one string
// per row. Empty cells render as spaces and trailing ones are dropped.
func (g *Grid) Lines() []string {
	var out []string
	if g.def.Name != "" {
		out = append(out, string(MetadataPrefix)+" "+g.def.Name)
	}

	row := make([]rune, g.def.Width)
	last := -1
	g.Cells(func(c Coord, cell Cell) {
		row[c.X] = glyph(cell)
		if cell.Kind != TileEmpty {
			last = c.X
		}
		if c.X == g.def.Width-1 {
			out = append(out, string(row[:last+1]))
			last = -1
		}
	})
	return out
}

// String returns the grid as level text with rows joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}

func glyph(cell Cell) rune {
	switch cell.Kind {
	case TileWall:
		return SymWall
	case TileGoal:
		switch {
		case cell.HasBox:
			return SymBoxOnGoal
		case cell.Player:
			return SymPlayerOnGoal
		}
		return SymGoal
	case TileFloor:
		switch {
		case cell.HasBox:
			return SymBox
		case cell.Player:
			return SymPlayer
		}
		return SymFloor
	default:
		return ' '
	}
}
