package core

import (
	"errors"
	"fmt"
	"strings"
)

// MetadataPrefix starts a level line that carries the display name.
const MetadataPrefix = ';'

// Level symbols.
const (
	SymWall         = '#'
	SymFloor        = ' '
	SymBox          = '$'
	SymPlayer       = '@'
	SymGoal         = '.'
	SymBoxOnGoal    = '*'
	SymPlayerOnGoal = '+'
)

var (
	// ErrEmptyLevel is returned when a level has no map rows.
	ErrEmptyLevel = errors.New("sokoban: level has no rows")
	// ErrNoPlayer is returned by ParseStrict when no player marker exists.
	ErrNoPlayer = errors.New("sokoban: level has no player start")
	// ErrManyPlayers is returned by ParseStrict for more than one marker.
	ErrManyPlayers = errors.New("sokoban: level has more than one player start")
	// ErrNoGoals is returned by ParseStrict for a level that is solved
	// before the first move.
	ErrNoGoals = errors.New("sokoban: level has no goals")
)

// Definition is a parsed, immutable level. Grids are instantiated from it.
type Definition struct {
	Name   string
	Width  int
	Height int
	Tiles  []TileKind // row-major, length Width*Height
	Boxes  []Coord    // initial box positions, row-major order
	Player Coord

	// PlayerMarkers counts '@' and '+' symbols seen. When it is zero the
	// player starts at (0,0); when it is above one the last marker wins.
	PlayerMarkers int
}

// InBounds returns true if the coordinate is within the level.
func (d *Definition) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < d.Width && c.Y >= 0 && c.Y < d.Height
}

// Kind returns the tile kind at c, or TileEmpty when c is out of bounds.
func (d *Definition) Kind(c Coord) TileKind {
	if !d.InBounds(c) {
		return TileEmpty
	}
	return d.Tiles[c.Y*d.Width+c.X]
}

// GoalCount returns the number of goal tiles.
func (d *Definition) GoalCount() int {
	n := 0
	for _, k := range d.Tiles {
		if k == TileGoal {
			n++
		}
	}
	return n
}

// Parse converts the lines of one level into a Definition.
//
// A line starting with ';' names the level and takes no part in the map.
// Leading spaces of a row are padding; every space after the row's first
// other character is floor.
// Unrecognized characters leave their cell empty. A level without a
// player marker starts the player at (0,0); use ParseStrict to reject it.
func Parse(lines []string) (Definition, error) {
	var def Definition
	var rows [][]rune

	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, string(MetadataPrefix)) {
			def.Name = strings.TrimSpace(line[1:])
			continue
		}
		row := []rune(line)
		if len(row) > def.Width {
			def.Width = len(row)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 || def.Width == 0 {
		return Definition{}, ErrEmptyLevel
	}

	def.Height = len(rows)
	def.Tiles = make([]TileKind, def.Width*def.Height)

	for y, row := range rows {
		inside := false
		for x, ch := range row {
			if !inside && ch == SymFloor {
				continue
			}
			inside = true

			c := C(x, y)
			kind, box, player, ok := symbol(ch)
			if !ok {
				continue
			}
			def.Tiles[y*def.Width+x] = kind
			if box {
				def.Boxes = append(def.Boxes, c)
			}
			if player {
				def.Player = c
				def.PlayerMarkers++
			}
		}
	}

	return def, nil
}

// ParseStrict is Parse followed by player marker validation.
func ParseStrict(lines []string) (Definition, error) {
	def, err := Parse(lines)
	if err != nil {
		return def, err
	}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Validate checks that the level has exactly one player start.
func (d *Definition) Validate() error {
	switch {
	case d.PlayerMarkers == 0:
		return ErrNoPlayer
	case d.PlayerMarkers > 1:
		return fmt.Errorf("%w: found %d", ErrManyPlayers, d.PlayerMarkers)
	case d.GoalCount() == 0:
		return ErrNoGoals
	}
	return nil
}

// symbol maps one level character to its tile kind and overlays.
func symbol(ch rune) (kind TileKind, box, player, ok bool) {
	switch ch {
	case SymWall:
		return TileWall, false, false, true
	case SymFloor:
		return TileFloor, false, false, true
	case SymBox:
		return TileFloor, true, false, true
	case SymPlayer:
		return TileFloor, false, true, true
	case SymGoal:
		return TileGoal, false, false, true
	case SymBoxOnGoal:
		return TileGoal, true, false, true
	case SymPlayerOnGoal:
		return TileGoal, false, true, true
	default:
		return TileEmpty, false, false, false
	}
}
