// Package core provides the Sokoban grid and push-movement engine.
// It parses text levels into a Grid, resolves one move per input event,
// and reports the win condition. This package is UI-agnostic.
package core

import "fmt"

// TileKind is the immutable logical category of a grid cell.
type TileKind uint8

const (
	// TileEmpty marks positions outside the level: left padding,
	// unrecognized characters and everything out of bounds.
	TileEmpty TileKind = iota
	TileFloor
	TileWall
	TileGoal
)

// String returns the string representation of a tile kind.
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "Empty"
	case TileFloor:
		return "Floor"
	case TileWall:
		return "Wall"
	case TileGoal:
		return "Goal"
	default:
		return "Unknown"
	}
}

// Walkable reports whether the player or a box may stand on this kind.
func (k TileKind) Walkable() bool {
	return k == TileFloor || k == TileGoal
}

// Coord is a grid position. X grows to the right, Y grows downward.
type Coord struct {
	X int
	Y int
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring coordinate in direction d.
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Dir is one of the four movement directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Delta returns the (dx, dy) offset for one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// MoveOutcome is the result of one movement attempt.
type MoveOutcome uint8

const (
	Blocked MoveOutcome = iota
	Moved
	Pushed
)

// String returns the string representation of a move outcome.
func (o MoveOutcome) String() string {
	switch o {
	case Blocked:
		return "Blocked"
	case Moved:
		return "Moved"
	case Pushed:
		return "Pushed"
	default:
		return "Unknown"
	}
}
