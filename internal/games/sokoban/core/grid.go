package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is matched by every *BoundsError.
var ErrOutOfBounds = errors.New("sokoban: coordinate out of bounds")

// BoundsError reports a query outside the level.
type BoundsError struct {
	At     Coord
	Width  int
	Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("sokoban: %v outside %dx%d level", e.At, e.Width, e.Height)
}

// Is makes errors.Is(err, ErrOutOfBounds) succeed.
func (e *BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// BoxID is a handle into the grid's box table.
type BoxID int

// noBox marks a cell without a box in the per-cell handle array.
const noBox BoxID = -1

// Cell is the read-only view of one grid position handed to renderers.
type Cell struct {
	Kind   TileKind
	Box    BoxID
	HasBox bool
	Player bool
}

// Grid is the mutable state of one level in play: the box overlay and
// the player. Tiles are shared with the Definition and never change.
// A new Grid is built for every (re)start; grids are never reused.
type Grid struct {
	def    *Definition
	boxAt  []BoxID // per-cell handle, noBox when empty
	boxes  []Coord // box table: BoxID -> current position
	player Coord
	facing Dir
	moves  int
	pushes int
}

// NewGrid creates a fresh grid for the definition.
func NewGrid(def *Definition) *Grid {
	g := &Grid{
		def:    def,
		boxAt:  make([]BoxID, len(def.Tiles)),
		boxes:  make([]Coord, 0, len(def.Boxes)),
		player: def.Player,
		facing: DirDown,
	}
	for i := range g.boxAt {
		g.boxAt[i] = noBox
	}
	for _, c := range def.Boxes {
		if !def.InBounds(c) || g.boxAt[g.index(c)] != noBox {
			continue
		}
		g.boxAt[g.index(c)] = BoxID(len(g.boxes))
		g.boxes = append(g.boxes, c)
	}
	return g
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.def.Width + c.X
}

// Definition returns the level this grid was built from.
func (g *Grid) Definition() *Definition { return g.def }

// Width returns the level width.
func (g *Grid) Width() int { return g.def.Width }

// Height returns the level height.
func (g *Grid) Height() int { return g.def.Height }

// Player returns the player's current position.
func (g *Grid) Player() Coord { return g.player }

// Facing returns the direction of the last move request.
func (g *Grid) Facing() Dir { return g.facing }

// Moves returns the number of successful moves, pushes included.
func (g *Grid) Moves() int { return g.moves }

// Pushes returns the number of successful pushes.
func (g *Grid) Pushes() int { return g.pushes }

// InBounds returns true if the coordinate is within the level.
func (g *Grid) InBounds(c Coord) bool {
	return g.def.InBounds(c)
}

// TileKindAt returns the tile kind at (x, y). Out-of-range coordinates
// yield TileEmpty together with a *BoundsError.
func (g *Grid) TileKindAt(x, y int) (TileKind, error) {
	c := C(x, y)
	if !g.InBounds(c) {
		return TileEmpty, &BoundsError{At: c, Width: g.def.Width, Height: g.def.Height}
	}
	return g.def.Tiles[g.index(c)], nil
}

// Kind returns the tile kind at c, TileEmpty when out of bounds.
func (g *Grid) Kind(c Coord) TileKind {
	return g.def.Kind(c)
}

// BoxAt returns the handle of the box at c, if any.
func (g *Grid) BoxAt(c Coord) (BoxID, bool) {
	if !g.InBounds(c) {
		return noBox, false
	}
	id := g.boxAt[g.index(c)]
	return id, id != noBox
}

// BoxPosition returns the current position of box id.
func (g *Grid) BoxPosition(id BoxID) Coord {
	return g.boxes[id]
}

// BoxCount returns the number of boxes. It never changes during play.
func (g *Grid) BoxCount() int { return len(g.boxes) }

// Boxes returns a copy of all box positions indexed by BoxID.
func (g *Grid) Boxes() []Coord {
	out := make([]Coord, len(g.boxes))
	copy(out, g.boxes)
	return out
}

// IsBlockedForPush reports whether a box cannot be pushed into c:
// c is a wall, empty, out of bounds or already holds a box.
func (g *Grid) IsBlockedForPush(c Coord) bool {
	if !g.Kind(c).Walkable() {
		return true
	}
	_, occupied := g.BoxAt(c)
	return occupied
}

// PlaceBox moves the box at from to to. It panics when from holds no box
// or to is blocked; callers check with IsBlockedForPush first.
func (g *Grid) PlaceBox(from, to Coord) {
	id, ok := g.BoxAt(from)
	if !ok {
		panic(fmt.Sprintf("sokoban: PlaceBox from %v: no box", from))
	}
	if g.IsBlockedForPush(to) {
		panic(fmt.Sprintf("sokoban: PlaceBox to %v: blocked", to))
	}
	g.boxAt[g.index(from)] = noBox
	g.boxAt[g.index(to)] = id
	g.boxes[id] = to
}

// GoalCount returns the number of goal tiles.
func (g *Grid) GoalCount() int {
	return g.def.GoalCount()
}

// BoxesOnGoals returns how many boxes currently sit on goal tiles.
func (g *Grid) BoxesOnGoals() int {
	n := 0
	for _, c := range g.boxes {
		if g.Kind(c) == TileGoal {
			n++
		}
	}
	return n
}

// CheckWin returns true when every goal tile holds a box.
// A level without goals is trivially won.
func (g *Grid) CheckWin() bool {
	for i, k := range g.def.Tiles {
		if k == TileGoal && g.boxAt[i] == noBox {
			return false
		}
	}
	return true
}

// Cells calls fn for every position in row-major order.
func (g *Grid) Cells(fn func(c Coord, cell Cell)) {
	for y := 0; y < g.def.Height; y++ {
		for x := 0; x < g.def.Width; x++ {
			c := C(x, y)
			i := g.index(c)
			fn(c, Cell{
				Kind:   g.def.Tiles[i],
				Box:    g.boxAt[i],
				HasBox: g.boxAt[i] != noBox,
				Player: c == g.player,
			})
		}
	}
}

// Clone returns a deep copy of the grid sharing the same definition.
func (g *Grid) Clone() *Grid {
	c := *g
	c.boxAt = make([]BoxID, len(g.boxAt))
	copy(c.boxAt, g.boxAt)
	c.boxes = make([]Coord, len(g.boxes))
	copy(c.boxes, g.boxes)
	return &c
}
