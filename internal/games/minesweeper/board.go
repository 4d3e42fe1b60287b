package minesweeper

import "math/rand"

// Cell is one square of the board.
type Cell struct {
	Mine      bool
	Revealed  bool
	Flagged   bool
	Neighbors int // Mines among the eight surrounding cells
}

// RevealOutcome reports what a reveal did.
type RevealOutcome int

const (
	RevealIgnored  RevealOutcome = iota // Out of bounds, revealed or flagged
	RevealSafe                          // One or more safe cells opened
	RevealExploded                      // A mine was opened
)

// Board holds the mine field. Cells are stored row-major.
type Board struct {
	Width  int
	Height int
	Mines  int

	cells    []Cell
	revealed int
	flags    int
}

// NewBoard places mines uniformly at random and computes neighbor counts.
// The mine count is clamped so at least one cell is safe.
func NewBoard(width, height, mines int, rng *rand.Rand) *Board {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if mines > width*height-1 {
		mines = width*height - 1
	}
	if mines < 0 {
		mines = 0
	}

	b := &Board{
		Width:  width,
		Height: height,
		Mines:  mines,
		cells:  make([]Cell, width*height),
	}

	placed := 0
	for placed < mines {
		i := rng.Intn(len(b.cells))
		if !b.cells[i].Mine {
			b.cells[i].Mine = true
			placed++
		}
	}
	b.countNeighbors()
	return b
}

// NewBoardWithMines builds a board with mines at fixed positions.
func NewBoardWithMines(width, height int, mines [][2]int) *Board {
	b := &Board{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
	for _, m := range mines {
		if b.InBounds(m[0], m[1]) && !b.cells[b.index(m[0], m[1])].Mine {
			b.cells[b.index(m[0], m[1])].Mine = true
			b.Mines++
		}
	}
	b.countNeighbors()
	return b
}

func (b *Board) index(x, y int) int {
	return y*b.Width + x
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// Cell returns a copy of the cell at (x, y). Out-of-range returns a zero Cell.
func (b *Board) Cell(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.cells[b.index(x, y)]
}

// neighbors calls fn for every in-bounds cell around (x, y).
func (b *Board) neighbors(x, y int, fn func(nx, ny int)) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.InBounds(nx, ny) {
				fn(nx, ny)
			}
		}
	}
}

func (b *Board) countNeighbors() {
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			count := 0
			b.neighbors(x, y, func(nx, ny int) {
				if b.cells[b.index(nx, ny)].Mine {
					count++
				}
			})
			b.cells[b.index(x, y)].Neighbors = count
		}
	}
}

// Reveal opens the cell at (x, y). Opening a cell with no neighboring
// mines also opens the connected region of such cells and its numbered
// border. Flagged cells are never opened by the flood.
func (b *Board) Reveal(x, y int) RevealOutcome {
	if !b.InBounds(x, y) {
		return RevealIgnored
	}
	c := &b.cells[b.index(x, y)]
	if c.Revealed || c.Flagged {
		return RevealIgnored
	}

	c.Revealed = true
	if c.Mine {
		return RevealExploded
	}
	b.revealed++
	if c.Neighbors > 0 {
		return RevealSafe
	}

	stack := [][2]int{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		b.neighbors(p[0], p[1], func(nx, ny int) {
			n := &b.cells[b.index(nx, ny)]
			if n.Revealed || n.Flagged || n.Mine {
				return
			}
			n.Revealed = true
			b.revealed++
			if n.Neighbors == 0 {
				stack = append(stack, [2]int{nx, ny})
			}
		})
	}
	return RevealSafe
}

// ToggleFlag marks or unmarks an unrevealed cell and reports whether
// anything changed.
func (b *Board) ToggleFlag(x, y int) bool {
	if !b.InBounds(x, y) {
		return false
	}
	c := &b.cells[b.index(x, y)]
	if c.Revealed {
		return false
	}
	c.Flagged = !c.Flagged
	if c.Flagged {
		b.flags++
	} else {
		b.flags--
	}
	return true
}

// RevealMines uncovers every mine, used after a loss.
func (b *Board) RevealMines() {
	for i := range b.cells {
		if b.cells[i].Mine {
			b.cells[i].Revealed = true
		}
	}
}

// Cleared reports whether every safe cell is revealed.
func (b *Board) Cleared() bool {
	return b.revealed == len(b.cells)-b.Mines
}

// Flags returns the number of flagged cells.
func (b *Board) Flags() int { return b.flags }

// Revealed returns the number of revealed safe cells.
func (b *Board) Revealed() int { return b.revealed }
