package minesweeper

import (
	"math/rand"
	"testing"
)

func countMines(b *Board) int {
	n := 0
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.Cell(x, y).Mine {
				n++
			}
		}
	}
	return n
}

func TestNewBoardPlacesMines(t *testing.T) {
	tests := []struct {
		name                 string
		width, height, mines int
		expectedMines        int
	}{
		{"beginner", 9, 9, 10, 10},
		{"intermediate", 16, 16, 40, 40},
		{"advanced", 24, 24, 99, 99},
		{"clamped", 3, 3, 20, 8},
		{"negative", 4, 4, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard(tt.width, tt.height, tt.mines, rand.New(rand.NewSource(1)))
			if got := countMines(b); got != tt.expectedMines {
				t.Errorf("placed %d mines, expected %d", got, tt.expectedMines)
			}
			if b.Mines != tt.expectedMines {
				t.Errorf("Mines = %d, expected %d", b.Mines, tt.expectedMines)
			}
		})
	}
}

func TestNewBoardDeterministic(t *testing.T) {
	a := NewBoard(16, 16, 40, rand.New(rand.NewSource(7)))
	b := NewBoard(16, 16, 40, rand.New(rand.NewSource(7)))

	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if a.Cell(x, y) != b.Cell(x, y) {
				t.Fatalf("boards differ at (%d,%d)", x, y)
			}
		}
	}
}

func TestNeighborCounts(t *testing.T) {
	// *..
	// .*.
	// ...
	b := NewBoardWithMines(3, 3, [][2]int{{0, 0}, {1, 1}})

	expected := [3][3]int{
		{1, 2, 1},
		{2, 1, 1},
		{1, 1, 1},
	}
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if got := b.Cell(x, y).Neighbors; got != expected[y][x] {
				t.Errorf("Neighbors(%d,%d) = %d, expected %d", x, y, got, expected[y][x])
			}
		}
	}
}

func TestRevealFloodsZeroRegion(t *testing.T) {
	b := NewBoardWithMines(5, 5, [][2]int{{4, 4}})

	if got := b.Reveal(0, 0); got != RevealSafe {
		t.Fatalf("Reveal = %v, expected RevealSafe", got)
	}
	if b.Revealed() != 24 {
		t.Errorf("Revealed() = %d, expected 24", b.Revealed())
	}
	if !b.Cleared() {
		t.Error("board should be cleared")
	}
	if b.Cell(4, 4).Revealed {
		t.Error("flood opened the mine")
	}
}

func TestRevealStopsAtNumbers(t *testing.T) {
	// A wall of mines in column 2 splits the board.
	b := NewBoardWithMines(5, 3, [][2]int{{2, 0}, {2, 1}, {2, 2}})

	b.Reveal(0, 1)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			expected := x < 2
			if got := b.Cell(x, y).Revealed; got != expected {
				t.Errorf("Revealed(%d,%d) = %v, expected %v", x, y, got, expected)
			}
		}
	}
	if b.Cleared() {
		t.Error("right half is still covered")
	}
}

func TestRevealNumberedCellOnly(t *testing.T) {
	b := NewBoardWithMines(3, 3, [][2]int{{0, 0}})

	b.Reveal(1, 1)
	if b.Revealed() != 1 {
		t.Errorf("Revealed() = %d, expected only the numbered cell", b.Revealed())
	}
}

func TestRevealIgnored(t *testing.T) {
	b := NewBoardWithMines(3, 3, [][2]int{{0, 0}})

	if b.Reveal(-1, 0) != RevealIgnored {
		t.Error("out of bounds reveal should be ignored")
	}

	b.ToggleFlag(2, 2)
	if b.Reveal(2, 2) != RevealIgnored {
		t.Error("flagged cell should not open")
	}

	b.Reveal(1, 1)
	if b.Reveal(1, 1) != RevealIgnored {
		t.Error("second reveal should be ignored")
	}
}

func TestFloodSkipsFlags(t *testing.T) {
	b := NewBoardWithMines(4, 4, nil)
	b.ToggleFlag(3, 3)

	b.Reveal(0, 0)
	if b.Cell(3, 3).Revealed {
		t.Error("flood opened a flagged cell")
	}
	if b.Revealed() != 15 {
		t.Errorf("Revealed() = %d, expected 15", b.Revealed())
	}
}

func TestRevealMine(t *testing.T) {
	b := NewBoardWithMines(3, 3, [][2]int{{1, 1}, {2, 2}})

	if got := b.Reveal(1, 1); got != RevealExploded {
		t.Fatalf("Reveal = %v, expected RevealExploded", got)
	}
	b.RevealMines()
	if !b.Cell(2, 2).Revealed {
		t.Error("RevealMines left a mine covered")
	}
}

func TestToggleFlag(t *testing.T) {
	b := NewBoardWithMines(3, 3, [][2]int{{0, 0}})

	if !b.ToggleFlag(0, 0) || b.Flags() != 1 {
		t.Fatal("flag not placed")
	}
	if !b.ToggleFlag(0, 0) || b.Flags() != 0 {
		t.Fatal("flag not removed")
	}

	b.Reveal(1, 1)
	if b.ToggleFlag(1, 1) {
		t.Error("revealed cells cannot be flagged")
	}
	if b.ToggleFlag(5, 5) {
		t.Error("out of bounds flag should fail")
	}
}
