package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-classics/internal/games/sokoban/core"
)

func TestParseSymbols(t *testing.T) {
	def, err := core.Parse([]string{
		"; Symbols",
		"#######",
		"#@$.*+#",
		"#######",
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if def.Name != "Symbols" {
		t.Errorf("Name = %q, expected Symbols", def.Name)
	}
	if def.Width != 7 || def.Height != 3 {
		t.Errorf("size = %dx%d, expected 7x3", def.Width, def.Height)
	}

	testCases := []struct {
		x        int
		expected core.TileKind
	}{
		{0, core.TileWall},
		{1, core.TileFloor}, // @
		{2, core.TileFloor}, // $
		{3, core.TileGoal},  // .
		{4, core.TileGoal},  // *
		{5, core.TileGoal},  // +
		{6, core.TileWall},
	}
	for _, tc := range testCases {
		if got := def.Kind(core.C(tc.x, 1)); got != tc.expected {
			t.Errorf("Kind(%d,1) = %v, expected %v", tc.x, got, tc.expected)
		}
	}

	expectedBoxes := []core.Coord{core.C(2, 1), core.C(4, 1)}
	if len(def.Boxes) != len(expectedBoxes) {
		t.Fatalf("Boxes = %v, expected %v", def.Boxes, expectedBoxes)
	}
	for i, c := range expectedBoxes {
		if def.Boxes[i] != c {
			t.Errorf("Boxes[%d] = %v, expected %v", i, def.Boxes[i], c)
		}
	}

	// Two markers: the last one wins and both are counted.
	if def.PlayerMarkers != 2 {
		t.Errorf("PlayerMarkers = %d, expected 2", def.PlayerMarkers)
	}
	if def.Player != core.C(5, 1) {
		t.Errorf("Player = %v, expected (5,1)", def.Player)
	}
}

func TestParseLeadingPadding(t *testing.T) {
	def, err := core.Parse([]string{
		"  ###",
		"###@#",
		"#  $#",
		"# . #",
		"#####",
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if def.Kind(core.C(0, 0)) != core.TileEmpty || def.Kind(core.C(1, 0)) != core.TileEmpty {
		t.Error("leading spaces before the first wall should stay empty")
	}
	if def.Kind(core.C(1, 2)) != core.TileFloor {
		t.Error("spaces after the first wall should be floor")
	}
	if def.Kind(core.C(1, 3)) != core.TileFloor {
		t.Error("interior space should be floor")
	}
}

func TestParseTrailingSpaceIsFloor(t *testing.T) {
	testCases := []struct {
		name     string
		row      string
		x        int
		expected core.TileKind
	}{
		{"after box", "@$ ", 2, core.TileFloor},
		{"between player and goal", "@ .", 1, core.TileFloor},
		{"leading before player", "  @$ ", 1, core.TileEmpty},
		{"after leading padding", "  @$ ", 4, core.TileFloor},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			def, err := core.Parse([]string{tc.row})
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := def.Kind(core.C(tc.x, 0)); got != tc.expected {
				t.Errorf("Kind(%d,0) of %q = %v, expected %v", tc.x, tc.row, got, tc.expected)
			}
		})
	}
}

func TestParseRaggedRows(t *testing.T) {
	def, err := core.Parse([]string{
		"####",
		"#@.#####",
		"####",
	})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if def.Width != 8 {
		t.Errorf("Width = %d, expected 8 (longest row)", def.Width)
	}
	if def.Kind(core.C(7, 0)) != core.TileEmpty {
		t.Error("cells past the end of a short row should be empty")
	}
	if len(def.Tiles) != def.Width*def.Height {
		t.Errorf("len(Tiles) = %d, expected %d", len(def.Tiles), def.Width*def.Height)
	}
}

func TestParseUnrecognizedCharacter(t *testing.T) {
	def, err := core.Parse([]string{"#@x.#"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if def.Kind(core.C(2, 0)) != core.TileEmpty {
		t.Error("unrecognized character should leave the cell empty")
	}
	if def.Kind(core.C(3, 0)) != core.TileGoal {
		t.Error("column should still advance past an unrecognized character")
	}
}

func TestParseMultibyteWidth(t *testing.T) {
	def, err := core.Parse([]string{"#@é#"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if def.Width != 4 {
		t.Errorf("Width = %d, expected 4 runes", def.Width)
	}
}

func TestParseMissingPlayer(t *testing.T) {
	lines := []string{
		"#####",
		"# $.#",
		"#####",
	}

	def, err := core.Parse(lines)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if def.PlayerMarkers != 0 {
		t.Errorf("PlayerMarkers = %d, expected 0", def.PlayerMarkers)
	}
	if def.Player != core.C(0, 0) {
		t.Errorf("Player = %v, expected fallback (0,0)", def.Player)
	}

	if _, err := core.ParseStrict(lines); !errors.Is(err, core.ErrNoPlayer) {
		t.Errorf("ParseStrict() error = %v, expected ErrNoPlayer", err)
	}
}

func TestParseStrictManyPlayers(t *testing.T) {
	_, err := core.ParseStrict([]string{"#@ @#"})
	if !errors.Is(err, core.ErrManyPlayers) {
		t.Errorf("ParseStrict() error = %v, expected ErrManyPlayers", err)
	}
}

func TestParseStrictNoGoals(t *testing.T) {
	lines := []string{"#@$ #"}
	if _, err := core.Parse(lines); err != nil {
		t.Errorf("Parse() error = %v", err)
	}
	if _, err := core.ParseStrict(lines); !errors.Is(err, core.ErrNoGoals) {
		t.Errorf("ParseStrict() error = %v, expected ErrNoGoals", err)
	}
}

func TestParseStrictSinglePlayer(t *testing.T) {
	for _, lines := range [][]string{
		{"#@$.#"},
		{"#+$ #"},
	} {
		def, err := core.ParseStrict(lines)
		if err != nil {
			t.Errorf("ParseStrict(%q) error = %v", lines, err)
			continue
		}
		if def.PlayerMarkers != 1 {
			t.Errorf("ParseStrict(%q) PlayerMarkers = %d, expected 1", lines, def.PlayerMarkers)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	testCases := []struct {
		name  string
		lines []string
	}{
		{"nil", nil},
		{"metadata only", []string{"; Nothing here"}},
		{"blank row", []string{""}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := core.Parse(tc.lines); !errors.Is(err, core.ErrEmptyLevel) {
				t.Errorf("Parse() error = %v, expected ErrEmptyLevel", err)
			}
		})
	}
}

func TestParseTrimsCarriageReturn(t *testing.T) {
	def, err := core.Parse([]string{"; Windows\r", "#@.#\r"})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if def.Name != "Windows" || def.Width != 4 {
		t.Errorf("Name = %q Width = %d, expected Windows and 4", def.Name, def.Width)
	}
}
