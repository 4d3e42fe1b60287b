package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-classics/internal/core"
	"github.com/vovakirdan/tui-classics/internal/games/sokoban/levels"
)

var (
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestHelloClosesOnAnyKey(t *testing.T) {
	m := NewHelloModel(60, 20)
	if !strings.Contains(m.View(), "just kidding") {
		t.Fatalf("View() = %q", m.View())
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd == nil {
		t.Error("expected quit command")
	}
	if !next.(HelloModel).Done() {
		t.Error("expected window to close")
	}
	if next.View() != "" {
		t.Error("closed window should render nothing")
	}
}

func TestSokobanMenuSelection(t *testing.T) {
	set := levels.Default()
	m := NewSokobanMenuModel(set, map[int]bool{2: true}, 80, 24)

	view := m.View()
	for _, want := range []string{"Start from Beginning", set.Title(0), "✓", "1 solved"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	var model tea.Model = m
	model, _ = model.Update(keyDown)
	model, _ = model.Update(keyDown)
	model, cmd := model.Update(keyEnter)
	if cmd == nil {
		t.Fatal("expected quit command after select")
	}
	sel := model.(SokobanMenuModel).Selected()
	if sel == nil || sel.Level != 2 {
		t.Fatalf("Selected() = %+v, expected level 2", sel)
	}
}

func TestSokobanMenuCursorBounds(t *testing.T) {
	set := levels.Default()
	var model tea.Model = NewSokobanMenuModel(set, nil, 80, 24)
	for range set.Len() + 5 {
		model, _ = model.Update(keyDown)
	}
	model, _ = model.Update(keyEnter)
	if sel := model.(SokobanMenuModel).Selected(); sel == nil || sel.Level != set.Len() {
		t.Fatalf("Selected() = %+v, expected last level %d", sel, set.Len())
	}
}

func TestOptionMenu(t *testing.T) {
	options := []Option{
		{Label: "Easy", Value: "easy"},
		{Label: "Normal", Value: "normal", Description: "The usual"},
		{Label: "Hard", Value: "hard"},
	}

	testCases := []struct {
		name     string
		initial  string
		keys     []tea.KeyMsg
		expected string
		back     bool
	}{
		{"initial value preselected", "normal", []tea.KeyMsg{keyEnter}, "normal", false},
		{"unknown initial starts at top", "insane", []tea.KeyMsg{keyEnter}, "easy", false},
		{"move down", "normal", []tea.KeyMsg{keyDown, keyEnter}, "hard", false},
		{"clamped at bottom", "hard", []tea.KeyMsg{keyDown, keyDown, keyEnter}, "hard", false},
		{"back", "easy", []tea.KeyMsg{keyEsc}, "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var model tea.Model = NewOptionMenuModel("T", "pick", options, tc.initial, 80, 24)
			for _, k := range tc.keys {
				model, _ = model.Update(k)
			}
			m := model.(OptionMenuModel)
			if m.WantsBack() != tc.back {
				t.Errorf("WantsBack() = %v", m.WantsBack())
			}
			got := ""
			if m.Selected() != nil {
				got = m.Selected().Value
			}
			if got != tc.expected {
				t.Errorf("Selected() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestCenterTextIgnoresStyles(t *testing.T) {
	plain := centerText("abcd", 10)
	styled := centerText(GetTheme().MenuTitle.Render("abcd"), 10)
	if !strings.HasPrefix(plain, "   abcd") {
		t.Errorf("centerText() = %q", plain)
	}
	if pad := len(styled) - len(strings.TrimLeft(styled, " ")); pad != 3 {
		t.Errorf("styled padding = %q", styled)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, '$', core.ColorBrown)
	s.DrawText(1, 0, "ab")
	s.SetColored(0, 1, '#', core.ColorGray)

	if got := renderWith(s, nil); got != "$ab \n#   " {
		t.Errorf("unstyled render = %q", got)
	}

	for _, theme := range []Theme{DefaultTheme(), MonochromeTheme()} {
		SetTheme(theme)
		out := RenderScreen(s)
		if !strings.Contains(out, "ab") || !strings.Contains(out, "#") {
			t.Errorf("RenderScreen() = %q", out)
		}
	}
	SetTheme(DefaultTheme())
}

func TestPalettesCoverScreenColors(t *testing.T) {
	for _, c := range []core.Color{core.ColorBrown, core.ColorGray, core.ColorBrightRed} {
		if _, ok := ansiPalette[c]; !ok {
			t.Errorf("ansi palette missing %v", c)
		}
		if _, ok := grayPalette[c]; !ok {
			t.Errorf("gray palette missing %v", c)
		}
	}
}
