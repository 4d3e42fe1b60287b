package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-classics/internal/core"
)

// Palette maps screen colors to terminal colors. Colors missing from a
// palette render unstyled.
type Palette map[core.Color]lipgloss.Color

// ansiPalette uses the 16 base colors plus three 256-color extras.
var ansiPalette = Palette{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBrown:         "130",
}

// grayPalette keeps bright colors apart from dim ones.
var grayPalette = Palette{
	core.ColorBrightRed:     "255",
	core.ColorBrightGreen:   "255",
	core.ColorBrightYellow:  "255",
	core.ColorBrightBlue:    "255",
	core.ColorBrightMagenta: "255",
	core.ColorBrightCyan:    "255",
	core.ColorBrightWhite:   "255",
	core.ColorGray:          "242",
	core.ColorBrown:         "246",
}

// styles builds one lipgloss style per palette entry.
func (p Palette) styles() map[core.Color]lipgloss.Style {
	styles := make(map[core.Color]lipgloss.Style, len(p))
	for c, tc := range p {
		styles[c] = lipgloss.NewStyle().Foreground(tc)
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display
// using the current theme's palette. Adjacent cells of one color share
// a single escape sequence.
func RenderScreen(s *core.Screen) string {
	return renderWith(s, GetTheme().screenStyles)
}

func renderWith(s *core.Screen, styles map[core.Color]lipgloss.Style) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if style, ok := styles[color]; ok {
				sb.WriteString(style.Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
		}
	}
	return sb.String()
}
