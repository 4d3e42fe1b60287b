package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-classics/internal/core"
	"github.com/vovakirdan/tui-classics/internal/games/sokoban/levels"
)

// SokobanSelection holds the user's selection from the Sokoban menu.
type SokobanSelection struct {
	Level int // 0 = start from beginning, 1-N = specific level
}

// SokobanMenuModel is the level picker for a Sokoban pack.
type SokobanMenuModel struct {
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	packName     string
	levelNames   []string
	solved       map[int]bool // 1-based levels with a stored result
	selection    SokobanSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
	theme        Theme
}

// NewSokobanMenuModel creates a level selection model for the pack.
// Levels listed in solved are marked as done.
func NewSokobanMenuModel(set levels.Set, solved map[int]bool, width, height int) SokobanMenuModel {
	names := make([]string, set.Len())
	for i := range names {
		names[i] = set.Title(i)
	}
	if solved == nil {
		solved = map[int]bool{}
	}

	return SokobanMenuModel{
		width:      width,
		height:     height,
		keyMapper:  NewKeyMapper(),
		packName:   set.Name,
		levelNames: names,
		solved:     solved,
		choosing:   true,
		theme:      GetTheme(),
	}
}

// Init initializes the model.
func (m SokobanMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SokobanMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m SokobanMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.levelNames) {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = SokobanSelection{Level: m.cursor}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// visibleItems returns how many level rows fit on screen.
func (m SokobanMenuModel) visibleItems() int {
	return max(m.height-10, 3) // Account for header and footer
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *SokobanMenuModel) updateScroll() {
	visible := m.visibleItems()
	if m.cursor < m.scrollOffset {
		m.scrollOffset = m.cursor
	} else if m.cursor >= m.scrollOffset+visible {
		m.scrollOffset = m.cursor - visible + 1
	}
}

// View renders the level selection.
func (m SokobanMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("S O K O B A N"), m.width))
	b.WriteString("\n\n")

	subtitle := fmt.Sprintf("%s: %d levels, %d solved", m.packName, len(m.levelNames), len(m.solved))
	b.WriteString(centerText(m.theme.MenuDescription.Render(subtitle), m.width))
	b.WriteString("\n\n")

	// Row 0 is "Start from Beginning", row i is level i.
	end := min(m.scrollOffset+m.visibleItems(), len(m.levelNames)+1)
	for row := m.scrollOffset; row < end; row++ {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if row > 0 && m.solved[row] {
			style = m.theme.MenuItemSolved
		}
		if row == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		label := "Start from Beginning"
		if row > 0 {
			mark := "  "
			if m.solved[row] {
				mark = "✓ "
			}
			label = fmt.Sprintf("%2d. %s%s", row, mark, m.levelNames[row-1])
		}
		b.WriteString(centerText(style.Render(cursor+label), m.width))
		b.WriteString("\n")
	}

	// Scroll indicators
	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if end < len(m.levelNames)+1 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.Controls.Render("Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m SokobanMenuModel) Selected() *SokobanSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m SokobanMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SokobanMenuModel) WantsBack() bool {
	return m.back
}

// RunSokobanLevelSelector runs the level selection and returns the selection.
func RunSokobanLevelSelector(set levels.Set, solved map[int]bool, cfg core.RuntimeConfig) (*SokobanSelection, core.RuntimeConfig, error) {
	model := NewSokobanMenuModel(set, solved, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(SokobanMenuModel)
	if !ok {
		return nil, cfg, nil
	}
	if m.width > 0 && m.height > 0 {
		cfg.ScreenW, cfg.ScreenH = m.width, m.height
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
