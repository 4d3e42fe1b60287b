package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-classics/internal/core"
)

// Option is one entry of an option selector.
type Option struct {
	Label       string
	Description string
	Value       string
}

// OptionMenuModel lets users pick one option, such as a Minesweeper board
// preset or an Asteroids difficulty.
type OptionMenuModel struct {
	title     string
	prompt    string
	options   []Option
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  *Option
	quitting  bool
	back      bool
	theme     Theme
}

// NewOptionMenuModel creates a selector with the cursor on the option
// whose value matches initial.
func NewOptionMenuModel(title, prompt string, options []Option, initial string, width, height int) OptionMenuModel {
	cursor := 0
	for i, opt := range options {
		if opt.Value == initial {
			cursor = i
			break
		}
	}

	return OptionMenuModel{
		title:     title,
		prompt:    prompt,
		options:   options,
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		theme:     GetTheme(),
	}
}

// Init initializes the model.
func (m OptionMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m OptionMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m OptionMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.options) > 0 {
			opt := m.options[m.cursor]
			m.selected = &opt
		}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the option list.
func (m OptionMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.prompt, m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		b.WriteString(centerText(style.Render(fmt.Sprintf("%s%s", cursor, opt.Label)), m.width))
		b.WriteString("\n")
	}

	if len(m.options) > 0 {
		if desc := m.options[m.cursor].Description; desc != "" {
			b.WriteString("\n")
			b.WriteString(centerText(m.theme.MenuDescription.Render(desc), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.Controls.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the chosen option, or nil if nothing was chosen.
func (m OptionMenuModel) Selected() *Option {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m OptionMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m OptionMenuModel) WantsBack() bool {
	return m.back
}

// RunOptionSelector runs an option selector and returns the chosen option.
// A nil option means the user backed out or quit.
func RunOptionSelector(title, prompt string, options []Option, initial string, cfg core.RuntimeConfig) (*Option, core.RuntimeConfig, error) {
	model := NewOptionMenuModel(title, prompt, options, initial, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(OptionMenuModel)
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
