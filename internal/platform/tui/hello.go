package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-classics/internal/core"
)

const (
	helloMessage = "Hello, World!"
	helloKidding = "...just kidding. There is no game here."
	helloHint    = "press any key"
)

// HelloModel shows a single bordered window until any key is pressed.
type HelloModel struct {
	width  int
	height int
	theme  Theme
	done   bool
}

// NewHelloModel creates the hello window.
func NewHelloModel(width, height int) HelloModel {
	return HelloModel{width: width, height: height, theme: GetTheme()}
}

// Init initializes the model.
func (m HelloModel) Init() tea.Cmd {
	return nil
}

// Update closes the window on the first key press.
func (m HelloModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.done = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the window centered on screen.
func (m HelloModel) View() string {
	if m.done {
		return ""
	}

	body := strings.Join([]string{
		m.theme.HelloText.Render(helloMessage),
		"",
		helloKidding,
		"",
		m.theme.HelloHint.Render(helloHint),
	}, "\n")
	box := m.theme.HelloBox.Render(lipgloss.JoinVertical(lipgloss.Center, strings.Split(body, "\n")...))

	if m.width <= 0 || m.height <= 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// Done reports whether a key was pressed.
func (m HelloModel) Done() bool {
	return m.done
}

// RunHello shows the hello window.
func RunHello(cfg core.RuntimeConfig) error {
	p := tea.NewProgram(
		NewHelloModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
