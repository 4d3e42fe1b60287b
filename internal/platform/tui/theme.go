package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-classics/internal/core"
)

// Theme contains the styles of the menus, the hello window and game screens.
type Theme struct {
	// Menu styles
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuItemSolved  lipgloss.Style
	MenuDescription lipgloss.Style
	Controls        lipgloss.Style

	// Hello window
	HelloBox  lipgloss.Style
	HelloText lipgloss.Style
	HelloHint lipgloss.Style

	// Game screen colors
	screenStyles map[core.Color]lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		MenuTitle:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		MenuItemSolved:  lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Controls:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		HelloBox: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 4),
		HelloText: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HelloHint: lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),

		screenStyles: ansiPalette.styles(),
	}
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.MenuTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.MenuItemActive = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true).Underline(true)
	theme.MenuItemSolved = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	theme.HelloBox = theme.HelloBox.BorderForeground(lipgloss.Color("250"))
	theme.HelloText = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	theme.screenStyles = grayPalette.styles()
	return theme
}

// Global theme variable (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the current global theme.
func GetTheme() Theme {
	return currentTheme
}
