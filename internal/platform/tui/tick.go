// Package tui runs the games in the terminal with Bubble Tea.
// It owns the update loop, key mapping, menus and the scoreboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives timers and physics of the running game.
type TickMsg time.Time

// tickCmd schedules the next tick after interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
