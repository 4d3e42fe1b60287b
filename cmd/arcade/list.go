package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-classics/internal/registry"
)

var gameHints = map[string]string{
	"sokoban":     "push every box onto a goal",
	"minesweeper": "open every safe cell",
	"asteroids":   "clear the waves, keep your lives",
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all registered games.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	idWidth, titleWidth := len("ID"), len("Title")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
		titleWidth = max(titleWidth, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", idWidth, "ID", titleWidth, "Title", "Goal")
	fmt.Printf("  %-*s  %-*s  %s\n", idWidth, "--", titleWidth, "-----", "----")
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", idWidth, g.ID, titleWidth, g.Title, gameHints[g.ID])
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game, or 'arcade hello' to say hello.")
}
