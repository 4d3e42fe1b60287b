package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-classics/internal/games/minesweeper"
	"github.com/vovakirdan/tui-classics/internal/games/sokoban"
	"github.com/vovakirdan/tui-classics/internal/registry"
	"github.com/vovakirdan/tui-classics/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show records for a game",
	Long: `Display the records for the specified game.

Sokoban shows the best solution per level, Minesweeper the fastest
clears and Asteroids the top 10 high scores.

Examples:
  arcade scores sokoban
  arcade scores minesweeper
  arcade scores asteroids`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	switch gameID {
	case sokoban.GameID:
		err = printSolutions(store, gameID)
	case minesweeper.GameID:
		err = printClears(store, gameID)
	default:
		err = printHighScores(store, gameID, game.Title())
	}
	store.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printSolutions(store *storage.Store, gameID string) error {
	variants, err := store.Variants(gameID)
	if err != nil {
		return err
	}

	fmt.Println("Best Solutions - Sokoban")
	fmt.Println()

	if len(variants) == 0 {
		fmt.Println("No levels solved yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to record the first solution!\n", gameID)
		return nil
	}

	for _, variant := range variants {
		results, err := store.BestByMoves(gameID, variant)
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", variant)
		fmt.Printf("  %-4s  %-20s  %-6s  %-6s  %-8s  %s\n", "#", "Level", "Moves", "Pushes", "Time", "Date")
		fmt.Printf("  %-4s  %-20s  %-6s  %-6s  %-8s  %s\n", "-", "-----", "-----", "------", "----", "----")
		for _, r := range results {
			fmt.Printf("  %-4d  %-20s  %-6d  %-6d  %-8s  %s\n",
				r.Level, r.Name, r.Moves, r.Pushes, formatElapsed(r.Elapsed), r.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println()
	}
	return nil
}

func printClears(store *storage.Store, gameID string) error {
	results, err := store.BestByTime(gameID, "", 10)
	if err != nil {
		return err
	}

	fmt.Println("Fastest Clears - Minesweeper")
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No boards cleared yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first record!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-14s  %-8s  %s\n", "Rank", "Board", "Time", "Date")
	fmt.Printf("  %-4s  %-14s  %-8s  %s\n", "----", "-----", "----", "----")
	for i, r := range results {
		fmt.Printf("  %-4d  %-14s  %-8s  %s\n", i+1, r.Variant, formatElapsed(r.Elapsed), r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printHighScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  |  Games: %d  |  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	}
	return nil
}

func formatElapsed(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	m := int(d / time.Minute)
	s := (d % time.Minute).Seconds()
	return fmt.Sprintf("%d:%04.1f", m, s)
}
