package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-classics/internal/platform/tui"
	"github.com/vovakirdan/tui-classics/internal/registry"
	"github.com/vovakirdan/tui-classics/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevels     string
	flagLevel      int
	flagWatch      bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD/hjkl - Move, aim or steer
  Enter/Space      - Next level, reveal, fire
  F                - Flag (Minesweeper)
  N / [ / ]        - Next / previous level (Sokoban)
  R/F2             - Restart
  P                - Pause
  Esc/B            - Back
  Q/Ctrl+C         - Quit

Difficulty:
  minesweeper - board preset: beginner, intermediate, advanced
  asteroids   - easy, normal, hard, fixed
  Without --difficulty a selector is shown.

Examples:
  arcade play sokoban
  arcade play sokoban --levels ./microban.txt --level 3 --watch
  arcade play minesweeper --difficulty intermediate
  arcade play asteroids --difficulty hard
  arcade play asteroids --config ./my-asteroids.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty or board preset")
	playCmd.Flags().StringVar(&flagLevels, "levels", "", "Sokoban level pack (.txt, .sok, .xsb, .yaml)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Sokoban start level (1-based, 0 = choose)")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the Sokoban level pack when it changes")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if err := play(gameID); err != nil {
		log.Error("play failed", "game", gameID, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// play sets up and runs one game. Leaving a selector is not an error.
func play(gameID string) error {
	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg, opts, err := setupGame(gameID, store, runtimeConfig())
	if errors.Is(err, errCancelled) {
		return nil
	}
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	log.Info("starting game", "game", gameID, "fps", cfg.TickRate, "seed", cfg.Seed)
	if err := tui.Run(game, store, cfg, opts...); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}
	return nil
}
