// arcade plays terminal versions of classic puzzle and arcade games.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade scores <game>     - Show records for a game
//	arcade hello             - Say hello
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>   - debug, info, warn, error (default: info)
//	--log-file <path>     - Log destination while a game is on screen
//	--mono                - Grayscale theme
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-classics/internal/platform/tui"

	// Import games to register them
	_ "github.com/vovakirdan/tui-classics/internal/games/asteroids"
	_ "github.com/vovakirdan/tui-classics/internal/games/minesweeper"
	_ "github.com/vovakirdan/tui-classics/internal/games/sokoban"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
	flagMono     bool

	logFile io.Closer
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Classics - Sokoban, Minesweeper and Asteroids in your terminal",
	Long: `Classics is a small collection of terminal games built on one
engine: Sokoban, Minesweeper and Asteroids.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  scores   - View records
  hello    - Say hello

Examples:
  arcade list
  arcade play sokoban --levels ./microban.txt --watch
  arcade play minesweeper --difficulty advanced
  arcade play asteroids --difficulty hard
  arcade menu
  arcade scores sokoban`,
	SilenceUsage:      true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagMono {
			tui.SetTheme(tui.MonochromeTheme())
		}
		return setupLogging(cmd, args)
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/arcade.log", "Log file used while a game is on screen")
	rootCmd.PersistentFlags().BoolVar(&flagMono, "mono", false, "Use the grayscale theme")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(helloCmd)
}

// tuiCommands own the terminal, so their logs go to the log file.
var tuiCommands = map[string]bool{
	"play":  true,
	"menu":  true,
	"hello": true,
}

// setupLogging installs the default logger. Commands that draw a TUI
// write to --log-file; the others log to stderr.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	if tuiCommands[cmd.Name()] && flagLogFile != "" {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
			out = io.Discard
		} else {
			logFile = f
			out = f
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	log.SetDefault(logger)
	return nil
}

func openLogFile(path string) (*os.File, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
