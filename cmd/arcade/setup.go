package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-classics/internal/config"
	"github.com/vovakirdan/tui-classics/internal/core"
	"github.com/vovakirdan/tui-classics/internal/games/asteroids"
	"github.com/vovakirdan/tui-classics/internal/games/minesweeper"
	"github.com/vovakirdan/tui-classics/internal/games/sokoban"
	"github.com/vovakirdan/tui-classics/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-classics/internal/platform/tui"
	"github.com/vovakirdan/tui-classics/internal/storage"
)

// errCancelled means the user backed out of a selector.
var errCancelled = errors.New("cancelled")

// runtimeConfig builds the runtime config from the terminal size and
// global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// setupGame applies flags and selector choices for a game before it is
// created. It returns errCancelled when the user leaves a selector.
func setupGame(gameID string, store *storage.Store, cfg core.RuntimeConfig) (core.RuntimeConfig, []tui.RunOption, error) {
	switch gameID {
	case sokoban.GameID:
		return setupSokoban(store, cfg)

	case minesweeper.GameID:
		minesweeper.SetConfigPath(flagConfig)
		preset := flagDifficulty
		if preset == "" {
			mcfg, err := config.LoadMinesweeper(flagConfig)
			if err != nil {
				return cfg, nil, err
			}
			opt, updated, err := tui.RunOptionSelector("M I N E S W E E P E R", "Select a board:",
				presetOptions(mcfg), mcfg.Default, cfg)
			if err != nil {
				return cfg, nil, err
			}
			cfg = updated
			if opt == nil {
				return cfg, nil, errCancelled
			}
			preset = opt.Value
		}
		minesweeper.SetPreset(preset)

	case asteroids.GameID:
		asteroids.SetConfigPath(flagConfig)
		preset := flagDifficulty
		if preset == "" {
			opt, updated, err := tui.RunOptionSelector("A S T E R O I D S", "Select difficulty:",
				difficultyOptions, string(config.DifficultyNormal), cfg)
			if err != nil {
				return cfg, nil, err
			}
			cfg = updated
			if opt == nil {
				return cfg, nil, errCancelled
			}
			preset = opt.Value
		}
		asteroids.SetDifficultyPreset(preset)
	}

	return cfg, nil, nil
}

var difficultyOptions = []tui.Option{
	{Label: "Easy", Value: string(config.DifficultyEasy), Description: "Fewer, slower rocks and more lives"},
	{Label: "Normal", Value: string(config.DifficultyNormal), Description: "The classic pace"},
	{Label: "Hard", Value: string(config.DifficultyHard), Description: "Fast rocks from the first wave"},
	{Label: "Fixed", Value: string(config.DifficultyFixed), Description: "No speed-up as your score grows"},
}

func presetOptions(cfg config.MinesweeperConfig) []tui.Option {
	names := cfg.PresetNames()
	options := make([]tui.Option, 0, len(names))
	for _, name := range names {
		p := cfg.Presets[name]
		options = append(options, tui.Option{
			Label:       fmt.Sprintf("%-13s %2dx%-2d %3d mines", name, p.Width, p.Height, p.Mines),
			Value:       name,
			Description: fmt.Sprintf("%d safe cells to open", p.Width*p.Height-p.Mines),
		})
	}
	return options
}

func setupSokoban(store *storage.Store, cfg core.RuntimeConfig) (core.RuntimeConfig, []tui.RunOption, error) {
	scfg, err := config.LoadSokoban(flagConfig)
	if err != nil {
		return cfg, nil, err
	}

	set, err := sokoban.LoadSet(scfg, flagLevels)
	if err != nil {
		return cfg, nil, fmt.Errorf("cannot load levels: %w", err)
	}

	level := flagLevel
	if level < 0 || level > set.Len() {
		return cfg, nil, fmt.Errorf("level %d out of range: %q has %d levels", level, set.Name, set.Len())
	}
	if level == 0 {
		selection, updated, err := tui.RunSokobanLevelSelector(set, solvedLevels(store, set), cfg)
		if err != nil {
			return cfg, nil, err
		}
		cfg = updated
		if selection == nil {
			return cfg, nil, errCancelled
		}
		level = selection.Level
	}
	sokoban.Configure(set, scfg, level)

	var opts []tui.RunOption
	path := scfg.Levels
	if flagLevels != "" {
		path = flagLevels
	}
	if (flagWatch || scfg.Watch) && path != "" {
		log.Info("watching level pack", "path", path)
		opts = append(opts, tui.WithLevelWatch(levels.NewLoader(scfg.Strict), path))
	}

	return cfg, opts, nil
}

// solvedLevels returns the 1-based levels of the set with a stored result.
func solvedLevels(store *storage.Store, set levels.Set) map[int]bool {
	solved := map[int]bool{}
	if store == nil {
		return solved
	}
	results, err := store.BestByMoves(sokoban.GameID, set.Name)
	if err != nil {
		log.Warn("cannot load solved levels", "set", set.Name, "error", err)
		return solved
	}
	for _, r := range results {
		solved[r.Level] = true
	}
	return solved
}
