package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// LoadSokoban loads Sokoban configuration.
// Search order: customPath -> ~/.arcade/configs/sokoban.yaml -> ./configs/sokoban.yaml -> embedded default
func LoadSokoban(customPath string) (SokobanConfig, error) {
	cfg, err := load("sokoban", customPath, DefaultSokobanConfig)
	if err != nil {
		return cfg, err
	}
	cfg.Glyphs = cfg.Glyphs.WithDefaults()
	return cfg, nil
}

// LoadMinesweeper loads Minesweeper configuration.
// Search order: customPath -> ~/.arcade/configs/minesweeper.yaml -> ./configs/minesweeper.yaml -> embedded default
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	cfg, err := load("minesweeper", customPath, DefaultMinesweeperConfig)
	if err != nil {
		return cfg, err
	}
	if len(cfg.Presets) == 0 {
		cfg.Presets = DefaultMinesweeperConfig().Presets
	}
	for name, p := range cfg.Presets {
		if !p.Valid() {
			log.Warn("ignoring invalid minesweeper preset", "preset", name,
				"width", p.Width, "height", p.Height, "mines", p.Mines)
			delete(cfg.Presets, name)
		}
	}
	return cfg, nil
}

// LoadAsteroids loads Asteroids configuration.
// Search order: customPath -> ~/.arcade/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	return load("asteroids", customPath, DefaultAsteroidsConfig)
}

// load resolves a game's configuration through the search order.
// A custom path that cannot be read or parsed is an error; the other
// locations are optional and skipped when missing or malformed.
func load[T any](gameID, customPath string, fallback func() T) (T, error) {
	var cfg T
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var fileCfg T
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			log.Warn("skipping malformed config", "path", path, "error", err)
			continue
		}
		log.Debug("loaded config", "game", gameID, "path", path)
		return fileCfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// WithDefaults replaces empty glyphs with the defaults.
func (g SokobanGlyphs) WithDefaults() SokobanGlyphs {
	def := DefaultSokobanGlyphs()
	pick := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	return SokobanGlyphs{
		Wall:         pick(g.Wall, def.Wall),
		Floor:        pick(g.Floor, def.Floor),
		Goal:         pick(g.Goal, def.Goal),
		Box:          pick(g.Box, def.Box),
		BoxOnGoal:    pick(g.BoxOnGoal, def.BoxOnGoal),
		Player:       pick(g.Player, def.Player),
		PlayerOnGoal: pick(g.PlayerOnGoal, def.PlayerOnGoal),
	}
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Lives = 5
		cfg.Asteroids.InitialCount = 3
	case DifficultyHard:
		cfg.Ship.Lives = 2
		cfg.Asteroids.InitialCount = 6
	}
}
