// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "sort"

// SokobanConfig contains all configuration for Sokoban.
type SokobanConfig struct {
	Levels     string        `yaml:"levels"`      // Level pack path; empty uses the embedded pack
	StartLevel int           `yaml:"start_level"` // 1-based; 0 starts at the first level
	Strict     bool          `yaml:"strict"`      // Reject levels without exactly one player start
	Watch      bool          `yaml:"watch"`       // Reload the level pack when the file changes
	Glyphs     SokobanGlyphs `yaml:"glyphs"`
}

// SokobanGlyphs defines how tiles are drawn. Each glyph fills one
// two-column cell; shorter strings are padded with spaces.
type SokobanGlyphs struct {
	Wall         string `yaml:"wall"`
	Floor        string `yaml:"floor"`
	Goal         string `yaml:"goal"`
	Box          string `yaml:"box"`
	BoxOnGoal    string `yaml:"box_on_goal"`
	Player       string `yaml:"player"`
	PlayerOnGoal string `yaml:"player_on_goal"`
}

// MinesweeperConfig contains all configuration for Minesweeper.
type MinesweeperConfig struct {
	Default string                 `yaml:"default"` // Preset used when none is chosen
	Presets map[string]BoardPreset `yaml:"presets"`
}

// BoardPreset defines a Minesweeper board size.
type BoardPreset struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// Valid reports whether the preset describes a playable board.
func (p BoardPreset) Valid() bool {
	return p.Width > 0 && p.Height > 0 && p.Mines > 0 && p.Mines < p.Width*p.Height
}

// PresetNames returns preset names ordered from smallest to largest board.
func (c MinesweeperConfig) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := c.Presets[names[i]], c.Presets[names[j]]
		if a.Width*a.Height != b.Width*b.Height {
			return a.Width*a.Height < b.Width*b.Height
		}
		return names[i] < names[j]
	})
	return names
}

// Preset returns the named preset, falling back to the default one.
func (c MinesweeperConfig) Preset(name string) (string, BoardPreset) {
	if p, ok := c.Presets[name]; ok && p.Valid() {
		return name, p
	}
	if p, ok := c.Presets[c.Default]; ok && p.Valid() {
		return c.Default, p
	}
	return "beginner", BoardPreset{Width: 9, Height: 9, Mines: 10}
}

// AsteroidsConfig contains all configuration for Asteroids.
// Distances are in world units: one unit is a terminal column, and a
// terminal row is two units tall.
type AsteroidsConfig struct {
	Ship       AsteroidsShip    `yaml:"ship"`
	Bullets    AsteroidsBullets `yaml:"bullets"`
	Asteroids  AsteroidsField   `yaml:"asteroids"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// AsteroidsShip defines the player ship.
type AsteroidsShip struct {
	Scale        float64 `yaml:"scale"`
	RotationStep float64 `yaml:"rotation_step"` // Degrees per key press
	Thrust       float64 `yaml:"thrust"`        // Velocity added per key press, units/s
	MaxSpeed     float64 `yaml:"max_speed"`     // units/s
	Drag         float64 `yaml:"drag"`          // Fraction of velocity lost per second
	FireCooldown float64 `yaml:"fire_cooldown"` // Seconds between shots
	Lives        int     `yaml:"lives"`
	Invulnerable float64 `yaml:"invulnerable"` // Seconds of grace after respawn
}

// AsteroidsBullets defines projectiles.
type AsteroidsBullets struct {
	Speed    float64 `yaml:"speed"`    // units/s
	Lifetime float64 `yaml:"lifetime"` // Seconds
	Wrap     bool    `yaml:"wrap"`     // Wrap around screen edges instead of leaving
	Max      int     `yaml:"max"`      // Maximum bullets in flight
}

// AsteroidsField defines asteroid sizes and waves.
type AsteroidsField struct {
	InitialCount  int           `yaml:"initial_count"`
	WaveIncrement int           `yaml:"wave_increment"`
	Fragments     int           `yaml:"fragments"` // Pieces a non-small asteroid splits into
	Small         AsteroidClass `yaml:"small"`
	Medium        AsteroidClass `yaml:"medium"`
	Large         AsteroidClass `yaml:"large"`
}

// AsteroidClass defines one asteroid size.
type AsteroidClass struct {
	Scale float64 `yaml:"scale"`
	Speed float64 `yaml:"speed"` // units/s
	Score int     `yaml:"score"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", "wave", or "none"
	MaxAt int    `yaml:"max_at"` // Score, ticks or waves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	CountIncrease   int     `yaml:"count_increase"`   // Extra asteroids per wave at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a flag value to a preset. The empty string
// and unknown names yield "" which leaves the config untouched.
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
