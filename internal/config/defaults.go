package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultSokobanConfig returns the default Sokoban configuration.
func DefaultSokobanConfig() SokobanConfig {
	return SokobanConfig{
		Glyphs: DefaultSokobanGlyphs(),
	}
}

// DefaultSokobanGlyphs returns the default tile glyphs.
func DefaultSokobanGlyphs() SokobanGlyphs {
	return SokobanGlyphs{
		Wall:         "██",
		Floor:        "  ",
		Goal:         "()",
		Box:          "[]",
		BoxOnGoal:    "[]",
		Player:       "@",
		PlayerOnGoal: "@",
	}
}

// DefaultMinesweeperConfig returns the default Minesweeper configuration.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Default: "beginner",
		Presets: map[string]BoardPreset{
			"beginner":     {Width: 9, Height: 9, Mines: 10},
			"intermediate": {Width: 16, Height: 16, Mines: 40},
			"advanced":     {Width: 24, Height: 24, Mines: 99},
		},
	}
}

// DefaultAsteroidsConfig returns the default Asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Ship: AsteroidsShip{
			Scale:        2.0,
			RotationStep: 15,
			Thrust:       6.0,
			MaxSpeed:     30.0,
			Drag:         0.5,
			FireCooldown: 0.25,
			Lives:        3,
			Invulnerable: 2.0,
		},
		Bullets: AsteroidsBullets{
			Speed:    40.0,
			Lifetime: 1.5,
			Wrap:     true,
			Max:      8,
		},
		Asteroids: AsteroidsField{
			InitialCount:  4,
			WaveIncrement: 1,
			Fragments:     3,
			Small:         AsteroidClass{Scale: 2.0, Speed: 14.0, Score: 100},
			Medium:        AsteroidClass{Scale: 3.0, Speed: 10.0, Score: 50},
			Large:         AsteroidClass{Scale: 5.0, Speed: 5.0, Score: 20},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				CountIncrease:   3,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "sokoban":
		return defaultSokobanYAML
	case "minesweeper":
		return defaultMinesweeperYAML
	case "asteroids":
		return defaultAsteroidsYAML
	default:
		return nil
	}
}
