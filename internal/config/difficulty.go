package config

import "math"

// Progress is the state of a round that difficulty is measured against.
type Progress struct {
	Score int
	Ticks int
	Wave  int // 1-based
}

// DifficultyManager scales speeds and spawn counts as a round progresses.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// Progressive reports whether the level grows during a round.
func (d *DifficultyManager) Progressive() bool {
	switch d.cfg.Progression.Type {
	case "score", "time", "wave":
		return d.cfg.Enabled
	}
	return false
}

// Level returns the difficulty level in [initial, 1.0] for the round's
// progress. Without progression it stays at the initial level.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.Progressive() {
		return d.initialLevel
	}

	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))

	var reached float64
	switch d.cfg.Progression.Type {
	case "score":
		reached = float64(p.Score)
	case "time":
		reached = float64(p.Ticks)
	case "wave":
		reached = float64(max(p.Wave-1, 0))
	}

	progress := clampF(reached/maxAt, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed scales base from base to base * (1 + SpeedMultiplier).
func (d *DifficultyManager) Speed(base float64, p Progress) float64 {
	return base * (1.0 + d.Level(p)*d.cfg.Scaling.SpeedMultiplier)
}

// Count grows base by up to CountIncrease extra objects.
func (d *DifficultyManager) Count(base int, p Progress) int {
	return base + int(d.Level(p)*float64(d.cfg.Scaling.CountIncrease))
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
