package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on
// score or elapsed frames.
func (d *DifficultyManager) Level(score int, frames int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(frames) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Gravity returns the scaled gravity for the current difficulty level.
func (d *DifficultyManager) Gravity(base float64, score int, frames int) float64 {
	level := d.Level(score, frames)
	return base * (1.0 + level*d.cfg.Scaling.GravityMultiplier)
}

// SpawnIntervalMS returns the scaled spawn throttle for the current
// difficulty level. Harder levels refill the field faster.
func (d *DifficultyManager) SpawnIntervalMS(baseMS int, score int, frames int) int {
	level := d.Level(score, frames)
	reduced := float64(baseMS) * (1.0 - level*d.cfg.Scaling.SpawnSpeedup)
	if reduced < 100 { // Never spawn faster than 10/s
		reduced = 100
	}
	return int(reduced)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
