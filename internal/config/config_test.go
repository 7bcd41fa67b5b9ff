package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCatchballEmbeddedDefault(t *testing.T) {
	// Run from a temp dir so no local configs/ directory interferes.
	t.Chdir(t.TempDir())

	cfg, err := LoadCatchball("")
	if err != nil {
		t.Fatalf("LoadCatchball(\"\") failed: %v", err)
	}

	want := DefaultCatchballConfig()
	if cfg.Physics.Gravity != want.Physics.Gravity {
		t.Errorf("embedded gravity = %f, expected %f", cfg.Physics.Gravity, want.Physics.Gravity)
	}
	if cfg.Throw.CooldownMS != want.Throw.CooldownMS {
		t.Errorf("embedded cooldown = %d, expected %d", cfg.Throw.CooldownMS, want.Throw.CooldownMS)
	}
	if cfg.Session.TargetBalls != want.Session.TargetBalls {
		t.Errorf("embedded target_balls = %d, expected %d", cfg.Session.TargetBalls, want.Session.TargetBalls)
	}
}

func TestLoadCatchballCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("physics:\n  gravity: 0.01\nsession:\n  target_balls: 7\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadCatchball(path)
	if err != nil {
		t.Fatalf("LoadCatchball(custom) failed: %v", err)
	}
	if cfg.Physics.Gravity != 0.01 {
		t.Errorf("gravity = %f, expected 0.01", cfg.Physics.Gravity)
	}
	if cfg.Session.TargetBalls != 7 {
		t.Errorf("target_balls = %d, expected 7", cfg.Session.TargetBalls)
	}

	// Missing custom path is an error, not a silent fallback
	if _, err := LoadCatchball(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestApplyCatchballPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultCatchballConfig()
			ApplyCatchballPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if tc.enabled && cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("initial level = %f, expected %f", cfg.Difficulty.InitialLevel, tc.level)
			}
		})
	}
}

func TestDifficultyManagerLevel(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{GravityMultiplier: 0.5, SpawnSpeedup: 0.4},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Level(0, 0); got != 0.0 {
		t.Errorf("Level(0) = %f, expected 0", got)
	}
	if got := d.Level(50, 0); got != 0.5 {
		t.Errorf("Level(50) = %f, expected 0.5", got)
	}
	if got := d.Level(500, 0); got != 1.0 {
		t.Errorf("Level(500) = %f, expected 1 (clamped)", got)
	}
}

func TestDifficultyManagerScaling(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:      ScalingConfig{GravityMultiplier: 0.5, SpawnSpeedup: 0.4},
	}
	d := NewDifficultyManager(cfg)

	// At max difficulty gravity gains the full multiplier
	if got := d.Gravity(0.004, 100, 0); got != 0.006 {
		t.Errorf("Gravity at max = %f, expected 0.006", got)
	}
	// And the spawn interval shrinks by the speedup fraction
	if got := d.SpawnIntervalMS(500, 100, 0); got != 300 {
		t.Errorf("SpawnIntervalMS at max = %d, expected 300", got)
	}
	// The spawn interval never goes below the floor
	if got := d.SpawnIntervalMS(110, 100, 0); got != 100 {
		t.Errorf("SpawnIntervalMS floor = %d, expected 100", got)
	}
}

func TestDifficultyManagerDisabled(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.7,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
	}
	d := NewDifficultyManager(cfg)

	if d.IsEnabled() {
		t.Error("manager should be disabled")
	}
	// Disabled progression pins the level at the initial value
	if got := d.Level(1000, 1000); got != 0.7 {
		t.Errorf("Level while disabled = %f, expected 0.7", got)
	}
}
