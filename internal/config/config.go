// Package config provides YAML-based configuration loading and difficulty
// management for the catchball engine and its surrounding services.
package config

// CatchballConfig contains all tunable parameters for the game.
// Values are in normalized playfield units per frame unless noted.
type CatchballConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Throw      ThrowConfig      `yaml:"throw"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Coach      CoachConfig      `yaml:"coach"`
}

// PhysicsConfig defines free-fall and interaction parameters.
type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity"`     // downward acceleration per frame
	BallRadius float64 `yaml:"ball_radius"` // normalized ball radius
	HandRadius float64 `yaml:"hand_radius"` // hand capture diameter for the catch test
}

// ThrowConfig defines the throw gesture parameters.
type ThrowConfig struct {
	Threshold  float64 `yaml:"threshold"`   // hand vy must be below this (negative, moving up)
	CooldownMS int     `yaml:"cooldown_ms"` // minimum gap between throws per hand
	Damping    float64 `yaml:"damping"`     // fraction of hand velocity given to the ball
	Pop        float64 `yaml:"pop"`         // fixed upward bias added on release
	Jitter     float64 `yaml:"jitter"`      // max random horizontal velocity on release
}

// SessionConfig defines session-level parameters.
type SessionConfig struct {
	TargetBalls int `yaml:"target_balls"` // balls kept in play, clamped to [1,15]
}

// CoachConfig defines the AI coach collaborator settings.
// The coach is strictly optional; an empty endpoint disables it.
type CoachConfig struct {
	Endpoint  string `yaml:"endpoint"`    // chat-completion HTTP endpoint
	Model     string `yaml:"model"`       // model identifier sent to the endpoint
	APIKeyEnv string `yaml:"api_key_env"` // env var holding the API key
	TimeoutMS int    `yaml:"timeout_ms"`  // per-request timeout
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score/frames at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	GravityMultiplier float64 `yaml:"gravity_multiplier"` // extra gravity fraction at max difficulty
	SpawnSpeedup      float64 `yaml:"spawn_speedup"`      // fraction shaved off the spawn interval at max
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

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

// ApplyCatchballPreset modifies the config based on a difficulty preset.
func ApplyCatchballPreset(cfg *CatchballConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
