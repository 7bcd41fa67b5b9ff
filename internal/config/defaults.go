package config

import (
	_ "embed"
)

//go:embed defaults/catchball.yaml
var defaultCatchballYAML []byte

// DefaultCatchballConfig returns the default game configuration.
// These values define the reference feel of the game at 30 tracking
// frames per second; the embedded YAML mirrors them.
func DefaultCatchballConfig() CatchballConfig {
	return CatchballConfig{
		Physics: PhysicsConfig{
			Gravity:    0.004,
			BallRadius: 0.035,
			HandRadius: 0.1,
		},
		Throw: ThrowConfig{
			Threshold:  -0.035,
			CooldownMS: 300,
			Damping:    0.9,
			Pop:        -0.015,
			Jitter:     0.01,
		},
		Session: SessionConfig{
			TargetBalls: 3,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				GravityMultiplier: 0.5,
				SpawnSpeedup:      0.4,
			},
		},
		Coach: CoachConfig{
			Endpoint:  "",
			Model:     "gpt-4o-mini",
			APIKeyEnv: "CATCHBALL_COACH_API_KEY",
			TimeoutMS: 5000,
		},
	}
}
