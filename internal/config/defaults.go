package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Track: RunnerTrack{
			Lanes:         []float64{-6.0, 0.0, 6.0},
			LaneWidth:     6.0,
			SpawnInterval: 0.5,
			SpawnDepth:    -150.0,
			CullDepth:     20.0,
			Kinds:         []string{"cube", "pyramid", "block", "laser_gate"},
		},
		Collision: RunnerCollision{
			Window:        1.0,
			LateralMargin: 1.0,
			HighThreshold: -0.5,
		},
		Player: RunnerPlayer{
			GroundY:   -2.0,
			JumpPower: 0.55,
			Gravity:   0.03,
			LerpSpeed: 10.0,
		},
		Game: RunnerGame{
			BaseSpeed:          50.0,
			ScoreRate:          0.1,
			TrackScrollDivisor: 22.0,
			MenuScrollRate:     0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default runner YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
