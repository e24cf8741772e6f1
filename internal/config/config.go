// Package config provides YAML-based runner configuration loading,
// validation and difficulty management.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all configuration for the endless runner.
type RunnerConfig struct {
	Track      RunnerTrack      `yaml:"track"`
	Collision  RunnerCollision  `yaml:"collision"`
	Player     RunnerPlayer     `yaml:"player"`
	Game       RunnerGame       `yaml:"game"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RunnerTrack defines the lane layout and the obstacle spawn/cull window.
type RunnerTrack struct {
	Lanes         []float64 `yaml:"lanes"`          // Lateral world x of each obstacle lane
	LaneWidth     float64   `yaml:"lane_width"`     // Runner x target = lane index * width
	SpawnInterval float64   `yaml:"spawn_interval"` // Seconds between spawns
	SpawnDepth    float64   `yaml:"spawn_depth"`    // Depth new obstacles start at
	CullDepth     float64   `yaml:"cull_depth"`     // Obstacles at or past this depth are removed
	Kinds         []string  `yaml:"kinds"`          // Enabled obstacle kinds
}

// RunnerCollision defines the proximity test thresholds.
type RunnerCollision struct {
	Window        float64 `yaml:"window"`         // Half-width of the depth window around the player
	LateralMargin float64 `yaml:"lateral_margin"` // Lateral separation below which lanes overlap
	HighThreshold float64 `yaml:"high_threshold"` // Laser gates only hit a runner below this height
}

// RunnerPlayer defines the runner's vertical and lateral motion.
type RunnerPlayer struct {
	GroundY   float64 `yaml:"ground_y"`
	JumpPower float64 `yaml:"jump_power"` // Upward velocity per frame at takeoff
	Gravity   float64 `yaml:"gravity"`    // Velocity decrement per frame while airborne
	LerpSpeed float64 `yaml:"lerp_speed"` // Lateral approach rate per second
}

// RunnerGame defines scoring and scrolling.
type RunnerGame struct {
	BaseSpeed          float64 `yaml:"base_speed"`           // Scroll speed in units/second
	ScoreRate          float64 `yaml:"score_rate"`           // Score per unit scrolled
	TrackScrollDivisor float64 `yaml:"track_scroll_divisor"` // Texture offset = distance / divisor
	MenuScrollRate     float64 `yaml:"menu_scroll_rate"`     // Texture offset per second on the title screen
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives the speed ramp.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "score", "time" or "none"
	MaxAt float64 `yaml:"max_at"` // Score, or seconds of running, at the top of the ramp
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// Validation errors.
var (
	ErrNoLanes = errors.New("config: track has no lanes")
	ErrNoKinds = errors.New("config: track has no obstacle kinds")
)

// Validate checks that the config can drive a simulation. Empty lane or kind
// tables are rejected since every spawn picks one element of each.
func (c RunnerConfig) Validate() error {
	if len(c.Track.Lanes) == 0 {
		return ErrNoLanes
	}
	if len(c.Track.Kinds) == 0 {
		return ErrNoKinds
	}
	if c.Track.SpawnInterval <= 0 {
		return fmt.Errorf("config: spawn_interval must be positive, got %v", c.Track.SpawnInterval)
	}
	if c.Track.CullDepth <= c.Track.SpawnDepth {
		return fmt.Errorf("config: cull_depth %v must be past spawn_depth %v", c.Track.CullDepth, c.Track.SpawnDepth)
	}
	if c.Track.LaneWidth <= 0 {
		return fmt.Errorf("config: lane_width must be positive, got %v", c.Track.LaneWidth)
	}
	if c.Collision.Window <= 0 || c.Collision.LateralMargin <= 0 {
		return fmt.Errorf("config: collision window and lateral_margin must be positive")
	}
	if c.Player.Gravity <= 0 || c.Player.JumpPower <= 0 {
		return fmt.Errorf("config: gravity and jump_power must be positive")
	}
	if c.Game.BaseSpeed <= 0 {
		return fmt.Errorf("config: base_speed must be positive, got %v", c.Game.BaseSpeed)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown values return "".
func ParsePreset(s string) DifficultyPreset {
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
