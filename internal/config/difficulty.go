package config

// SpeedRamp maps run progress to scroll speed. The ramp starts at the
// initial level and climbs linearly to the top once progress reaches MaxAt.
type SpeedRamp struct {
	cfg   DifficultyConfig
	start float64 // Level at zero progress, in [0, 1]
}

// NewSpeedRamp creates a ramp for the given difficulty settings.
func NewSpeedRamp(cfg DifficultyConfig) *SpeedRamp {
	r := &SpeedRamp{cfg: cfg}
	r.SetInitialLevel(cfg.InitialLevel)
	return r
}

// SetInitialLevel moves the bottom of the ramp. Values outside [0, 1] are clamped.
func (r *SpeedRamp) SetInitialLevel(level float64) {
	r.start = unit(level)
}

// IsEnabled reports whether speed changes during a run.
func (r *SpeedRamp) IsEnabled() bool {
	if !r.cfg.Enabled {
		return false
	}
	switch r.cfg.Progression.Type {
	case "score", "time":
		return true
	}
	return false
}

// Level returns the ramp position in [0, 1] for a run that has scored
// score points after seconds of running.
func (r *SpeedRamp) Level(score int, seconds float64) float64 {
	if !r.IsEnabled() {
		return r.start
	}

	progress := float64(score)
	if r.cfg.Progression.Type == "time" {
		progress = seconds
	}

	maxAt := r.cfg.Progression.MaxAt
	if maxAt <= 0 {
		return 1
	}
	return r.start + unit(progress/maxAt)*(1-r.start)
}

// Speed scales base by the level: base at level 0, base*(1+multiplier) at 1.
func (r *SpeedRamp) Speed(base float64, score int, seconds float64) float64 {
	return base * (1 + r.Level(score, seconds)*r.cfg.Scaling.SpeedMultiplier)
}

// unit clamps v to [0, 1].
func unit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
