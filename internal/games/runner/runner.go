package runner

import (
	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
)

// Lane bounds of the runner.
const (
	MinLane = -1
	MaxLane = 1
)

// RunnerState is the player's lane, position and jump state.
type RunnerState struct {
	Lane             int     // -1, 0 or 1
	X                float64 // Lerps toward Lane * lane width
	Y                float64 // Ground level when grounded
	VerticalVelocity float64
	Airborne         bool
}

// InputState is the runner-relevant input of one frame.
type InputState struct {
	Jump      bool
	LaneDelta int // -1, 0 or +1
}

// InputFromFrame extracts jump and lane-change edges from an input frame.
// Left and right in the same frame cancel out.
func InputFromFrame(f core.InputFrame) InputState {
	in := InputState{Jump: f.Has(core.ActionJump)}
	if f.Has(core.ActionLeft) {
		in.LaneDelta--
	}
	if f.Has(core.ActionRight) {
		in.LaneDelta++
	}
	return in
}

// Physics holds the runner motion constants.
type Physics struct {
	GroundY   float64
	JumpPower float64
	Gravity   float64
	LerpSpeed float64
	LaneWidth float64
}

// PhysicsFromConfig builds the runner physics from a config.
func PhysicsFromConfig(cfg config.RunnerConfig) Physics {
	return Physics{
		GroundY:   cfg.Player.GroundY,
		JumpPower: cfg.Player.JumpPower,
		Gravity:   cfg.Player.Gravity,
		LerpSpeed: cfg.Player.LerpSpeed,
		LaneWidth: cfg.Track.LaneWidth,
	}
}

// NewRunnerState returns a grounded runner in the center lane.
func NewRunnerState(p Physics) RunnerState {
	return RunnerState{Y: p.GroundY}
}

// Pos returns the position the collision test reads.
func (s RunnerState) Pos() PlayerPos {
	return PlayerPos{X: s.X, Y: s.Y}
}

// ShiftLane moves one lane per edge; moves past the outer lanes are ignored.
func (s *RunnerState) ShiftLane(delta int) {
	s.Lane = core.Clamp(s.Lane+delta, MinLane, MaxLane)
}

// ApplyInput applies lane-change and jump edges. A jump only takes off
// from the ground.
func (s *RunnerState) ApplyInput(in InputState, p Physics) {
	if in.LaneDelta != 0 {
		s.ShiftLane(in.LaneDelta)
	}
	if in.Jump && !s.Airborne {
		s.VerticalVelocity = p.JumpPower
		s.Airborne = true
	}
}

// Update integrates one frame. Gravity is a fixed per-frame decrement;
// lateral motion approaches the lane target scaled by dt.
func (s *RunnerState) Update(dt float64, p Physics) {
	if s.Airborne {
		s.VerticalVelocity -= p.Gravity
		s.Y += s.VerticalVelocity
		if s.Y <= p.GroundY {
			s.Y = p.GroundY
			s.VerticalVelocity = 0
			s.Airborne = false
		}
	}

	target := float64(s.Lane) * p.LaneWidth
	s.X += (target - s.X) * p.LerpSpeed * dt
}
