package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/void-runner/internal/core"
)

func defaultPhysics() Physics {
	return PhysicsFromConfig(fixedConfig())
}

func TestJumpTakesOffOnlyFromGround(t *testing.T) {
	p := defaultPhysics()
	s := NewRunnerState(p)

	s.ApplyInput(InputState{Jump: true}, p)
	require.True(t, s.Airborne)
	assert.Equal(t, 0.55, s.VerticalVelocity)

	s.Update(1.0/60, p)
	assert.InDelta(t, 0.52, s.VerticalVelocity, 1e-9)
	assert.InDelta(t, -2.0+0.52, s.Y, 1e-9)

	// A second jump mid-air is ignored
	s.ApplyInput(InputState{Jump: true}, p)
	assert.InDelta(t, 0.52, s.VerticalVelocity, 1e-9)
}

func TestJumpLandsOnGround(t *testing.T) {
	p := defaultPhysics()
	s := NewRunnerState(p)
	s.ApplyInput(InputState{Jump: true}, p)

	peak := s.Y
	frames := 0
	for s.Airborne && frames < 1000 {
		s.Update(1.0/60, p)
		if s.Y > peak {
			peak = s.Y
		}
		frames++
	}

	require.False(t, s.Airborne)
	assert.Equal(t, p.GroundY, s.Y)
	assert.Zero(t, s.VerticalVelocity)
	assert.Greater(t, peak, -0.5, "a jump clears the laser threshold")
	assert.InDelta(t, 37, frames, 1)
}

func TestShiftLaneClamps(t *testing.T) {
	var s RunnerState
	s.ShiftLane(-1)
	s.ShiftLane(-1)
	assert.Equal(t, MinLane, s.Lane)
	s.ShiftLane(1)
	s.ShiftLane(1)
	s.ShiftLane(1)
	assert.Equal(t, MaxLane, s.Lane)
}

func TestLaneLerp(t *testing.T) {
	p := defaultPhysics()
	s := NewRunnerState(p)
	s.ApplyInput(InputState{LaneDelta: 1}, p)

	s.Update(0.05, p)
	assert.InDelta(t, 3.0, s.X, 1e-9, "half way at lerp*dt = 0.5")

	for i := 0; i < 200; i++ {
		s.Update(1.0/60, p)
	}
	assert.InDelta(t, 6.0, s.X, 1e-6)
	assert.Equal(t, p.GroundY, s.Y, "lateral motion leaves height alone")
}

func TestInputFromFrame(t *testing.T) {
	assert.Equal(t, InputState{Jump: true, LaneDelta: -1},
		InputFromFrame(core.FrameOf(core.ActionJump, core.ActionLeft)))
	assert.Equal(t, InputState{}, InputFromFrame(core.FrameOf(core.ActionLeft, core.ActionRight)))
	assert.Equal(t, InputState{LaneDelta: 1}, InputFromFrame(core.FrameOf(core.ActionRight, core.ActionPause)))
}
