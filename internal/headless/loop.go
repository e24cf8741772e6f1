package headless

import (
	"context"

	"github.com/vovakirdan/void-runner/internal/core"
)

// Script supplies the input of a frame. Frame 0 is the session's first step.
type Script func(frame int) core.InputFrame

// StartThen returns a script that confirms on frame 0 and then defers to next,
// renumbered so next sees the run's frame 0.
func StartThen(next Script) Script {
	return func(frame int) core.InputFrame {
		if frame == 0 {
			return core.FrameOf(core.ActionConfirm)
		}
		if next == nil {
			return core.NewInputFrame()
		}
		return next(frame - 1)
	}
}

// Run steps the session until a started run ends, maxFrames steps elapse, or
// ctx is cancelled. It returns the last step result and the steps taken.
func Run(ctx context.Context, s *Session, script Script, maxFrames int) (core.StepResult, int, error) {
	var res core.StepResult
	started := false
	for frame := 0; maxFrames <= 0 || frame < maxFrames; frame++ {
		if err := ctx.Err(); err != nil {
			return res, frame, err
		}
		in := core.NewInputFrame()
		if script != nil {
			in = script(frame)
		}
		res = s.Step(in)
		if res.Started {
			started = true
		}
		if started && res.State.GameOver {
			return res, frame + 1, nil
		}
	}
	return res, maxFrames, nil
}
