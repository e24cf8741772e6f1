package headless

import (
	"math"

	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/games/runner"
)

// lookAhead is how far down the track the autopilot reacts to obstacles.
const lookAhead = 30.0

// Autopilot returns a script that steers the runner: it dodges solid
// obstacles by changing lane and jumps laser gates shortly before they arrive.
func Autopilot(g *runner.Game) Script {
	return func(int) core.InputFrame {
		in := core.NewInputFrame()
		if g.Phase() != core.PhasePlaying {
			return in
		}

		st := g.Runner()
		width := g.Config().Track.LaneWidth
		threat := func(lane int, jumpable bool) bool {
			x := float64(lane) * width
			for _, o := range g.Obstacles() {
				if o.Depth < -lookAhead || o.Depth > 1 {
					continue
				}
				if math.Abs(o.Lane-x) >= width/2 {
					continue
				}
				if jumpable && o.Kind == runner.KindLaserGate {
					continue
				}
				return true
			}
			return false
		}

		if threat(st.Lane, true) {
			for _, d := range []int{-1, 1} {
				next := st.Lane + d
				if next < runner.MinLane || next > runner.MaxLane {
					continue
				}
				if !threat(next, true) {
					if d < 0 {
						in.Set(core.ActionLeft)
					} else {
						in.Set(core.ActionRight)
					}
					return in
				}
			}
		}

		// Take off when a gate in our lane is close
		for _, o := range g.Obstacles() {
			if o.Kind == runner.KindLaserGate && o.Depth > -12 && o.Depth < -4 &&
				math.Abs(o.Lane-st.X) < width/2 {
				in.Set(core.ActionJump)
				break
			}
		}
		return in
	}
}
