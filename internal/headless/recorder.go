package headless

import (
	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/storage"
)

// Recorder collects the input edges of the current run. Frame 0 is the first
// step after the one that started the run.
type Recorder struct {
	active bool
	frame  int
	edges  []storage.InputEdge
}

// Observe records one step. Driver-level actions (quit, back) are skipped.
func (r *Recorder) Observe(in core.InputFrame, res core.StepResult) {
	if res.Started {
		r.active = true
		r.frame = 0
		r.edges = r.edges[:0]
		return
	}
	if !r.active {
		return
	}

	for _, a := range in.List() {
		if a == core.ActionQuit || a == core.ActionBack {
			continue
		}
		r.edges = append(r.edges, storage.InputEdge{Frame: r.frame, Action: a.Name()})
	}
	r.frame++

	if res.State.GameOver {
		r.active = false
	}
}

// Active reports whether a run is being recorded.
func (r *Recorder) Active() bool {
	return r.active
}

// Frames returns the number of recorded steps of the current run.
func (r *Recorder) Frames() int {
	return r.frame
}

// Edges returns a copy of the recorded edges.
func (r *Recorder) Edges() []storage.InputEdge {
	out := make([]storage.InputEdge, len(r.edges))
	copy(out, r.edges)
	return out
}
