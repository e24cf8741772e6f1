// Package headless drives games without a terminal: a clocked session that
// records input edges, a scripted step loop, an autopilot, and journal replay.
package headless

import (
	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/registry"
	"github.com/vovakirdan/void-runner/internal/storage"
)

// Journaled is implemented by games whose runs can be journaled and replayed.
type Journaled interface {
	RunSeed() int64
	Distance() float64
	SpawnCount() int
	ConfigYAML() (string, error)
}

// RunEndFunc receives a finished, replayable run.
type RunEndFunc func(rec storage.RunRecord, inputs []storage.InputEdge)

// Session owns one game, its clock and the recorder of the current run.
// A session is driven from a single goroutine.
type Session struct {
	game     registry.Game
	clock    core.Clock
	tickRate int // 0 for wall-clock sessions, which are not replayable
	rec      Recorder
	onRunEnd RunEndFunc
}

// NewSession resets the game and picks the clock from the runtime config:
// monotonic when Realtime is set, otherwise a fixed 1/TickRate step.
func NewSession(game registry.Game, cfg core.RuntimeConfig) *Session {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	game.Reset(cfg)

	s := &Session{game: game}
	if cfg.Realtime {
		s.clock = core.NewMonotonicClock()
	} else {
		s.clock = core.NewFixedClock(cfg.TickRate)
		s.tickRate = cfg.TickRate
	}
	return s
}

// OnRunEnd registers a callback for runs that end in a collision.
// It only fires for fixed-step sessions.
func (s *Session) OnRunEnd(fn RunEndFunc) {
	s.onRunEnd = fn
}

// Game returns the session's game.
func (s *Session) Game() registry.Game {
	return s.game
}

// Replayable reports whether runs of this session can be journaled.
func (s *Session) Replayable() bool {
	_, ok := s.game.(Journaled)
	return s.tickRate > 0 && ok
}

// Step samples the clock and advances the game by one frame.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	dt := core.SanitizeDelta(s.clock.Delta())
	res := s.game.Step(dt, in)
	s.rec.Observe(in, res)

	if res.Collided && s.onRunEnd != nil && s.Replayable() {
		if rec, ok := s.Record(res.HitKind); ok {
			s.onRunEnd(rec, s.rec.Edges())
		}
	}
	return res
}

// Record builds the journal record of the current run.
func (s *Session) Record(hitKind string) (storage.RunRecord, bool) {
	j, ok := s.game.(Journaled)
	if !ok || s.tickRate <= 0 {
		return storage.RunRecord{}, false
	}
	cfgYAML, err := j.ConfigYAML()
	if err != nil {
		return storage.RunRecord{}, false
	}
	return storage.RunRecord{
		GameID:     s.game.ID(),
		Seed:       j.RunSeed(),
		TickRate:   s.tickRate,
		Frames:     s.rec.Frames(),
		Distance:   j.Distance(),
		Spawned:    j.SpawnCount(),
		HitKind:    hitKind,
		ConfigYAML: cfgYAML,
	}, true
}
