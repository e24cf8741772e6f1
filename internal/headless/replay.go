package headless

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/games/runner"
	"github.com/vovakirdan/void-runner/internal/storage"
)

// ErrNotReplayable is returned for runs without a fixed step rate.
var ErrNotReplayable = errors.New("headless: run was not recorded at a fixed step")

// ReplayResult compares a re-simulated run with its journal record.
type ReplayResult struct {
	Frames   int
	Distance float64
	Spawned  int
	HitKind  string
	Match    bool
}

// EdgeScript turns journaled input edges back into per-frame input.
func EdgeScript(edges []storage.InputEdge) Script {
	byFrame := make(map[int]core.InputFrame)
	for _, e := range edges {
		f, ok := byFrame[e.Frame]
		if !ok {
			f = core.NewInputFrame()
		}
		if a := core.ParseAction(e.Action); a != core.ActionNone {
			f.Set(a)
		}
		byFrame[e.Frame] = f
	}
	return func(frame int) core.InputFrame {
		if f, ok := byFrame[frame]; ok {
			return f
		}
		return core.NewInputFrame()
	}
}

// NewReplaySession rebuilds the game and session a journaled run was played
// with. Driving it with StartThen(EdgeScript(edges)) reproduces the run.
func NewReplaySession(rec storage.RunRecord) (*runner.Game, *Session, error) {
	if rec.TickRate <= 0 {
		return nil, nil, ErrNotReplayable
	}

	cfg := config.DefaultRunnerConfig()
	if rec.ConfigYAML != "" {
		parsed, err := config.ParseRunner([]byte(rec.ConfigYAML))
		if err != nil {
			return nil, nil, fmt.Errorf("headless: journaled config: %w", err)
		}
		cfg = parsed
	}
	g, err := runner.NewWithConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("headless: journaled config: %w", err)
	}

	rt := core.DefaultConfig()
	rt.TickRate = rec.TickRate
	rt.Seed = rec.Seed
	return g, NewSession(g, rt), nil
}

// Replay re-simulates a journaled run from its seed, config and input edges.
func Replay(ctx context.Context, rec storage.RunRecord, edges []storage.InputEdge) (ReplayResult, error) {
	g, s, err := NewReplaySession(rec)
	if err != nil {
		return ReplayResult{}, err
	}

	// One start frame plus the recorded frames
	res, _, err := Run(ctx, s, StartThen(EdgeScript(edges)), rec.Frames+1)
	if err != nil {
		return ReplayResult{}, err
	}

	out := ReplayResult{
		Frames:   s.rec.Frames(),
		Distance: g.Distance(),
		Spawned:  g.SpawnCount(),
	}
	if hit, ok := g.Hit(); ok {
		out.HitKind = hit.Kind.String()
	}
	out.Match = res.State.GameOver &&
		out.Frames == rec.Frames &&
		out.Distance == rec.Distance &&
		out.Spawned == rec.Spawned &&
		out.HitKind == rec.HitKind
	return out, nil
}
