package headless

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/games/runner"
	"github.com/vovakirdan/void-runner/internal/storage"
)

func newRunner(t *testing.T) *runner.Game {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	g, err := runner.NewWithConfig(cfg)
	require.NoError(t, err)
	return g
}

func runtimeCfg(seed int64) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.Seed = seed
	return rt
}

func TestRecorderSkipsStartFrameAndDriverActions(t *testing.T) {
	var r Recorder
	playing := core.StepResult{State: core.GameState{Phase: core.PhasePlaying}}

	r.Observe(core.FrameOf(core.ActionJump), core.StepResult{})
	assert.False(t, r.Active(), "menu frames are not recorded")

	r.Observe(core.FrameOf(core.ActionConfirm), core.StepResult{Started: true})
	require.True(t, r.Active())

	r.Observe(core.FrameOf(core.ActionLeft, core.ActionJump), playing)
	r.Observe(core.FrameOf(core.ActionQuit), playing)
	r.Observe(core.NewInputFrame(), core.StepResult{Collided: true, State: core.GameState{GameOver: true}})

	assert.False(t, r.Active())
	assert.Equal(t, 3, r.Frames())
	assert.Equal(t, []storage.InputEdge{
		{Frame: 0, Action: "left"},
		{Frame: 0, Action: "jump"},
	}, r.Edges())
}

func TestRunStopsAtGameOver(t *testing.T) {
	s := NewSession(newRunner(t), runtimeCfg(9))
	res, steps, err := Run(context.Background(), s, StartThen(nil), 5000)
	require.NoError(t, err)
	assert.True(t, res.State.GameOver)
	assert.Less(t, steps, 5000)
}

func TestRunHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewSession(newRunner(t), runtimeCfg(1))
	_, steps, err := Run(ctx, s, StartThen(nil), 100)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, steps)
}

func TestAutopilotOutlastsIdleRunner(t *testing.T) {
	idle := NewSession(newRunner(t), runtimeCfg(21))
	_, idleSteps, err := Run(context.Background(), idle, StartThen(nil), 20000)
	require.NoError(t, err)

	g := newRunner(t)
	auto := NewSession(g, runtimeCfg(21))
	_, autoSteps, err := Run(context.Background(), auto, StartThen(Autopilot(g)), 20000)
	require.NoError(t, err)

	assert.Greater(t, autoSteps, idleSteps)
}

func TestJournalAndReplay(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	g := newRunner(t)
	s := NewSession(g, runtimeCfg(77))
	var saved int64
	s.OnRunEnd(func(rec storage.RunRecord, edges []storage.InputEdge) {
		id, err := store.SaveRun(rec, edges)
		require.NoError(t, err)
		saved = id
	})

	_, _, err = Run(context.Background(), s, StartThen(Autopilot(g)), 20000)
	require.NoError(t, err)
	require.NotZero(t, saved, "finished run should be journaled")

	rec, err := store.Run(saved)
	require.NoError(t, err)
	require.NotNil(t, rec)
	edges, err := store.RunInputs(saved)
	require.NoError(t, err)
	assert.NotEmpty(t, edges, "autopilot produces input edges")

	result, err := Replay(context.Background(), *rec, edges)
	require.NoError(t, err)
	assert.True(t, result.Match, "replay %+v vs journal %+v", result, rec)
	assert.Equal(t, rec.HitKind, result.HitKind)
}

func TestReplayDetectsTampering(t *testing.T) {
	g := newRunner(t)
	s := NewSession(g, runtimeCfg(5))
	var rec storage.RunRecord
	var edges []storage.InputEdge
	s.OnRunEnd(func(r storage.RunRecord, e []storage.InputEdge) { rec, edges = r, e })
	_, _, err := Run(context.Background(), s, StartThen(Autopilot(g)), 20000)
	require.NoError(t, err)
	require.NotZero(t, rec.Frames)

	rec.Seed++
	result, err := Replay(context.Background(), rec, edges)
	require.NoError(t, err)
	assert.False(t, result.Match)
}

func TestReplayRejectsRealtimeRuns(t *testing.T) {
	_, err := Replay(context.Background(), storage.RunRecord{TickRate: 0}, nil)
	assert.ErrorIs(t, err, ErrNotReplayable)
}

func TestRealtimeSessionIsNotReplayable(t *testing.T) {
	rt := runtimeCfg(1)
	rt.Realtime = true
	s := NewSession(newRunner(t), rt)
	assert.False(t, s.Replayable())
	_, ok := s.Record("")
	assert.False(t, ok)
}
