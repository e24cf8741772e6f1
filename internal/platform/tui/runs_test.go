package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/storage"
)

func seededStore(t *testing.T, n int) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	for i := 0; i < n; i++ {
		_, err := store.SaveRun(storage.RunRecord{
			GameID:   "runner",
			Seed:     int64(100 + i),
			TickRate: 60,
			Frames:   300 + i,
			Distance: float64(250 + i),
			Spawned:  9,
			HitKind:  "cube",
		}, []storage.InputEdge{{Frame: 3, Action: "left"}})
		require.NoError(t, err)
	}
	return store
}

func updateRuns(t *testing.T, m RunsModel, msg tea.Msg) (RunsModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(RunsModel)
	require.True(t, ok)
	return out, cmd
}

func TestRunsModelListsNewestFirst(t *testing.T) {
	m := NewRunsModel(seededStore(t, 3), 120, 30)
	require.Len(t, m.runs, 3)
	assert.Equal(t, int64(102), m.runs[0].Seed)
	assert.Contains(t, m.View(), "RUN JOURNAL")
	assert.Contains(t, m.View(), "Spawned:", "wide layouts show the detail pane")
}

func TestRunsModelSelectsForReplay(t *testing.T) {
	m := NewRunsModel(seededStore(t, 2), 80, 24)
	m, _ = updateRuns(t, m, tea.KeyMsg{Type: tea.KeyDown})
	want := m.runs[1].ID

	m, cmd := updateRuns(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.Equal(t, want, m.Selected())
}

func TestRunsModelDeletes(t *testing.T) {
	store := seededStore(t, 2)
	m := NewRunsModel(store, 80, 24)
	m, _ = updateRuns(t, m, runeKey('x'))

	assert.Len(t, m.runs, 1)
	n, err := store.RunCount("runner")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRunsModelWithoutStore(t *testing.T) {
	m := NewRunsModel(nil, 80, 24)
	assert.Contains(t, m.View(), "No runs journaled yet")

	m, _ = updateRuns(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Zero(t, m.Selected())

	m, cmd := updateRuns(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.NotNil(t, cmd)
	assert.True(t, m.IsQuitting())
}

func TestMenuCyclesDifficulty(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyHard)
	assert.Equal(t, config.DifficultyHard, m.Preset())

	step := func(msg tea.Msg) tea.Cmd {
		next, cmd := m.Update(msg)
		m = next.(MenuModel)
		return cmd
	}

	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, config.DifficultyFixed, m.Preset())
	step(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, config.DifficultyEasy, m.Preset())
	assert.Contains(t, m.View(), "< easy >")

	step(tea.KeyMsg{Type: tea.KeyUp})
	cmd := step(tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.Equal(t, MenuPlay, m.Choice())
}
