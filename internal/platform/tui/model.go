package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/headless"
	"github.com/vovakirdan/void-runner/internal/registry"
	"github.com/vovakirdan/void-runner/internal/storage"
)

// Resizer is implemented by games that adapt to a new screen size in place.
type Resizer interface {
	Resize(w, h int)
}

// journal holds the outcome of the last journal write. It is shared by
// pointer so the value-receiver Model sees updates from the run-end callback.
type journal struct {
	store  *storage.Store
	logger *log.Logger
	lastID int64
	err    error
}

func (j *journal) save(rec storage.RunRecord, edges []storage.InputEdge) {
	if j.store == nil {
		return
	}
	id, err := j.store.SaveRun(rec, edges)
	j.err = err
	if err != nil {
		if j.logger != nil {
			j.logger.Warn("could not journal run", "error", err)
		}
		return
	}
	j.lastID = id
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	session    *headless.Session
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	journal    *journal
	keys       KeyMap
	inputFrame core.InputFrame
	gameState  core.GameState
	script     headless.Script // Drives input when watching a replay
	frame      int
	quitting   bool
	backToMenu bool
	embedded   bool // Back returns to a parent model instead of quitting
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil store disables the run journal.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	j := &journal{store: store}
	session := headless.NewSession(game, cfg)
	session.OnRunEnd(j.save)

	return newModel(game, session, cfg, j)
}

// NewReplayModel plays back a prepared replay session with the given script.
// Keyboard input other than quit and back is ignored.
func NewReplayModel(game registry.Game, session *headless.Session, cfg core.RuntimeConfig, script headless.Script) Model {
	m := newModel(game, session, cfg, &journal{})
	m.script = script
	return m
}

func newModel(game registry.Game, session *headless.Session, cfg core.RuntimeConfig, j *journal) Model {
	return Model{
		session:    session,
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		journal:    j,
		keys:       DefaultKeyMap(),
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// WithLogger routes journal warnings to logger.
func (m Model) WithLogger(logger *log.Logger) Model {
	m.journal.logger = logger
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.Apply(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves the game unless a run is in progress
	back := m.inputFrame.Has(core.ActionBack)
	if back && (m.script != nil || m.gameState.Phase != core.PhasePlaying || m.gameState.Paused) {
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The run in progress is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.inputFrame
	if m.script != nil {
		if m.gameState.GameOver && m.frame > 0 {
			m.inputFrame.Clear()
			return m, tickCmd(m.config.TickRate)
		}
		in = m.script(m.frame)
		m.frame++
	}

	result := m.session.Step(in)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// LastRunID returns the journal ID of the last saved run, or 0.
func (m Model) LastRunID() int64 {
	return m.journal.lastID
}

// saveScreenshot writes the current frame as plain text under the data
// directory. Failures are logged and the run carries on.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)
	path, err := writeScreenshot(m.game.ID(), m.screen)
	if m.journal.logger == nil {
		return
	}
	if err != nil {
		m.journal.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.journal.logger.Info("screenshot saved", "path", path)
}

func writeScreenshot(gameID string, screen *core.Screen) (string, error) {
	dir, err := config.DataDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", gameID, time.Now().Format("20060102_150405")))
	return path, os.WriteFile(path, []byte(screen.String()+"\n"), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.gameState.Paused {
		m.screen.DrawText(1, m.screen.Height()-1, m.keys.HelpLine())
	}
	view := RenderScreen(m.screen)

	if m.journal.err != nil {
		return view + "\n" + statusStyle.Render("journal: "+m.journal.err.Error())
	}
	return view
}

// Run starts the Bubble Tea program for a new game model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	return RunModel(NewModel(game, store, cfg).WithLogger(logger))
}

// RunModel starts the Bubble Tea program with the given model.
func RunModel(model Model) error {
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
