package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/void-runner/internal/config"
	"github.com/vovakirdan/void-runner/internal/core"
	"github.com/vovakirdan/void-runner/internal/games/runner"
	"github.com/vovakirdan/void-runner/internal/headless"
	"github.com/vovakirdan/void-runner/internal/registry"
	"github.com/vovakirdan/void-runner/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.void-runner/host_key.
	HostKeyPath string

	// DBPath is the path to the run journal.
	DBPath string

	// ConfigPath is an optional runner config file shared by all sessions.
	ConfigPath string

	// Preset is the difficulty preselected in each session's menu.
	Preset config.DifficultyPreset

	// TickRate is the fixed simulation rate of every session.
	TickRate int

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      config.DefaultJournalPath(),
		Preset:      config.DifficultyNormal,
		TickRate:    60,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves a runner session to every SSH client with a terminal.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer validates cfg, opens the shared run journal and prepares the
// Wish server. A journal that cannot be opened is logged and skipped.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "runner-ssh",
		})
	}

	if _, err := runner.LoadConfig(cfg.ConfigPath, string(cfg.Preset)); err != nil {
		return nil, fmt.Errorf("invalid runner config: %w", err)
	}

	hostKey, err := hostKeyPath(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	srv := &SSHServer{config: cfg, logger: logger}
	if srv.store, err = storage.Open(cfg.DBPath); err != nil {
		logger.Warn("running without a journal", "path", cfg.DBPath, "error", err)
		srv.store = nil
	}

	// Middleware runs last to first: sessions are logged, then terminals
	// checked, then handed to Bubble Tea.
	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKey),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.sessionLog,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return srv, nil
}

// hostKeyPath resolves the host key location and makes sure its directory
// exists. Wish generates the key on first start.
func hostKeyPath(path string) (string, error) {
	if path == "" {
		dir, err := config.DataDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// newGame builds a runner for one session with the chosen preset.
func (s *SSHServer) newGame(preset config.DifficultyPreset) (registry.Game, error) {
	cfg, err := runner.LoadConfig(s.config.ConfigPath, string(preset))
	if err != nil {
		return nil, err
	}
	game, err := runner.NewWithConfig(cfg)
	if err != nil {
		return nil, err
	}
	return game, nil
}

func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
		Seed:     time.Now().UnixNano(),
	}
	return NewSessionModel(s, cfg, sess.User()), []tea.ProgramOption{tea.WithAltScreen()}
}

// sessionLog records each session with its terminal size and duration.
func (s *SSHServer) sessionLog(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, _, _ := sess.Pty()
		logger := s.logger.With("user", sess.User(), "remote", sess.RemoteAddr().String())
		logger.Info("session started", "term", pty.Term, "size", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))
		start := time.Now()
		next(sess)
		logger.Info("session ended", "duration", time.Since(start).Round(time.Second))
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *SSHServer) Run(ctx context.Context) error {
	s.logger.Info("listening", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() { errc <- s.server.ListenAndServe() }()

	select {
	case err := <-errc:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	return s.Shutdown()
}

// Shutdown stops accepting sessions, waits up to ten seconds for open ones
// to finish and closes the journal.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	defer s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// sessionScreen is the screen a SessionModel is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenRuns
)

// SessionModel manages the full session flow: menu -> game or journal -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	server   *SSHServer
	config   core.RuntimeConfig
	username string
	screen   sessionScreen
	menu     MenuModel
	game     Model
	runs     RunsModel
	status   string
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(server *SSHServer, cfg core.RuntimeConfig, username string) SessionModel {
	m := SessionModel{
		server:   server,
		config:   cfg,
		username: username,
	}
	m.menu = m.newMenu(server.config.Preset)
	return m
}

func (m SessionModel) newMenu(preset config.DifficultyPreset) MenuModel {
	menu := NewMenuModel(m.config, preset)
	menu.embedded = true
	return menu
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenRuns:
		return m.updateRuns(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case MenuQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuPlay:
		m.status = ""
		game, err := m.server.newGame(m.menu.Preset())
		if err != nil {
			m.status = err.Error()
			m.menu = m.newMenu(m.menu.Preset())
			return m, nil
		}

		cfg := m.config
		cfg.Seed = time.Now().UnixNano()
		gm := NewModel(game, m.server.store, cfg).WithLogger(m.server.logger)
		gm.embedded = true
		m.game = gm
		m.screen = screenGame
		return m, m.game.Init()

	case MenuRuns:
		m.status = ""
		m.runs = NewRunsModel(m.server.store, m.config.ScreenW, m.config.ScreenH)
		m.runs.embedded = true
		m.screen = screenRuns
		return m, m.runs.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = gameModel
	}

	// Check if user quit entirely
	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		// The pending tick of the dropped game model is ignored by the menu
		return m.backToMenu(), nil
	}

	return m, cmd
}

// updateRuns handles updates when browsing the journal.
func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.runs.Update(msg)
	if runsModel, ok := newModel.(RunsModel); ok {
		m.runs = runsModel
	}

	if id := m.runs.Selected(); id != 0 {
		replay, err := m.replayModel(id)
		if err != nil {
			m.status = err.Error()
			return m.backToMenu(), nil
		}
		m.game = replay
		m.screen = screenGame
		return m, m.game.Init()
	}

	if m.runs.IsQuitting() {
		return m.backToMenu(), nil
	}

	return m, cmd
}

// replayModel prepares a playback of a journaled run.
func (m SessionModel) replayModel(id int64) (Model, error) {
	store := m.server.store
	if store == nil {
		return Model{}, errors.New("run journal unavailable")
	}
	rec, err := store.Run(id)
	if err != nil {
		return Model{}, err
	}
	if rec == nil {
		return Model{}, fmt.Errorf("run %d not found", id)
	}
	edges, err := store.RunInputs(id)
	if err != nil {
		return Model{}, err
	}

	game, session, err := headless.NewReplaySession(*rec)
	if err != nil {
		return Model{}, err
	}
	game.Resize(m.config.ScreenW, m.config.ScreenH)

	cfg := m.config
	cfg.TickRate = rec.TickRate
	replay := NewReplayModel(game, session, cfg, headless.StartThen(headless.EdgeScript(edges)))
	replay.embedded = true
	return replay, nil
}

func (m SessionModel) backToMenu() SessionModel {
	m.screen = screenMenu
	m.menu = m.newMenu(m.menu.Preset())
	return m
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenRuns:
		return m.runs.View()
	}

	view := m.menu.View()
	if m.status != "" {
		view += "\n" + centerText(statusStyle.Render(m.status), m.config.ScreenW)
	}
	return view
}
