// Package tui provides the terminal UI: level menu, play and editor screens,
// attempt history, and SSH serving via Wish.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/sim"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.dash/host_key.
	HostKeyPath string

	// DBPath is the path to the attempts database.
	DBPath string

	// LevelsDir is an optional directory of extra level files.
	LevelsDir string

	// ConfigPath is an optional physics config override file.
	ConfigPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.dash/attempts.db",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server serving dash sessions.
type SSHServer struct {
	config SSHServerConfig
	dash   *config.DashConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "dash-ssh",
	})

	dashCfg, err := config.LoadDash(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("cannot load config: %w", err)
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open attempts database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		dash:   dashCfg,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".dash", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	rt := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}

	model := NewSessionModel(s.dash, s.store, rt, s.config.LevelsDir)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// SessionModel manages the full session flow: menu -> run -> menu, with the
// attempt history reachable from the menu. This is the top-level model used
// for SSH sessions. Sound stays off; the speaker would play server-side.
type SessionModel struct {
	dash      *config.DashConfig
	store     *storage.Store
	rt        core.RuntimeConfig
	levelsDir string

	menu     MenuModel
	play     *PlayModel
	scores   *ScoreboardModel
	inRun    bool
	inScores bool
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(dash *config.DashConfig, store *storage.Store, rt core.RuntimeConfig, levelsDir string) SessionModel {
	return SessionModel{
		dash:      dash,
		store:     store,
		rt:        rt,
		levelsDir: levelsDir,
		menu:      NewMenuModel(store, rt, levelsDir),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.rt.ScreenW = wsm.Width
		m.rt.ScreenH = wsm.Height
	}

	switch {
	case m.inRun && m.play != nil:
		return m.updateRun(msg)
	case m.inScores && m.scores != nil:
		return m.updateScores(msg)
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

	if m.menu.WantsScoreboard() {
		scores := NewScoreboardModel(m.store, m.rt.ScreenW, m.rt.ScreenH)
		m.scores = &scores
		m.inScores = true
		m.menu = NewMenuModel(m.store, m.rt, m.levelsDir)
		return m, m.scores.Init()
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		m.rt = m.menu.Config() // Pick up any resize seen by the menu

		var play PlayModel
		if selected.Endless {
			play = NewEndlessModel(m.dash, m.rt, m.rt.Seed, m.store, nil)
		} else {
			play = NewPlayModel(m.dash, m.rt, selected.Level, sim.ModeNormal, m.store, nil)
		}
		m.play = &play
		m.inRun = true

		return m, m.play.Init()
	}

	return m, cmd
}

// updateRun handles updates when a run is active.
func (m SessionModel) updateRun(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if playModel, ok := newModel.(PlayModel); ok {
		m.play = &playModel
	}

	if m.play.BackToMenu() {
		m.inRun = false
		m.play = nil
		m.menu = NewMenuModel(m.store, m.rt, m.levelsDir)
		return m, m.menu.Init()
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScores handles updates when the attempt history is open.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = &sb
	}

	if m.scores.IsGoingBack() {
		m.inScores = false
		m.scores = nil
		m.menu = NewMenuModel(m.store, m.rt, m.levelsDir)
		return m, m.menu.Init()
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.inRun && m.play != nil:
		return m.play.View()
	case m.inScores && m.scores != nil:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}
