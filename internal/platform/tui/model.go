package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dash/internal/audio"
	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/gen"
	"github.com/vovakirdan/tui-dash/internal/level"
	"github.com/vovakirdan/tui-dash/internal/sim"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

// holdWindow emulates a key release. Terminals only report key-down events,
// so a press latches the button and the latch opens again after this many
// ticks without a repeat. Key auto-repeat keeps refreshing the window while
// the key is physically held.
const holdWindow = 12

// How far ahead of the player the endless generator stays, in pixels.
const genHorizon = 3000.0

// PlayModel is the Bubble Tea model for running a level.
type PlayModel struct {
	cfg    *config.DashConfig
	rt     core.RuntimeConfig
	sim    *sim.Simulation
	screen *core.Screen
	store  *storage.Store
	sound  *audio.Manager
	keys   *KeyMapper

	levelID   string
	generator *gen.Generator // Non-nil in endless mode

	attempt      int
	best         float64
	holdTicks    int
	paused       bool
	saved        bool
	showHitboxes bool
	quitting     bool
	backToMenu   bool

	// Set when a test run finishes, for the editor to collect.
	testResult *sim.TestResult
}

// NewPlayModel creates a model playing the given level.
func NewPlayModel(cfg *config.DashConfig, rt core.RuntimeConfig, lvl *level.Level, mode sim.Mode, store *storage.Store, sound *audio.Manager) PlayModel {
	m := PlayModel{
		cfg:          cfg,
		rt:           rt,
		sim:          sim.New(cfg, lvl, mode, rt.TickRate),
		screen:       core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:        store,
		sound:        sound,
		keys:         NewKeyMapper(),
		levelID:      lvl.Name,
		attempt:      1,
		showHitboxes: lvl.ShowHitboxes,
	}
	if store != nil {
		if best, err := store.BestPercent(m.levelID); err == nil {
			m.best = best
		}
	}
	return m
}

// NewEndlessModel creates a model for an endless run with the given seed.
func NewEndlessModel(cfg *config.DashConfig, rt core.RuntimeConfig, seed int64, store *storage.Store, sound *audio.Manager) PlayModel {
	diff := config.NewDifficultyManager(cfg.Difficulty)
	m := NewPlayModel(cfg, rt, gen.StartLevel(), sim.ModeEndless, store, sound)
	m.levelID = "endless"
	m.generator = gen.New(seed, diff)
	m.extendAhead()
	return m
}

// Init starts the tick loop.
func (m PlayModel) Init() tea.Cmd {
	return tickCmd(m.rt.TickRate)
}

// Update handles messages.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.rt.ScreenW = msg.Width
		m.rt.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToPlayAction(msg) {
	case PlayActionQuit:
		m.quitting = true
		return m, tea.Quit

	case PlayActionJump:
		if !m.paused && m.sim.Outcome() == sim.OutcomeRunning {
			if m.holdTicks == 0 {
				m.sim.Press()
			}
			m.holdTicks = holdWindow
		}

	case PlayActionRestart:
		m.restart()

	case PlayActionPause:
		m.paused = !m.paused

	case PlayActionBack:
		m.backToMenu = true

	case PlayActionHitboxes:
		m.showHitboxes = !m.showHitboxes
	}
	return m, nil
}

func (m *PlayModel) restart() {
	m.sim.Reset()
	m.attempt++
	m.holdTicks = 0
	m.saved = false
	m.paused = false
	m.testResult = nil
	if m.generator != nil {
		m.extendAhead()
	}
}

func (m PlayModel) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.rt.TickRate)
	}

	if m.holdTicks > 0 {
		m.holdTicks--
		if m.holdTicks == 0 {
			m.sim.Release()
		}
	}

	if m.generator != nil {
		m.extendAhead()
	}

	res := m.sim.Step()
	m.playEvents(res.Events)

	if res.Outcome != sim.OutcomeRunning && !m.saved {
		m.saveAttempt(res.Outcome)
		if m.sim.Mode() == sim.ModeTest {
			m.testResult = &sim.TestResult{
				Outcome:  res.Outcome,
				Ticks:    m.sim.Tick(),
				Percent:  m.sim.Percent(),
				Trail:    m.sim.Trail(),
				DeathPos: m.sim.DeathPos(),
			}
		}
		m.saved = true
	}

	return m, tickCmd(m.rt.TickRate)
}

// extendAhead keeps generated terrain in front of the player and drops
// terrain far behind.
func (m *PlayModel) extendAhead() {
	tile := m.cfg.World.TileSize
	px := m.sim.Player().Pos.X
	for float64(m.generator.NextCol())*tile < px+genHorizon {
		objs, consumed := m.generator.NextSegment()
		m.sim.ExtendLevel(objs, consumed)
	}
	m.sim.PrunePassed(2 * genHorizon)
}

func (m *PlayModel) saveAttempt(outcome sim.Outcome) {
	progress := m.sim.Percent()
	if m.generator != nil {
		// Endless runs score distance in tiles instead of percent.
		progress = m.sim.Player().Pos.X / m.cfg.World.TileSize
	}
	if progress > m.best {
		m.best = progress
	}

	if m.store == nil || m.sim.Mode() == sim.ModeTest {
		return
	}
	p := m.sim.Player()
	//nolint:errcheck // Best-effort save, the run result stays on screen
	m.store.SaveAttempt(storage.Attempt{
		LevelID: m.levelID,
		Outcome: outcome.String(),
		Percent: progress,
		Jumps:   p.Jumps,
		Ticks:   m.sim.Tick(),
	})
}

func (m *PlayModel) playEvents(events []sim.Event) {
	if m.sound == nil {
		return
	}
	for _, e := range events {
		switch e {
		case sim.EventJump:
			m.sound.PlayJump()
		case sim.EventOrb:
			m.sound.PlayOrb()
		case sim.EventGravityFlip:
			m.sound.PlayGravityFlip()
		case sim.EventSpeedChange:
			m.sound.PlaySpeedChange()
		case sim.EventDeath:
			m.sound.PlayDeath()
		case sim.EventWin:
			m.sound.PlayWin()
		}
	}
}

// View renders the run.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	lvl := m.sim.Level()
	pr := newProjector(m.screen, m.sim.CameraPos(), lvl.GameMode)

	drawLevel(m.screen, pr, m.cfg, lvl, m.showHitboxes)
	if m.testResult != nil {
		drawTrail(m.screen, pr, m.testResult.Trail)
	}
	drawPlayer(m.screen, pr, m.cfg, m.sim.Player(), m.showHitboxes)
	m.drawHUD()

	return RenderScreen(m.screen)
}

func (m PlayModel) drawHUD() {
	var status string
	if m.generator != nil {
		dist := int(m.sim.Player().Pos.X / m.cfg.World.TileSize)
		status = fmt.Sprintf(" %s · %dm · best %dm · attempt %d", m.levelID, dist, int(m.best), m.attempt)
	} else {
		status = fmt.Sprintf(" %s · %.1f%% · best %.1f%% · attempt %d", m.levelID, m.sim.Percent(), m.best, m.attempt)
	}
	m.screen.DrawTextColored(0, 0, status, core.ColorBrightWhite)

	help := "space jump · r retry · p pause · x hitboxes · q quit "
	m.screen.DrawTextColored(m.screen.Width()-len(help), 0, help, core.ColorGray)

	mid := m.screen.Height() / 2
	switch m.sim.Outcome() {
	case sim.OutcomeDead:
		m.screen.DrawTextCenteredColored(mid, "x CRASHED - press r to retry x", core.ColorBrightRed)
	case sim.OutcomeWin:
		m.screen.DrawTextCenteredColored(mid, "* LEVEL COMPLETE *", core.ColorBrightGreen)
	}
	if m.paused {
		m.screen.DrawTextCenteredColored(mid, "PAUSED", core.ColorBrightYellow)
	}
}

// TestResult returns the result of a finished test run, or nil while the
// run is still going (or outside test mode).
func (m PlayModel) TestResult() *sim.TestResult { return m.testResult }

// IsQuitting reports whether the user quit entirely.
func (m PlayModel) IsQuitting() bool { return m.quitting }

// BackToMenu reports whether the user asked for the menu.
func (m PlayModel) BackToMenu() bool { return m.backToMenu }

// Run starts a standalone Bubble Tea program playing one level.
func Run(cfg *config.DashConfig, rt core.RuntimeConfig, lvl *level.Level, store *storage.Store, sound *audio.Manager) error {
	model := NewPlayModel(cfg, rt, lvl, sim.ModeNormal, store, sound)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// RunEndless starts a standalone Bubble Tea program for an endless run.
func RunEndless(cfg *config.DashConfig, rt core.RuntimeConfig, seed int64, store *storage.Store, sound *audio.Manager) error {
	model := NewEndlessModel(cfg, rt, seed, store, sound)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
