package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dash/internal/audio"
	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/level"
	"github.com/vovakirdan/tui-dash/internal/sim"
)

// defaultEditorLength is the finish line, in tiles, for a freshly created level.
const defaultEditorLength = 40

// EditorModel is the Bubble Tea model for the level editor. The editor owns
// the level; test runs operate on a simulation copy, so edits survive any
// number of test attempts.
type EditorModel struct {
	cfg    *config.DashConfig
	rt     core.RuntimeConfig
	lvl    *level.Level
	path   string
	screen *core.Screen
	sound  *audio.Manager
	keys   *KeyMapper

	cursorCol int
	cursorRow int
	palette   []level.EntityKind
	paletteIx int

	testing  bool
	test     *PlayModel
	trail    []sim.Sample
	deathPos *core.Vec2

	status       string
	dirty        bool
	showHitboxes bool
	quitting     bool
}

// NewEditorModel creates an editor over the level stored at path. A missing
// file starts a fresh level named after it.
func NewEditorModel(cfg *config.DashConfig, rt core.RuntimeConfig, path string, sound *audio.Manager) (EditorModel, error) {
	var lvl *level.Level
	if _, err := os.Stat(path); err == nil {
		lvl, err = level.LoadFile(path)
		if err != nil {
			return EditorModel{}, err
		}
	} else {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		lvl = level.New(name, defaultEditorLength)
	}

	return EditorModel{
		cfg:       cfg,
		rt:        rt,
		lvl:       lvl,
		path:      path,
		screen:    core.NewScreen(rt.ScreenW, rt.ScreenH),
		sound:     sound,
		keys:      NewKeyMapper(),
		cursorCol: 1,
		cursorRow: 1,
		palette:   level.Kinds(),
		status:    "editing " + lvl.Name,
	}, nil
}

// Init initializes the editor.
func (m EditorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.rt.ScreenW = wsm.Width
		m.rt.ScreenH = wsm.Height
		m.screen.Resize(wsm.Width, wsm.Height)
	}

	if m.testing && m.test != nil {
		return m.updateTest(msg)
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(key)
	}
	return m, nil
}

// updateTest forwards messages to the embedded test run and watches for it
// handing control back.
func (m EditorModel) updateTest(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.test.Update(msg)
	if play, ok := next.(PlayModel); ok {
		m.test = &play
	}

	if m.test.BackToMenu() || m.test.IsQuitting() {
		if res := m.test.TestResult(); res != nil {
			m.trail = res.Trail
			m.deathPos = res.DeathPos
			m.status = fmt.Sprintf("test: %s at %.1f%% in %d ticks", res.Outcome, res.Percent, res.Ticks)
		} else {
			m.status = "test aborted"
		}
		m.testing = false
		m.test = nil
		// Swallow the run's quit command; the editor stays up.
		return m, nil
	}

	return m, cmd
}

func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKeyToEditAction(msg) {
	case EditActionQuit:
		m.quitting = true
		return m, tea.Quit

	case EditActionUp:
		m.cursorRow++
		if m.cursorRow > m.cfg.World.CeilingTiles-1 {
			m.cursorRow = m.cfg.World.CeilingTiles - 1
		}
	case EditActionDown:
		if m.cursorRow > 1 {
			m.cursorRow--
		}
	case EditActionLeft:
		if m.cursorCol > 0 {
			m.cursorCol--
		}
	case EditActionRight:
		m.cursorCol++

	case EditActionPlace:
		kind := m.palette[m.paletteIx]
		m.lvl.Place(kind, m.cursorCol, m.cursorRow)
		m.dirty = true
		m.status = fmt.Sprintf("placed %s at (%d,%d)", kind, m.cursorCol, m.cursorRow)

	case EditActionRemove:
		if m.lvl.Remove(m.cursorCol, m.cursorRow) {
			m.dirty = true
			m.status = fmt.Sprintf("removed (%d,%d)", m.cursorCol, m.cursorRow)
		}

	case EditActionRotate:
		if m.lvl.Rotate(m.cursorCol, m.cursorRow) {
			m.dirty = true
			m.status = fmt.Sprintf("rotated (%d,%d)", m.cursorCol, m.cursorRow)
		}

	case EditActionNextKind:
		m.paletteIx = (m.paletteIx + 1) % len(m.palette)
	case EditActionPrevKind:
		m.paletteIx--
		if m.paletteIx < 0 {
			m.paletteIx = len(m.palette) - 1
		}

	case EditActionLonger:
		m.lvl.Length++
		m.dirty = true
	case EditActionShorter:
		if m.lvl.Length > 1 {
			m.lvl.Length--
			m.dirty = true
		}

	case EditActionToggleMode:
		if m.lvl.GameMode == level.ModeClassic {
			m.lvl.GameMode = level.ModeFree
		} else {
			m.lvl.GameMode = level.ModeClassic
		}
		m.dirty = true
		m.status = fmt.Sprintf("mode: %s", m.lvl.GameMode)

	case EditActionHitboxes:
		m.showHitboxes = !m.showHitboxes

	case EditActionSave:
		return m.save()

	case EditActionTest:
		return m.startTest()
	}
	return m, nil
}

func (m EditorModel) save() (tea.Model, tea.Cmd) {
	if err := level.Validate(m.lvl); err != nil {
		m.status = "invalid: " + err.Error()
		return m, nil
	}
	if err := level.SaveFile(m.path, m.lvl); err != nil {
		m.status = "save failed: " + err.Error()
		return m, nil
	}
	m.dirty = false
	m.status = "saved " + m.path
	return m, nil
}

func (m EditorModel) startTest() (tea.Model, tea.Cmd) {
	if err := level.Validate(m.lvl); err != nil {
		m.status = "invalid: " + err.Error()
		return m, nil
	}
	play := NewPlayModel(m.cfg, m.rt, m.lvl, sim.ModeTest, nil, m.sound)
	m.test = &play
	m.testing = true
	m.trail = nil
	m.deathPos = nil
	m.status = "testing"
	return m, play.Init()
}

// View renders either the embedded test run or the editing grid.
func (m EditorModel) View() string {
	if m.quitting {
		return ""
	}
	if m.testing && m.test != nil {
		return m.test.View()
	}

	m.screen.Clear()

	// Camera keeps the cursor roughly centered; editing always uses the
	// floor-anchored projection, even for free-mode levels.
	tile := m.cfg.World.TileSize
	camX := float64(m.cursorCol)*tile - float64(m.screen.Width())/2*cellW
	if camX < -2*tile {
		camX = -2 * tile
	}
	pr := projector{
		w:    m.screen.Width(),
		h:    m.screen.Height(),
		camX: camX,
	}

	drawLevel(m.screen, pr, m.cfg, m.lvl, m.showHitboxes)
	if len(m.trail) > 0 {
		drawTrail(m.screen, pr, m.trail)
	}
	if m.deathPos != nil {
		m.screen.SetColored(pr.col(m.deathPos.X), pr.row(m.deathPos.Y-0.001), '✗', core.ColorBrightRed)
	}

	// Cursor overlay.
	cx, cy, cw, ch := pr.boxRect(level.TileBox(m.cursorCol, m.cursorRow, tile))
	outlineRect(m.screen, cx, cy, cw, ch, core.ColorBrightYellow)

	m.drawEditorHUD()
	return RenderScreen(m.screen)
}

func (m EditorModel) drawEditorHUD() {
	dirty := ""
	if m.dirty {
		dirty = " *"
	}
	top := fmt.Sprintf(" %s%s · %s · len %d · brush %s · (%d,%d)",
		m.lvl.Name, dirty, m.lvl.GameMode, m.lvl.Length,
		m.palette[m.paletteIx], m.cursorCol, m.cursorRow)
	m.screen.DrawTextColored(0, 0, top, core.ColorBrightWhite)

	help := "wasd move · enter place · e remove · r rotate · tab brush · t test · ctrl+s save · q quit "
	m.screen.DrawTextColored(m.screen.Width()-len(help), m.screen.Height()-1, help, core.ColorGray)

	m.screen.DrawTextColored(0, m.screen.Height()-1, " "+m.status, core.ColorYellow)
}

// IsQuitting reports whether the user quit the editor.
func (m EditorModel) IsQuitting() bool { return m.quitting }

// RunEditor starts a standalone Bubble Tea program editing one level file.
func RunEditor(cfg *config.DashConfig, rt core.RuntimeConfig, path string, sound *audio.Manager) error {
	model, err := NewEditorModel(cfg, rt, path, sound)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
