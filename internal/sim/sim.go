// Package sim implements the deterministic fixed-timestep simulation of a
// run: player kinematics, entity collision resolution, camera tracking, and
// the test-run recorder. A run is fully determined by the level, the config,
// and the tick-indexed input sequence; the package holds no wall-clock or
// randomness of its own.
package sim

import (
	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/level"
)

// Simulation owns one run of a level. Not safe for concurrent use; the
// platform drives it from a single tick loop.
type Simulation struct {
	cfg      *config.DashConfig
	lvl      *level.Level
	mode     Mode
	hooks    Hooks
	tickRate int

	player PlayerState
	latch  Latch
	camera Camera
	rec    *Recorder

	tick       int
	outcome    Outcome
	hooksFired bool
}

// New creates a simulation over a private copy of the level. The caller's
// level is never mutated, so the editor can keep editing between test runs.
func New(cfg *config.DashConfig, lvl *level.Level, mode Mode, tickRate int) *Simulation {
	s := &Simulation{
		cfg:      cfg,
		lvl:      lvl.Clone(),
		mode:     mode,
		tickRate: tickRate,
	}
	if mode == ModeTest {
		s.rec = NewRecorder(cfg.Recorder.SampleInterval, tickRate)
	}
	s.Reset()
	return s
}

// SetHooks installs run-end callbacks. Must be called before the run ends.
func (s *Simulation) SetHooks(h Hooks) { s.hooks = h }

// Reset restarts the run from the beginning.
func (s *Simulation) Reset() {
	start := core.Vec2{X: s.cfg.World.TileSize, Y: 0}
	s.player.Reset(start)
	s.latch.Reset()
	s.camera = NewCamera(s.cfg.Camera, s.lvl.GameMode, s.player.Center(s.cfg.Player.Hitbox))
	if s.rec != nil {
		s.rec.Reset()
	}
	s.tick = 0
	s.outcome = OutcomeRunning
	s.hooksFired = false
}

// Press latches the jump button down.
func (s *Simulation) Press() { s.latch.Press() }

// Release latches the jump button up and re-arms orb activation.
func (s *Simulation) Release() {
	s.latch.Release()
	s.player.CanOrbJump = true
}

// Player returns the current player state.
func (s *Simulation) Player() PlayerState { return s.player }

// CameraPos returns the current camera focus in world coordinates.
func (s *Simulation) CameraPos() core.Vec2 { return s.camera.Pos }

// Level returns the simulation's working copy of the level.
func (s *Simulation) Level() *level.Level { return s.lvl }

// Mode returns the run mode.
func (s *Simulation) Mode() Mode { return s.mode }

// Outcome returns the current run outcome.
func (s *Simulation) Outcome() Outcome { return s.outcome }

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() int { return s.tick }

// Held reports whether the jump button is latched down.
func (s *Simulation) Held() bool { return s.latch.Held() }

// Percent returns run progress toward the finish line in [0, 100].
// Endless runs always report 0.
func (s *Simulation) Percent() float64 {
	if s.mode == ModeEndless {
		return 0
	}
	fx := s.lvl.FinishX(s.cfg.World.TileSize)
	if fx <= 0 {
		return 0
	}
	return core.ClampF(s.player.Pos.X/fx*100, 0, 100)
}

// DeathPos returns the player position at death, or nil while the run is
// alive or ended at the finish line.
func (s *Simulation) DeathPos() *core.Vec2 {
	if s.outcome != OutcomeDead {
		return nil
	}
	pos := s.player.Pos
	return &pos
}

// Trail returns the recorded test-run trail, or nil outside test mode.
func (s *Simulation) Trail() []Sample {
	if s.rec == nil {
		return nil
	}
	return s.rec.Trail()
}

// ExtendLevel appends generated objects and pushes the level boundary out.
// Only meaningful in endless mode.
func (s *Simulation) ExtendLevel(objs []level.Object, addTiles int) {
	s.lvl.Objects = append(s.lvl.Objects, objs...)
	s.lvl.Length += addTiles
}

// PrunePassed drops objects more than margin pixels behind the player.
// Keeps endless runs from accumulating unbounded level data.
func (s *Simulation) PrunePassed(margin float64) {
	tile := s.cfg.World.TileSize
	cutoff := s.player.Pos.X - margin
	kept := s.lvl.Objects[:0]
	for _, o := range s.lvl.Objects {
		if level.TileBox(o.X, o.Y, tile).Right() >= cutoff {
			kept = append(kept, o)
		}
	}
	s.lvl.Objects = kept
}
