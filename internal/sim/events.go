package sim

import "github.com/vovakirdan/tui-dash/internal/core"

// Outcome is the terminal state of a run.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeDead
	OutcomeWin
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeDead:
		return "dead"
	case OutcomeWin:
		return "win"
	default:
		return "unknown"
	}
}

// Event is a notable occurrence within a single tick, surfaced so the
// platform can react (sound effects, visual flashes) without the
// simulation knowing about either.
type Event int

const (
	EventJump Event = iota
	EventOrb
	EventGravityFlip
	EventSpeedChange
	EventDeath
	EventWin
)

// StepResult is what one tick of the simulation produced.
type StepResult struct {
	Outcome Outcome
	Events  []Event
}

// TestResult summarizes a finished test-mode run for the editor.
type TestResult struct {
	Outcome Outcome
	Ticks   int
	Percent float64
	Trail   []Sample

	// DeathPos is the player position at the moment of death, or nil when
	// the run reached the finish line. The trail samples at a coarser
	// interval, so the last sample can trail the actual death point.
	DeathPos *core.Vec2
}

// Hooks are optional callbacks fired exactly once when a run ends.
// In test mode OnTestComplete replaces OnDie and OnWin.
type Hooks struct {
	OnDie          func()
	OnWin          func()
	OnTestComplete func(TestResult)
}

// Mode selects how the simulation treats run boundaries.
type Mode int

const (
	// ModeNormal is a regular attempt at an authored level.
	ModeNormal Mode = iota
	// ModeTest is an editor test run: a trail is recorded and the
	// result is reported back instead of the usual win/die handling.
	ModeTest
	// ModeEndless disables the finish line; the level grows as the
	// player advances.
	ModeEndless
)
