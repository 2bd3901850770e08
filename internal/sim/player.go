package sim

import "github.com/vovakirdan/tui-dash/internal/core"

// PlayerState is the full mutable state of the runner. Pos.X is the
// horizontal center of the player; Pos.Y is the bottom edge, so a player
// standing on the floor has Pos.Y == 0.
type PlayerState struct {
	Pos      core.Vec2
	Vel      core.Vec2 // Only Y is integrated; X speed is derived each tick
	Grounded bool
	Dead     bool
	Rotation float64 // Degrees, visual only

	// GravityScale is +1 under normal gravity and -1 when inverted.
	GravityScale float64

	// CanOrbJump gates orb activation. A ground jump or an orb consumes
	// it; releasing the button or landing re-arms it.
	CanOrbJump bool

	// SpeedMultiplier scales horizontal speed; set by speed portals.
	SpeedMultiplier float64

	// Gravity-portal cooldown state: a portal cannot flip again until the
	// player has traveled far enough past the previous flip.
	LastGravityPortalX float64
	GravityPortalUsed  bool

	// Jumps counts ground jumps and orb activations this attempt.
	Jumps int
}

// Reset restores the player to the start of a run.
func (p *PlayerState) Reset(start core.Vec2) {
	*p = PlayerState{
		Pos:             start,
		Grounded:        true,
		GravityScale:    1,
		CanOrbJump:      true,
		SpeedMultiplier: 1,
	}
}

// Hitbox returns the player's collision box for the given hitbox edge size.
func (p *PlayerState) Hitbox(size float64) core.Box {
	return core.NewBox(p.Pos.X-size/2, p.Pos.Y-size, size, size)
}

// Center returns the center of the player's collision box.
func (p *PlayerState) Center(size float64) core.Vec2 {
	return core.Vec2{X: p.Pos.X, Y: p.Pos.Y - size/2}
}

// Head returns the Y of the player's top edge.
func (p *PlayerState) Head(size float64) float64 {
	return p.Pos.Y - size
}
