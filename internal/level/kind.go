// Package level provides the level data model for dash: placed entities on a
// tile grid, their interaction catalog, file formats, and validation.
// This package depends on core but core does not depend on level.
package level

import (
	"github.com/vovakirdan/tui-dash/internal/core"
)

// EntityKind identifies a placeable entity type. The set is closed: every
// kind has fixed interaction semantics defined by the catalog below.
type EntityKind string

// All placeable entity kinds.
const (
	KindBlock           EntityKind = "block"
	KindSpike           EntityKind = "spike"
	KindHalfSpike       EntityKind = "half_spike"
	KindOrbJump         EntityKind = "orb_jump"
	KindOrbJumpPurple   EntityKind = "orb_jump_purple"
	KindOrbJumpRed      EntityKind = "orb_jump_red"
	KindOrbGravity      EntityKind = "orb_gravity"
	KindPortalGravity   EntityKind = "portal_gravity"
	KindPortalSpeedSlow EntityKind = "portal_speed_slow"
	KindPortalSpeedNorm EntityKind = "portal_speed_normal"
	KindPortalSpeedFast EntityKind = "portal_speed_fast"
	KindPortalSpeedVery EntityKind = "portal_speed_very_fast"
	KindFloor           EntityKind = "floor"
)

// Role classifies how the simulation resolves a collision with an entity.
type Role int

const (
	RoleNone    Role = iota // No interaction (floor placeholder)
	RoleSolid               // Landable block; fatal on a failed landing
	RoleLethal              // Hazard; overlap kills
	RoleOneShot             // Orb: circular proximity + input-edge gated impulse
	RoleZone                // Portal: rectangular zone with a continuous effect
)

// String returns a human-readable name for the role.
func (r Role) String() string {
	switch r {
	case RoleNone:
		return "None"
	case RoleSolid:
		return "Solid"
	case RoleLethal:
		return "Lethal"
	case RoleOneShot:
		return "OneShot"
	case RoleZone:
		return "Zone"
	default:
		return "Unknown"
	}
}

// Effect describes what a trigger entity does on activation.
// Impulse is a factor of the configured jump force, signed by gravity.
type Effect struct {
	Impulse     float64 // Jump-force factor applied on activation (orbs)
	FlipGravity bool    // Whether activation flips the gravity sign
	SpeedMult   float64 // Absolute speed multiplier to set (portals), 0 = none
}

// Fixed interaction geometry. Hitboxes are defined relative to a tile origin;
// rotation is cosmetic and never alters a hitbox.
const (
	spikeHitboxW     = 12.0
	spikeHitboxH     = 24.0
	halfSpikeHitboxW = 24.0
	halfSpikeHitboxH = 12.0
	portalInset      = 15.0 // horizontal inset from each tile edge
	portalTiles      = 3    // portal strip height in tiles
)

var roles = map[EntityKind]Role{
	KindBlock:           RoleSolid,
	KindSpike:           RoleLethal,
	KindHalfSpike:       RoleLethal,
	KindOrbJump:         RoleOneShot,
	KindOrbJumpPurple:   RoleOneShot,
	KindOrbJumpRed:      RoleOneShot,
	KindOrbGravity:      RoleOneShot,
	KindPortalGravity:   RoleZone,
	KindPortalSpeedSlow: RoleZone,
	KindPortalSpeedNorm: RoleZone,
	KindPortalSpeedFast: RoleZone,
	KindPortalSpeedVery: RoleZone,
	KindFloor:           RoleNone,
}

var effects = map[EntityKind]Effect{
	KindOrbJump:         {Impulse: 1.0},
	KindOrbJumpPurple:   {Impulse: 0.7},
	KindOrbJumpRed:      {Impulse: 1.3},
	KindOrbGravity:      {Impulse: 0.5, FlipGravity: true},
	KindPortalGravity:   {FlipGravity: true},
	KindPortalSpeedSlow: {SpeedMult: 0.7},
	KindPortalSpeedNorm: {SpeedMult: 1.0},
	KindPortalSpeedFast: {SpeedMult: 1.3},
	KindPortalSpeedVery: {SpeedMult: 1.6},
}

// KindRole returns the collision role for a kind.
// Unknown kinds report RoleNone; loaders reject them before a run starts.
func KindRole(k EntityKind) Role {
	return roles[k]
}

// KindEffect returns the effect descriptor for a trigger kind.
// The zero Effect is returned for non-trigger kinds.
func KindEffect(k EntityKind) Effect {
	return effects[k]
}

// Known reports whether k is a member of the closed kind set.
func Known(k EntityKind) bool {
	_, ok := roles[k]
	return ok
}

// Kinds returns all placeable kinds in palette order.
func Kinds() []EntityKind {
	return []EntityKind{
		KindBlock,
		KindSpike,
		KindHalfSpike,
		KindOrbJump,
		KindOrbJumpPurple,
		KindOrbJumpRed,
		KindOrbGravity,
		KindPortalGravity,
		KindPortalSpeedSlow,
		KindPortalSpeedNorm,
		KindPortalSpeedFast,
		KindPortalSpeedVery,
	}
}

// TileBox returns the full tile box for grid cell (col, row).
// Row 1 is the tile resting on the floor plane.
func TileBox(col, row int, tile float64) core.Box {
	return core.NewBox(float64(col)*tile, -float64(row)*tile, tile, tile)
}

// TileCenter returns the center point of grid cell (col, row).
func TileCenter(col, row int, tile float64) core.Vec2 {
	return TileBox(col, row, tile).Center()
}

// Hitbox returns the collision box for an entity at grid cell (col, row).
// Returns false for kinds without a rectangular hitbox (orbs use a radial
// proximity test around TileCenter; floor has no hitbox at all).
func Hitbox(k EntityKind, col, row int, tile float64) (core.Box, bool) {
	t := TileBox(col, row, tile)

	switch KindRole(k) {
	case RoleSolid:
		return t, true
	case RoleLethal:
		if k == KindHalfSpike {
			// Lower half of the tile only.
			return core.NewBox(
				t.X+(tile-halfSpikeHitboxW)/2,
				t.Bottom()-halfSpikeHitboxH,
				halfSpikeHitboxW,
				halfSpikeHitboxH,
			), true
		}
		// Small hitbox centered at the bottom of the tile.
		return core.NewBox(
			t.X+(tile-spikeHitboxW)/2,
			t.Bottom()-spikeHitboxH,
			spikeHitboxW,
			spikeHitboxH,
		), true
	case RoleZone:
		// Narrow strip spanning three tiles, centered on the anchor tile.
		return core.NewBox(
			t.X+portalInset,
			t.Y-tile,
			tile-2*portalInset,
			float64(portalTiles)*tile,
		), true
	default:
		return core.Box{}, false
	}
}
