package sim

import (
	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/level"
)

// Camera tracks the world-space focus point the renderer frames. Horizontal
// tracking is rigid with the player leading by a fixed offset. Vertical
// behavior depends on the game mode: classic stays anchored to the floor,
// free eases toward the player each tick.
type Camera struct {
	Pos  core.Vec2
	cfg  config.DashCamera
	mode level.GameMode
}

// NewCamera creates a camera for the given mode, centered on target.
func NewCamera(cfg config.DashCamera, mode level.GameMode, target core.Vec2) Camera {
	c := Camera{cfg: cfg, mode: mode}
	c.Reset(target)
	return c
}

// Reset snaps the camera onto the target with no easing.
func (c *Camera) Reset(target core.Vec2) {
	c.Pos.X = target.X - c.cfg.LeadOffset
	if c.mode == level.ModeFree {
		c.Pos.Y = target.Y
	} else {
		c.Pos.Y = 0
	}
}

// Follow advances the camera one tick toward the target.
func (c *Camera) Follow(target core.Vec2) {
	c.Pos.X = target.X - c.cfg.LeadOffset
	if c.mode == level.ModeFree {
		c.Pos.Y += (target.Y - c.Pos.Y) * c.cfg.FreeEase
	}
}
