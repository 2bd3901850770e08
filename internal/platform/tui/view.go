package tui

import (
	"math"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/level"
	"github.com/vovakirdan/tui-dash/internal/sim"
)

// World-to-terminal scale. Terminal cells are roughly twice as tall as wide,
// so a 48px tile maps to 4 columns by 2 rows.
const (
	cellW = 12.0
	cellH = 24.0
)

// projector maps world coordinates to screen cells for one frame.
type projector struct {
	w, h int
	camX float64
	camY float64
	free bool
}

func newProjector(s *core.Screen, cam core.Vec2, mode level.GameMode) projector {
	return projector{
		w:    s.Width(),
		h:    s.Height(),
		camX: cam.X,
		camY: cam.Y,
		free: mode == level.ModeFree,
	}
}

// floorRow is the screen row of the floor line in classic mode.
func (pr projector) floorRow() int { return pr.h - 2 }

func (pr projector) col(x float64) int {
	return int(math.Floor((x - pr.camX) / cellW))
}

// row returns the screen row containing world y. In classic mode the view is
// anchored so the floor line sits near the bottom; in free mode the camera's
// focus y sits at the vertical center.
func (pr projector) row(y float64) int {
	if pr.free {
		return pr.h/2 + int(math.Floor((y-pr.camY)/cellH))
	}
	return pr.floorRow() - 1 - int(math.Floor(-y/cellH))
}

// boxRect converts a world box to a screen rectangle (x, y, w, h in cells).
func (pr projector) boxRect(b core.Box) (int, int, int, int) {
	x1 := pr.col(b.X)
	x2 := pr.col(b.Right() - 0.001)
	y1 := pr.row(b.Y + 0.001)
	y2 := pr.row(b.Bottom() - 0.001)
	return x1, y1, x2 - x1 + 1, y2 - y1 + 1
}

func fillRect(s *core.Screen, x, y, w, h int, r rune, c core.Color) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.SetColored(x+dx, y+dy, r, c)
		}
	}
}

func outlineRect(s *core.Screen, x, y, w, h int, c core.Color) {
	for dx := 0; dx < w; dx++ {
		s.SetColored(x+dx, y, '░', c)
		s.SetColored(x+dx, y+h-1, '░', c)
	}
	for dy := 0; dy < h; dy++ {
		s.SetColored(x, y+dy, '░', c)
		s.SetColored(x+w-1, y+dy, '░', c)
	}
}

// entityGlyph returns the display rune and color for a trigger entity.
func entityGlyph(k level.EntityKind) (rune, core.Color) {
	switch k {
	case level.KindOrbJump:
		return '○', core.ColorBrightYellow
	case level.KindOrbJumpPurple:
		return '○', core.ColorBrightMagenta
	case level.KindOrbJumpRed:
		return '○', core.ColorBrightRed
	case level.KindOrbGravity:
		return '◉', core.ColorBrightGreen
	case level.KindPortalGravity:
		return '║', core.ColorBrightCyan
	case level.KindPortalSpeedSlow:
		return '≫', core.ColorBlue
	case level.KindPortalSpeedNorm:
		return '≫', core.ColorWhite
	case level.KindPortalSpeedFast:
		return '≫', core.ColorOrange
	case level.KindPortalSpeedVery:
		return '≫', core.ColorBrightRed
	default:
		return '?', core.ColorGray
	}
}

// drawLevel renders the static level geometry: floor, finish line, and every
// entity near the viewport.
func drawLevel(s *core.Screen, pr projector, cfg *config.DashConfig, lvl *level.Level, showHitboxes bool) {
	tile := cfg.World.TileSize

	if !pr.free {
		fr := pr.floorRow()
		for x := 0; x < pr.w; x++ {
			s.SetColored(x, fr, '▀', core.ColorGray)
		}
		if cr := pr.row(cfg.World.CeilingY() - 0.001); cr >= 0 && cr < pr.h {
			for x := 0; x < pr.w; x++ {
				s.SetColored(x, cr, '▄', core.ColorGray)
			}
		}
	}

	// Finish line.
	if fc := pr.col(lvl.FinishX(tile)); fc >= 0 && fc < pr.w {
		for y := 0; y < pr.h; y++ {
			s.SetColored(fc, y, '┆', core.ColorBrightGreen)
		}
	}

	// Only entities within a screen's worth of the camera matter.
	minX := pr.camX - 2*tile
	maxX := pr.camX + float64(pr.w)*cellW + 2*tile

	for _, o := range lvl.Objects {
		tb := level.TileBox(o.X, o.Y, tile)
		if tb.Right() < minX || tb.X > maxX {
			continue
		}

		switch level.KindRole(o.Type) {
		case level.RoleSolid:
			x, y, w, h := pr.boxRect(tb)
			fillRect(s, x, y, w, h, '█', core.ColorWhite)

		case level.RoleLethal:
			hb, _ := level.Hitbox(o.Type, o.X, o.Y, tile)
			x, y, w, h := pr.boxRect(hb)
			glyph := '▲'
			if o.Type == level.KindHalfSpike {
				glyph = '▴'
			}
			fillRect(s, x, y, w, h, glyph, core.ColorBrightRed)

		case level.RoleOneShot:
			c := level.TileCenter(o.X, o.Y, tile)
			r, col := entityGlyph(o.Type)
			s.SetColored(pr.col(c.X), pr.row(c.Y), r, col)

		case level.RoleZone:
			hb, _ := level.Hitbox(o.Type, o.X, o.Y, tile)
			r, col := entityGlyph(o.Type)
			cx := pr.col(hb.Center().X)
			y1 := pr.row(hb.Y + 0.001)
			y2 := pr.row(hb.Bottom() - 0.001)
			for y := y1; y <= y2; y++ {
				s.SetColored(cx, y, r, col)
			}
		}

		if showHitboxes {
			if hb, ok := level.Hitbox(o.Type, o.X, o.Y, tile); ok {
				x, y, w, h := pr.boxRect(hb)
				outlineRect(s, x, y, w, h, core.ColorGray)
			}
		}
	}
}

// drawPlayer renders the player cube.
func drawPlayer(s *core.Screen, pr projector, cfg *config.DashConfig, p sim.PlayerState, showHitboxes bool) {
	hb := p.Hitbox(cfg.Player.Hitbox)
	x, y, w, h := pr.boxRect(hb)

	glyph, color := '█', core.ColorBrightCyan
	if p.GravityScale < 0 {
		color = core.ColorBrightMagenta
	}
	if p.Dead {
		glyph, color = '▓', core.ColorRed
	}
	fillRect(s, x, y, w, h, glyph, color)

	if showHitboxes {
		outlineRect(s, x, y, w, h, core.ColorGray)
	}
}

// drawTrail overlays recorded test-run samples.
func drawTrail(s *core.Screen, pr projector, trail []sim.Sample) {
	for _, pt := range trail {
		s.SetColored(pr.col(pt.Pos.X), pr.row(pt.Pos.Y-0.001), '·', core.ColorBrightYellow)
	}
}
