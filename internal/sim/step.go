package sim

import (
	"math"

	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/level"
)

// Step advances the simulation by exactly one tick. The order inside a tick
// is fixed: input read, horizontal advance, ground jump (consumes the orb
// lock), gravity, plane containment, entity resolution in object order,
// support check, rotation, win check. The support check runs after entity
// resolution, so a player walking off a ledge keeps surface height for that
// tick and starts falling on the next one.
// A lethal contact ends the tick immediately; nothing after it runs except
// the end-of-tick bookkeeping.
func (s *Simulation) Step() StepResult {
	if s.outcome != OutcomeRunning {
		return StepResult{Outcome: s.outcome}
	}

	p := &s.player
	phys := s.cfg.Physics
	tile := s.cfg.World.TileSize
	size := s.cfg.Player.Hitbox

	pressed := s.latch.Pressed()
	held := s.latch.Held()

	prevFeet := p.Pos.Y
	prevHead := p.Head(size)

	var events []Event

	p.Pos.X += phys.MoveSpeed * p.SpeedMultiplier

	if p.Grounded && (pressed || held) {
		p.Vel.Y = phys.JumpForce * p.GravityScale
		p.Grounded = false
		p.CanOrbJump = false
		p.Jumps++
		events = append(events, EventJump)
	}

	if !p.Grounded {
		p.Vel.Y += phys.Gravity * p.GravityScale
		p.Vel.Y = core.ClampF(p.Vel.Y, -phys.TerminalVelocity, phys.TerminalVelocity)
		p.Pos.Y += p.Vel.Y
	}

	switch s.lvl.GameMode {
	case level.ModeClassic:
		s.containClassic(&events)
	case level.ModeFree:
		if p.Pos.Y < s.cfg.World.FreeMinY || p.Pos.Y > s.cfg.World.FreeMaxY {
			s.die(&events)
			return s.endTick(events)
		}
	}

	orbUsed := false
	for i := range s.lvl.Objects {
		o := &s.lvl.Objects[i]
		box := p.Hitbox(size)

		switch level.KindRole(o.Type) {
		case level.RoleSolid:
			hb, _ := level.Hitbox(o.Type, o.X, o.Y, tile)
			if !box.Intersects(hb) {
				continue
			}
			if !s.resolveBlock(hb, prevFeet, prevHead) {
				s.die(&events)
				return s.endTick(events)
			}

		case level.RoleLethal:
			hb, _ := level.Hitbox(o.Type, o.X, o.Y, tile)
			if box.Intersects(hb) {
				s.die(&events)
				return s.endTick(events)
			}

		case level.RoleOneShot:
			if orbUsed {
				continue
			}
			c := level.TileCenter(o.X, o.Y, tile)
			if p.Center(size).Dist(c) > s.cfg.Player.OrbRadius {
				continue
			}
			if !p.CanOrbJump || !(pressed || held) {
				continue
			}
			eff := level.KindEffect(o.Type)
			if eff.FlipGravity {
				p.GravityScale = -p.GravityScale
				events = append(events, EventGravityFlip)
			}
			p.Vel.Y = phys.JumpForce * eff.Impulse * p.GravityScale
			p.Grounded = false
			p.CanOrbJump = false
			p.Jumps++
			orbUsed = true
			s.latch.ConsumePressed()
			pressed = false
			events = append(events, EventOrb)

		case level.RoleZone:
			hb, _ := level.Hitbox(o.Type, o.X, o.Y, tile)
			if !box.Intersects(hb) {
				continue
			}
			eff := level.KindEffect(o.Type)
			switch {
			case eff.FlipGravity:
				cooldown := s.cfg.World.GravityPortalCooldown * tile
				if p.GravityPortalUsed && p.Pos.X-p.LastGravityPortalX < cooldown {
					continue
				}
				p.GravityScale = -p.GravityScale
				p.Grounded = false
				p.GravityPortalUsed = true
				p.LastGravityPortalX = p.Pos.X
				events = append(events, EventGravityFlip)
			case eff.SpeedMult > 0 && eff.SpeedMult != p.SpeedMultiplier:
				p.SpeedMultiplier = eff.SpeedMult
				events = append(events, EventSpeedChange)
			}
		}
	}

	if p.Grounded && !s.supported() {
		p.Grounded = false
	}

	if p.Grounded {
		p.Rotation = core.SnapAngle(p.Rotation)
	} else {
		p.Rotation = math.Mod(p.Rotation+phys.RotationRate*p.GravityScale+360, 360)
	}

	if s.mode != ModeEndless && p.Pos.X > s.lvl.FinishX(tile) {
		s.outcome = OutcomeWin
		events = append(events, EventWin)
	}

	return s.endTick(events)
}

// containClassic clamps the player against the floor plane and the fixed
// ceiling. The plane in the direction of gravity grounds the player; the
// opposite plane only stops movement.
func (s *Simulation) containClassic(events *[]Event) {
	p := &s.player
	size := s.cfg.Player.Hitbox
	ceiling := s.cfg.World.CeilingY()

	if p.GravityScale > 0 {
		if p.Pos.Y >= 0 {
			p.Pos.Y = 0
			if p.Vel.Y > 0 {
				p.Vel.Y = 0
			}
			s.land()
		}
		if p.Head(size) < ceiling {
			p.Pos.Y = ceiling + size
			if p.Vel.Y < 0 {
				p.Vel.Y = 0
			}
		}
	} else {
		if p.Head(size) <= ceiling {
			p.Pos.Y = ceiling + size
			if p.Vel.Y < 0 {
				p.Vel.Y = 0
			}
			s.land()
		}
		if p.Pos.Y > 0 {
			p.Pos.Y = 0
			if p.Vel.Y > 0 {
				p.Vel.Y = 0
			}
		}
	}
}

// resolveBlock resolves an overlap with a solid block. Returns true if the
// player landed on the block's gravity-facing surface; false means a fatal
// side or head-on collision. The previous position bounds the landing so a
// fast fall cannot tunnel through and "land" from below.
func (s *Simulation) resolveBlock(hb core.Box, prevFeet, prevHead float64) bool {
	p := &s.player
	size := s.cfg.Player.Hitbox
	tol := s.cfg.Physics.LandingTolerance

	if p.GravityScale > 0 {
		if p.Vel.Y >= 0 && prevFeet <= hb.Y+tol {
			p.Pos.Y = hb.Y
			p.Vel.Y = 0
			s.land()
			return true
		}
		return false
	}
	if p.Vel.Y <= 0 && prevHead >= hb.Bottom()-tol {
		p.Pos.Y = hb.Bottom() + size
		p.Vel.Y = 0
		s.land()
		return true
	}
	return false
}

// land marks the player grounded, re-arms the orb lock, and squares up the
// rotation.
func (s *Simulation) land() {
	p := &s.player
	p.Grounded = true
	p.CanOrbJump = true
	p.Rotation = math.Mod(core.SnapAngle(p.Rotation)+360, 360)
}

// supported reports whether something still holds the grounded player up:
// the gravity-facing plane in classic mode, or any solid block whose
// surface is within the support tolerance under the player's footprint.
func (s *Simulation) supported() bool {
	p := &s.player
	size := s.cfg.Player.Hitbox
	tol := s.cfg.Physics.SupportTolerance
	tile := s.cfg.World.TileSize
	half := size / 2

	if s.lvl.GameMode == level.ModeClassic {
		if p.GravityScale > 0 && math.Abs(p.Pos.Y) <= tol {
			return true
		}
		if p.GravityScale < 0 && math.Abs(p.Head(size)-s.cfg.World.CeilingY()) <= tol {
			return true
		}
	}

	for _, o := range s.lvl.Objects {
		if level.KindRole(o.Type) != level.RoleSolid {
			continue
		}
		hb, _ := level.Hitbox(o.Type, o.X, o.Y, tile)
		if p.Pos.X+half <= hb.X || p.Pos.X-half >= hb.Right() {
			continue
		}
		if p.GravityScale > 0 {
			if math.Abs(p.Pos.Y-hb.Y) <= tol {
				return true
			}
		} else {
			if math.Abs(p.Head(size)-hb.Bottom()) <= tol {
				return true
			}
		}
	}
	return false
}

// die marks the run dead.
func (s *Simulation) die(events *[]Event) {
	s.player.Dead = true
	s.outcome = OutcomeDead
	*events = append(*events, EventDeath)
}

// endTick performs the bookkeeping every tick path shares: trail sampling,
// camera tracking, edge clearing, and the one-time terminal hook.
func (s *Simulation) endTick(events []Event) StepResult {
	s.tick++
	if s.rec != nil {
		s.rec.Observe(s.player.Pos)
	}
	s.camera.Follow(s.player.Center(s.cfg.Player.Hitbox))
	s.latch.EndTick()

	if s.outcome != OutcomeRunning && !s.hooksFired {
		s.hooksFired = true
		s.fireTerminalHook()
	}
	return StepResult{Outcome: s.outcome, Events: events}
}

func (s *Simulation) fireTerminalHook() {
	if s.mode == ModeTest {
		if s.hooks.OnTestComplete != nil {
			s.hooks.OnTestComplete(TestResult{
				Outcome:  s.outcome,
				Ticks:    s.tick,
				Percent:  s.Percent(),
				Trail:    s.Trail(),
				DeathPos: s.DeathPos(),
			})
		}
		return
	}
	switch s.outcome {
	case OutcomeDead:
		if s.hooks.OnDie != nil {
			s.hooks.OnDie()
		}
	case OutcomeWin:
		if s.hooks.OnWin != nil {
			s.hooks.OnWin()
		}
	}
}
