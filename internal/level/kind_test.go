package level

import "testing"

func TestKindRoles(t *testing.T) {
	tests := []struct {
		kind EntityKind
		role Role
	}{
		{KindBlock, RoleSolid},
		{KindSpike, RoleLethal},
		{KindHalfSpike, RoleLethal},
		{KindOrbJump, RoleOneShot},
		{KindOrbJumpPurple, RoleOneShot},
		{KindOrbJumpRed, RoleOneShot},
		{KindOrbGravity, RoleOneShot},
		{KindPortalGravity, RoleZone},
		{KindPortalSpeedSlow, RoleZone},
		{KindPortalSpeedVery, RoleZone},
		{KindFloor, RoleNone},
		{EntityKind("bogus"), RoleNone},
	}

	for _, tc := range tests {
		t.Run(string(tc.kind), func(t *testing.T) {
			if got := KindRole(tc.kind); got != tc.role {
				t.Errorf("KindRole(%s) = %s, expected %s", tc.kind, got, tc.role)
			}
		})
	}
}

func TestKindEffects(t *testing.T) {
	if e := KindEffect(KindOrbJump); e.Impulse != 1.0 || e.FlipGravity {
		t.Errorf("yellow orb effect = %+v", e)
	}
	if e := KindEffect(KindOrbJumpPurple); e.Impulse != 0.7 {
		t.Errorf("purple orb impulse = %f, expected 0.7", e.Impulse)
	}
	if e := KindEffect(KindOrbJumpRed); e.Impulse != 1.3 {
		t.Errorf("red orb impulse = %f, expected 1.3", e.Impulse)
	}
	if e := KindEffect(KindOrbGravity); !e.FlipGravity || e.Impulse != 0.5 {
		t.Errorf("gravity orb effect = %+v", e)
	}
	if e := KindEffect(KindPortalGravity); !e.FlipGravity || e.Impulse != 0 {
		t.Errorf("gravity portal effect = %+v", e)
	}

	speeds := map[EntityKind]float64{
		KindPortalSpeedSlow: 0.7,
		KindPortalSpeedNorm: 1.0,
		KindPortalSpeedFast: 1.3,
		KindPortalSpeedVery: 1.6,
	}
	for k, want := range speeds {
		if got := KindEffect(k).SpeedMult; got != want {
			t.Errorf("KindEffect(%s).SpeedMult = %f, expected %f", k, got, want)
		}
	}
}

func TestTileBox(t *testing.T) {
	// Row 1 rests on the floor: its bottom edge must be y=0.
	b := TileBox(0, 1, 48)
	if b.Y != -48 || b.Bottom() != 0 {
		t.Errorf("row 1 tile spans [%f, %f), expected [-48, 0)", b.Y, b.Bottom())
	}

	b = TileBox(3, 2, 48)
	if b.X != 144 || b.Y != -96 || b.W != 48 || b.H != 48 {
		t.Errorf("TileBox(3, 2) = %+v", b)
	}
}

func TestHitboxGeometry(t *testing.T) {
	const tile = 48.0

	t.Run("block covers full tile", func(t *testing.T) {
		hb, ok := Hitbox(KindBlock, 2, 1, tile)
		if !ok {
			t.Fatal("block should have a hitbox")
		}
		if hb != TileBox(2, 1, tile) {
			t.Errorf("block hitbox = %+v, expected full tile", hb)
		}
	})

	t.Run("spike hitbox is small and bottom-centered", func(t *testing.T) {
		hb, ok := Hitbox(KindSpike, 0, 1, tile)
		if !ok {
			t.Fatal("spike should have a hitbox")
		}
		if hb.W >= tile || hb.H >= tile {
			t.Errorf("spike hitbox %fx%f should be inset from the tile", hb.W, hb.H)
		}
		if hb.Bottom() != 0 {
			t.Errorf("spike hitbox bottom = %f, expected floor contact at 0", hb.Bottom())
		}
		tc := TileCenter(0, 1, tile)
		hc := hb.Center()
		if hc.X != tc.X {
			t.Errorf("spike hitbox center x = %f, expected %f", hc.X, tc.X)
		}
	})

	t.Run("half spike covers only the lower half", func(t *testing.T) {
		hb, ok := Hitbox(KindHalfSpike, 0, 1, tile)
		if !ok {
			t.Fatal("half spike should have a hitbox")
		}
		if hb.Y < -tile/2 {
			t.Errorf("half spike hitbox top = %f, should stay in the lower half", hb.Y)
		}
		if hb.Bottom() != 0 {
			t.Errorf("half spike hitbox bottom = %f, expected 0", hb.Bottom())
		}
	})

	t.Run("portal strip spans three tiles with 15px insets", func(t *testing.T) {
		hb, ok := Hitbox(KindPortalGravity, 4, 2, tile)
		if !ok {
			t.Fatal("portal should have a hitbox")
		}
		if hb.W != 18 {
			t.Errorf("portal strip width = %f, expected 18", hb.W)
		}
		if hb.H != 3*tile {
			t.Errorf("portal strip height = %f, expected %f", hb.H, 3*tile)
		}
		anchor := TileBox(4, 2, tile)
		if hb.X != anchor.X+15 {
			t.Errorf("portal strip x = %f, expected %f", hb.X, anchor.X+15)
		}
	})

	t.Run("orbs and floor have no rectangular hitbox", func(t *testing.T) {
		for _, k := range []EntityKind{KindOrbJump, KindOrbGravity, KindFloor} {
			if _, ok := Hitbox(k, 0, 1, tile); ok {
				t.Errorf("%s should not have a rectangular hitbox", k)
			}
		}
	})
}
