package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsLoad(t *testing.T) {
	cfg := MustLoadDash()

	if cfg.Physics.Gravity != 0.8 {
		t.Errorf("gravity = %f, expected 0.8", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpForce != -13.5 {
		t.Errorf("jump force = %f, expected -13.5", cfg.Physics.JumpForce)
	}
	if cfg.World.TileSize != 48 {
		t.Errorf("tile size = %f, expected 48", cfg.World.TileSize)
	}
	if cfg.World.CeilingY() != -720 {
		t.Errorf("ceiling = %f, expected -720", cfg.World.CeilingY())
	}
	if cfg.Player.Hitbox != 36 {
		t.Errorf("hitbox = %f, expected 36", cfg.Player.Hitbox)
	}
	if cfg.Camera.LeadOffset != 240 {
		t.Errorf("camera lead = %f, expected 240", cfg.Camera.LeadOffset)
	}
}

func TestLoadDashCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dash.yaml")
	data := `
physics:
  gravity: 1.2
  jump_force: -10.0
  move_speed: 4.0
  terminal_velocity: 20.0
  rotation_rate: 5.0
  support_tolerance: 5.0
  landing_tolerance: 15.0
player:
  size: 48.0
  hitbox: 30.0
  orb_radius: 32.0
world:
  tile_size: 48.0
  ceiling_tiles: 10
  free_min_y: -2000.0
  free_max_y: 500.0
  gravity_portal_cooldown: 2.0
camera:
  lead_offset: 200.0
  free_ease: 0.2
recorder:
  sample_interval: 0.1
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDash(path)
	if err != nil {
		t.Fatalf("LoadDash: %v", err)
	}
	if cfg.Physics.Gravity != 1.2 {
		t.Errorf("gravity = %f, expected custom 1.2", cfg.Physics.Gravity)
	}
	if cfg.World.CeilingY() != -480 {
		t.Errorf("ceiling = %f, expected -480", cfg.World.CeilingY())
	}
}

func TestLoadDashRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	data := `
physics:
  gravity: -1.0
  jump_force: -10.0
  move_speed: 4.0
  terminal_velocity: 20.0
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDash(path); err == nil {
		t.Error("negative gravity should be rejected")
	}
}

func TestDifficultyProgression(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.0,
		Progression:  ProgressionConfig{Type: "distance", MaxAt: 100},
		Scaling:      ScalingConfig{HazardBias: 0.4, SpacingReduction: 4},
	})

	if dm.Level() != 0 {
		t.Errorf("initial level = %f, expected 0", dm.Level())
	}

	dm.Update(50)
	if dm.Level() != 0.5 {
		t.Errorf("level at half progress = %f, expected 0.5", dm.Level())
	}
	if dm.SpacingReduction() != 2 {
		t.Errorf("spacing reduction = %d, expected 2", dm.SpacingReduction())
	}

	dm.Update(500)
	if dm.Level() != 1.0 {
		t.Errorf("level past max = %f, expected clamp to 1", dm.Level())
	}
	if dm.HazardBias() != 0.4 {
		t.Errorf("hazard bias = %f, expected 0.4", dm.HazardBias())
	}

	dm.Reset()
	if dm.Level() != 0 {
		t.Errorf("level after reset = %f, expected 0", dm.Level())
	}
}

func TestDifficultyDisabled(t *testing.T) {
	dm := NewDifficultyManager(DifficultyConfig{
		Enabled:     false,
		Progression: ProgressionConfig{Type: "distance", MaxAt: 100},
		Scaling:     ScalingConfig{HazardBias: 0.4, SpacingReduction: 4},
	})
	dm.Update(100)
	if dm.HazardBias() != 0 || dm.SpacingReduction() != 0 {
		t.Error("disabled difficulty should contribute nothing")
	}
}

func TestApplyDashPreset(t *testing.T) {
	cfg := MustLoadDash()
	ApplyDashPreset(cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset = %+v", cfg.Difficulty)
	}
	ApplyDashPreset(cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}
