package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/dash.yaml
var defaultConfigs embed.FS

// LoadDash loads the simulation tuning config. Search order:
//  1. customPath if provided
//  2. ~/.dash/configs/dash.yaml
//  3. ./configs/dash.yaml
//  4. embedded defaults
func LoadDash(customPath string) (*DashConfig, error) {
	if customPath != "" {
		return loadDashFile(customPath)
	}

	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, ".dash", "configs", "dash.yaml")
		if _, err := os.Stat(p); err == nil {
			return loadDashFile(p)
		}
	}

	if _, err := os.Stat("configs/dash.yaml"); err == nil {
		return loadDashFile("configs/dash.yaml")
	}

	return loadDashEmbedded()
}

// MustLoadDash loads the embedded defaults and panics on failure. The
// embedded file is compiled in, so failure means a build-time defect.
func MustLoadDash() *DashConfig {
	cfg, err := loadDashEmbedded()
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults broken: %v", err))
	}
	return cfg
}

func loadDashFile(path string) (*DashConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return parseDash(data, path)
}

func loadDashEmbedded() (*DashConfig, error) {
	data, err := defaultConfigs.ReadFile("defaults/dash.yaml")
	if err != nil {
		return nil, fmt.Errorf("config: read embedded defaults: %w", err)
	}
	return parseDash(data, "embedded")
}

func parseDash(data []byte, source string) (*DashConfig, error) {
	var cfg DashConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", source, err)
	}
	if err := validateDash(&cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", source, err)
	}
	return &cfg, nil
}

func validateDash(cfg *DashConfig) error {
	if cfg.Physics.Gravity <= 0 {
		return fmt.Errorf("physics.gravity must be positive, got %f", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpForce >= 0 {
		return fmt.Errorf("physics.jump_force must be negative (up), got %f", cfg.Physics.JumpForce)
	}
	if cfg.Physics.MoveSpeed <= 0 {
		return fmt.Errorf("physics.move_speed must be positive, got %f", cfg.Physics.MoveSpeed)
	}
	if cfg.Physics.TerminalVelocity <= 0 {
		return fmt.Errorf("physics.terminal_velocity must be positive, got %f", cfg.Physics.TerminalVelocity)
	}
	if cfg.Player.Hitbox <= 0 || cfg.Player.Hitbox > cfg.Player.Size {
		return fmt.Errorf("player.hitbox %f must be in (0, %f]", cfg.Player.Hitbox, cfg.Player.Size)
	}
	if cfg.World.TileSize <= 0 {
		return fmt.Errorf("world.tile_size must be positive, got %f", cfg.World.TileSize)
	}
	if cfg.World.FreeMinY >= cfg.World.FreeMaxY {
		return fmt.Errorf("world free bounds inverted: %f >= %f", cfg.World.FreeMinY, cfg.World.FreeMaxY)
	}
	if cfg.Camera.FreeEase <= 0 || cfg.Camera.FreeEase > 1 {
		return fmt.Errorf("camera.free_ease %f must be in (0, 1]", cfg.Camera.FreeEase)
	}
	if cfg.Recorder.SampleInterval <= 0 {
		return fmt.Errorf("recorder.sample_interval must be positive, got %f", cfg.Recorder.SampleInterval)
	}
	return nil
}
