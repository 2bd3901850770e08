// Package config provides YAML-based tuning configuration and endless-mode
// difficulty management for the dash platform.
package config

// DashConfig contains all tuning for the simulation and camera.
// Defaults reproduce the reference feel; everything is overridable from YAML.
type DashConfig struct {
	Physics    DashPhysics      `yaml:"physics"`
	Player     DashPlayer       `yaml:"player"`
	World      DashWorld        `yaml:"world"`
	Camera     DashCamera       `yaml:"camera"`
	Recorder   DashRecorder     `yaml:"recorder"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DashPhysics defines per-tick kinematics parameters.
// Velocities are px/tick; gravity is px/tick².
type DashPhysics struct {
	Gravity          float64 `yaml:"gravity"`
	JumpForce        float64 `yaml:"jump_force"` // Negative: up is negative y
	MoveSpeed        float64 `yaml:"move_speed"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	RotationRate     float64 `yaml:"rotation_rate"`     // Degrees per airborne tick
	SupportTolerance float64 `yaml:"support_tolerance"` // Grounded-stability slack, px
	LandingTolerance float64 `yaml:"landing_tolerance"` // Tunneling guard, px
}

// DashPlayer defines the player's collision footprint.
type DashPlayer struct {
	Size      float64 `yaml:"size"`       // Visual square edge, px
	Hitbox    float64 `yaml:"hitbox"`     // Collision square edge, px (inset)
	OrbRadius float64 `yaml:"orb_radius"` // Orb proximity radius, px
}

// DashWorld defines tile scale and vertical containment.
type DashWorld struct {
	TileSize     float64 `yaml:"tile_size"`
	CeilingTiles int     `yaml:"ceiling_tiles"` // Classic-mode ceiling height
	FreeMinY     float64 `yaml:"free_min_y"`    // Free-mode upper bound (negative)
	FreeMaxY     float64 `yaml:"free_max_y"`    // Free-mode lower bound (positive)

	// Gravity-portal re-entry cooldown, in tiles of horizontal travel.
	GravityPortalCooldown float64 `yaml:"gravity_portal_cooldown"`
}

// DashCamera defines camera-target behavior.
type DashCamera struct {
	LeadOffset float64 `yaml:"lead_offset"` // px the player leads the camera by
	FreeEase   float64 `yaml:"free_ease"`   // Vertical easing factor per tick (free mode)
}

// DashRecorder defines the test-mode trail recorder.
type DashRecorder struct {
	SampleInterval float64 `yaml:"sample_interval"` // Seconds of simulated time
}

// CeilingY returns the classic-mode ceiling plane in world coordinates.
func (w DashWorld) CeilingY() float64 {
	return -float64(w.CeilingTiles) * w.TileSize
}

// DifficultyConfig defines the endless-mode difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "distance", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Tiles/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	HazardBias       float64 `yaml:"hazard_bias"`       // Added hazard probability at max difficulty
	SpacingReduction int     `yaml:"spacing_reduction"` // Segment gap reduction (tiles) at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyDashPreset modifies the config based on a difficulty preset.
func ApplyDashPreset(cfg *DashConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
