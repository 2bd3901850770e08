package config

// DifficultyManager tracks the current difficulty level of an endless run
// and derives generation parameters from it.
type DifficultyManager struct {
	cfg     DifficultyConfig
	current float64
}

// NewDifficultyManager creates a manager at the configured initial level.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:     cfg,
		current: clamp01(cfg.InitialLevel),
	}
}

// Update advances difficulty based on run progress. The unit of progress
// depends on progression type: tiles traveled for "distance", ticks for
// "time". "none" keeps the level fixed.
func (dm *DifficultyManager) Update(progress int) {
	if !dm.cfg.Enabled || dm.cfg.Progression.Type == "none" || dm.cfg.Progression.MaxAt <= 0 {
		return
	}
	ramp := float64(progress) / float64(dm.cfg.Progression.MaxAt)
	dm.current = clamp01(dm.cfg.InitialLevel + ramp*(1.0-dm.cfg.InitialLevel))
}

// Level returns the current difficulty in [0, 1].
func (dm *DifficultyManager) Level() float64 {
	return dm.current
}

// HazardBias returns the extra hazard probability at the current level.
func (dm *DifficultyManager) HazardBias() float64 {
	if !dm.cfg.Enabled {
		return 0
	}
	return dm.current * dm.cfg.Scaling.HazardBias
}

// SpacingReduction returns how many tiles to shave off segment gaps
// at the current level.
func (dm *DifficultyManager) SpacingReduction() int {
	if !dm.cfg.Enabled {
		return 0
	}
	return int(dm.current * float64(dm.cfg.Scaling.SpacingReduction))
}

// Reset returns difficulty to the configured initial level.
func (dm *DifficultyManager) Reset() {
	dm.current = clamp01(dm.cfg.InitialLevel)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
