package config

import "github.com/vovakirdan/tui-platformer/internal/core"

// DifficultyManager derives dynamic parameters from campaign progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: core.ClampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = core.ClampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the difficulty (0.0 to 1.0) for the given level index.
func (d *DifficultyManager) Level(levelIndex int) float64 {
	if !d.IsEnabled() || d.cfg.Progression.Type != "level" {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		return 1.0
	}
	progress := core.ClampF(float64(levelIndex)/maxAt, 0.0, 1.0)

	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// TimeScale returns the simulation speed multiplier for a level index.
// It is 1.0 at difficulty 0 and 1+time_scale at difficulty 1.
func (d *DifficultyManager) TimeScale(levelIndex int) float64 {
	scale := 1.0 + d.Level(levelIndex)*d.cfg.Scaling.TimeScale
	if scale < 0.1 {
		scale = 0.1
	}
	return scale
}
