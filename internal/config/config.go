// Package config provides YAML-based game configuration loading and
// difficulty management for the platformer.
package config

// PlatformerConfig contains all configuration for the platformer.
type PlatformerConfig struct {
	Physics    PlatformerPhysics  `yaml:"physics"`
	Gameplay   PlatformerGameplay `yaml:"gameplay"`
	Controls   PlatformerControls `yaml:"controls"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// PlatformerPhysics defines player movement in tiles and seconds.
type PlatformerPhysics struct {
	Gravity   float64 `yaml:"gravity"`    // Downward acceleration, tiles/s²
	JumpSpeed float64 `yaml:"jump_speed"` // Upward speed when a jump starts, tiles/s
	MoveSpeed float64 `yaml:"move_speed"` // Horizontal run speed, tiles/s
	MaxStep   float64 `yaml:"max_step"`   // Largest simulated slice per update, seconds
}

// PlatformerGameplay defines campaign rules.
type PlatformerGameplay struct {
	Lives      int `yaml:"lives"`       // Attempts before game over
	StartLevel int `yaml:"start_level"` // Zero-based level to begin at
}

// PlatformerControls tunes keyboard handling.
type PlatformerControls struct {
	// HoldTicks is how many ticks a single left/right press keeps the
	// player running. Terminals report presses and repeats, never releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases through a pack.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Level index at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	TimeScale float64 `yaml:"time_scale"` // Extra simulation speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, true
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
