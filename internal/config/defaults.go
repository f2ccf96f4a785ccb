package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the hardcoded platformer configuration.
// It matches defaults/platformer.yaml.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:   30,
			JumpSpeed: 17,
			MoveSpeed: 7,
			MaxStep:   0.05,
		},
		Gameplay: PlatformerGameplay{
			Lives:      3,
			StartLevel: 0,
		},
		Controls: PlatformerControls{
			HoldTicks: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 5,
			},
			Scaling: ScalingConfig{
				TimeScale: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default platformer YAML.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
