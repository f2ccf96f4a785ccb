package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const platformerFile = "platformer.yaml"

// LoadPlatformer loads the platformer configuration.
// Search order: customPath -> ~/.platformer/configs/platformer.yaml ->
// ./configs/platformer.yaml -> embedded default -> hardcoded default.
// Missing keys keep their default values.
func LoadPlatformer(customPath string) (PlatformerConfig, error) {
	cfg := DefaultPlatformerConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	if userCfgPath := userConfigPath(platformerFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	if loaded, ok := tryLoad(filepath.Join("configs", platformerFile)); ok {
		return loaded, nil
	}

	if err := yaml.Unmarshal(defaultPlatformerYAML, &cfg); err != nil {
		return DefaultPlatformerConfig(), nil
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are
// skipped so the next location in the search order is used.
func tryLoad(path string) (PlatformerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlatformerConfig{}, false
	}
	cfg := DefaultPlatformerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlatformerConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return PlatformerConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".platformer", "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c PlatformerConfig) Validate() error {
	// YAML accepts .nan and .inf for floats.
	for _, f := range []struct {
		name string
		val  float64
	}{
		{"gravity", c.Physics.Gravity},
		{"jump_speed", c.Physics.JumpSpeed},
		{"move_speed", c.Physics.MoveSpeed},
		{"max_step", c.Physics.MaxStep},
		{"initial_level", c.Difficulty.InitialLevel},
		{"time_scale", c.Difficulty.Scaling.TimeScale},
	} {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return fmt.Errorf("config: %s must be finite, got %g", f.name, f.val)
		}
	}

	switch {
	case c.Physics.Gravity < 0:
		return fmt.Errorf("config: gravity must not be negative, got %g", c.Physics.Gravity)
	case c.Physics.JumpSpeed < 0:
		return fmt.Errorf("config: jump_speed must not be negative, got %g", c.Physics.JumpSpeed)
	case c.Physics.MoveSpeed < 0:
		return fmt.Errorf("config: move_speed must not be negative, got %g", c.Physics.MoveSpeed)
	case c.Physics.MaxStep <= 0:
		return fmt.Errorf("config: max_step must be positive, got %g", c.Physics.MaxStep)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("config: lives must be at least 1, got %d", c.Gameplay.Lives)
	case c.Gameplay.StartLevel < 0:
		return fmt.Errorf("config: start_level must not be negative, got %d", c.Gameplay.StartLevel)
	case c.Controls.HoldTicks < 1:
		return fmt.Errorf("config: hold_ticks must be at least 1, got %d", c.Controls.HoldTicks)
	}
	return nil
}

// ApplyPlatformerPreset modifies the config based on a difficulty preset.
func ApplyPlatformerPreset(cfg *PlatformerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
	}
}
