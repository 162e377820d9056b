package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBee loads the puzzle configuration.
// Search order: customPath -> ~/.bee/configs/bee.yaml -> ./configs/bee.yaml -> embedded default
func LoadBee(customPath string) (BeeConfig, error) {
	cfg := DefaultBeeConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return normalize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bee.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return normalize(cfg), nil
			}
			cfg = DefaultBeeConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/bee.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return normalize(cfg), nil
		}
		cfg = DefaultBeeConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBeeYAML, &cfg); err != nil {
		return DefaultBeeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return normalize(cfg), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bee", "configs", filename)
}

// ApplyPreset overrides the configured difficulty when a preset was requested.
func ApplyPreset(cfg *BeeConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty = preset
}

// normalize repairs values a partial YAML file may leave unusable.
func normalize(cfg BeeConfig) BeeConfig {
	def := DefaultBeeConfig()
	if _, ok := ParsePreset(string(cfg.Difficulty)); !ok {
		cfg.Difficulty = def.Difficulty
	}
	if cfg.Hints.DefaultPrefix <= 0 {
		cfg.Hints.DefaultPrefix = def.Hints.DefaultPrefix
	}
	if cfg.Stats.TickSeconds <= 0 {
		cfg.Stats.TickSeconds = def.Stats.TickSeconds
	}
	return cfg
}
