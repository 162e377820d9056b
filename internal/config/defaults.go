package config

import (
	_ "embed"
)

//go:embed defaults/bee.yaml
var defaultBeeYAML []byte

// DefaultBeeConfig returns the default puzzle configuration.
func DefaultBeeConfig() BeeConfig {
	return BeeConfig{
		Difficulty: DifficultyEasy,
		Hints: HintLadder{
			FullWord:      0.1,
			SevenLetters:  1,
			FiveLetters:   5,
			DefaultPrefix: 3,
		},
		Stats: StatsConfig{
			TickSeconds: 30,
		},
		Generate: GenerateConfig{
			MinWords:        5,
			HardOver:        200,
			MediumOver:      50,
			SparseUnder:     20,
			SparseLongWords: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultBeeYAML
}
