package core

import "time"

// RuntimeConfig contains configuration passed to a puzzle session at start.
// The platform layer fills it from flags, the terminal and the loaded YAML config.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	Seed       int64         // RNG seed for reproducible puzzle selection, hints and shuffles
	Difficulty string        // Puzzle pack id (easy, medium, hard)
	Letters    string        // Explicit letter set, empty for a random puzzle
	StatsEvery time.Duration // Interval of the periodic statistics refresh
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		Seed:       0, // 0 means use current time in platform layer
		Difficulty: "easy",
		StatsEvery: 30 * time.Second,
	}
}
