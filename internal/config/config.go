// Package config provides YAML-based configuration loading and difficulty
// management for the puzzle.
package config

// BeeConfig contains all configuration for the word puzzle.
type BeeConfig struct {
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Hints      HintLadder       `yaml:"hints"`
	Stats      StatsConfig      `yaml:"stats"`
	Generate   GenerateConfig   `yaml:"generate"`
}

// HintLadder maps a uniform draw p in [0,100) to a revealed prefix length.
// The first threshold that p falls below wins.
type HintLadder struct {
	FullWord      float64 `yaml:"full_word"`      // p below this reveals the whole word
	SevenLetters  float64 `yaml:"seven_letters"`  // p below this reveals 7 letters
	FiveLetters   float64 `yaml:"five_letters"`   // p below this reveals 5 letters
	DefaultPrefix int     `yaml:"default_prefix"` // otherwise this many letters
}

// PrefixLength returns the prefix length for draw p on a word of wordLen letters.
func (h HintLadder) PrefixLength(p float64, wordLen int) int {
	n := h.DefaultPrefix
	switch {
	case p < h.FullWord:
		n = wordLen
	case p < h.SevenLetters:
		n = 7
	case p < h.FiveLetters:
		n = 5
	}
	if n > wordLen {
		n = wordLen
	}
	if n < 0 {
		n = 0
	}
	return n
}

// StatsConfig controls the statistics refresh.
type StatsConfig struct {
	TickSeconds int `yaml:"tick_seconds"` // periodic words-per-minute refresh
}

// GenerateConfig holds the thresholds used to sort generated puzzles into packs.
type GenerateConfig struct {
	MinWords        int `yaml:"min_words"`         // puzzles with fewer words are dropped
	HardOver        int `yaml:"hard_over"`         // more words than this is hard
	MediumOver      int `yaml:"medium_over"`       // more words than this is medium
	SparseUnder     int `yaml:"sparse_under"`      // few words...
	SparseLongWords int `yaml:"sparse_long_words"` // ...mostly long ones is hard too
}

// DifficultyPreset represents a named puzzle pack.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulties in increasing order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParsePreset validates a difficulty name. Empty means easy.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyMedium:
		return DifficultyMedium, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return "", false
	}
}
