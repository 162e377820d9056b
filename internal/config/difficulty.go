package config

// Classifier sorts a puzzle's solution into a difficulty pack.
type Classifier struct {
	cfg GenerateConfig
}

// NewClassifier creates a classifier from generator thresholds.
func NewClassifier(cfg GenerateConfig) *Classifier {
	return &Classifier{cfg: cfg}
}

// Keep reports whether a solution has enough words to be worth playing.
func (c *Classifier) Keep(solution []string) bool {
	return len(solution) >= c.cfg.MinWords
}

// Classify returns the difficulty for a solution.
// Large solutions are hard, as are small ones made mostly of long words.
func (c *Classifier) Classify(solution []string) DifficultyPreset {
	n := len(solution)
	if n > c.cfg.HardOver {
		return DifficultyHard
	}

	if n < c.cfg.SparseUnder && countLonger(solution, 5) > c.cfg.SparseLongWords {
		return DifficultyHard
	}

	if n > c.cfg.MediumOver {
		return DifficultyMedium
	}

	return DifficultyEasy
}

// countLonger counts words with more than n letters.
func countLonger(words []string, n int) int {
	count := 0
	for _, w := range words {
		if len(w) > n {
			count++
		}
	}
	return count
}
