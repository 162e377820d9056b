package bee

import "github.com/vovakirdan/tui-bee/internal/puzzle"

// Score is the value of one word.
type Score struct {
	Points  int
	Pangram bool
}

// ScoreWord scores a word: one point up to four letters, two for five,
// three for six, five for longer words and seven for a pangram.
func ScoreWord(word string) Score {
	pangram := puzzle.DistinctLetters(word) >= puzzle.Size

	var points int
	switch n := len(word); {
	case n <= 4:
		points = 1
	case n == 5:
		points = 2
	case n == 6:
		points = 3
	case pangram:
		points = 7
	default:
		points = 5
	}
	return Score{Points: points, Pangram: pangram}
}

// TotalPoints sums the points of words.
func TotalPoints(words []string) int {
	total := 0
	for _, w := range words {
		total += ScoreWord(w).Points
	}
	return total
}
