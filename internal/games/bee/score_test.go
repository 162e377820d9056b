package bee

import "testing"

func TestScoreWord(t *testing.T) {
	tests := []struct {
		word    string
		points  int
		pangram bool
	}{
		{"star", 1, false},
		{"toast", 2, false},
		{"create", 3, false},
		{"toaster", 5, false},
		{"cartoes", 7, true},
		{"coasters", 7, true},
	}

	for _, tc := range tests {
		t.Run(tc.word, func(t *testing.T) {
			got := ScoreWord(tc.word)
			if got.Points != tc.points {
				t.Errorf("ScoreWord(%q).Points = %d, expected %d", tc.word, got.Points, tc.points)
			}
			if got.Pangram != tc.pangram {
				t.Errorf("ScoreWord(%q).Pangram = %v, expected %v", tc.word, got.Pangram, tc.pangram)
			}
		})
	}
}

func TestTotalPoints(t *testing.T) {
	words := []string{"create", "coaster", "toast", "star", "cast", "taco"}
	if got := TotalPoints(words); got != 15 {
		t.Errorf("TotalPoints() = %d, expected 15", got)
	}
	if got := TotalPoints(nil); got != 0 {
		t.Errorf("TotalPoints(nil) = %d, expected 0", got)
	}
}
