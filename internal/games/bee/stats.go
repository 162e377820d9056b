package bee

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-bee/internal/puzzle"
)

// StatsSnapshot is the derived statistics panel.
type StatsSnapshot struct {
	Found          int
	Total          int
	Percent        int
	Points         int
	MaxPoints      int
	Longest        int     // length of the longest found word
	MostLetters    int     // most distinct letters in a found word
	AvgLength      float64 // only meaningful when HasAverage
	HasAverage     bool
	WordsPerMinute float64
	Hints          int
	Elapsed        time.Duration
}

// Stats folds engine events into running statistics.
// Register it with Game.Subscribe(stats.Handle).
type Stats struct {
	started     time.Time
	total       int
	maxPoints   int
	found       int
	points      int
	sumLen      int
	longest     int
	mostLetters int
	hints       int
	won         bool
}

// NewStats creates an empty aggregator.
func NewStats() *Stats {
	return &Stats{}
}

// Handle consumes one engine event.
func (s *Stats) Handle(e Event) {
	switch ev := e.(type) {
	case PuzzleStarted:
		*s = Stats{
			started:   ev.At,
			total:     len(ev.Solution),
			maxPoints: TotalPoints(ev.Solution),
			hints:     ev.Hints,
		}
		for _, rec := range ev.Restored {
			s.fold(rec.Word)
		}
		s.won = s.total > 0 && s.found == s.total
	case GuessAccepted:
		s.fold(ev.Record.Word)
	case HintGranted:
		s.hints += ev.Count
	case GameWon:
		s.won = true
	}
}

func (s *Stats) fold(word string) {
	s.found++
	s.points += ScoreWord(word).Points
	s.sumLen += len(word)
	// Maxima only grow.
	s.longest = max(s.longest, len(word))
	s.mostLetters = max(s.mostLetters, puzzle.DistinctLetters(word))
}

// Won reports whether the aggregator has seen the puzzle completed.
// The periodic refresh stops once this is true.
func (s *Stats) Won() bool {
	return s.won
}

// Snapshot computes the statistics at time now. Elapsed time below one
// second counts as one second so words per minute stays finite.
func (s *Stats) Snapshot(now time.Time) StatsSnapshot {
	elapsed := now.Sub(s.started)
	if elapsed < time.Second {
		elapsed = time.Second
	}

	snap := StatsSnapshot{
		Found:          s.found,
		Total:          s.total,
		Points:         s.points,
		MaxPoints:      s.maxPoints,
		Longest:        s.longest,
		MostLetters:    s.mostLetters,
		Hints:          s.hints,
		Elapsed:        elapsed,
		WordsPerMinute: float64(s.found) / elapsed.Minutes(),
	}
	if s.total > 0 {
		snap.Percent = int(math.Round(float64(s.found) * 100 / float64(s.total)))
	}
	if s.found > 0 {
		snap.AvgLength = float64(s.sumLen) / float64(s.found)
		snap.HasAverage = true
	}
	return snap
}
