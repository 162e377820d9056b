package bee

import (
	"math"
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func TestStatsEmpty(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1700000000, 0)}
	g := New(Options{Clock: clock.Now})
	stats := NewStats()
	g.Subscribe(stats.Handle)
	g.Load(testSet(t))
	if _, err := g.SelectLetters("tacoers"); err != nil {
		t.Fatal(err)
	}

	snap := stats.Snapshot(clock.t)
	if snap.Found != 0 || snap.Total != 6 || snap.MaxPoints != 15 {
		t.Errorf("Snapshot() = %+v, expected 0/6 with 15 max points", snap)
	}
	if snap.HasAverage {
		t.Error("average length should be omitted when nothing is found")
	}
	if snap.WordsPerMinute != 0 {
		t.Errorf("WordsPerMinute = %v, expected 0", snap.WordsPerMinute)
	}
}

func TestStatsFollowGuesses(t *testing.T) {
	start := time.Unix(1700000000, 0)
	clock := &fakeClock{t: start}
	g := New(Options{Clock: clock.Now})
	stats := NewStats()
	g.Subscribe(stats.Handle)
	g.Load(testSet(t))
	if _, err := g.SelectLetters("tacoers"); err != nil {
		t.Fatal(err)
	}

	g.SubmitGuess("create")
	g.SubmitGuess("coaster")
	g.SubmitGuess("nope")

	snap := stats.Snapshot(start.Add(2 * time.Minute))
	if snap.Found != 2 || snap.Percent != 33 || snap.Points != 10 {
		t.Errorf("Found/Percent/Points = %d/%d/%d, expected 2/33/10", snap.Found, snap.Percent, snap.Points)
	}
	if snap.Longest != 7 || snap.MostLetters != 7 {
		t.Errorf("Longest/MostLetters = %d/%d, expected 7/7", snap.Longest, snap.MostLetters)
	}
	if !snap.HasAverage || snap.AvgLength != 6.5 {
		t.Errorf("AvgLength = %v (%v), expected 6.5", snap.AvgLength, snap.HasAverage)
	}
	if math.Abs(snap.WordsPerMinute-1) > 1e-9 {
		t.Errorf("WordsPerMinute = %v, expected 1", snap.WordsPerMinute)
	}

	// Maxima never shrink
	g.SubmitGuess("star")
	snap = stats.Snapshot(start.Add(2 * time.Minute))
	if snap.Longest != 7 || snap.MostLetters != 7 {
		t.Errorf("maxima dropped to %d/%d", snap.Longest, snap.MostLetters)
	}
}

func TestStatsElapsedFloor(t *testing.T) {
	start := time.Unix(1700000000, 0)
	g := New(Options{Clock: func() time.Time { return start }})
	stats := NewStats()
	g.Subscribe(stats.Handle)
	g.Load(testSet(t))
	if _, err := g.SelectLetters("tacoers"); err != nil {
		t.Fatal(err)
	}
	g.SubmitGuess("create")

	snap := stats.Snapshot(start)
	if math.IsInf(snap.WordsPerMinute, 0) || math.Abs(snap.WordsPerMinute-60) > 1e-9 {
		t.Errorf("WordsPerMinute at t=0 = %v, expected 60", snap.WordsPerMinute)
	}
	if snap.Elapsed != time.Second {
		t.Errorf("Elapsed = %v, expected 1s", snap.Elapsed)
	}
}

func TestStatsCountHintsAndRestore(t *testing.T) {
	store := NewMemoryStore()
	_ = store.Append("taceors", GuessRecord{Word: "toast", Tags: []Tag{TagHintRevealed}})

	r := &scriptedRand{ints: []int{0}}
	g := New(Options{Store: store, Rand: r})
	stats := NewStats()
	g.Subscribe(stats.Handle)
	g.Load(testSet(t))
	if _, err := g.SelectLetters("tacoers"); err != nil {
		t.Fatal(err)
	}

	snap := stats.Snapshot(time.Now())
	if snap.Found != 1 || snap.Hints != 1 || snap.Points != 2 {
		t.Errorf("restored Found/Hints/Points = %d/%d/%d, expected 1/1/2", snap.Found, snap.Hints, snap.Points)
	}

	if _, err := g.RequestHint(); err != nil {
		t.Fatal(err)
	}
	if _, err := g.CheatRevealAll(); err != nil {
		t.Fatal(err)
	}

	snap = stats.Snapshot(time.Now())
	if snap.Hints != g.Hints() || snap.Hints != 7 {
		t.Errorf("Hints = %d (engine %d), expected 7", snap.Hints, g.Hints())
	}
	if snap.Found != 6 || snap.Percent != 100 || !stats.Won() {
		t.Errorf("after reveal Found/Percent/Won = %d/%d/%v", snap.Found, snap.Percent, stats.Won())
	}
}
