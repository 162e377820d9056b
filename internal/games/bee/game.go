// Package bee implements the word puzzle engine: guess classification,
// scoring, hints, shuffling, statistics and progress restoration.
// It has no terminal or network dependencies; the platform layers drive it.
package bee

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/vovakirdan/tui-bee/internal/config"
	"github.com/vovakirdan/tui-bee/internal/puzzle"
)

// Rand is the randomness the engine needs. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Options configures a Game. Zero values fall back to defaults.
type Options struct {
	Rand       Rand
	Store      GuessStore
	Clock      func() time.Time
	Hints      config.HintLadder
	Difficulty string
}

// Game is a single puzzle session. It is not safe for concurrent use.
type Game struct {
	rng        Rand
	store      GuessStore
	now        func() time.Time
	ladder     config.HintLadder
	difficulty string

	set      *puzzle.Set
	letters  puzzle.Letters
	display  []byte
	solution *puzzle.Solution

	found    map[string]struct{}
	records  []GuessRecord // insertion order
	hints    int
	lastHint string
	cheated  bool
	state    State
	started  time.Time

	subscribers []func(Event)
}

// New creates a game waiting for puzzle data.
func New(opts Options) *Game {
	g := &Game{
		rng:        opts.Rand,
		store:      opts.Store,
		now:        opts.Clock,
		ladder:     opts.Hints,
		difficulty: opts.Difficulty,
		found:      make(map[string]struct{}),
		state:      StateLoading,
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if g.store == nil {
		g.store = NewMemoryStore()
	}
	if g.now == nil {
		g.now = time.Now
	}
	if g.ladder == (config.HintLadder{}) {
		g.ladder = config.DefaultBeeConfig().Hints
	}
	return g
}

// Subscribe registers fn to receive engine events, in order.
func (g *Game) Subscribe(fn func(Event)) {
	g.subscribers = append(g.subscribers, fn)
}

func (g *Game) emit(e Event) {
	for _, fn := range g.subscribers {
		fn(e)
	}
}

// Load hands the engine its puzzle data. Letters are chosen separately with
// SelectLetters.
func (g *Game) Load(set *puzzle.Set) {
	g.set = set
	if set != nil && g.difficulty == "" {
		g.difficulty = set.Difficulty
	}
}

// SelectLetters starts a puzzle. Explicit letters are canonicalized and must
// exist in the loaded data; empty explicit letters pick a puzzle at random.
// Saved progress for the puzzle is restored from the store. If the store
// fails, the puzzle still starts from scratch and the error is returned
// alongside the letters.
func (g *Game) SelectLetters(explicit string) (puzzle.Letters, error) {
	if g.set == nil {
		return "", ErrNotReady
	}

	var key string
	if strings.TrimSpace(explicit) != "" {
		l, err := puzzle.Canonical(explicit)
		if err != nil || !g.set.Has(string(l)) {
			return "", fmt.Errorf("%w: %q", ErrInvalidPuzzleKey, explicit)
		}
		key = string(l)
	} else {
		keys := g.set.Keys()
		if len(keys) == 0 {
			return "", fmt.Errorf("%w: pack %q has no puzzles", ErrNotReady, g.set.Difficulty)
		}
		key = keys[g.rng.Intn(len(keys))]
	}

	sol, _ := g.set.Solution(key)
	g.letters = puzzle.Letters(key)
	g.display = []byte(key)
	g.solution = sol
	g.found = make(map[string]struct{}, sol.Len())
	g.records = nil
	g.hints = 0
	g.lastHint = ""
	g.cheated = false

	saved, loadErr := g.store.Load(key)
	if loadErr != nil {
		loadErr = fmt.Errorf("bee: restoring %s: %w", key, loadErr)
	}
	for _, rec := range saved {
		if !sol.Has(rec.Word) {
			continue
		}
		if _, dup := g.found[rec.Word]; dup {
			continue
		}
		g.add(rec)
		if rec.HasTag(TagHintRevealed) || rec.HasTag(TagCheatRevealed) {
			g.hints++
		}
		if rec.HasTag(TagCheatRevealed) {
			g.cheated = true
		}
	}
	if hs, ok := g.store.(HintStore); ok {
		n, err := hs.LoadHints(key)
		switch {
		case err != nil && loadErr == nil:
			loadErr = fmt.Errorf("bee: restoring hints for %s: %w", key, err)
		case n > g.hints:
			g.hints = n
		}
	}

	g.started = g.now()
	g.state = StateReady
	if g.complete() {
		g.state = StateWon
	}

	g.emit(PuzzleStarted{
		Letters:  g.letters,
		Solution: sol.Words(),
		Restored: g.Records(),
		Hints:    g.hints,
		At:       g.started,
	})
	return g.letters, loadErr
}

// SubmitGuess classifies a guess and, when it is a solution word, records it.
// Rejections are outcomes, not errors. The returned error is only set when
// saving an accepted word fails; the word stays accepted in that case.
func (g *Game) SubmitGuess(raw string) (GuessResult, error) {
	if g.state == StateLoading {
		return GuessResult{}, ErrNotReady
	}

	word := strings.ToLower(strings.TrimSpace(raw))
	res := GuessResult{Word: word}

	// First match wins: a short repeat is still a repeat, and a solution
	// word is accepted before the center letter is checked.
	if g.isFound(word) {
		res.Outcome = OutcomeRepeat
		return res, nil
	}
	if len(word) < puzzle.MinWordLength {
		res.Outcome = OutcomeTooShort
		return res, nil
	}
	if !g.solution.Has(word) {
		res.Outcome = OutcomeUnrecognized
		if strings.IndexByte(word, g.letters.Center()) < 0 {
			res.Outcome = OutcomeMissingCenter
		}
		return res, nil
	}

	score := ScoreWord(word)
	rec := GuessRecord{Word: word}
	if score.Pangram {
		rec.Tags = append(rec.Tags, TagPangram)
	}
	if word == g.lastHint {
		rec.Tags = append(rec.Tags, TagHintRevealed)
		g.lastHint = ""
	}
	g.add(rec)

	res.Outcome = OutcomeAccepted
	res.Pangram = score.Pangram
	res.Points = score.Points
	if g.complete() {
		res.Outcome = OutcomeWin
		g.state = StateWon
	}

	err := g.store.Append(g.letters.Key(), rec)
	if err != nil {
		err = fmt.Errorf("bee: saving %q: %w", word, err)
	}

	g.emit(GuessAccepted{Record: rec, Found: len(g.found), Total: g.solution.Len()})
	if res.Outcome == OutcomeWin {
		g.emit(GameWon{Cheated: g.cheated})
	}
	return res, err
}

// RequestHint picks an unfound word at random and reveals its start.
// Most hints show three letters; rarely five, seven or the whole word.
// As with SubmitGuess, an error alongside a non-empty Hint only means the
// new hint count could not be saved.
func (g *Game) RequestHint() (Hint, error) {
	if g.state == StateLoading {
		return Hint{}, ErrNotReady
	}

	remaining := g.remaining()
	if len(remaining) == 0 {
		return Hint{}, ErrNoRemainingWords
	}

	word := remaining[g.rng.Intn(len(remaining))]
	p := g.rng.Float64() * 100
	n := g.ladder.PrefixLength(p, len(word))

	g.hints++
	g.lastHint = word
	g.emit(HintGranted{Count: 1})

	return Hint{Prefix: word[:n], Length: len(word)}, g.saveHints()
}

// Shuffle reorders the six outer letters. The center stays at index 0.
func (g *Game) Shuffle() puzzle.Letters {
	if len(g.display) < 2 {
		return puzzle.Letters(g.display)
	}
	for i := len(g.display) - 1; i > 1; i-- {
		j := 1 + g.rng.Intn(i)
		g.display[i], g.display[j] = g.display[j], g.display[i]
	}
	return puzzle.Letters(g.display)
}

// CheatRevealAll adds every unfound word, tagged as revealed, and ends the
// game. Each revealed word counts as a hint.
func (g *Game) CheatRevealAll() ([]GuessRecord, error) {
	if g.state == StateLoading {
		return nil, ErrNotReady
	}

	remaining := g.remaining()
	if len(remaining) == 0 {
		return nil, nil
	}

	var (
		revealed = make([]GuessRecord, 0, len(remaining))
		firstErr error
		key      = g.letters.Key()
	)
	for _, word := range remaining {
		rec := GuessRecord{Word: word}
		if ScoreWord(word).Pangram {
			rec.Tags = append(rec.Tags, TagPangram)
		}
		rec.Tags = append(rec.Tags, TagCheatRevealed)
		g.add(rec)
		revealed = append(revealed, rec)

		if err := g.store.Append(key, rec); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("bee: saving %q: %w", word, err)
		}
		g.emit(GuessAccepted{Record: rec, Found: len(g.found), Total: g.solution.Len()})
	}

	g.hints += len(revealed)
	g.cheated = true
	g.lastHint = ""
	g.state = StateWon

	if err := g.saveHints(); err != nil && firstErr == nil {
		firstErr = err
	}

	g.emit(HintGranted{Count: len(revealed)})
	g.emit(GameWon{Cheated: true})
	return revealed, firstErr
}

func (g *Game) saveHints() error {
	hs, ok := g.store.(HintStore)
	if !ok {
		return nil
	}
	if err := hs.SaveHints(g.letters.Key(), g.hints); err != nil {
		return fmt.Errorf("bee: saving hints: %w", err)
	}
	return nil
}

func (g *Game) add(rec GuessRecord) {
	g.found[rec.Word] = struct{}{}
	g.records = append(g.records, rec)
}

func (g *Game) isFound(word string) bool {
	_, ok := g.found[word]
	return ok
}

func (g *Game) complete() bool {
	return len(g.found) == g.solution.Len()
}

// remaining lists unfound solution words in lexicographic order.
func (g *Game) remaining() []string {
	return lo.Filter(g.solution.Words(), func(w string, _ int) bool {
		return !g.isFound(w)
	})
}

// State returns the lifecycle state.
func (g *Game) State() State { return g.state }

// Letters returns the canonical letters of the current puzzle.
func (g *Game) Letters() puzzle.Letters { return g.letters }

// Display returns the letters in their current display order.
func (g *Game) Display() puzzle.Letters { return puzzle.Letters(g.display) }

// Center returns the center letter.
func (g *Game) Center() byte { return g.letters.Center() }

// Difficulty returns the pack the puzzle came from.
func (g *Game) Difficulty() string { return g.difficulty }

// Found returns the number of words found.
func (g *Game) Found() int { return len(g.found) }

// Total returns the size of the solution.
func (g *Game) Total() int {
	if g.solution == nil {
		return 0
	}
	return g.solution.Len()
}

// Hints returns the number of hints used, counting revealed words.
func (g *Game) Hints() int { return g.hints }

// Cheated reports whether the solution was revealed.
func (g *Game) Cheated() bool { return g.cheated }

// Started returns when the current puzzle began.
func (g *Game) Started() time.Time { return g.started }

// Records returns the found words in lexicographic order.
func (g *Game) Records() []GuessRecord {
	out := make([]GuessRecord, len(g.records))
	copy(out, g.records)
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out
}

// Points returns the score of the found words.
func (g *Game) Points() int {
	return TotalPoints(lo.Map(g.records, func(r GuessRecord, _ int) string { return r.Word }))
}

// MaxPoints returns the score of the full solution.
func (g *Game) MaxPoints() int {
	if g.solution == nil {
		return 0
	}
	return TotalPoints(g.solution.Words())
}
