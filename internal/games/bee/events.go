package bee

import (
	"time"

	"github.com/vovakirdan/tui-bee/internal/puzzle"
)

// Event is emitted by the engine as the game progresses.
type Event interface {
	beeEvent()
}

// PuzzleStarted is sent once letters are chosen and saved progress restored.
type PuzzleStarted struct {
	Letters  puzzle.Letters
	Solution []string
	Restored []GuessRecord
	Hints    int
	At       time.Time
}

func (PuzzleStarted) beeEvent() {}

// GuessAccepted is sent for every word added to the found words.
type GuessAccepted struct {
	Record GuessRecord
	Found  int
	Total  int
}

func (GuessAccepted) beeEvent() {}

// HintGranted is sent when hints are used; Count is how many.
type HintGranted struct {
	Count int
}

func (HintGranted) beeEvent() {}

// GameWon is sent when the last word is found.
type GameWon struct {
	Cheated bool
}

func (GameWon) beeEvent() {}
