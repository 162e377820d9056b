package bee

import "errors"

var (
	// ErrNotReady is returned when an operation needs puzzle data or letters
	// that have not arrived yet.
	ErrNotReady = errors.New("bee: puzzle not ready")
	// ErrInvalidPuzzleKey is returned when explicit letters are not in the pack.
	ErrInvalidPuzzleKey = errors.New("bee: no puzzle for these letters")
	// ErrNoRemainingWords is returned by RequestHint once every word is found.
	ErrNoRemainingWords = errors.New("bee: no remaining words")
)

// State is the engine lifecycle state.
type State int

const (
	StateLoading State = iota // waiting for puzzle data or letters
	StateReady                // playable
	StateWon                  // every word found
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Outcome classifies a submitted guess.
type Outcome int

const (
	OutcomeRepeat Outcome = iota
	OutcomeTooShort
	OutcomeMissingCenter
	OutcomeUnrecognized
	OutcomeAccepted
	OutcomeWin
)

// Message returns the text shown to the player for an outcome.
func (o Outcome) Message() string {
	switch o {
	case OutcomeRepeat:
		return "Already guessed"
	case OutcomeTooShort:
		return "Words must be at least 4 letters"
	case OutcomeMissingCenter:
		return "Words must contain the center letter"
	case OutcomeUnrecognized:
		return "Unrecognized word"
	case OutcomeAccepted:
		return "Correct!"
	case OutcomeWin:
		return "YOU WIN!!"
	default:
		return ""
	}
}

func (o Outcome) String() string {
	switch o {
	case OutcomeRepeat:
		return "repeat"
	case OutcomeTooShort:
		return "too_short"
	case OutcomeMissingCenter:
		return "missing_center"
	case OutcomeUnrecognized:
		return "unrecognized"
	case OutcomeAccepted:
		return "accepted"
	case OutcomeWin:
		return "win"
	default:
		return "unknown"
	}
}

// Accepted reports whether the guess was added to the found words.
func (o Outcome) Accepted() bool {
	return o == OutcomeAccepted || o == OutcomeWin
}

// Tag marks how a word was found.
type Tag string

const (
	TagPangram       Tag = "pangram"
	TagHintRevealed  Tag = "hint-revealed"
	TagCheatRevealed Tag = "cheat-revealed"
)

// GuessRecord is one found word. Records are never modified after creation.
type GuessRecord struct {
	Word string
	Tags []Tag
}

// HasTag reports whether the record carries tag.
func (r GuessRecord) HasTag(tag Tag) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// GuessResult is the classification of one submission.
type GuessResult struct {
	Word    string // normalized input
	Outcome Outcome
	Pangram bool
	Points  int // zero unless accepted
}

// Message returns the feedback text, preferring the pangram banner for
// accepted pangrams that did not finish the puzzle.
func (r GuessResult) Message() string {
	if r.Outcome == OutcomeAccepted && r.Pangram {
		return "PANGRAM!"
	}
	return r.Outcome.Message()
}

// Hint reveals the start of one unfound word.
type Hint struct {
	Prefix string
	Length int
}
