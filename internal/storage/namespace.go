package storage

import "github.com/vovakirdan/tui-bee/internal/games/bee"

// Namespace scopes guess storage to one player. SSH sessions use it so users
// sharing a server keep separate progress.
type Namespace struct {
	store  *Store
	player string
}

// Namespace returns a view of the store for player. An empty player is the
// local player.
func (s *Store) Namespace(player string) *Namespace {
	return &Namespace{store: s, player: player}
}

// Player returns the namespace owner.
func (n *Namespace) Player() string {
	return n.player
}

// Load implements bee.GuessStore.
func (n *Namespace) Load(key string) ([]bee.GuessRecord, error) {
	return n.store.loadGuesses(n.player, key)
}

// Append implements bee.GuessStore.
func (n *Namespace) Append(key string, rec bee.GuessRecord) error {
	return n.store.appendGuess(n.player, key, rec)
}

// LoadHints implements bee.HintStore.
func (n *Namespace) LoadHints(key string) (int, error) {
	return n.store.loadHints(n.player, key)
}

// SaveHints implements bee.HintStore.
func (n *Namespace) SaveHints(key string, count int) error {
	return n.store.saveHints(n.player, key, count)
}

// ClearGuesses deletes the player's saved guesses for a puzzle.
func (n *Namespace) ClearGuesses(key string) (int64, error) {
	return n.store.clearGuesses(n.player, key)
}

// Progress lists the player's puzzles in progress.
func (n *Namespace) Progress() ([]PuzzleProgress, error) {
	return n.store.Progress(n.player)
}

// SaveResult records a completed puzzle for the player.
func (n *Namespace) SaveResult(r Result) (int64, error) {
	r.Player = n.player
	return n.store.SaveResult(r)
}

var (
	_ bee.GuessStore = (*Namespace)(nil)
	_ bee.HintStore  = (*Namespace)(nil)
)
