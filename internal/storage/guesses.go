package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-bee/internal/games/bee"
)

// PuzzleProgress summarizes the saved guesses of one puzzle.
type PuzzleProgress struct {
	Letters    string
	Found      int
	LastPlayed time.Time
}

// Load returns the locally saved records for a puzzle key in insertion order.
// Implements bee.GuessStore.
func (s *Store) Load(key string) ([]bee.GuessRecord, error) {
	return s.loadGuesses("", key)
}

// Append saves a found word for a puzzle key. Saving the same word twice is
// a no-op. Implements bee.GuessStore.
func (s *Store) Append(key string, rec bee.GuessRecord) error {
	return s.appendGuess("", key, rec)
}

// LoadHints returns the number of hints used on a puzzle. Implements
// bee.HintStore.
func (s *Store) LoadHints(key string) (int, error) {
	return s.loadHints("", key)
}

// SaveHints records the number of hints used on a puzzle. Implements
// bee.HintStore.
func (s *Store) SaveHints(key string, n int) error {
	return s.saveHints("", key, n)
}

// ClearGuesses deletes the saved guesses and hint count of a puzzle.
func (s *Store) ClearGuesses(key string) (int64, error) {
	return s.clearGuesses("", key)
}

func (s *Store) loadGuesses(player, key string) ([]bee.GuessRecord, error) {
	rows, err := s.db.Query(
		`SELECT word, tags FROM guesses WHERE player = ? AND letters = ? ORDER BY id`,
		player, key,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query guesses: %w", err)
	}
	defer rows.Close()

	var recs []bee.GuessRecord
	for rows.Next() {
		var word, tags string
		if err := rows.Scan(&word, &tags); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		recs = append(recs, bee.GuessRecord{Word: word, Tags: decodeTags(tags)})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return recs, nil
}

func (s *Store) appendGuess(player, key string, rec bee.GuessRecord) error {
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO guesses (player, letters, word, tags) VALUES (?, ?, ?, ?)",
		player, key, rec.Word, encodeTags(rec.Tags),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save guess: %w", err)
	}
	return nil
}

func (s *Store) loadHints(player, key string) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT used FROM hints WHERE player = ? AND letters = ?",
		player, key,
	).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query hints: %w", err)
	}
	return n, nil
}

func (s *Store) saveHints(player, key string, n int) error {
	_, err := s.db.Exec(
		`INSERT INTO hints (player, letters, used) VALUES (?, ?, ?)
		 ON CONFLICT(player, letters) DO UPDATE SET used = excluded.used`,
		player, key, n,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save hints: %w", err)
	}
	return nil
}

func (s *Store) clearGuesses(player, key string) (int64, error) {
	if _, err := s.db.Exec("DELETE FROM hints WHERE player = ? AND letters = ?", player, key); err != nil {
		return 0, fmt.Errorf("storage: cannot clear hints: %w", err)
	}
	res, err := s.db.Exec("DELETE FROM guesses WHERE player = ? AND letters = ?", player, key)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear guesses: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared guesses: %w", err)
	}
	return n, nil
}

// Progress lists the puzzles player has saved guesses for, most recently
// played first. The empty player is local play.
func (s *Store) Progress(player string) ([]PuzzleProgress, error) {
	rows, err := s.db.Query(
		`SELECT letters, COUNT(*), MAX(created_at)
		 FROM guesses
		 WHERE player = ?
		 GROUP BY letters
		 ORDER BY MAX(id) DESC`,
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	var out []PuzzleProgress
	for rows.Next() {
		var p PuzzleProgress
		var lastPlayed any
		if err := rows.Scan(&p.Letters, &p.Found, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan progress row: %w", err)
		}
		p.LastPlayed = parseTime(lastPlayed)
		out = append(out, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

func encodeTags(tags []bee.Tag) string {
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, " ")
}

func decodeTags(s string) []bee.Tag {
	var tags []bee.Tag
	for _, f := range strings.Fields(s) {
		tags = append(tags, bee.Tag(f))
	}
	return tags
}

// Ensure Store implements the engine's store interfaces
var (
	_ bee.GuessStore = (*Store)(nil)
	_ bee.HintStore  = (*Store)(nil)
)
