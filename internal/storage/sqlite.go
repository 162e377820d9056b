// Package storage provides SQLite-based persistence for puzzle progress and
// completed results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	legacy, err := s.renameLegacyGuesses()
	if err != nil {
		return err
	}

	schema := `
		CREATE TABLE IF NOT EXISTS guesses (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL DEFAULT '',
			letters TEXT NOT NULL,
			word TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(player, letters, word)
		);
		CREATE INDEX IF NOT EXISTS idx_guesses_player_letters ON guesses(player, letters);

		CREATE TABLE IF NOT EXISTS hints (
			player TEXT NOT NULL DEFAULT '',
			letters TEXT NOT NULL,
			used INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (player, letters)
		);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT '',
			letters TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			found INTEGER NOT NULL DEFAULT 0,
			total INTEGER NOT NULL DEFAULT 0,
			points INTEGER NOT NULL DEFAULT 0,
			max_points INTEGER NOT NULL DEFAULT 0,
			hints INTEGER NOT NULL DEFAULT 0,
			cheated INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_difficulty ON results(difficulty);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(difficulty, points DESC);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	if legacy {
		return s.copyLegacyGuesses()
	}
	return nil
}

// renameLegacyGuesses moves a guesses table from before the player column
// out of the way. Those rows stored "player:key", and keys are always seven
// letters.
func (s *Store) renameLegacyGuesses() (bool, error) {
	var columns, players int
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(CASE WHEN name = 'player' THEN 1 END)
		 FROM pragma_table_info('guesses')`,
	).Scan(&columns, &players)
	if err != nil {
		return false, fmt.Errorf("inspecting guesses: %w", err)
	}
	if columns == 0 || players > 0 {
		return false, nil
	}

	_, err = s.db.Exec(`
		DROP INDEX IF EXISTS idx_guesses_letters;
		ALTER TABLE guesses RENAME TO guesses_legacy;
	`)
	if err != nil {
		return false, fmt.Errorf("renaming legacy guesses: %w", err)
	}
	return true, nil
}

func (s *Store) copyLegacyGuesses() error {
	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO guesses (player, letters, word, tags, created_at)
		SELECT
			CASE WHEN length(letters) > 8 THEN substr(letters, 1, length(letters) - 8) ELSE '' END,
			substr(letters, -7),
			word, tags, created_at
		FROM guesses_legacy
		ORDER BY id;
		DROP TABLE guesses_legacy;
	`)
	if err != nil {
		return fmt.Errorf("copying legacy guesses: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
