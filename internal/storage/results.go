package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is one completed puzzle.
type Result struct {
	ID         int64
	SessionID  string
	Player     string // SSH user, empty for local play
	Letters    string
	Difficulty string
	Found      int
	Total      int
	Points     int
	MaxPoints  int
	Hints      int
	Cheated    bool
	Duration   int // Duration in seconds
	CreatedAt  time.Time
}

// DifficultyStats contains aggregated results for one difficulty.
type DifficultyStats struct {
	Difficulty string
	Completed  int
	Cheated    int
	BestPoints int
	AvgHints   float64
	LastPlayed time.Time
}

// SaveResult records a completed puzzle. A session ID is generated when the
// result has none. Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.SessionID == "" {
		r.SessionID = uuid.New().String()
	}

	res, err := s.db.Exec(
		`INSERT INTO results
		 (session_id, player, letters, difficulty, found, total, points, max_points, hints, cheated, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID,
		r.Player,
		r.Letters,
		r.Difficulty,
		r.Found,
		r.Total,
		r.Points,
		r.MaxPoints,
		r.Hints,
		r.Cheated,
		r.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults retrieves the best N results for a difficulty.
// Honest solves rank above revealed ones, then by points and speed.
func (s *Store) TopResults(difficulty string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, player, letters, difficulty, found, total, points,
		        max_points, hints, cheated, duration_secs, created_at
		 FROM results
		 WHERE difficulty = ?
		 ORDER BY cheated ASC, points DESC, duration_secs ASC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.SessionID,
			&r.Player,
			&r.Letters,
			&r.Difficulty,
			&r.Found,
			&r.Total,
			&r.Points,
			&r.MaxPoints,
			&r.Hints,
			&r.Cheated,
			&r.Duration,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// BestPoints returns the highest honest score for a difficulty.
// Returns 0 if no results exist.
func (s *Store) BestPoints(difficulty string) (int, error) {
	var points sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(points) FROM results WHERE difficulty = ? AND cheated = 0",
		difficulty,
	).Scan(&points)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best points: %w", err)
	}

	if !points.Valid {
		return 0, nil
	}

	return int(points.Int64), nil
}

// AllDifficultyStats retrieves statistics for every difficulty with results.
func (s *Store) AllDifficultyStats() (map[string]*DifficultyStats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), COALESCE(SUM(cheated), 0),
		        COALESCE(MAX(CASE WHEN cheated = 0 THEN points END), 0),
		        COALESCE(AVG(hints), 0), MAX(created_at)
		 FROM results
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get difficulty stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*DifficultyStats)
	for rows.Next() {
		var d DifficultyStats
		var lastPlayed any
		if err := rows.Scan(&d.Difficulty, &d.Completed, &d.Cheated, &d.BestPoints, &d.AvgHints, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		d.LastPlayed = parseTime(lastPlayed)
		stats[d.Difficulty] = &d
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
