// Package storage provides SQLite-based persistence for run attempts.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for attempt persistence.
type Store struct {
	db *sql.DB
}

// Attempt is one recorded run at a level.
type Attempt struct {
	ID        int64
	LevelID   string // Level name; "endless:<seed>" for endless runs
	Outcome   string // "win" or "dead"
	Percent   float64
	Jumps     int
	Ticks     int
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for one level.
type LevelStats struct {
	LevelID     string
	Attempts    int
	Wins        int
	BestPercent float64
	TotalJumps  int64
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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
	schema := `
		CREATE TABLE IF NOT EXISTS attempts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			outcome TEXT NOT NULL,
			percent REAL NOT NULL DEFAULT 0,
			jumps INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_attempts_level_id ON attempts(level_id);
		CREATE INDEX IF NOT EXISTS idx_attempts_best ON attempts(level_id, percent DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveAttempt records a finished run. Returns the ID of the inserted record.
func (s *Store) SaveAttempt(a Attempt) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO attempts (level_id, outcome, percent, jumps, ticks) VALUES (?, ?, ?, ?, ?)",
		a.LevelID, a.Outcome, a.Percent, a.Jumps, a.Ticks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestAttempts retrieves the top N attempts for a level by progress.
func (s *Store) BestAttempts(levelID string, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, outcome, percent, jumps, ticks, created_at
		 FROM attempts
		 WHERE level_id = ?
		 ORDER BY percent DESC, ticks ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// RecentAttempts retrieves the most recent attempts across all levels.
func (s *Store) RecentAttempts(limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, outcome, percent, jumps, ticks, created_at
		 FROM attempts
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query attempts: %w", err)
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// BestPercent returns the best progress for a level. Returns 0 with no error
// if the level has never been attempted.
func (s *Store) BestPercent(levelID string) (float64, error) {
	var best sql.NullFloat64
	err := s.db.QueryRow(
		"SELECT MAX(percent) FROM attempts WHERE level_id = ?",
		levelID,
	).Scan(&best)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best percent: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return best.Float64, nil
}

// Stats retrieves aggregated statistics for one level.
func (s *Store) Stats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(percent), 0),
		        COALESCE(SUM(jumps), 0)
		 FROM attempts WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Attempts, &stats.Wins, &stats.BestPercent, &stats.TotalJumps)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		"SELECT created_at FROM attempts WHERE level_id = ? ORDER BY created_at DESC LIMIT 1",
		levelID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// AllStats retrieves statistics for every level that has been attempted.
func (s *Store) AllStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*),
		        SUM(CASE WHEN outcome = 'win' THEN 1 ELSE 0 END),
		        MAX(percent), SUM(jumps), MAX(created_at)
		 FROM attempts
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var st LevelStats
		var lastPlayed any
		if err := rows.Scan(&st.LevelID, &st.Attempts, &st.Wins, &st.BestPercent, &st.TotalJumps, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.LastPlayed = parseTimestamp(lastPlayed)
		stats[st.LevelID] = &st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearAttempts deletes all attempts for the given level.
func (s *Store) ClearAttempts(levelID string) error {
	_, err := s.db.Exec("DELETE FROM attempts WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear attempts: %w", err)
	}
	return nil
}

func scanAttempts(rows *sql.Rows) ([]Attempt, error) {
	var entries []Attempt
	for rows.Next() {
		var a Attempt
		var createdAt any
		if err := rows.Scan(&a.ID, &a.LevelID, &a.Outcome, &a.Percent, &a.Jumps, &a.Ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTimestamp handles the driver returning DATETIME columns as either
// time.Time or a string.
func parseTimestamp(v any) time.Time {
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
