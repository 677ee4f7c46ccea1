// Package storage persists best completion times in SQLite.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS records (
	key     TEXT PRIMARY KEY,
	seconds TEXT NOT NULL
)`

// Store is a SQLite-backed key-value map from a size-derived key to a
// decimal number of seconds. It implements game.BestTimes.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the best-time store at path.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create records table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func recordKey(size int) string {
	return fmt.Sprintf("best_time:%d", size)
}

// Load returns the recorded best time for a grid size. A missing,
// unparseable, or negative record reads as "none recorded".
func (s *Store) Load(size int) (time.Duration, bool, error) {
	if s == nil || s.db == nil {
		return 0, false, nil
	}

	var raw string
	err := s.db.QueryRow(`SELECT seconds FROM records WHERE key = ?`, recordKey(size)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("load best time: %w", err)
	}

	secs, err := strconv.ParseFloat(raw, 64)
	if err != nil || secs < 0 {
		return 0, false, nil
	}
	return time.Duration(math.Round(secs * float64(time.Second))), true, nil
}

// Save records candidate as the best for a grid size only when no record
// exists or candidate beats the stored one. The stored value never
// increases over the life of the store. A corrupted stored value is
// replaced.
func (s *Store) Save(size int, candidate time.Duration) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("save best time: %w", err)
	}
	defer tx.Rollback()

	key := recordKey(size)

	var raw string
	err = tx.QueryRow(`SELECT seconds FROM records WHERE key = ?`, key).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// no record yet
	case err != nil:
		return fmt.Errorf("save best time: %w", err)
	default:
		if current, perr := strconv.ParseFloat(raw, 64); perr == nil && current >= 0 && candidate.Seconds() >= current {
			return nil
		}
	}

	value := strconv.FormatFloat(candidate.Seconds(), 'f', -1, 64)
	if _, err := tx.Exec(
		`INSERT INTO records (key, seconds) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET seconds = excluded.seconds`,
		key, value,
	); err != nil {
		return fmt.Errorf("save best time: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save best time: %w", err)
	}
	return nil
}
