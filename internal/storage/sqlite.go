// Package storage persists save slots and finished runs in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrSlotNotFound is returned when a named slot does not exist.
var ErrSlotNotFound = errors.New("storage: slot not found")

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SlotInfo describes one save slot without its payload.
type SlotInfo struct {
	Name      string
	Depth     uint32
	Turns     int
	UpdatedAt time.Time
}

// RunEntry is one finished run.
type RunEntry struct {
	ID           int64
	Depth        uint32
	Turns        int
	CauseOfDeath string
	Data         []byte
	CreatedAt    time.Time
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
	schema := `
		CREATE TABLE IF NOT EXISTS slots (
			name TEXT PRIMARY KEY,
			depth INTEGER NOT NULL,
			turns INTEGER NOT NULL DEFAULT 0,
			data BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			depth INTEGER NOT NULL,
			turns INTEGER NOT NULL,
			cause_of_death TEXT,
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_depth ON runs(depth DESC);
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

// SaveSlot writes data under name, replacing any previous save.
func (s *Store) SaveSlot(name string, depth uint32, turns int, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO slots (name, depth, turns, data, updated_at)
		 VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(name) DO UPDATE SET
		   depth = excluded.depth,
		   turns = excluded.turns,
		   data = excluded.data,
		   updated_at = CURRENT_TIMESTAMP`,
		name, depth, turns, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %s: %w", name, err)
	}
	return nil
}

// LoadSlot returns the payload saved under name.
func (s *Store) LoadSlot(name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM slots WHERE name = ?", name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSlotNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load slot %s: %w", name, err)
	}
	return data, nil
}

// ListSlots returns every slot, most recently saved first.
func (s *Store) ListSlots() ([]SlotInfo, error) {
	rows, err := s.db.Query(
		`SELECT name, depth, turns, updated_at
		 FROM slots
		 ORDER BY updated_at DESC, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query slots: %w", err)
	}
	defer rows.Close()

	var slots []SlotInfo
	for rows.Next() {
		var si SlotInfo
		var updatedAt any
		if err := rows.Scan(&si.Name, &si.Depth, &si.Turns, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		si.UpdatedAt = parseTime(updatedAt)
		slots = append(slots, si)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return slots, nil
}

// DeleteSlot removes name. Deleting a missing slot returns ErrSlotNotFound.
func (s *Store) DeleteSlot(name string) error {
	res, err := s.db.Exec("DELETE FROM slots WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete slot %s: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete slot %s: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrSlotNotFound, name)
	}
	return nil
}

// RecordRun stores a finished run and returns its id.
func (s *Store) RecordRun(depth uint32, turns int, cause string, data []byte) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (depth, turns, cause_of_death, data) VALUES (?, ?, ?, ?)",
		depth, turns, cause, data,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// BestRuns returns up to limit runs ordered by depth reached, then turns.
func (s *Store) BestRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, depth, turns, COALESCE(cause_of_death, ''), data, created_at
		 FROM runs
		 ORDER BY depth DESC, turns DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunEntry
	for rows.Next() {
		var r RunEntry
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Depth, &r.Turns, &r.CauseOfDeath, &r.Data, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTime handles both time.Time and string datetime columns.
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
