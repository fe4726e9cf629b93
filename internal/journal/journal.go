// Package journal keeps a SQLite-backed audit log of document mutations.
// Entries are best-effort: a journal failure never blocks a save.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Journal records document mutations in a local SQLite database.
type Journal struct {
	db *sql.DB
}

// Entry is one recorded mutation.
type Entry struct {
	ID       int64
	At       time.Time
	Entity   string // task, payment, contact, project
	EntityID string
	Action   string // add, update, status, pay
	Detail   string
}

// Open opens or creates the journal database at the given path.
func Open(dbPath string) (*Journal, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating journal dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening journal db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Journal{db: db}, nil
}

// Close closes the journal database.
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record appends one mutation entry.
func (j *Journal) Record(entity, entityID, action, detail string) error {
	_, err := j.db.Exec(
		`INSERT INTO mutations (at, entity, entity_id, action, detail) VALUES (?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), entity, entityID, action, detail,
	)
	if err != nil {
		return fmt.Errorf("recording mutation: %w", err)
	}
	return nil
}

// Recent returns the latest n entries, newest first.
func (j *Journal) Recent(n int) ([]Entry, error) {
	rows, err := j.db.Query(
		`SELECT id, at, entity, entity_id, action, detail
		 FROM mutations ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var at string
		if err := rows.Scan(&e.ID, &at, &e.Entity, &e.EntityID, &e.Action, &e.Detail); err != nil {
			return nil, err
		}
		e.At, _ = time.Parse(time.RFC3339, at)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count returns the total number of recorded mutations.
func (j *Journal) Count() (int, error) {
	var count int
	err := j.db.QueryRow("SELECT COUNT(*) FROM mutations").Scan(&count)
	return count, err
}
