package store

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"crawshaw.io/sqlite"
	"github.com/google/uuid"
)

const recordColumns = `id, source_type, source_name, content_hash, summary, reading_time, language, fallback, created_at`

// HashContent returns the hex sha256 of text, used to detect repeated documents.
func HashContent(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// Initialize opens the database at dbPath and creates the schema.
func (s *implSQLite) Initialize(dbPath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create database dir: %w", err)
		}
	}

	conn, err := sqlite.OpenConn(dbPath, sqlite.SQLITE_OPEN_CREATE|sqlite.SQLITE_OPEN_READWRITE)
	if err != nil {
		return fmt.Errorf("failed to open SQLite database: %w", err)
	}
	s.conn = conn
	s.dbPath = dbPath

	for _, q := range []string{
		`CREATE TABLE IF NOT EXISTS summaries (
			id TEXT PRIMARY KEY,
			source_type TEXT NOT NULL,
			source_name TEXT NOT NULL,
			content_hash TEXT NOT NULL,
			summary TEXT NOT NULL,
			reading_time TEXT NOT NULL,
			language TEXT NOT NULL,
			fallback INTEGER NOT NULL,
			created_at INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_summaries_hash ON summaries (content_hash);`,
	} {
		if err := s.exec(q); err != nil {
			s.conn.Close()
			s.conn = nil
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

func (s *implSQLite) exec(query string) error {
	stmt, err := s.conn.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Reset()

	_, err = stmt.Step()
	return err
}

// Close closes the database connection.
func (s *implSQLite) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

// Save inserts rec, assigning an ID and creation time when missing.
func (s *implSQLite) Save(rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return Record{}, errors.New("store not initialized")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	stmt, err := s.conn.Prepare(`INSERT OR REPLACE INTO summaries (` + recordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return Record{}, fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Reset()

	stmt.BindText(1, rec.ID)
	stmt.BindText(2, rec.SourceType)
	stmt.BindText(3, rec.SourceName)
	stmt.BindText(4, rec.ContentHash)
	stmt.BindText(5, rec.Summary)
	stmt.BindText(6, rec.ReadingTime)
	stmt.BindText(7, rec.Language)
	stmt.BindInt64(8, boolInt(rec.Fallback))
	stmt.BindInt64(9, rec.CreatedAt.Unix())

	if _, err := stmt.Step(); err != nil {
		return Record{}, fmt.Errorf("failed to insert record: %w", err)
	}

	return rec, nil
}

// FindByHash returns the most recent record with the given content hash.
func (s *implSQLite) FindByHash(hash string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return Record{}, errors.New("store not initialized")
	}

	stmt, err := s.conn.Prepare(`SELECT ` + recordColumns + ` FROM summaries
		WHERE content_hash = ? ORDER BY created_at DESC LIMIT 1;`)
	if err != nil {
		return Record{}, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Reset()

	stmt.BindText(1, hash)
	hasRow, err := stmt.Step()
	if err != nil {
		return Record{}, fmt.Errorf("failed to query record: %w", err)
	}
	if !hasRow {
		return Record{}, ErrNotFound
	}

	return scanRecord(stmt), nil
}

// List returns up to limit records, newest first. A limit of zero or less returns all.
func (s *implSQLite) List(limit int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil, errors.New("store not initialized")
	}
	if limit <= 0 {
		limit = -1
	}

	stmt, err := s.conn.Prepare(`SELECT ` + recordColumns + ` FROM summaries
		ORDER BY created_at DESC, rowid DESC LIMIT ?;`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare select statement: %w", err)
	}
	defer stmt.Reset()

	stmt.BindInt64(1, int64(limit))

	var records []Record
	for {
		hasRow, err := stmt.Step()
		if err != nil {
			return nil, fmt.Errorf("failed to list records: %w", err)
		}
		if !hasRow {
			break
		}
		records = append(records, scanRecord(stmt))
	}

	return records, nil
}

func scanRecord(stmt *sqlite.Stmt) Record {
	return Record{
		ID:          stmt.ColumnText(0),
		SourceType:  stmt.ColumnText(1),
		SourceName:  stmt.ColumnText(2),
		ContentHash: stmt.ColumnText(3),
		Summary:     stmt.ColumnText(4),
		ReadingTime: stmt.ColumnText(5),
		Language:    stmt.ColumnText(6),
		Fallback:    stmt.ColumnInt64(7) != 0,
		CreatedAt:   time.Unix(stmt.ColumnInt64(8), 0),
	}
}

func boolInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
