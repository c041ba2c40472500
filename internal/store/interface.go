package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when no record matches a lookup.
var ErrNotFound = errors.New("record not found")

// Record is one processed document.
type Record struct {
	ID          string
	SourceType  string
	SourceName  string
	ContentHash string
	Summary     string
	ReadingTime string
	Language    string
	Fallback    bool
	CreatedAt   time.Time
}

// Store keeps a history of processed documents.
type Store interface {
	Initialize(dbPath string) error
	Save(rec Record) (Record, error)
	FindByHash(hash string) (Record, error)
	List(limit int) ([]Record, error)
	Close() error
}
