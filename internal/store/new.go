package store

import (
	"sync"

	"crawshaw.io/sqlite"
)

type implSQLite struct {
	mu     sync.Mutex
	conn   *sqlite.Conn
	dbPath string
}

// New creates a SQLite-backed Store. Call Initialize before use.
func New() Store {
	return &implSQLite{}
}
