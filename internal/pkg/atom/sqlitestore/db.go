// Package sqlitestore is a persisted atom.Substrate (§1's "external
// collaborator" set is allowed more than one implementation): the same
// hash-consing contract as atom.MemStore, backed by SQLite via
// database/sql so an atomspace can survive process restarts.
package sqlitestore

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Store wraps a sql.DB connection holding one atomspace's interned atoms.
// mu serializes the check-then-insert every MakeNode/MakeLink performs,
// since structural interning must never race two callers into creating
// two handles for the same structural atom (§4.A).
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// DefaultPath returns ~/.atomspace/atomspace.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".atomspace", "atomspace.db"), nil
}

// Open opens (or creates) the SQLite-backed atomspace at path, configures
// pragmas, and runs migrations.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	return newStore(sqlDB)
}

// OpenMemory opens an in-memory SQLite-backed atomspace, for testing.
func OpenMemory() (*Store, error) {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		return nil, fmt.Errorf("open sqlite memory: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	return newStore(sqlDB)
}

func newStore(sqlDB *sql.DB) (*Store, error) {
	s := &Store{db: sqlDB}
	if err := s.configurePragmas(); err != nil {
		sqlDB.Close()
		return nil, err
	}
	if err := s.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) configurePragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := s.db.Exec(p); err != nil {
			return fmt.Errorf("pragma %q: %w", p, err)
		}
	}
	return nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }
