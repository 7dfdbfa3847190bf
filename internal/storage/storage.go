/*
Package storage implements the persistent storage layer for the showroom.

This package provides SQLite-based storage for the persisted persona
selection, captured leads, and persona-selection analytics events, with
graceful degradation if the database is unavailable: a storage that fails
to open disables itself and every operation becomes a logged no-op.

The database is stored at ~/.showroom-hub/showroom.db and uses
modernc.org/sqlite (a pure Go, CGo-free implementation).
*/
package storage

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SessionKeySelectedPersona is the fixed key under which the selected
// persona identifier is persisted.
const SessionKeySelectedPersona = "selected_persona"

// SessionStore is the narrow interface the session manager depends on.
type SessionStore interface {
	// SessionValue retrieves a persisted session value; "" if absent.
	SessionValue(key string) (string, error)

	// SaveSessionValue persists a session value under a key.
	SaveSessionValue(key, value string) error

	// ClearSessionValue removes a persisted session value.
	ClearSessionValue(key string) error
}

// Storage defines the full interface for persistent storage operations.
type Storage interface {
	SessionStore

	// Init initializes the database and runs migrations.
	Init() error

	// RecordSelection records a persona selection event.
	RecordSelection(event SelectionEvent) error

	// GetSelectionHistory retrieves selection events since a given time.
	GetSelectionHistory(since time.Time) ([]SelectionEvent, error)

	// SaveLead persists a captured lead.
	SaveLead(lead Lead) error

	// ListLeads retrieves all captured leads, newest first.
	ListLeads() ([]Lead, error)

	// Cleanup removes old selection events based on retention policy.
	Cleanup(retention time.Duration) error

	// Close closes the database connection.
	Close() error
}

// SQLiteStorage implements the Storage interface using SQLite.
type SQLiteStorage struct {
	db       *sql.DB
	dbPath   string
	enabled  bool
	mu       sync.Mutex
	initOnce sync.Once
}

// NewStorage creates a new SQLite storage instance at the default path.
//
// The database is created at ~/.showroom-hub/showroom.db. If the home
// directory cannot be determined, the storage is disabled but operations
// will not fail.
func NewStorage() *SQLiteStorage {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Warning: failed to get home directory: %v", err)
		return &SQLiteStorage{enabled: false}
	}

	dbPath := filepath.Join(home, ".showroom-hub", "showroom.db")
	return NewStorageAt(dbPath)
}

// NewStorageAt creates a new SQLite storage instance at a specific path.
func NewStorageAt(dbPath string) *SQLiteStorage {
	return &SQLiteStorage{
		dbPath:  dbPath,
		enabled: true,
	}
}

// Init initializes the database and runs migrations.
//
// If initialization fails, storage is disabled and subsequent operations
// become no-ops (graceful degradation).
func (s *SQLiteStorage) Init() error {
	if !s.enabled {
		return nil
	}

	var initErr error
	s.initOnce.Do(func() {
		dbDir := filepath.Dir(s.dbPath)
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			initErr = fmt.Errorf("failed to create db directory: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}

		db, err := sql.Open("sqlite", s.dbPath)
		if err != nil {
			initErr = fmt.Errorf("failed to open database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
		s.db = db

		if err := db.Ping(); err != nil {
			initErr = fmt.Errorf("failed to ping database: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}

		if err := s.runMigrations(); err != nil {
			initErr = fmt.Errorf("failed to run migrations: %w", err)
			s.enabled = false
			log.Printf("Warning: %v", initErr)
			return
		}
	})

	return initErr
}

// Close closes the database connection.
func (s *SQLiteStorage) Close() error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	s.db = nil
	return nil
}
