package storage

import (
	"database/sql"
	"errors"
)

// SessionValue retrieves a persisted session value; "" if absent.
// A disabled storage reports no value rather than an error.
func (s *SQLiteStorage) SessionValue(key string) (string, error) {
	if !s.enabled || s.db == nil {
		return "", nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := "SELECT value FROM session_state WHERE key = ?"
	row := s.db.QueryRow(query, key)

	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}

	return value, nil
}

// SaveSessionValue persists a session value, replacing any previous value
// for the key.
func (s *SQLiteStorage) SaveSessionValue(key, value string) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO session_state (key, value, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	_, err := s.db.Exec(query, key, value)
	return err
}

// ClearSessionValue removes a persisted session value.
func (s *SQLiteStorage) ClearSessionValue(key string) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM session_state WHERE key = ?", key)
	return err
}
