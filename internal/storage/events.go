package storage

import (
	"log"
	"time"
)

// RecordSelection records a persona selection event.
func (s *SQLiteStorage) RecordSelection(event SelectionEvent) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO selection_events (persona_id, best_match, timestamp)
		VALUES (?, ?, ?)
	`

	_, err := s.db.Exec(query,
		event.PersonaID,
		event.BestMatch,
		event.Timestamp.Format(time.RFC3339),
	)

	if err != nil {
		log.Printf("Warning: failed to record selection: %v", err)
	}

	return nil
}

// GetSelectionHistory retrieves selection events since a given time,
// newest first.
func (s *SQLiteStorage) GetSelectionHistory(since time.Time) ([]SelectionEvent, error) {
	if !s.enabled || s.db == nil {
		return []SelectionEvent{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		SELECT persona_id, best_match, timestamp
		FROM selection_events
		WHERE timestamp >= ?
		ORDER BY timestamp DESC
	`

	rows, err := s.db.Query(query, since.Format(time.RFC3339))
	if err != nil {
		log.Printf("Warning: failed to query selection history: %v", err)
		return []SelectionEvent{}, nil
	}
	defer rows.Close()

	var events []SelectionEvent
	for rows.Next() {
		var event SelectionEvent
		var timestampStr string

		if err := rows.Scan(&event.PersonaID, &event.BestMatch, &timestampStr); err != nil {
			log.Printf("Warning: failed to scan selection row: %v", err)
			continue
		}

		event.Timestamp, err = time.Parse(time.RFC3339, timestampStr)
		if err != nil {
			log.Printf("Warning: failed to parse timestamp: %v", err)
			continue
		}

		events = append(events, event)
	}

	return events, nil
}

// Cleanup removes old selection events based on retention policy.
func (s *SQLiteStorage) Cleanup(retention time.Duration) error {
	if !s.enabled || s.db == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-retention).Format(time.RFC3339)

	if _, err := s.db.Exec("DELETE FROM selection_events WHERE timestamp < ?", cutoff); err != nil {
		log.Printf("Warning: failed to cleanup selection_events: %v", err)
	}

	// Vacuum to reclaim space
	if _, err := s.db.Exec("VACUUM"); err != nil {
		log.Printf("Warning: failed to vacuum database: %v", err)
	}

	return nil
}
