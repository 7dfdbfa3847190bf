package storage

import (
	"fmt"
	"log"
	"time"
)

// SaveLead persists a captured lead.
//
// Unlike analytics writes, lead capture is user-facing: a disabled storage
// is reported as an error so the caller can tell the prospect their
// details were not saved.
func (s *SQLiteStorage) SaveLead(lead Lead) error {
	if !s.enabled || s.db == nil {
		return fmt.Errorf("storage is unavailable, lead not saved")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO leads (id, name, email, phone, vehicle_name, persona_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.Exec(query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.VehicleName,
		lead.PersonaID,
		lead.CreatedAt.Format(time.RFC3339),
	)

	if err != nil {
		return fmt.Errorf("failed to save lead: %w", err)
	}

	return nil
}

// ListLeads retrieves all captured leads, newest first.
func (s *SQLiteStorage) ListLeads() ([]Lead, error) {
	if !s.enabled || s.db == nil {
		return []Lead{}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		SELECT id, name, email, phone, vehicle_name, persona_id, created_at
		FROM leads
		ORDER BY created_at DESC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		var lead Lead
		var createdAtStr string

		if err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Email,
			&lead.Phone,
			&lead.VehicleName,
			&lead.PersonaID,
			&createdAtStr,
		); err != nil {
			log.Printf("Warning: failed to scan lead row: %v", err)
			continue
		}

		lead.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			log.Printf("Warning: failed to parse lead timestamp: %v", err)
			continue
		}

		leads = append(leads, lead)
	}

	return leads, nil
}
