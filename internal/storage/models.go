/*
Package storage provides data models for the showroom persistence layer.

These models represent persona selection events and captured leads as
stored in SQLite.
*/
package storage

import "time"

// SelectionEvent represents a single persona selection for analytics.
type SelectionEvent struct {
	// PersonaID is the identifier of the selected persona, or "" for a reset.
	PersonaID string `json:"persona_id"`

	// BestMatch is the name of the best-match vehicle at selection time.
	BestMatch string `json:"best_match"`

	// Timestamp is when the selection settled.
	Timestamp time.Time `json:"timestamp"`
}

// Lead represents a captured sales lead.
type Lead struct {
	// ID is a unique identifier (UUID).
	ID string `json:"id"`

	// Name is the prospect's name.
	Name string `json:"name"`

	// Email is the prospect's email address.
	Email string `json:"email"`

	// Phone is the prospect's phone number, optional.
	Phone string `json:"phone,omitempty"`

	// VehicleName is the vehicle of interest, optional.
	VehicleName string `json:"vehicle_name,omitempty"`

	// PersonaID is the persona active when the lead was captured, optional.
	PersonaID string `json:"persona_id,omitempty"`

	// CreatedAt is when the lead was captured.
	CreatedAt time.Time `json:"created_at"`
}
