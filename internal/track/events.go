/*
Package track implements background recording of persona selection events.

This package provides non-blocking tracking of which persona was selected
and which vehicle it surfaced as the best match, for showroom analytics.
Recording never blocks or fails the selection path: a full queue drops the
event with a warning.
*/
package track

import (
	"time"

	"github.com/mohamedgewely/showroom-hub/internal/storage"
)

// SelectionEvent represents a persona selection for analytics.
type SelectionEvent struct {
	// PersonaID is the identifier of the selected persona, "" for a reset.
	PersonaID string

	// BestMatch is the best-match vehicle name at selection time.
	BestMatch string

	// Timestamp is when the selection settled.
	Timestamp time.Time
}

// NewSelectionEvent creates a selection event stamped with the current time.
func NewSelectionEvent(personaID, bestMatch string) SelectionEvent {
	return SelectionEvent{
		PersonaID: personaID,
		BestMatch: bestMatch,
		Timestamp: time.Now(),
	}
}

// ToStorage converts a tracking event to its storage model.
func (e SelectionEvent) ToStorage() storage.SelectionEvent {
	return storage.SelectionEvent{
		PersonaID: e.PersonaID,
		BestMatch: e.BestMatch,
		Timestamp: e.Timestamp,
	}
}
