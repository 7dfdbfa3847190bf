/*
Package leads implements sales lead capture for the showroom.

A lead is a prospect's contact details plus the vehicle and persona context
they were captured under. Validation is deliberately light: a name and a
plausible email are required, phone is optional.
*/
package leads

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mohamedgewely/showroom-hub/internal/storage"
)

// Lead is a validated, ready-to-persist sales lead.
type Lead = storage.Lead

// Capture validates and persists a lead, assigning it a UUID.
func Capture(store storage.Storage, name, email, phone, vehicleName, personaID string) (Lead, error) {
	lead := Lead{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(name),
		Email:       strings.TrimSpace(email),
		Phone:       strings.TrimSpace(phone),
		VehicleName: strings.TrimSpace(vehicleName),
		PersonaID:   personaID,
		CreatedAt:   time.Now(),
	}

	if err := Validate(lead); err != nil {
		return Lead{}, err
	}

	if err := store.SaveLead(lead); err != nil {
		return Lead{}, fmt.Errorf("failed to save lead: %w", err)
	}

	return lead, nil
}

// Validate checks a lead's required fields.
func Validate(lead Lead) error {
	if lead.Name == "" {
		return fmt.Errorf("lead name is required")
	}
	if lead.Email == "" {
		return fmt.Errorf("lead email is required")
	}
	if !plausibleEmail(lead.Email) {
		return fmt.Errorf("invalid email address: %s", lead.Email)
	}
	if lead.Phone != "" && !plausiblePhone(lead.Phone) {
		return fmt.Errorf("invalid phone number: %s", lead.Phone)
	}
	return nil
}

// plausibleEmail checks for the local@domain.tld shape without attempting
// full RFC validation.
func plausibleEmail(email string) bool {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]
	if strings.Contains(domain, "@") {
		return false
	}
	dot := strings.LastIndex(domain, ".")
	return dot > 0 && dot < len(domain)-1
}

// plausiblePhone accepts digits, spaces and a leading +, at least 7 digits.
func plausiblePhone(phone string) bool {
	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-':
		default:
			return false
		}
	}
	return digits >= 7
}
