package leads

import (
	"testing"
	"time"
)

func validLead() Lead {
	return Lead{
		ID:        "lead-1",
		Name:      "Test Prospect",
		Email:     "prospect@example.com",
		Phone:     "+971 50 123 4567",
		CreatedAt: time.Now(),
	}
}

func TestValidate_OK(t *testing.T) {
	if err := Validate(validLead()); err != nil {
		t.Errorf("expected valid lead, got %v", err)
	}
}

func TestValidate_MissingName(t *testing.T) {
	lead := validLead()
	lead.Name = ""

	if err := Validate(lead); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestValidate_MissingEmail(t *testing.T) {
	lead := validLead()
	lead.Email = ""

	if err := Validate(lead); err == nil {
		t.Error("expected error for missing email")
	}
}

func TestValidate_BadEmails(t *testing.T) {
	bad := []string{"no-at-sign", "@nodomain.com", "user@", "user@domain", "user@@x.com", "user@.com"}

	for _, email := range bad {
		lead := validLead()
		lead.Email = email
		if err := Validate(lead); err == nil {
			t.Errorf("expected error for email %q", email)
		}
	}
}

func TestValidate_PhoneOptional(t *testing.T) {
	lead := validLead()
	lead.Phone = ""

	if err := Validate(lead); err != nil {
		t.Errorf("expected phone to be optional, got %v", err)
	}
}

func TestValidate_BadPhones(t *testing.T) {
	bad := []string{"12345", "phone-number", "5+01234567"}

	for _, phone := range bad {
		lead := validLead()
		lead.Phone = phone
		if err := Validate(lead); err == nil {
			t.Errorf("expected error for phone %q", phone)
		}
	}
}

func TestPlausibleEmail(t *testing.T) {
	good := []string{"a@b.co", "first.last@sub.example.com", "x+tag@example.ae"}
	for _, email := range good {
		if !plausibleEmail(email) {
			t.Errorf("expected %q to be plausible", email)
		}
	}
}
