/*
Package storage provides tests for the storage layer.
*/
package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// newTestStorage creates an initialized storage backed by a temp database.
func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	storage := NewStorageAt(dbPath)

	if err := storage.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { storage.Close() })

	return storage
}

// TestInit verifies database initialization and schema creation.
func TestInit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	storage := NewStorageAt(dbPath)
	if err := storage.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer storage.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file not created")
	}
}

// TestInit_UnwritablePathDisablesStorage verifies graceful degradation.
func TestInit_UnwritablePathDisablesStorage(t *testing.T) {
	// A path under /dev/null can never be created as a directory.
	storage := NewStorageAt("/dev/null/nested/showroom.db")

	if err := storage.Init(); err == nil {
		t.Error("expected Init to report failure for unwritable path")
	}

	// Operations on disabled storage must be safe no-ops.
	if err := storage.SaveSessionValue(SessionKeySelectedPersona, "eco-warrior"); err != nil {
		t.Errorf("SaveSessionValue on disabled storage failed: %v", err)
	}
	value, err := storage.SessionValue(SessionKeySelectedPersona)
	if err != nil || value != "" {
		t.Errorf("SessionValue on disabled storage = (%q, %v), want empty", value, err)
	}
}

func TestSessionValue_RoundTrip(t *testing.T) {
	storage := newTestStorage(t)

	if err := storage.SaveSessionValue(SessionKeySelectedPersona, "tech-enthusiast"); err != nil {
		t.Fatalf("SaveSessionValue failed: %v", err)
	}

	value, err := storage.SessionValue(SessionKeySelectedPersona)
	if err != nil {
		t.Fatalf("SessionValue failed: %v", err)
	}
	if value != "tech-enthusiast" {
		t.Errorf("expected tech-enthusiast, got %q", value)
	}
}

func TestSessionValue_Absent(t *testing.T) {
	storage := newTestStorage(t)

	value, err := storage.SessionValue(SessionKeySelectedPersona)
	if err != nil {
		t.Fatalf("SessionValue failed: %v", err)
	}
	if value != "" {
		t.Errorf("expected empty value for absent key, got %q", value)
	}
}

func TestSaveSessionValue_Replaces(t *testing.T) {
	storage := newTestStorage(t)

	if err := storage.SaveSessionValue(SessionKeySelectedPersona, "family-first"); err != nil {
		t.Fatalf("SaveSessionValue failed: %v", err)
	}
	if err := storage.SaveSessionValue(SessionKeySelectedPersona, "eco-warrior"); err != nil {
		t.Fatalf("SaveSessionValue failed: %v", err)
	}

	value, _ := storage.SessionValue(SessionKeySelectedPersona)
	if value != "eco-warrior" {
		t.Errorf("expected eco-warrior after replace, got %q", value)
	}
}

func TestClearSessionValue(t *testing.T) {
	storage := newTestStorage(t)

	if err := storage.SaveSessionValue(SessionKeySelectedPersona, "urban-explorer"); err != nil {
		t.Fatalf("SaveSessionValue failed: %v", err)
	}
	if err := storage.ClearSessionValue(SessionKeySelectedPersona); err != nil {
		t.Fatalf("ClearSessionValue failed: %v", err)
	}

	value, _ := storage.SessionValue(SessionKeySelectedPersona)
	if value != "" {
		t.Errorf("expected empty value after clear, got %q", value)
	}
}

func TestRecordSelection_AndHistory(t *testing.T) {
	storage := newTestStorage(t)

	event := SelectionEvent{
		PersonaID: "weekend-adventurer",
		BestMatch: "Toyota Land Cruiser",
		Timestamp: time.Now(),
	}

	if err := storage.RecordSelection(event); err != nil {
		t.Fatalf("RecordSelection failed: %v", err)
	}

	history, err := storage.GetSelectionHistory(time.Now().Add(-1 * time.Hour))
	if err != nil {
		t.Fatalf("GetSelectionHistory failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 event, got %d", len(history))
	}
	if history[0].PersonaID != "weekend-adventurer" {
		t.Errorf("expected weekend-adventurer, got %q", history[0].PersonaID)
	}
	if history[0].BestMatch != "Toyota Land Cruiser" {
		t.Errorf("expected Toyota Land Cruiser, got %q", history[0].BestMatch)
	}
}

func TestGetSelectionHistory_SinceFilter(t *testing.T) {
	storage := newTestStorage(t)

	old := SelectionEvent{
		PersonaID: "family-first",
		BestMatch: "Toyota Highlander",
		Timestamp: time.Now().Add(-48 * time.Hour),
	}
	recent := SelectionEvent{
		PersonaID: "eco-warrior",
		BestMatch: "Toyota Prius",
		Timestamp: time.Now(),
	}

	storage.RecordSelection(old)
	storage.RecordSelection(recent)

	history, err := storage.GetSelectionHistory(time.Now().Add(-1 * time.Hour))
	if err != nil {
		t.Fatalf("GetSelectionHistory failed: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected 1 recent event, got %d", len(history))
	}
	if history[0].PersonaID != "eco-warrior" {
		t.Errorf("expected eco-warrior, got %q", history[0].PersonaID)
	}
}

func TestCleanup(t *testing.T) {
	storage := newTestStorage(t)

	old := SelectionEvent{
		PersonaID: "family-first",
		BestMatch: "Toyota Highlander",
		Timestamp: time.Now().Add(-30 * 24 * time.Hour),
	}
	storage.RecordSelection(old)

	if err := storage.Cleanup(7 * 24 * time.Hour); err != nil {
		t.Fatalf("Cleanup failed: %v", err)
	}

	history, _ := storage.GetSelectionHistory(time.Now().Add(-60 * 24 * time.Hour))
	if len(history) != 0 {
		t.Errorf("expected old events removed, got %d", len(history))
	}
}

func TestSaveLead_AndList(t *testing.T) {
	storage := newTestStorage(t)

	lead := Lead{
		ID:          "lead-1",
		Name:        "Test Prospect",
		Email:       "prospect@example.com",
		Phone:       "+971501234567",
		VehicleName: "Toyota Camry",
		PersonaID:   "business-commuter",
		CreatedAt:   time.Now(),
	}

	if err := storage.SaveLead(lead); err != nil {
		t.Fatalf("SaveLead failed: %v", err)
	}

	leads, err := storage.ListLeads()
	if err != nil {
		t.Fatalf("ListLeads failed: %v", err)
	}
	if len(leads) != 1 {
		t.Fatalf("expected 1 lead, got %d", len(leads))
	}
	if leads[0].Email != "prospect@example.com" {
		t.Errorf("expected prospect@example.com, got %q", leads[0].Email)
	}
}

func TestSaveLead_DisabledStorageReportsError(t *testing.T) {
	storage := &SQLiteStorage{enabled: false}

	err := storage.SaveLead(Lead{ID: "lead-1", Name: "Test", Email: "t@example.com"})
	if err == nil {
		t.Error("expected error saving lead on disabled storage")
	}
}

func TestClose_Idempotent(t *testing.T) {
	storage := newTestStorage(t)

	if err := storage.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := storage.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}
