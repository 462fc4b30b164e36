package db

import (
	"testing"

	"github.com/google/uuid"
)

func TestStateRoundTrip(t *testing.T) {
	database := setupTestDB(t)

	// Absent keys read back as defaults, never errors.
	value, err := GetState(database, StateTheme)
	if err != nil {
		t.Fatalf("GetState failed: %v", err)
	}
	if value != "" {
		t.Errorf("absent key = %q, want empty", value)
	}

	if err := SetState(database, StateTheme, "dark"); err != nil {
		t.Fatalf("SetState failed: %v", err)
	}
	value, _ = GetState(database, StateTheme)
	if value != "dark" {
		t.Errorf("theme = %q, want %q", value, "dark")
	}

	// Overwrite, then remove.
	_ = SetState(database, StateTheme, "light")
	value, _ = GetState(database, StateTheme)
	if value != "light" {
		t.Errorf("theme = %q, want %q", value, "light")
	}

	if err := RemoveState(database, StateTheme); err != nil {
		t.Fatalf("RemoveState failed: %v", err)
	}
	value, _ = GetState(database, StateTheme)
	if value != "" {
		t.Errorf("removed key = %q, want empty", value)
	}

	// Removing an absent key is a no-op.
	if err := RemoveState(database, StateTheme); err != nil {
		t.Errorf("RemoveState on absent key failed: %v", err)
	}
}

func TestCursorDefaultsToZero(t *testing.T) {
	database := setupTestDB(t)

	cursor, err := GetCursor(database)
	if err != nil {
		t.Fatalf("GetCursor failed: %v", err)
	}
	if cursor != 0 {
		t.Errorf("cursor = %d, want 0", cursor)
	}

	if err := SetCursor(database, 7); err != nil {
		t.Fatalf("SetCursor failed: %v", err)
	}
	cursor, _ = GetCursor(database)
	if cursor != 7 {
		t.Errorf("cursor = %d, want 7", cursor)
	}

	// A corrupt value self-heals to the top of the queue.
	_ = SetState(database, StateCursor, "not-a-number")
	cursor, _ = GetCursor(database)
	if cursor != 0 {
		t.Errorf("corrupt cursor = %d, want 0", cursor)
	}
}

func TestStateIDs(t *testing.T) {
	database := setupTestDB(t)

	id, err := GetStateID(database, StatePendingCallID)
	if err != nil {
		t.Fatalf("GetStateID failed: %v", err)
	}
	if id != uuid.Nil {
		t.Errorf("absent id = %v, want uuid.Nil", id)
	}

	want := uuid.New()
	if err := SetStateID(database, StatePendingCallID, want); err != nil {
		t.Fatalf("SetStateID failed: %v", err)
	}
	id, _ = GetStateID(database, StatePendingCallID)
	if id != want {
		t.Errorf("id = %v, want %v", id, want)
	}

	// Storing uuid.Nil clears the key.
	if err := SetStateID(database, StatePendingCallID, uuid.Nil); err != nil {
		t.Fatalf("SetStateID(nil) failed: %v", err)
	}
	id, _ = GetStateID(database, StatePendingCallID)
	if id != uuid.Nil {
		t.Errorf("cleared id = %v, want uuid.Nil", id)
	}
}

func TestSetActiveProfileResetsCursor(t *testing.T) {
	database := setupTestDB(t)

	_ = SetCursor(database, 5)

	p, _ := CreateProfile(database, "Active")
	if err := SetActiveProfile(database, p.ID); err != nil {
		t.Fatalf("SetActiveProfile failed: %v", err)
	}

	active, _ := GetActiveProfile(database)
	if active != p.ID {
		t.Errorf("active profile = %v, want %v", active, p.ID)
	}

	cursor, _ := GetCursor(database)
	if cursor != 0 {
		t.Errorf("cursor = %d, want reset to 0", cursor)
	}
}
