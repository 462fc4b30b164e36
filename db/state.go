// ABOUTME: Key-addressed app state storage
// ABOUTME: Persists cursor, active selections, pending-call marker, and preferences
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// State keys. Each is independently readable and writable; an absent key
// reads back as the zero/default value, never as an error.
const (
	StateCursor          = "cursor"
	StateActiveProfileID = "active_profile_id"
	StateActiveContactID = "active_contact_id"
	StatePendingCallID   = "pending_call_contact_id"
	StateTheme           = "theme"
	StateLanguage        = "language"
)

// GetState returns the raw value for key, or "" when the key is absent.
func GetState(db *sql.DB, key string) (string, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM app_state WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// SetState stores value under key, replacing any previous value.
func SetState(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO app_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set state %q: %w", key, err)
	}
	return nil
}

// RemoveState deletes key. Removing an absent key is a no-op.
func RemoveState(db *sql.DB, key string) error {
	_, err := db.Exec(`DELETE FROM app_state WHERE key = ?`, key)
	return err
}

// GetCursor returns the queue cursor, defaulting to 0.
func GetCursor(db *sql.DB) (int, error) {
	raw, err := GetState(db, StateCursor)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, nil
	}
	cursor, err := strconv.Atoi(raw)
	if err != nil {
		// A corrupt cursor self-heals to the start of the queue.
		return 0, nil
	}
	return cursor, nil
}

// SetCursor persists the queue cursor.
func SetCursor(db *sql.DB, cursor int) error {
	return SetState(db, StateCursor, strconv.Itoa(cursor))
}

// GetStateID reads a uuid-valued key. Absent or unparseable values come
// back as uuid.Nil.
func GetStateID(db *sql.DB, key string) (uuid.UUID, error) {
	raw, err := GetState(db, key)
	if err != nil {
		return uuid.Nil, err
	}
	if raw == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, nil
	}
	return id, nil
}

// SetStateID stores a uuid under key; uuid.Nil removes the key.
func SetStateID(db *sql.DB, key string, id uuid.UUID) error {
	if id == uuid.Nil {
		return RemoveState(db, key)
	}
	return SetState(db, key, id.String())
}

// SetActiveProfile records the profile the caller is working, resetting
// the queue cursor to the top - the cursor is only meaningful relative to
// one profile's contact list.
func SetActiveProfile(db *sql.DB, profileID uuid.UUID) error {
	if err := SetStateID(db, StateActiveProfileID, profileID); err != nil {
		return err
	}
	return SetCursor(db, 0)
}

// GetActiveProfile returns the active profile id, or uuid.Nil when none
// is selected.
func GetActiveProfile(db *sql.DB) (uuid.UUID, error) {
	return GetStateID(db, StateActiveProfileID)
}
