// ABOUTME: Profile database operations
// ABOUTME: Handles profile CRUD with name uniqueness and cascading deletes
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/coldcall/models"
)

// CreateProfile creates a profile with the given name. The name is trimmed
// and must be unique across all profiles (case-sensitive exact match).
func CreateProfile(db *sql.DB, name string) (*models.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: profile name is required", ErrValidation)
	}

	taken, err := profileNameTaken(db, name, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	now := time.Now()
	profile := &models.Profile{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err = db.Exec(`
		INSERT INTO profiles (id, name, contacts_count, created_at, updated_at)
		VALUES (?, ?, 0, ?, ?)
	`, profile.ID.String(), profile.Name, profile.CreatedAt, profile.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return profile, nil
}

// GetProfile returns the profile with the given id, or ErrNotFound.
func GetProfile(db *sql.DB, id uuid.UUID) (*models.Profile, error) {
	profile := &models.Profile{}
	err := db.QueryRow(`
		SELECT id, name, contacts_count, created_at, updated_at
		FROM profiles WHERE id = ?
	`, id.String()).Scan(
		&profile.ID,
		&profile.Name,
		&profile.ContactsCount,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: profile %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// FindProfileByName returns the profile with the exact trimmed name, or
// nil when no such profile exists.
func FindProfileByName(db *sql.DB, name string) (*models.Profile, error) {
	profile := &models.Profile{}
	err := db.QueryRow(`
		SELECT id, name, contacts_count, created_at, updated_at
		FROM profiles WHERE name = ?
	`, strings.TrimSpace(name)).Scan(
		&profile.ID,
		&profile.Name,
		&profile.ContactsCount,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return profile, nil
}

// ListProfiles returns all profiles in creation order. Rows are scanned
// copies; mutating them never touches the store.
func ListProfiles(db *sql.DB) ([]models.Profile, error) {
	rows, err := db.Query(`
		SELECT id, name, contacts_count, created_at, updated_at
		FROM profiles
		ORDER BY created_at, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []models.Profile
	for rows.Next() {
		var p models.Profile
		if err := rows.Scan(&p.ID, &p.Name, &p.ContactsCount, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

// RenameProfile changes a profile's name. The new name is trimmed, must be
// non-empty, and must not collide with any other profile.
func RenameProfile(db *sql.DB, id uuid.UUID, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return fmt.Errorf("%w: profile name is required", ErrValidation)
	}

	if _, err := GetProfile(db, id); err != nil {
		return err
	}

	taken, err := profileNameTaken(db, newName, id)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: %q", ErrDuplicateName, newName)
	}

	_, err = db.Exec(`
		UPDATE profiles SET name = ?, updated_at = ? WHERE id = ?
	`, newName, time.Now(), id.String())
	if err != nil {
		return fmt.Errorf("failed to rename profile: %w", err)
	}

	return nil
}

// DeleteProfile removes a profile together with its contacts and call
// history. Deleting an unknown id returns ErrNotFound; the cascade is
// transactional so a partial delete is never observable.
func DeleteProfile(db *sql.DB, id uuid.UUID) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // Safe even after commit
	}()

	res, err := tx.Exec(`DELETE FROM profiles WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: profile %s", ErrNotFound, id)
	}

	// The schema cascades on foreign keys, but older databases predate the
	// pragma, so delete the owned rows explicitly as well.
	if _, err := tx.Exec(`DELETE FROM contacts WHERE profile_id = ?`, id.String()); err != nil {
		return fmt.Errorf("failed to delete contacts: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM call_history WHERE profile_id = ?`, id.String()); err != nil {
		return fmt.Errorf("failed to delete call history: %w", err)
	}

	return tx.Commit()
}

// RefreshContactsCount recomputes the cached contacts_count from the
// contacts table.
func RefreshContactsCount(db *sql.DB, id uuid.UUID) error {
	_, err := db.Exec(`
		UPDATE profiles
		SET contacts_count = (SELECT COUNT(*) FROM contacts WHERE profile_id = ?),
		    updated_at = ?
		WHERE id = ?
	`, id.String(), time.Now(), id.String())
	return err
}

// profileNameTaken reports whether a profile other than exclude already
// uses name.
func profileNameTaken(db *sql.DB, name string, exclude uuid.UUID) (bool, error) {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM profiles WHERE name = ? AND id != ?
	`, name, exclude.String()).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
