// ABOUTME: Contact database operations
// ABOUTME: Handles bulk attach, status/notes updates, and ordered listing per profile
package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/harperreed/coldcall/models"
)

// InsertContacts bulk-attaches contacts to a profile and refreshes the
// profile's cached contacts_count. Positions continue from the profile's
// existing contacts so repeated imports keep a stable queue order.
func InsertContacts(db *sql.DB, profileID uuid.UUID, contacts []models.Contact) error {
	if _, err := GetProfile(db, profileID); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback() // Safe even after commit
	}()

	var base int
	err = tx.QueryRow(`
		SELECT COALESCE(MAX(position)+1, 0) FROM contacts WHERE profile_id = ?
	`, profileID.String()).Scan(&base)
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO contacts (id, profile_id, shop_name, nickname, type_of_shop, phone, status, notes, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, c := range contacts {
		id := c.ID
		if id == uuid.Nil {
			id = uuid.New()
		}
		status := c.Status
		if status == "" {
			status = models.StatusToCall
		}
		if !status.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
		}
		_, err := stmt.Exec(
			id.String(),
			profileID.String(),
			c.ShopName,
			c.Nickname,
			c.TypeOfShop,
			c.Phone,
			string(status),
			c.Notes,
			base+i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert contact: %w", err)
		}
	}

	_, err = tx.Exec(`
		UPDATE profiles
		SET contacts_count = (SELECT COUNT(*) FROM contacts WHERE profile_id = ?)
		WHERE id = ?
	`, profileID.String(), profileID.String())
	if err != nil {
		return fmt.Errorf("failed to refresh contacts count: %w", err)
	}

	return tx.Commit()
}

// GetContact returns the contact with the given id, or ErrNotFound.
func GetContact(db *sql.DB, id uuid.UUID) (*models.Contact, error) {
	c := &models.Contact{}
	var status string

	err := db.QueryRow(`
		SELECT id, profile_id, shop_name, nickname, type_of_shop, phone, status, notes, position
		FROM contacts WHERE id = ?
	`, id.String()).Scan(
		&c.ID,
		&c.ProfileID,
		&c.ShopName,
		&c.Nickname,
		&c.TypeOfShop,
		&c.Phone,
		&status,
		&c.Notes,
		&c.Position,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: contact %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	c.Status = models.Status(status)
	return c, nil
}

// ListContactsForProfile returns a profile's contacts in import order.
// The slice holds scanned copies - callers cannot mutate store state
// through it.
func ListContactsForProfile(db *sql.DB, profileID uuid.UUID) ([]models.Contact, error) {
	rows, err := db.Query(`
		SELECT id, profile_id, shop_name, nickname, type_of_shop, phone, status, notes, position
		FROM contacts
		WHERE profile_id = ?
		ORDER BY position
	`, profileID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []models.Contact
	for rows.Next() {
		var c models.Contact
		var status string
		if err := rows.Scan(&c.ID, &c.ProfileID, &c.ShopName, &c.Nickname, &c.TypeOfShop, &c.Phone, &status, &c.Notes, &c.Position); err != nil {
			return nil, err
		}
		c.Status = models.Status(status)
		contacts = append(contacts, c)
	}

	return contacts, rows.Err()
}

// UpdateContactStatus sets a contact's status and notes. The status must
// be inside the closed enumeration.
func UpdateContactStatus(db *sql.DB, contactID uuid.UUID, status models.Status, notes string) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	res, err := db.Exec(`
		UPDATE contacts SET status = ?, notes = ? WHERE id = ?
	`, string(status), notes, contactID.String())
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: contact %s", ErrNotFound, contactID)
	}

	return nil
}

// UpdateContactNotes edits a contact's notes without touching its status.
func UpdateContactNotes(db *sql.DB, contactID uuid.UUID, notes string) error {
	res, err := db.Exec(`
		UPDATE contacts SET notes = ? WHERE id = ?
	`, notes, contactID.String())
	if err != nil {
		return fmt.Errorf("failed to update notes: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: contact %s", ErrNotFound, contactID)
	}

	return nil
}
