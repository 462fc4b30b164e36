// ABOUTME: Call history database operations
// ABOUTME: Append-only log of committed call outcomes, listed most-recent-first
package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/harperreed/coldcall/models"
)

// AppendHistory appends one immutable call-outcome record. When the entry
// carries no id, a ULID is generated so ids sort by commit time.
func AppendHistory(db *sql.DB, entry *models.CallHistoryEntry) error {
	if !entry.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, entry.Status)
	}
	if entry.ProfileID == uuid.Nil {
		return fmt.Errorf("%w: history entry needs a profile", ErrValidation)
	}

	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	if entry.ID == "" {
		entry.ID = ulid.MustNew(ulid.Timestamp(entry.Date), ulid.DefaultEntropy()).String()
	}

	_, err := db.Exec(`
		INSERT INTO call_history (id, profile_id, contact_name, phone, date, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.ProfileID.String(), entry.ContactName, entry.Phone, entry.Date, string(entry.Status), entry.Notes)
	if err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}

	return nil
}

// ListHistoryForProfile returns a profile's call history, newest first.
func ListHistoryForProfile(db *sql.DB, profileID uuid.UUID) ([]models.CallHistoryEntry, error) {
	rows, err := db.Query(`
		SELECT id, profile_id, contact_name, phone, date, status, notes
		FROM call_history
		WHERE profile_id = ?
		ORDER BY id DESC
	`, profileID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHistory(rows)
}

// ListAllHistory returns every call-history entry, newest first. The
// dashboard totals are computed over this.
func ListAllHistory(db *sql.DB) ([]models.CallHistoryEntry, error) {
	rows, err := db.Query(`
		SELECT id, profile_id, contact_name, phone, date, status, notes
		FROM call_history
		ORDER BY id DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHistory(rows)
}

func scanHistory(rows *sql.Rows) ([]models.CallHistoryEntry, error) {
	var entries []models.CallHistoryEntry
	for rows.Next() {
		var e models.CallHistoryEntry
		var status string
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.ContactName, &e.Phone, &e.Date, &status, &e.Notes); err != nil {
			return nil, err
		}
		e.Status = models.Status(status)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
