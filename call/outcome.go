// ABOUTME: Shared outcome-recording path for every surface that logs a call
// ABOUTME: One status update, one history snapshot, one cursor correction per commit
package call

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/models"
	"github.com/harperreed/coldcall/queue"
)

// RecordOutcome applies a call result to the store: the contact's status
// and notes are updated and exactly one history entry is appended,
// snapshotting the contact's name and phone at commit time. When the
// contact belongs to the active profile the queue cursor is re-derived
// so it keeps pointing at a To Call contact.
func RecordOutcome(database *sql.DB, contactID uuid.UUID, status models.Status, notes string) (*models.CallHistoryEntry, error) {
	contact, err := db.GetContact(database, contactID)
	if err != nil {
		return nil, err
	}

	if err := db.UpdateContactStatus(database, contactID, status, notes); err != nil {
		return nil, err
	}

	entry := &models.CallHistoryEntry{
		ProfileID:   contact.ProfileID,
		ContactName: contact.ShopName,
		Phone:       contact.Phone,
		Status:      status,
		Notes:       notes,
	}
	if err := db.AppendHistory(database, entry); err != nil {
		return nil, err
	}

	if err := healCursor(database, contact.ProfileID); err != nil {
		return nil, err
	}

	return entry, nil
}

// healCursor re-derives the queue cursor for profileID when it is the
// active profile. The commit just changed a status out from under the
// cursor, so the stored index may no longer point at a To Call contact.
func healCursor(database *sql.DB, profileID uuid.UUID) error {
	active, err := db.GetActiveProfile(database)
	if err != nil {
		return err
	}
	if active != profileID {
		return nil
	}

	contacts, err := db.ListContactsForProfile(database, profileID)
	if err != nil {
		return err
	}
	cursor, err := db.GetCursor(database)
	if err != nil {
		return err
	}

	_, corrected, ok := queue.FindCurrent(contacts, cursor)
	if !ok || corrected == cursor {
		return nil
	}
	if err := db.SetCursor(database, corrected); err != nil {
		return fmt.Errorf("correcting queue cursor: %w", err)
	}
	return nil
}
