package call

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/models"
)

type fakeIdentity struct {
	id  string
	err error
}

func (f fakeIdentity) UserID() (string, error) {
	return f.id, f.err
}

type recordingDialer struct {
	phones []string
}

func (r *recordingDialer) Dial(phone string) {
	r.phones = append(r.phones, phone)
}

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenDatabase failed: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// seedQueue creates a profile with two To Call contacts and makes it the
// active profile with the cursor at the top.
func seedQueue(t *testing.T, database *sql.DB) (uuid.UUID, []models.Contact) {
	t.Helper()

	profile, err := db.CreateProfile(database, "Route A")
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}

	seed := []models.Contact{
		{ShopName: "Corner Bakery", Phone: "+1-555-0101", Status: models.StatusToCall, Notes: "ask for Mia"},
		{ShopName: "Hill Hardware", Phone: "+1-555-0102", Status: models.StatusToCall},
	}
	if err := db.InsertContacts(database, profile.ID, seed); err != nil {
		t.Fatalf("InsertContacts failed: %v", err)
	}
	if err := db.SetActiveProfile(database, profile.ID); err != nil {
		t.Fatalf("SetActiveProfile failed: %v", err)
	}

	contacts, err := db.ListContactsForProfile(database, profile.ID)
	if err != nil {
		t.Fatalf("ListContactsForProfile failed: %v", err)
	}
	return profile.ID, contacts
}

func TestDialRecordsMarkerAndFiresDialer(t *testing.T) {
	database := setupTestDB(t)
	_, contacts := seedQueue(t, database)

	dialer := &recordingDialer{}
	lc := NewLifecycle(database, dialer, fakeIdentity{id: "u1"})

	if err := lc.Dial(contacts[0].ID); err != nil {
		t.Fatalf("Dial failed: %v", err)
	}

	if lc.State() != StateDialing {
		t.Errorf("state = %v, want Dialing", lc.State())
	}
	if len(dialer.phones) != 1 || dialer.phones[0] != "+1-555-0101" {
		t.Errorf("dialer got %v, want the contact's phone verbatim", dialer.phones)
	}

	pending, err := db.GetStateID(database, db.StatePendingCallID)
	if err != nil {
		t.Fatalf("GetStateID failed: %v", err)
	}
	if pending != contacts[0].ID {
		t.Errorf("pending marker = %s, want %s", pending, contacts[0].ID)
	}
}

func TestDialRequiresIdentity(t *testing.T) {
	database := setupTestDB(t)
	_, contacts := seedQueue(t, database)

	lc := NewLifecycle(database, &recordingDialer{}, fakeIdentity{err: errors.New("no account")})

	err := lc.Dial(contacts[0].ID)
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("err = %v, want ErrUnauthenticated", err)
	}
	if lc.State() != StateIdle {
		t.Error("state should stay Idle on auth failure")
	}

	pending, _ := db.GetStateID(database, db.StatePendingCallID)
	if pending != uuid.Nil {
		t.Error("no marker should be written on auth failure")
	}
}

func TestDialUnknownContact(t *testing.T) {
	database := setupTestDB(t)
	seedQueue(t, database)

	lc := NewLifecycle(database, &recordingDialer{}, fakeIdentity{id: "u1"})

	err := lc.Dial(uuid.New())
	if !errors.Is(err, db.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestResumePrimesDraft(t *testing.T) {
	database := setupTestDB(t)
	_, contacts := seedQueue(t, database)

	lc := NewLifecycle(database, &recordingDialer{}, fakeIdentity{id: "u1"})
	if err := lc.Dial(contacts[0].ID); err != nil {
		t.Fatalf("Dial failed: %v", err)
	}

	// A fresh lifecycle, as after a process restart: the durable marker
	// alone drives the recovery.
	lc = NewLifecycle(database, &recordingDialer{}, fakeIdentity{id: "u1"})

	awaiting, err := lc.Resume()
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if !awaiting || lc.State() != StateAwaitingResult {
		t.Fatalf("expected AwaitingResult, got state %v", lc.State())
	}

	draft := lc.Draft()
	if draft.ContactID != contacts[0].ID {
		t.Errorf("draft contact = %s, want %s", draft.ContactID, contacts[0].ID)
	}
	if draft.Status != models.StatusAnswered {
		t.Errorf("draft status = %q, want Answered default for a To Call contact", draft.Status)
	}
	if draft.Notes != "ask for Mia" {
		t.Errorf("draft notes = %q, want the contact's existing notes", draft.Notes)
	}
}

func TestResumeKeepsMeaningfulStatus(t *testing.T) {
	database := setupTestDB(t)
	_, contacts := seedQueue(t, database)

	if err := db.UpdateContactStatus(database, contacts[0].ID, models.StatusFollowUpNeeded, ""); err != nil {
		t.Fatalf("UpdateContactStatus failed: %v", err)
	}

	lc := NewLifecycle(database, &recordingDialer{}, fakeIdentity{id: "u1"})
	if err := lc.Dial(contacts[0].ID); err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	if _, err := lc.Resume(); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}

	if got := lc.Draft().Status; got != models.StatusFollowUpNeeded {
		t.Errorf("draft status = %q, want the contact's prior outcome", got)
	}
}

func TestResumeWithoutMarker(t *testing.T) {
	database := setupTestDB(t)
	seedQueue(t, database)

	lc := NewLifecycle(database, &recordingDialer{}, fakeIdentity{id: "u1"})

	awaiting, err := lc.Resume()
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if awaiting || lc.State() != StateIdle {
		t.Error("no marker should leave the machine Idle")
	}
}

func TestResumeDiscardsMarkerForDeletedContact(t *testing.T) {
	database := setupTestDB(t)
	profileID, contacts := seedQueue(t, database)

	lc := NewLifecycle(database, &recordingDialer{}, fakeIdentity{id: "u1"})
	if err := lc.Dial(contacts[0].ID); err != nil {
		t.Fatalf("Dial failed: %v", err)
	}

	// The whole profile disappears while the caller is away.
	if err := db.DeleteProfile(database, profileID); err != nil {
		t.Fatalf("DeleteProfile failed: %v", err)
	}

	awaiting, err := lc.Resume()
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if awaiting || lc.State() != StateIdle {
		t.Error("stale marker should be discarded silently")
	}

	pending, _ := db.GetStateID(database, db.StatePendingCallID)
	if pending != uuid.Nil {
		t.Error("stale marker should be removed from the store")
	}
}

func TestCommitWritesOutcomeAndClearsMarker(t *testing.T) {
	database := setupTestDB(t)
	profileID, contacts := seedQueue(t, database)

	lc := NewLifecycle(database, &recordingDialer{}, fakeIdentity{id: "u1"})
	if err := lc.Dial(contacts[0].ID); err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	if _, err := lc.Resume(); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}

	entry, err := lc.Commit(models.StatusOrdered, "two crates")
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if lc.State() != StateIdle {
		t.Errorf("state = %v, want Idle after commit", lc.State())
	}
	if entry.ContactName != "Corner Bakery" || entry.Phone != "+1-555-0101" {
		t.Errorf("history snapshot = %q/%q, want the contact's name and phone", entry.ContactName, entry.Phone)
	}

	updated, err := db.GetContact(database, contacts[0].ID)
	if err != nil {
		t.Fatalf("GetContact failed: %v", err)
	}
	if updated.Status != models.StatusOrdered || updated.Notes != "two crates" {
		t.Errorf("contact = %q/%q, want Ordered with the new notes", updated.Status, updated.Notes)
	}

	entries, err := db.ListHistoryForProfile(database, profileID)
	if err != nil {
		t.Fatalf("ListHistoryForProfile failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("history has %d entries, want exactly one per commit", len(entries))
	}

	pending, _ := db.GetStateID(database, db.StatePendingCallID)
	if pending != uuid.Nil {
		t.Error("commit should clear the pending marker")
	}
}

func TestCommitRequiresStatus(t *testing.T) {
	database := setupTestDB(t)
	_, contacts := seedQueue(t, database)

	lc := NewLifecycle(database, &recordingDialer{}, fakeIdentity{id: "u1"})
	if err := lc.Dial(contacts[0].ID); err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	if _, err := lc.Resume(); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}

	_, err := lc.Commit("", "notes without a status")
	if !errors.Is(err, db.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if lc.State() != StateAwaitingResult {
		t.Error("machine should stay AwaitingResult so the caller can retry")
	}
	if lc.CommitErr() == nil {
		t.Error("commit error should be surfaced for the next render")
	}

	// Nothing was written.
	entries, _ := db.ListAllHistory(database)
	if len(entries) != 0 {
		t.Errorf("history has %d entries, want none", len(entries))
	}
}

func TestCommitTwiceRejected(t *testing.T) {
	database := setupTestDB(t)
	_, contacts := seedQueue(t, database)

	lc := NewLifecycle(database, &recordingDialer{}, fakeIdentity{id: "u1"})
	if err := lc.Dial(contacts[0].ID); err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	if _, err := lc.Resume(); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if _, err := lc.Commit(models.StatusAnswered, ""); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	_, err := lc.Commit(models.StatusAnswered, "")
	if !errors.Is(err, ErrNoActiveCall) {
		t.Fatalf("err = %v, want ErrNoActiveCall on double commit", err)
	}

	entries, _ := db.ListAllHistory(database)
	if len(entries) != 1 {
		t.Errorf("history has %d entries, want exactly one", len(entries))
	}
}

func TestCommitHealsCursor(t *testing.T) {
	database := setupTestDB(t)
	profileID, contacts := seedQueue(t, database)

	lc := NewLifecycle(database, &recordingDialer{}, fakeIdentity{id: "u1"})
	if err := lc.Dial(contacts[0].ID); err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	if _, err := lc.Resume(); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if _, err := lc.Commit(models.StatusNotInterested, ""); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}

	cursor, err := db.GetCursor(database)
	if err != nil {
		t.Fatalf("GetCursor failed: %v", err)
	}
	if cursor != 1 {
		t.Errorf("cursor = %d, want 1 pointing at the remaining To Call contact", cursor)
	}

	// Sanity: the cursor's contact really is still pending.
	fresh, _ := db.ListContactsForProfile(database, profileID)
	if fresh[cursor].Status != models.StatusToCall {
		t.Errorf("cursor points at status %q", fresh[cursor].Status)
	}
}

func TestCancelLeavesStoreUntouched(t *testing.T) {
	database := setupTestDB(t)
	_, contacts := seedQueue(t, database)

	lc := NewLifecycle(database, &recordingDialer{}, fakeIdentity{id: "u1"})
	if err := lc.Dial(contacts[0].ID); err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	if _, err := lc.Resume(); err != nil {
		t.Fatalf("Resume failed: %v", err)
	}

	if err := lc.Cancel(); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if lc.State() != StateIdle {
		t.Errorf("state = %v, want Idle after cancel", lc.State())
	}

	pending, _ := db.GetStateID(database, db.StatePendingCallID)
	if pending != uuid.Nil {
		t.Error("cancel should clear the pending marker")
	}

	contact, _ := db.GetContact(database, contacts[0].ID)
	if contact.Status != models.StatusToCall {
		t.Errorf("contact status = %q, want untouched To Call", contact.Status)
	}
	entries, _ := db.ListAllHistory(database)
	if len(entries) != 0 {
		t.Error("cancel must not append history")
	}
}

func TestRecordOutcomeInvalidStatus(t *testing.T) {
	database := setupTestDB(t)
	_, contacts := seedQueue(t, database)

	_, err := RecordOutcome(database, contacts[0].ID, models.Status("Maybe Later"), "")
	if !errors.Is(err, db.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}
