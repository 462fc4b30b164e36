package db

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/harperreed/coldcall/models"
)

func TestCreateProfile(t *testing.T) {
	database := setupTestDB(t)

	profile, err := CreateProfile(database, "  Downtown Shops  ")
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}
	if profile.Name != "Downtown Shops" {
		t.Errorf("name = %q, want trimmed %q", profile.Name, "Downtown Shops")
	}
	if profile.ContactsCount != 0 {
		t.Errorf("contacts count = %d, want 0", profile.ContactsCount)
	}

	loaded, err := GetProfile(database, profile.ID)
	if err != nil {
		t.Fatalf("GetProfile failed: %v", err)
	}
	if loaded.Name != profile.Name {
		t.Errorf("loaded name = %q, want %q", loaded.Name, profile.Name)
	}
}

func TestCreateProfileDuplicateName(t *testing.T) {
	database := setupTestDB(t)

	if _, err := CreateProfile(database, "Routes"); err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}

	_, err := CreateProfile(database, "Routes")
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}

	// Case-sensitive match: a differently-cased name is a new profile.
	if _, err := CreateProfile(database, "routes"); err != nil {
		t.Errorf("differently-cased name should be allowed, got %v", err)
	}
}

func TestCreateProfileEmptyName(t *testing.T) {
	database := setupTestDB(t)

	_, err := CreateProfile(database, "   ")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestRenameProfile(t *testing.T) {
	database := setupTestDB(t)

	a, _ := CreateProfile(database, "Alpha")
	b, _ := CreateProfile(database, "Beta")

	if err := RenameProfile(database, a.ID, "Gamma"); err != nil {
		t.Fatalf("RenameProfile failed: %v", err)
	}
	loaded, _ := GetProfile(database, a.ID)
	if loaded.Name != "Gamma" {
		t.Errorf("name = %q, want %q", loaded.Name, "Gamma")
	}

	// Renaming to another profile's name collides.
	if err := RenameProfile(database, a.ID, "Beta"); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}

	// Renaming to its own current name is fine.
	if err := RenameProfile(database, b.ID, "Beta"); err != nil {
		t.Errorf("self-rename should succeed, got %v", err)
	}

	if err := RenameProfile(database, a.ID, "  "); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}

	if err := RenameProfile(database, uuid.New(), "Delta"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteProfileCascades(t *testing.T) {
	database := setupTestDB(t)

	keep, _ := CreateProfile(database, "Keep")
	drop, _ := CreateProfile(database, "Drop")

	for _, p := range []*models.Profile{keep, drop} {
		err := InsertContacts(database, p.ID, []models.Contact{
			{ShopName: "Shop A", Phone: "111"},
			{ShopName: "Shop B", Phone: "222"},
		})
		if err != nil {
			t.Fatalf("InsertContacts failed: %v", err)
		}
		err = AppendHistory(database, &models.CallHistoryEntry{
			ProfileID:   p.ID,
			ContactName: "Shop A",
			Phone:       "111",
			Status:      models.StatusAnswered,
		})
		if err != nil {
			t.Fatalf("AppendHistory failed: %v", err)
		}
	}

	if err := DeleteProfile(database, drop.ID); err != nil {
		t.Fatalf("DeleteProfile failed: %v", err)
	}

	if _, err := GetProfile(database, drop.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected deleted profile to be gone, got %v", err)
	}

	// The cascade removes exactly the deleted profile's rows.
	gone, _ := ListContactsForProfile(database, drop.ID)
	if len(gone) != 0 {
		t.Errorf("expected 0 contacts for deleted profile, got %d", len(gone))
	}
	goneHist, _ := ListHistoryForProfile(database, drop.ID)
	if len(goneHist) != 0 {
		t.Errorf("expected 0 history entries for deleted profile, got %d", len(goneHist))
	}

	kept, _ := ListContactsForProfile(database, keep.ID)
	if len(kept) != 2 {
		t.Errorf("expected 2 surviving contacts, got %d", len(kept))
	}
	keptHist, _ := ListHistoryForProfile(database, keep.ID)
	if len(keptHist) != 1 {
		t.Errorf("expected 1 surviving history entry, got %d", len(keptHist))
	}
}

func TestDeleteProfileUnknownID(t *testing.T) {
	database := setupTestDB(t)

	if err := DeleteProfile(database, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestListProfilesSnapshots(t *testing.T) {
	database := setupTestDB(t)

	p, _ := CreateProfile(database, "Original")

	profiles, err := ListProfiles(database)
	if err != nil {
		t.Fatalf("ListProfiles failed: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}

	// Mutating the returned slice must not touch the store.
	profiles[0].Name = "Mutated"

	loaded, _ := GetProfile(database, p.ID)
	if loaded.Name != "Original" {
		t.Errorf("store state changed through a snapshot: %q", loaded.Name)
	}
}

func TestFindProfileByName(t *testing.T) {
	database := setupTestDB(t)

	created, _ := CreateProfile(database, "Lookup")

	found, err := FindProfileByName(database, "Lookup")
	if err != nil {
		t.Fatalf("FindProfileByName failed: %v", err)
	}
	if found == nil || found.ID != created.ID {
		t.Error("expected to find the created profile")
	}

	missing, err := FindProfileByName(database, "Nope")
	if err != nil {
		t.Fatalf("FindProfileByName failed: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for an unknown name")
	}
}

func TestRefreshContactsCount(t *testing.T) {
	database := setupTestDB(t)

	p, _ := CreateProfile(database, "Counts")
	_ = InsertContacts(database, p.ID, []models.Contact{{ShopName: "One", Phone: "1"}})

	// Force the cache out of sync, then recompute.
	if _, err := database.Exec(`UPDATE profiles SET contacts_count = 99 WHERE id = ?`, p.ID.String()); err != nil {
		t.Fatal(err)
	}
	if err := RefreshContactsCount(database, p.ID); err != nil {
		t.Fatalf("RefreshContactsCount failed: %v", err)
	}

	loaded, _ := GetProfile(database, p.ID)
	if loaded.ContactsCount != 1 {
		t.Errorf("contacts count = %d, want 1", loaded.ContactsCount)
	}
}
