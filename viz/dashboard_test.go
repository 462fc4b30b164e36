package viz

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/harperreed/coldcall/call"
	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/models"
)

func TestGenerateDashboardStats(t *testing.T) {
	database, err := db.OpenDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenDatabase failed: %v", err)
	}
	defer database.Close()

	profile, err := db.CreateProfile(database, "Route A")
	if err != nil {
		t.Fatalf("CreateProfile failed: %v", err)
	}
	seed := []models.Contact{
		{ShopName: "Corner Bakery", Phone: "+1-555-0101", Status: models.StatusToCall},
		{ShopName: "Hill Hardware", Phone: "+1-555-0102", Status: models.StatusToCall},
	}
	if err := db.InsertContacts(database, profile.ID, seed); err != nil {
		t.Fatalf("InsertContacts failed: %v", err)
	}

	contacts, err := db.ListContactsForProfile(database, profile.ID)
	if err != nil {
		t.Fatalf("ListContactsForProfile failed: %v", err)
	}
	if _, err := call.RecordOutcome(database, contacts[0].ID, models.StatusOrdered, ""); err != nil {
		t.Fatalf("RecordOutcome failed: %v", err)
	}

	stats, err := GenerateDashboardStats(database)
	if err != nil {
		t.Fatalf("GenerateDashboardStats failed: %v", err)
	}

	if stats.TotalProfiles != 1 || stats.TotalContacts != 2 {
		t.Errorf("totals = %d profiles / %d contacts", stats.TotalProfiles, stats.TotalContacts)
	}
	if stats.CallsByStatus[models.StatusOrdered] != 1 {
		t.Errorf("CallsByStatus = %v", stats.CallsByStatus)
	}
	if stats.PendingCalls != 1 {
		t.Errorf("PendingCalls = %d, want 1", stats.PendingCalls)
	}
	if stats.Summary.ConversionRate != 100.0 {
		t.Errorf("ConversionRate = %v", stats.Summary.ConversionRate)
	}
}

func TestRenderDashboard(t *testing.T) {
	stats := &DashboardStats{
		CallsByStatus: map[models.Status]int{
			models.StatusOrdered: 3,
			models.StatusBusy:    1,
		},
		TotalProfiles: 2,
		TotalContacts: 10,
		Summary:       models.Summary{Total: 4, Ordered: 3, ConversionRate: 75.0},
		PendingCalls:  6,
	}

	out := RenderDashboard(stats)

	for _, want := range []string{"COLDCALL DASHBOARD", "Ordered", "75.0%", "6 contacts still waiting"} {
		if !strings.Contains(out, want) {
			t.Errorf("dashboard output missing %q", want)
		}
	}
}

func TestRenderDashboardEmpty(t *testing.T) {
	out := RenderDashboard(&DashboardStats{CallsByStatus: map[models.Status]int{}})
	if !strings.Contains(out, "no calls logged yet") {
		t.Error("empty dashboard should say no calls are logged")
	}
}
