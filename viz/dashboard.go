// ABOUTME: Terminal dashboard statistics and rendering
// ABOUTME: ASCII overview of profiles, call outcomes, and conversion rate
package viz

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/models"
	"github.com/harperreed/coldcall/stats"
)

type DashboardStats struct {
	// Outcome distribution over the whole history
	CallsByStatus map[models.Status]int

	// Overall numbers
	TotalProfiles int
	TotalContacts int
	Summary       models.Summary
	PendingCalls  int
}

func GenerateDashboardStats(database *sql.DB) (*DashboardStats, error) {
	dstats := &DashboardStats{
		CallsByStatus: make(map[models.Status]int),
	}

	profiles, err := db.ListProfiles(database)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}
	dstats.TotalProfiles = len(profiles)

	for _, profile := range profiles {
		contacts, err := db.ListContactsForProfile(database, profile.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch contacts: %w", err)
		}
		dstats.TotalContacts += len(contacts)
		dstats.PendingCalls += stats.PendingCount(contacts)
	}

	entries, err := db.ListAllHistory(database)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}

	for _, entry := range entries {
		dstats.CallsByStatus[entry.Status]++
	}
	dstats.Summary = stats.Summarize(entries)

	return dstats, nil
}

func RenderDashboard(dstats *DashboardStats) string {
	var out strings.Builder

	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  COLDCALL DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	out.WriteString("CALL OUTCOMES\n")
	renderOutcomes(&out, dstats.CallsByStatus)
	out.WriteString("\n")

	out.WriteString("STATS\n")
	out.WriteString(fmt.Sprintf("  📇 %d profiles  ☎️  %d contacts  ✅ %d calls logged\n",
		dstats.TotalProfiles, dstats.TotalContacts, dstats.Summary.Total))
	out.WriteString(fmt.Sprintf("  Conversion rate: %.1f%% (%d ordered)\n\n",
		dstats.Summary.ConversionRate, dstats.Summary.Ordered))

	if dstats.PendingCalls > 0 {
		out.WriteString("NEEDS ATTENTION\n")
		out.WriteString(fmt.Sprintf("  ⚠️  %d contacts still waiting for a call\n", dstats.PendingCalls))
	}

	return out.String()
}

func renderOutcomes(out *strings.Builder, outcomes map[models.Status]int) {
	// Find max count for scaling
	maxCount := 0
	for _, count := range outcomes {
		if count > maxCount {
			maxCount = count
		}
	}
	if maxCount == 0 {
		out.WriteString("  (no calls logged yet)\n")
		return
	}

	// Statuses render in vocabulary order so the chart is stable.
	for _, status := range models.AllStatuses {
		count, exists := outcomes[status]
		if !exists {
			continue
		}

		barLength := (count * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)

		out.WriteString(fmt.Sprintf("  %-18s %s  %3d\n", status, bar, count))
	}
}
