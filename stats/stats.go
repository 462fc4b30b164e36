// ABOUTME: Call history aggregation and dashboard statistics
// ABOUTME: Pure filtering and summary math over history entries and contacts
package stats

import (
	"math"

	"github.com/harperreed/coldcall/models"
)

// FilterHistory narrows history entries by status. "All" passes
// everything through, "Missed Calls" matches the missed composite
// (No Answer, Busy, Voicemail), and any other value is an exact status
// match. Relative order is preserved.
func FilterHistory(entries []models.CallHistoryEntry, filter string) []models.CallHistoryEntry {
	if filter == "" || filter == models.FilterAll {
		return entries
	}

	var filtered []models.CallHistoryEntry
	for _, e := range entries {
		switch {
		case filter == models.FilterMissed && e.Status.Missed():
			filtered = append(filtered, e)
		case string(e.Status) == filter:
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Summarize computes the dashboard numbers over a set of history entries.
// The conversion rate is ordered/total as a percentage rounded to one
// decimal place, and 0 for an empty history.
func Summarize(entries []models.CallHistoryEntry) models.Summary {
	summary := models.Summary{Total: len(entries)}
	for _, e := range entries {
		switch e.Status {
		case models.StatusAnswered:
			summary.Answered++
		case models.StatusOrdered:
			summary.Ordered++
		}
	}

	if summary.Total > 0 {
		rate := float64(summary.Ordered) / float64(summary.Total) * 100
		summary.ConversionRate = math.Round(rate*10) / 10
	}

	return summary
}

// PendingCount counts the contacts that still need caller attention
// (To Call, Follow-up Needed, No Answer, Busy, Voicemail).
func PendingCount(contacts []models.Contact) int {
	count := 0
	for _, c := range contacts {
		if c.Status.Pending() {
			count++
		}
	}
	return count
}
