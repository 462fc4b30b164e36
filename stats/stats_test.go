package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harperreed/coldcall/models"
)

func history(tags ...models.Status) []models.CallHistoryEntry {
	entries := make([]models.CallHistoryEntry, len(tags))
	for i, tag := range tags {
		entries[i] = models.CallHistoryEntry{
			ID:          string(rune('a' + i)),
			ContactName: string(rune('A' + i)),
			Status:      tag,
		}
	}
	return entries
}

func TestFilterHistoryAll(t *testing.T) {
	entries := history(models.StatusAnswered, models.StatusBusy)

	assert.Len(t, FilterHistory(entries, models.FilterAll), 2)
	assert.Len(t, FilterHistory(entries, ""), 2)
}

func TestFilterHistoryExactStatus(t *testing.T) {
	entries := history(models.StatusAnswered, models.StatusBusy, models.StatusAnswered)

	filtered := FilterHistory(entries, string(models.StatusAnswered))
	assert.Len(t, filtered, 2)
	for _, e := range filtered {
		assert.Equal(t, models.StatusAnswered, e.Status)
	}
}

func TestFilterHistoryMissedCalls(t *testing.T) {
	entries := history(
		models.StatusAnswered,
		models.StatusBusy,
		models.StatusVoicemail,
		models.StatusOrdered,
	)

	filtered := FilterHistory(entries, models.FilterMissed)
	if assert.Len(t, filtered, 2) {
		// Original relative order preserved.
		assert.Equal(t, models.StatusBusy, filtered[0].Status)
		assert.Equal(t, models.StatusVoicemail, filtered[1].Status)
	}
}

func TestFilterHistoryNoMatches(t *testing.T) {
	entries := history(models.StatusAnswered)

	assert.Empty(t, FilterHistory(entries, string(models.StatusDoNotCall)))
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)

	assert.Equal(t, models.Summary{}, summary, "empty history is all zeroes, no division fault")
}

func TestSummarize(t *testing.T) {
	entries := history(
		models.StatusAnswered,
		models.StatusAnswered,
		models.StatusOrdered,
		models.StatusBusy,
		models.StatusNoAnswer,
		models.StatusOrdered,
	)

	summary := Summarize(entries)
	assert.Equal(t, 6, summary.Total)
	assert.Equal(t, 2, summary.Answered)
	assert.Equal(t, 2, summary.Ordered)
	assert.InDelta(t, 33.3, summary.ConversionRate, 0.0001, "rounded to one decimal")
}

func TestSummarizeRounding(t *testing.T) {
	// 1/3 ordered -> 33.333...% -> 33.3
	entries := history(models.StatusOrdered, models.StatusAnswered, models.StatusBusy)
	assert.InDelta(t, 33.3, Summarize(entries).ConversionRate, 0.0001)

	// 2/3 ordered -> 66.666...% -> 66.7
	entries = history(models.StatusOrdered, models.StatusOrdered, models.StatusBusy)
	assert.InDelta(t, 66.7, Summarize(entries).ConversionRate, 0.0001)
}

func TestPendingCount(t *testing.T) {
	contacts := []models.Contact{
		{Status: models.StatusToCall},
		{Status: models.StatusFollowUpNeeded},
		{Status: models.StatusNoAnswer},
		{Status: models.StatusBusy},
		{Status: models.StatusVoicemail},
		{Status: models.StatusAnswered},
		{Status: models.StatusOrdered},
		{Status: models.StatusDoNotCall},
	}

	assert.Equal(t, 5, PendingCount(contacts))
	assert.Equal(t, 0, PendingCount(nil))
}
