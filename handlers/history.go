// ABOUTME: Call history MCP tool handlers
// ABOUTME: Implements call_history and call_summary tools over the history log
package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/models"
	"github.com/harperreed/coldcall/stats"
)

type HistoryHandlers struct {
	db *sql.DB
}

func NewHistoryHandlers(database *sql.DB) *HistoryHandlers {
	return &HistoryHandlers{db: database}
}

type HistoryEntryOutput struct {
	ID          string `json:"id"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Date        string `json:"date"`
	Status      string `json:"status"`
	Notes       string `json:"notes,omitempty"`
}

type CallHistoryInput struct {
	ProfileID string `json:"profile_id,omitempty" jsonschema:"Profile ID to scope the history to (omit for all profiles)"`
	Filter    string `json:"filter,omitempty" jsonschema:"Status filter: a status name, 'Missed Calls', or 'All' (default All)"`
}

type CallHistoryOutput struct {
	Entries []HistoryEntryOutput `json:"entries"`
}

func (h *HistoryHandlers) CallHistory(_ context.Context, request *mcp.CallToolRequest, input CallHistoryInput) (*mcp.CallToolResult, CallHistoryOutput, error) {
	entries, err := h.loadHistory(input.ProfileID)
	if err != nil {
		return nil, CallHistoryOutput{}, err
	}

	entries = stats.FilterHistory(entries, input.Filter)

	result := make([]HistoryEntryOutput, len(entries))
	for i, entry := range entries {
		result[i] = HistoryEntryOutput{
			ID:          entry.ID,
			ContactName: entry.ContactName,
			Phone:       entry.Phone,
			Date:        entry.Date.Format(time.RFC3339),
			Status:      string(entry.Status),
			Notes:       entry.Notes,
		}
	}

	return nil, CallHistoryOutput{Entries: result}, nil
}

type CallSummaryInput struct {
	ProfileID string `json:"profile_id,omitempty" jsonschema:"Profile ID to scope the summary to (omit for all profiles)"`
}

type CallSummaryOutput struct {
	TotalCalls     int     `json:"total_calls"`
	Answered       int     `json:"answered"`
	Ordered        int     `json:"ordered"`
	ConversionRate float64 `json:"conversion_rate"`
	PendingCalls   int     `json:"pending_calls"`
}

func (h *HistoryHandlers) CallSummary(_ context.Context, request *mcp.CallToolRequest, input CallSummaryInput) (*mcp.CallToolResult, CallSummaryOutput, error) {
	entries, err := h.loadHistory(input.ProfileID)
	if err != nil {
		return nil, CallSummaryOutput{}, err
	}

	summary := stats.Summarize(entries)

	pending := 0
	if input.ProfileID != "" {
		profileID, err := uuid.Parse(input.ProfileID)
		if err != nil {
			return nil, CallSummaryOutput{}, fmt.Errorf("invalid profile_id: %w", err)
		}
		contacts, err := db.ListContactsForProfile(h.db, profileID)
		if err != nil {
			return nil, CallSummaryOutput{}, err
		}
		pending = stats.PendingCount(contacts)
	} else {
		profiles, err := db.ListProfiles(h.db)
		if err != nil {
			return nil, CallSummaryOutput{}, err
		}
		for _, profile := range profiles {
			contacts, err := db.ListContactsForProfile(h.db, profile.ID)
			if err != nil {
				return nil, CallSummaryOutput{}, err
			}
			pending += stats.PendingCount(contacts)
		}
	}

	return nil, CallSummaryOutput{
		TotalCalls:     summary.Total,
		Answered:       summary.Answered,
		Ordered:        summary.Ordered,
		ConversionRate: summary.ConversionRate,
		PendingCalls:   pending,
	}, nil
}

func (h *HistoryHandlers) loadHistory(profileID string) ([]models.CallHistoryEntry, error) {
	if profileID == "" {
		return db.ListAllHistory(h.db)
	}

	id, err := uuid.Parse(profileID)
	if err != nil {
		return nil, fmt.Errorf("invalid profile_id: %w", err)
	}
	if _, err := db.GetProfile(h.db, id); err != nil {
		return nil, err
	}
	return db.ListHistoryForProfile(h.db, id)
}
