// ABOUTME: Call queue and outcome MCP tool handlers
// ABOUTME: Implements list_contacts, current_call, log_call, and update_notes tools
package handlers

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/coldcall/call"
	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/models"
	"github.com/harperreed/coldcall/queue"
)

type CallHandlers struct {
	db       *sql.DB
	identity call.Identity
}

func NewCallHandlers(database *sql.DB, identity call.Identity) *CallHandlers {
	return &CallHandlers{db: database, identity: identity}
}

type ContactOutput struct {
	ID         string `json:"id"`
	ShopName   string `json:"shop_name"`
	Nickname   string `json:"nickname,omitempty"`
	TypeOfShop string `json:"type_of_shop,omitempty"`
	Phone      string `json:"phone"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
	Position   int    `json:"position"`
}

func contactToOutput(contact *models.Contact) ContactOutput {
	return ContactOutput{
		ID:         contact.ID.String(),
		ShopName:   contact.ShopName,
		Nickname:   contact.Nickname,
		TypeOfShop: contact.TypeOfShop,
		Phone:      contact.Phone,
		Status:     string(contact.Status),
		Notes:      contact.Notes,
		Position:   contact.Position,
	}
}

type ListContactsInput struct {
	ProfileID string `json:"profile_id" jsonschema:"Profile ID to list contacts for (required)"`
}

type ListContactsOutput struct {
	Contacts []ContactOutput `json:"contacts"`
}

func (h *CallHandlers) ListContacts(_ context.Context, request *mcp.CallToolRequest, input ListContactsInput) (*mcp.CallToolResult, ListContactsOutput, error) {
	if input.ProfileID == "" {
		return nil, ListContactsOutput{}, fmt.Errorf("profile_id is required")
	}

	profileID, err := uuid.Parse(input.ProfileID)
	if err != nil {
		return nil, ListContactsOutput{}, fmt.Errorf("invalid profile_id: %w", err)
	}

	contacts, err := db.ListContactsForProfile(h.db, profileID)
	if err != nil {
		return nil, ListContactsOutput{}, fmt.Errorf("failed to list contacts: %w", err)
	}

	result := make([]ContactOutput, len(contacts))
	for i := range contacts {
		result[i] = contactToOutput(&contacts[i])
	}

	return nil, ListContactsOutput{Contacts: result}, nil
}

type CurrentCallInput struct{}

type CurrentCallOutput struct {
	Exhausted   bool           `json:"exhausted"`
	Contact     *ContactOutput `json:"contact,omitempty"`
	Cursor      int            `json:"cursor"`
	HasPrevious bool           `json:"has_previous"`
	HasNext     bool           `json:"has_next"`
}

// CurrentCall reports the contact the caller should dial next in the
// active profile, self-healing the stored cursor when it has drifted.
func (h *CallHandlers) CurrentCall(_ context.Context, request *mcp.CallToolRequest, input CurrentCallInput) (*mcp.CallToolResult, CurrentCallOutput, error) {
	profileID, err := db.GetActiveProfile(h.db)
	if err != nil {
		return nil, CurrentCallOutput{}, err
	}
	if profileID == uuid.Nil {
		return nil, CurrentCallOutput{}, fmt.Errorf("%w: no active profile", db.ErrNotFound)
	}

	contacts, err := db.ListContactsForProfile(h.db, profileID)
	if err != nil {
		return nil, CurrentCallOutput{}, err
	}
	cursor, err := db.GetCursor(h.db)
	if err != nil {
		return nil, CurrentCallOutput{}, err
	}

	contact, corrected, ok := queue.FindCurrent(contacts, cursor)
	if !ok {
		return nil, CurrentCallOutput{Exhausted: true}, nil
	}

	if corrected != cursor {
		if err := db.SetCursor(h.db, corrected); err != nil {
			return nil, CurrentCallOutput{}, err
		}
	}

	out := contactToOutput(&contact)
	return nil, CurrentCallOutput{
		Contact:     &out,
		Cursor:      corrected,
		HasPrevious: queue.HasPrevious(contacts, corrected),
		HasNext:     queue.HasNext(contacts, corrected),
	}, nil
}

type LogCallInput struct {
	ContactID string `json:"contact_id" jsonschema:"Contact ID the call was made to (required)"`
	Status    string `json:"status" jsonschema:"Call outcome status (required, e.g. Answered, No Answer, Ordered)"`
	Notes     string `json:"notes,omitempty" jsonschema:"Notes from the call"`
}

type LogCallOutput struct {
	HistoryID   string `json:"history_id"`
	ContactName string `json:"contact_name"`
	Status      string `json:"status"`
}

// LogCall records a call outcome directly, outside the interactive
// dial flow: status update, history snapshot, cursor correction.
func (h *CallHandlers) LogCall(_ context.Context, request *mcp.CallToolRequest, input LogCallInput) (*mcp.CallToolResult, LogCallOutput, error) {
	if err := call.Authorize(h.identity); err != nil {
		return nil, LogCallOutput{}, err
	}
	if input.ContactID == "" {
		return nil, LogCallOutput{}, fmt.Errorf("contact_id is required")
	}
	if input.Status == "" {
		return nil, LogCallOutput{}, fmt.Errorf("%w: select a call status", db.ErrValidation)
	}

	contactID, err := uuid.Parse(input.ContactID)
	if err != nil {
		return nil, LogCallOutput{}, fmt.Errorf("invalid contact_id: %w", err)
	}

	entry, err := call.RecordOutcome(h.db, contactID, models.Status(input.Status), input.Notes)
	if err != nil {
		return nil, LogCallOutput{}, err
	}

	return nil, LogCallOutput{
		HistoryID:   entry.ID,
		ContactName: entry.ContactName,
		Status:      string(entry.Status),
	}, nil
}

type UpdateNotesInput struct {
	ContactID string `json:"contact_id" jsonschema:"Contact ID (required)"`
	Notes     string `json:"notes" jsonschema:"Replacement notes text"`
}

type UpdateNotesOutput struct {
	Updated bool `json:"updated"`
}

// UpdateNotes edits a contact's notes without logging a call.
func (h *CallHandlers) UpdateNotes(_ context.Context, request *mcp.CallToolRequest, input UpdateNotesInput) (*mcp.CallToolResult, UpdateNotesOutput, error) {
	if err := call.Authorize(h.identity); err != nil {
		return nil, UpdateNotesOutput{}, err
	}
	if input.ContactID == "" {
		return nil, UpdateNotesOutput{}, fmt.Errorf("contact_id is required")
	}

	contactID, err := uuid.Parse(input.ContactID)
	if err != nil {
		return nil, UpdateNotesOutput{}, fmt.Errorf("invalid contact_id: %w", err)
	}

	if err := db.UpdateContactNotes(h.db, contactID, input.Notes); err != nil {
		return nil, UpdateNotesOutput{}, err
	}

	return nil, UpdateNotesOutput{Updated: true}, nil
}
