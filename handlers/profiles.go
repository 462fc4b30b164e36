// ABOUTME: Profile MCP tool handlers
// ABOUTME: Implements import_vcf, list_profiles, rename_profile, delete_profile, and set_active_profile tools
package handlers

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/coldcall/call"
	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/models"
	"github.com/harperreed/coldcall/vcf"
)

type ProfileHandlers struct {
	db       *sql.DB
	identity call.Identity
}

func NewProfileHandlers(database *sql.DB, identity call.Identity) *ProfileHandlers {
	return &ProfileHandlers{db: database, identity: identity}
}

type ImportVCFInput struct {
	ProfileName string `json:"profile_name" jsonschema:"Name for the new calling list profile (required, must be unique)"`
	VCFContent  string `json:"vcf_content" jsonschema:"Raw vCard file content to import (required)"`
}

type ProfileOutput struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContactsCount int    `json:"contacts_count"`
	CreatedAt     string `json:"created_at"`
}

func profileToOutput(profile *models.Profile) ProfileOutput {
	return ProfileOutput{
		ID:            profile.ID.String(),
		Name:          profile.Name,
		ContactsCount: profile.ContactsCount,
		CreatedAt:     profile.CreatedAt.Format(time.RFC3339),
	}
}

func (h *ProfileHandlers) ImportVCF(_ context.Context, request *mcp.CallToolRequest, input ImportVCFInput) (*mcp.CallToolResult, ProfileOutput, error) {
	if err := call.Authorize(h.identity); err != nil {
		return nil, ProfileOutput{}, err
	}
	if input.ProfileName == "" {
		return nil, ProfileOutput{}, fmt.Errorf("profile_name is required")
	}
	if input.VCFContent == "" {
		return nil, ProfileOutput{}, fmt.Errorf("vcf_content is required")
	}

	profile, err := db.CreateProfile(h.db, input.ProfileName)
	if err != nil {
		return nil, ProfileOutput{}, err
	}

	contacts := vcf.Parse(input.VCFContent, profile.ID)
	if len(contacts) == 0 {
		// No usable cards: remove the empty profile again.
		_ = db.DeleteProfile(h.db, profile.ID)
		return nil, ProfileOutput{}, fmt.Errorf("%w: no contacts found in vcf content", db.ErrValidation)
	}

	if err := db.InsertContacts(h.db, profile.ID, contacts); err != nil {
		return nil, ProfileOutput{}, fmt.Errorf("failed to store contacts: %w", err)
	}

	fresh, err := db.GetProfile(h.db, profile.ID)
	if err != nil {
		return nil, ProfileOutput{}, err
	}

	return nil, profileToOutput(fresh), nil
}

type ListProfilesInput struct{}

type ListProfilesOutput struct {
	Profiles []ProfileOutput `json:"profiles"`
}

func (h *ProfileHandlers) ListProfiles(_ context.Context, request *mcp.CallToolRequest, input ListProfilesInput) (*mcp.CallToolResult, ListProfilesOutput, error) {
	profiles, err := db.ListProfiles(h.db)
	if err != nil {
		return nil, ListProfilesOutput{}, fmt.Errorf("failed to list profiles: %w", err)
	}

	result := make([]ProfileOutput, len(profiles))
	for i := range profiles {
		result[i] = profileToOutput(&profiles[i])
	}

	return nil, ListProfilesOutput{Profiles: result}, nil
}

type RenameProfileInput struct {
	ID   string `json:"id" jsonschema:"Profile ID (required)"`
	Name string `json:"name" jsonschema:"New profile name (required, must be unique)"`
}

func (h *ProfileHandlers) RenameProfile(_ context.Context, request *mcp.CallToolRequest, input RenameProfileInput) (*mcp.CallToolResult, ProfileOutput, error) {
	if err := call.Authorize(h.identity); err != nil {
		return nil, ProfileOutput{}, err
	}
	if input.ID == "" {
		return nil, ProfileOutput{}, fmt.Errorf("id is required")
	}

	profileID, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, ProfileOutput{}, fmt.Errorf("invalid id: %w", err)
	}

	if err := db.RenameProfile(h.db, profileID, input.Name); err != nil {
		return nil, ProfileOutput{}, err
	}

	profile, err := db.GetProfile(h.db, profileID)
	if err != nil {
		return nil, ProfileOutput{}, err
	}

	return nil, profileToOutput(profile), nil
}

type DeleteProfileInput struct {
	ID string `json:"id" jsonschema:"Profile ID (required)"`
}

type DeleteProfileOutput struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

func (h *ProfileHandlers) DeleteProfile(_ context.Context, request *mcp.CallToolRequest, input DeleteProfileInput) (*mcp.CallToolResult, DeleteProfileOutput, error) {
	if err := call.Authorize(h.identity); err != nil {
		return nil, DeleteProfileOutput{}, err
	}
	if input.ID == "" {
		return nil, DeleteProfileOutput{}, fmt.Errorf("id is required")
	}

	profileID, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, DeleteProfileOutput{}, fmt.Errorf("invalid id: %w", err)
	}

	if err := db.DeleteProfile(h.db, profileID); err != nil {
		return nil, DeleteProfileOutput{}, err
	}

	return nil, DeleteProfileOutput{Deleted: true, ID: input.ID}, nil
}

type SetActiveProfileInput struct {
	ID string `json:"id" jsonschema:"Profile ID to make active (required)"`
}

type SetActiveProfileOutput struct {
	ActiveProfileID string `json:"active_profile_id"`
}

// SetActiveProfile switches the calling queue to another profile. The
// queue cursor restarts at the top of the new list.
func (h *ProfileHandlers) SetActiveProfile(_ context.Context, request *mcp.CallToolRequest, input SetActiveProfileInput) (*mcp.CallToolResult, SetActiveProfileOutput, error) {
	if err := call.Authorize(h.identity); err != nil {
		return nil, SetActiveProfileOutput{}, err
	}
	if input.ID == "" {
		return nil, SetActiveProfileOutput{}, fmt.Errorf("id is required")
	}

	profileID, err := uuid.Parse(input.ID)
	if err != nil {
		return nil, SetActiveProfileOutput{}, fmt.Errorf("invalid id: %w", err)
	}

	if _, err := db.GetProfile(h.db, profileID); err != nil {
		return nil, SetActiveProfileOutput{}, err
	}

	if err := db.SetActiveProfile(h.db, profileID); err != nil {
		return nil, SetActiveProfileOutput{}, err
	}

	return nil, SetActiveProfileOutput{ActiveProfileID: input.ID}, nil
}
