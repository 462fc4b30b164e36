// ABOUTME: MCP server subcommand
// ABOUTME: Exposes profiles, the call queue, and history as MCP tools on stdio
package cli

import (
	"context"
	"database/sql"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/coldcall/call"
	"github.com/harperreed/coldcall/handlers"
)

// MCPCommand starts the MCP server on stdio.
func MCPCommand(db *sql.DB, identity call.Identity) error {
	log.Println("Starting coldcall MCP Server...")

	profileHandlers := handlers.NewProfileHandlers(db, identity)
	callHandlers := handlers.NewCallHandlers(db, identity)
	historyHandlers := handlers.NewHistoryHandlers(db)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "coldcall",
		Version: "0.1.0",
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "import_vcf",
		Description: "Import vCard content as a new calling list profile",
	}, profileHandlers.ImportVCF)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_profiles",
		Description: "List all calling list profiles with contact counts",
	}, profileHandlers.ListProfiles)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rename_profile",
		Description: "Rename a profile (new name must be unique)",
	}, profileHandlers.RenameProfile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_profile",
		Description: "Delete a profile with all its contacts and call history",
	}, profileHandlers.DeleteProfile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "set_active_profile",
		Description: "Switch the calling queue to another profile",
	}, profileHandlers.SetActiveProfile)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_contacts",
		Description: "List a profile's contacts in queue order with statuses",
	}, callHandlers.ListContacts)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "current_call",
		Description: "Get the contact the caller should dial next in the active profile",
	}, callHandlers.CurrentCall)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "log_call",
		Description: "Record a call outcome: updates the contact's status and appends a history entry",
	}, callHandlers.LogCall)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_notes",
		Description: "Edit a contact's notes without logging a call",
	}, callHandlers.UpdateNotes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "call_history",
		Description: "List call history, filterable by status or 'Missed Calls'",
	}, historyHandlers.CallHistory)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "call_summary",
		Description: "Summary numbers: total calls, answered, ordered, conversion rate, pending",
	}, historyHandlers.CallSummary)

	ctx := context.Background()
	return server.Run(ctx, &mcp.StdioTransport{})
}
