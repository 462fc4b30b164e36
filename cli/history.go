// ABOUTME: Call history CLI commands
// ABOUTME: Filtered history listing and the conversion summary dashboard
package cli

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/models"
	"github.com/harperreed/coldcall/stats"
)

// HistoryCommand lists call history entries, newest first.
func HistoryCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	filter := fs.String("filter", models.FilterAll, "Status filter: a status name, 'Missed Calls', or 'All'")
	all := fs.Bool("all", false, "Include every profile, not just the active one")
	limit := fs.Int("limit", 50, "Maximum results")
	_ = fs.Parse(args)

	var entries []models.CallHistoryEntry
	var err error
	if *all {
		entries, err = db.ListAllHistory(database)
	} else {
		profile, perr := activeOrNamedProfile(database, fs.Args())
		if perr != nil {
			return perr
		}
		entries, err = db.ListHistoryForProfile(database, profile.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	entries = stats.FilterHistory(entries, *filter)
	if len(entries) == 0 {
		fmt.Println("No calls match")
		return nil
	}
	if len(entries) > *limit {
		entries = entries[:*limit]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "DATE\tCONTACT\tPHONE\tSTATUS\tNOTES")
	_, _ = fmt.Fprintln(w, "----\t-------\t-----\t------\t-----")

	for _, entry := range entries {
		notes := entry.Notes
		if len(notes) > 40 {
			notes = notes[:37] + "..."
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			entry.Date.Format("2006-01-02 15:04"), entry.ContactName, entry.Phone, entry.Status, notes)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d call(s)\n", len(entries))
	return nil
}

// SummaryCommand prints the dashboard numbers: totals, conversion rate,
// and how many contacts still need a call.
func SummaryCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("summary", flag.ExitOnError)
	all := fs.Bool("all", false, "Include every profile, not just the active one")
	_ = fs.Parse(args)

	var entries []models.CallHistoryEntry
	var contacts []models.Contact

	if *all {
		var err error
		entries, err = db.ListAllHistory(database)
		if err != nil {
			return err
		}
		profiles, err := db.ListProfiles(database)
		if err != nil {
			return err
		}
		for _, profile := range profiles {
			list, err := db.ListContactsForProfile(database, profile.ID)
			if err != nil {
				return err
			}
			contacts = append(contacts, list...)
		}
	} else {
		profile, err := activeOrNamedProfile(database, fs.Args())
		if err != nil {
			return err
		}
		entries, err = db.ListHistoryForProfile(database, profile.ID)
		if err != nil {
			return err
		}
		contacts, err = db.ListContactsForProfile(database, profile.ID)
		if err != nil {
			return err
		}
	}

	summary := stats.Summarize(entries)

	fmt.Println("Call Summary")
	fmt.Println("────────────")
	fmt.Printf("Total calls:     %d\n", summary.Total)
	fmt.Printf("Answered:        %d\n", summary.Answered)
	fmt.Printf("Ordered:         %d\n", summary.Ordered)
	fmt.Printf("Conversion rate: %.1f%%\n", summary.ConversionRate)
	fmt.Printf("Pending calls:   %d\n", stats.PendingCount(contacts))

	return nil
}
