// ABOUTME: Call queue CLI commands
// ABOUTME: Queue display, dialing, outcome logging, and cursor navigation
package cli

import (
	"database/sql"
	"flag"
	"fmt"

	"github.com/google/uuid"

	"github.com/harperreed/coldcall/call"
	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/models"
	"github.com/harperreed/coldcall/queue"
)

// QueueCommand shows the contact the caller should dial next.
func QueueCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("queue", flag.ExitOnError)
	_ = fs.Parse(args)

	contacts, cursor, profile, err := loadActiveQueue(database)
	if err != nil {
		return err
	}

	contact, corrected, ok := queue.FindCurrent(contacts, cursor)
	if !ok {
		fmt.Printf("Queue exhausted: no contacts left to call in %s 🎉\n", profile.Name)
		return nil
	}
	if corrected != cursor {
		if err := db.SetCursor(database, corrected); err != nil {
			return err
		}
	}

	fmt.Printf("Up next in %s (%d of %d):\n\n", profile.Name, corrected+1, len(contacts))
	printContactCard(&contact)

	if queue.HasPrevious(contacts, corrected) {
		fmt.Println("  ← 'coldcall calls prev' available")
	}
	if queue.HasNext(contacts, corrected) {
		fmt.Println("  → 'coldcall calls next' available")
	}
	return nil
}

// NextCommand moves the cursor to the next To Call contact, without
// wrapping past the end of the list.
func NextCommand(database *sql.DB, args []string) error {
	return moveCursor(database, queue.Next, "No To Call contacts after this one")
}

// PrevCommand moves the cursor to the previous To Call contact.
func PrevCommand(database *sql.DB, args []string) error {
	return moveCursor(database, queue.Previous, "No To Call contacts before this one")
}

func moveCursor(database *sql.DB, step func([]models.Contact, int) (int, bool), exhaustedMsg string) error {
	contacts, cursor, _, err := loadActiveQueue(database)
	if err != nil {
		return err
	}

	index, ok := step(contacts, cursor)
	if !ok {
		fmt.Println(exhaustedMsg)
		return nil
	}

	if err := db.SetCursor(database, index); err != nil {
		return err
	}

	printContactCard(&contacts[index])
	return nil
}

// DialCommand starts a call: records the pending marker and hands the
// number to the OS dialer. With no argument it dials the current queue
// contact.
func DialCommand(database *sql.DB, identity call.Identity, args []string) error {
	fs := flag.NewFlagSet("dial", flag.ExitOnError)
	_ = fs.Parse(args)

	contactID, err := targetContact(database, fs.Args())
	if err != nil {
		return err
	}

	lifecycle := call.NewLifecycle(database, call.TelDialer{}, identity)
	if err := lifecycle.Dial(contactID); err != nil {
		return err
	}

	contact, err := db.GetContact(database, contactID)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Dialing %s (%s)\n", contact.ShopName, contact.Phone)
	fmt.Println("  Log the result with 'coldcall calls log --status <status>' when done")
	return nil
}

// LogCommand records the outcome of the pending call, or of an
// explicitly named contact.
func LogCommand(database *sql.DB, identity call.Identity, args []string) error {
	fs := flag.NewFlagSet("log", flag.ExitOnError)
	status := fs.String("status", "", "Call outcome (required, e.g. 'Answered', 'No Answer', 'Ordered')")
	notes := fs.String("notes", "", "Notes from the call")
	_ = fs.Parse(args)

	if fs.NArg() > 0 {
		// Direct logging against a named contact, outside the dial flow.
		if err := call.Authorize(identity); err != nil {
			return err
		}
		if *status == "" {
			return fmt.Errorf("%w: select a call status", db.ErrValidation)
		}
		contactID, err := uuid.Parse(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("invalid contact id: %w", err)
		}
		entry, err := call.RecordOutcome(database, contactID, models.Status(*status), *notes)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Logged %s for %s\n", entry.Status, entry.ContactName)
		return nil
	}

	lifecycle := call.NewLifecycle(database, call.TelDialer{}, identity)
	awaiting, err := lifecycle.Resume()
	if err != nil {
		return err
	}
	if !awaiting {
		return call.ErrNoActiveCall
	}

	draft := lifecycle.Draft()
	entry, err := lifecycle.Commit(models.Status(*status), *notes)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Logged %s for %s\n", entry.Status, draft.ShopName)
	return nil
}

// CancelCommand abandons the pending call without logging anything.
func CancelCommand(database *sql.DB, identity call.Identity, args []string) error {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	_ = fs.Parse(args)

	lifecycle := call.NewLifecycle(database, call.TelDialer{}, identity)
	awaiting, err := lifecycle.Resume()
	if err != nil {
		return err
	}
	if !awaiting {
		fmt.Println("No pending call")
		return nil
	}

	if err := lifecycle.Cancel(); err != nil {
		return err
	}

	fmt.Println("✓ Call cancelled, nothing logged")
	return nil
}

// StatusesCommand prints the closed outcome vocabulary.
func StatusesCommand(args []string) error {
	fs := flag.NewFlagSet("statuses", flag.ExitOnError)
	_ = fs.Parse(args)

	fmt.Println("Call statuses:")
	for _, status := range models.AllStatuses {
		marker := " "
		if status.Pending() {
			marker = "•"
		}
		fmt.Printf("  %s %s\n", marker, status)
	}
	fmt.Println("\n• = still counts as pending")
	return nil
}

// targetContact resolves the contact to dial: an explicit ID argument,
// or the current queue contact.
func targetContact(database *sql.DB, args []string) (uuid.UUID, error) {
	if len(args) > 0 {
		id, err := uuid.Parse(args[0])
		if err != nil {
			return uuid.Nil, fmt.Errorf("invalid contact id: %w", err)
		}
		return id, nil
	}

	contacts, cursor, profile, err := loadActiveQueue(database)
	if err != nil {
		return uuid.Nil, err
	}

	contact, corrected, ok := queue.FindCurrent(contacts, cursor)
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: queue exhausted in %s", db.ErrNotFound, profile.Name)
	}
	if corrected != cursor {
		if err := db.SetCursor(database, corrected); err != nil {
			return uuid.Nil, err
		}
	}
	return contact.ID, nil
}

func loadActiveQueue(database *sql.DB) ([]models.Contact, int, *models.Profile, error) {
	activeID, err := db.GetActiveProfile(database)
	if err != nil {
		return nil, 0, nil, err
	}
	if activeID == uuid.Nil {
		return nil, 0, nil, fmt.Errorf("%w: no active profile (use 'coldcall profiles use <profile>')", db.ErrNotFound)
	}

	profile, err := db.GetProfile(database, activeID)
	if err != nil {
		return nil, 0, nil, err
	}
	contacts, err := db.ListContactsForProfile(database, activeID)
	if err != nil {
		return nil, 0, nil, err
	}
	cursor, err := db.GetCursor(database)
	if err != nil {
		return nil, 0, nil, err
	}

	return contacts, cursor, profile, nil
}

func printContactCard(contact *models.Contact) {
	fmt.Printf("  %s\n", contact.ShopName)
	if contact.Nickname != "" {
		fmt.Printf("  Contact: %s\n", contact.Nickname)
	}
	if contact.TypeOfShop != "" {
		fmt.Printf("  Type:    %s\n", contact.TypeOfShop)
	}
	fmt.Printf("  Phone:   %s\n", contact.Phone)
	fmt.Printf("  Status:  %s\n", contact.Status)
	if contact.Notes != "" {
		fmt.Printf("  Notes:   %s\n", contact.Notes)
	}
	fmt.Println()
}
