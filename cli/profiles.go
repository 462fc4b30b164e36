// ABOUTME: Profile CLI commands
// ABOUTME: vCard import plus listing, renaming, deleting, and switching calling lists
package cli

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/harperreed/coldcall/call"
	"github.com/harperreed/coldcall/db"
	"github.com/harperreed/coldcall/models"
	"github.com/harperreed/coldcall/vcf"
)

// ImportCommand imports a .vcf file into a new profile named after the
// file. The profile name must not collide with an existing one.
func ImportCommand(database *sql.DB, identity call.Identity, args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	name := fs.String("name", "", "Profile name (default: file name without extension)")
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: coldcall import [--name <name>] <file.vcf>")
	}

	if err := call.Authorize(identity); err != nil {
		return err
	}

	path := fs.Arg(0)
	if !strings.EqualFold(filepath.Ext(path), ".vcf") {
		return fmt.Errorf("%w: %q is not a .vcf file", db.ErrValidation, path)
	}

	profileName := *name
	if profileName == "" {
		profileName = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	// Reject the duplicate name before touching the file.
	existing, err := db.FindProfileByName(database, profileName)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: %q", db.ErrDuplicateName, profileName)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	profile, err := db.CreateProfile(database, profileName)
	if err != nil {
		return err
	}

	contacts := vcf.Parse(string(content), profile.ID)
	if len(contacts) == 0 {
		_ = db.DeleteProfile(database, profile.ID)
		return fmt.Errorf("%w: no contacts found in %q", db.ErrValidation, path)
	}

	if err := db.InsertContacts(database, profile.ID, contacts); err != nil {
		return fmt.Errorf("failed to store contacts: %w", err)
	}

	fmt.Printf("✓ Profile created: %s (%d contacts)\n", profileName, len(contacts))
	return nil
}

// ListProfilesCommand lists all profiles with their contact counts.
func ListProfilesCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	_ = fs.Parse(args)

	profiles, err := db.ListProfiles(database)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if len(profiles) == 0 {
		fmt.Println("No profiles yet. Import one with 'coldcall profiles import <file.vcf>'")
		return nil
	}

	activeID, err := db.GetActiveProfile(database)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tCONTACTS\tACTIVE\tID")
	_, _ = fmt.Fprintln(w, "----\t--------\t------\t--")

	for _, profile := range profiles {
		active := ""
		if profile.ID == activeID {
			active = "✓"
		}
		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			profile.Name, profile.ContactsCount, active, profile.ID.String()[:8])
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d profile(s)\n", len(profiles))
	return nil
}

// RenameProfileCommand renames a profile.
func RenameProfileCommand(database *sql.DB, identity call.Identity, args []string) error {
	fs := flag.NewFlagSet("rename", flag.ExitOnError)
	name := fs.String("name", "", "New profile name (required)")
	_ = fs.Parse(args)

	if fs.NArg() < 1 || *name == "" {
		return fmt.Errorf("usage: coldcall profiles rename --name <new-name> <profile>")
	}

	if err := call.Authorize(identity); err != nil {
		return err
	}

	profile, err := resolveProfile(database, fs.Arg(0))
	if err != nil {
		return err
	}

	if err := db.RenameProfile(database, profile.ID, *name); err != nil {
		return err
	}

	fmt.Printf("✓ Profile renamed: %s → %s\n", profile.Name, *name)
	return nil
}

// DeleteProfileCommand deletes a profile with its contacts and history.
func DeleteProfileCommand(database *sql.DB, identity call.Identity, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: coldcall profiles delete <profile>")
	}

	if err := call.Authorize(identity); err != nil {
		return err
	}

	profile, err := resolveProfile(database, fs.Arg(0))
	if err != nil {
		return err
	}

	if err := db.DeleteProfile(database, profile.ID); err != nil {
		return err
	}

	fmt.Printf("✓ Profile deleted: %s (contacts and history removed)\n", profile.Name)
	return nil
}

// UseProfileCommand makes a profile the active calling list. The queue
// cursor restarts at the top.
func UseProfileCommand(database *sql.DB, identity call.Identity, args []string) error {
	fs := flag.NewFlagSet("use", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: coldcall profiles use <profile>")
	}

	if err := call.Authorize(identity); err != nil {
		return err
	}

	profile, err := resolveProfile(database, fs.Arg(0))
	if err != nil {
		return err
	}

	if err := db.SetActiveProfile(database, profile.ID); err != nil {
		return err
	}

	fmt.Printf("✓ Active profile: %s\n", profile.Name)
	return nil
}

// ContactsCommand lists the contacts of a profile in queue order.
func ContactsCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("contacts", flag.ExitOnError)
	_ = fs.Parse(args)

	profile, err := activeOrNamedProfile(database, fs.Args())
	if err != nil {
		return err
	}

	contacts, err := db.ListContactsForProfile(database, profile.ID)
	if err != nil {
		return fmt.Errorf("failed to list contacts: %w", err)
	}

	if len(contacts) == 0 {
		fmt.Println("No contacts in this profile")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\tSHOP\tPHONE\tSTATUS\tNOTES")
	_, _ = fmt.Fprintln(w, "-\t----\t-----\t------\t-----")

	for _, contact := range contacts {
		notes := contact.Notes
		if len(notes) > 40 {
			notes = notes[:37] + "..."
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			contact.Position+1, contact.ShopName, contact.Phone, contact.Status, notes)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d contact(s) in %s\n", len(contacts), profile.Name)
	return nil
}

// resolveProfile accepts a profile name or ID and loads the profile.
func resolveProfile(database *sql.DB, ref string) (*models.Profile, error) {
	if id, err := uuid.Parse(ref); err == nil {
		return db.GetProfile(database, id)
	}

	profile, err := db.FindProfileByName(database, ref)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: profile %q", db.ErrNotFound, ref)
	}
	return profile, nil
}

// activeOrNamedProfile resolves the first positional arg as a profile,
// falling back to the active profile when no arg is given.
func activeOrNamedProfile(database *sql.DB, args []string) (*models.Profile, error) {
	if len(args) > 0 {
		return resolveProfile(database, args[0])
	}

	activeID, err := db.GetActiveProfile(database)
	if err != nil {
		return nil, err
	}
	if activeID == uuid.Nil {
		return nil, fmt.Errorf("%w: no active profile (use 'coldcall profiles use <profile>')", db.ErrNotFound)
	}
	return db.GetProfile(database, activeID)
}
