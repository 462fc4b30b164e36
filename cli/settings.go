// ABOUTME: Settings CLI command
// ABOUTME: Theme and language preferences stored alongside the queue state
package cli

import (
	"database/sql"
	"flag"
	"fmt"

	"github.com/harperreed/coldcall/db"
)

var themes = map[string]bool{"light": true, "dark": true}
var languages = map[string]bool{"en": true, "ja": true}

// SettingsCommand shows or updates display preferences.
func SettingsCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("settings", flag.ExitOnError)
	theme := fs.String("theme", "", "UI theme: light or dark")
	language := fs.String("language", "", "Language: en or ja")
	_ = fs.Parse(args)

	if *theme == "" && *language == "" {
		return showSettings(database)
	}

	if *theme != "" {
		if !themes[*theme] {
			return fmt.Errorf("%w: unknown theme %q", db.ErrValidation, *theme)
		}
		if err := db.SetState(database, db.StateTheme, *theme); err != nil {
			return err
		}
		fmt.Printf("✓ Theme set to %s\n", *theme)
	}

	if *language != "" {
		if !languages[*language] {
			return fmt.Errorf("%w: unknown language %q", db.ErrValidation, *language)
		}
		if err := db.SetState(database, db.StateLanguage, *language); err != nil {
			return err
		}
		fmt.Printf("✓ Language set to %s\n", *language)
	}

	return nil
}

func showSettings(database *sql.DB) error {
	theme, err := db.GetState(database, db.StateTheme)
	if err != nil {
		return err
	}
	if theme == "" {
		theme = "light"
	}

	language, err := db.GetState(database, db.StateLanguage)
	if err != nil {
		return err
	}
	if language == "" {
		language = "en"
	}

	fmt.Println("Settings")
	fmt.Println("────────")
	fmt.Printf("Theme:    %s\n", theme)
	fmt.Printf("Language: %s\n", language)
	return nil
}
