// ABOUTME: Database connection management and initialization
// ABOUTME: Opens the coldcall SQLite database in WAL mode at an XDG path
package db

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath returns the XDG-compliant location of the call database.
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, "coldcall", "coldcall.db")
}

func OpenDatabase(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	// WAL mode plus enforced foreign keys; the cascade from profiles to
	// contacts and history relies on the latter.
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, err
	}

	// Single connection avoids database-locked errors under SQLite.
	db.SetMaxOpenConns(1)

	if err := InitSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}
