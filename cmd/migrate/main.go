// ABOUTME: Database maintenance utility for coldcall data files.
// ABOUTME: Backs up the file, applies the current schema, and compacts it.

package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/harperreed/coldcall/db"
)

func main() {
	dbPath := flag.String("db", "", "Path to database file (default: the standard data path)")
	dryRun := flag.Bool("dry-run", false, "Show what would happen without making changes")
	backup := flag.Bool("backup", true, "Create backup before touching the file")
	flag.Parse()

	path := *dbPath
	if path == "" {
		path = db.DefaultPath()
	}

	if err := migrate(path, *dryRun, *backup); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migration completed successfully")
}

func migrate(dbPath string, dryRun, createBackup bool) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("database file does not exist: %s", dbPath)
	}

	if dryRun {
		log.Printf("Dry run: would back up and upgrade %s", dbPath)
		return nil
	}

	if createBackup {
		backupPath := fmt.Sprintf("%s.backup.%s", dbPath, time.Now().Format("20060102-150405"))
		log.Printf("Creating backup: %s", backupPath)

		input, err := os.ReadFile(dbPath)
		if err != nil {
			return fmt.Errorf("failed to read database: %w", err)
		}

		if err := os.WriteFile(backupPath, input, 0600); err != nil {
			return fmt.Errorf("failed to create backup: %w", err)
		}
		log.Printf("Backup created successfully")
	}

	database, err := db.OpenDatabase(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() { _ = database.Close() }()

	// OpenDatabase already applied the current schema; compact the file.
	if err := vacuum(database); err != nil {
		return fmt.Errorf("failed to vacuum: %w", err)
	}

	return nil
}

func vacuum(database *sql.DB) error {
	_, err := database.Exec("VACUUM")
	return err
}
