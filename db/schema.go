// ABOUTME: Database schema definitions and migrations
// ABOUTME: Handles SQLite table creation and initialization
package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS profiles (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	contacts_count INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_profiles_name ON profiles(name);

CREATE TABLE IF NOT EXISTS contacts (
	id TEXT PRIMARY KEY,
	profile_id TEXT NOT NULL,
	shop_name TEXT NOT NULL,
	nickname TEXT,
	type_of_shop TEXT,
	phone TEXT,
	status TEXT NOT NULL DEFAULT 'To Call',
	notes TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL,
	FOREIGN KEY (profile_id) REFERENCES profiles(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_contacts_profile_id ON contacts(profile_id);
CREATE INDEX IF NOT EXISTS idx_contacts_profile_position ON contacts(profile_id, position);

CREATE TABLE IF NOT EXISTS call_history (
	id TEXT PRIMARY KEY,
	profile_id TEXT NOT NULL,
	contact_name TEXT NOT NULL,
	phone TEXT,
	date DATETIME NOT NULL,
	status TEXT NOT NULL,
	notes TEXT NOT NULL DEFAULT '',
	FOREIGN KEY (profile_id) REFERENCES profiles(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_call_history_profile_id ON call_history(profile_id);

CREATE TABLE IF NOT EXISTS app_state (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
