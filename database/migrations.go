package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// migration is one additive schema step. The list is append-only; a step's
// version is its index plus one. CREATE TABLE IF NOT EXISTS alone cannot
// add columns to an existing install, so later column additions are
// explicit ALTER TABLE steps gated on the recorded version.
type migration struct {
	name       string
	statements []string
}

var migrations = []migration{
	{
		name: "create contacts and appointments tables",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS contacts (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				phone TEXT,
				email TEXT,
				created_at TEXT NOT NULL
			)`,
			`CREATE TABLE IF NOT EXISTS appointments (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				contact_id INTEGER,
				title TEXT NOT NULL,
				description TEXT,
				date TEXT NOT NULL,
				created_at TEXT NOT NULL
			)`,
		},
	},
	{
		name: "add appointment payment fields",
		statements: []string{
			`ALTER TABLE appointments ADD COLUMN payment_status TEXT NOT NULL DEFAULT 'Pending'`,
			`ALTER TABLE appointments ADD COLUMN payment_status_description TEXT`,
		},
	},
	{
		name: "add appointment completed flag",
		statements: []string{
			`ALTER TABLE appointments ADD COLUMN completed INTEGER NOT NULL DEFAULT 0`,
		},
	},
}

// Migrate applies any pending schema steps. It is safe to call more than
// once: applied versions are recorded in schema_migrations and each step
// re-checks the current version inside its own transaction, so concurrent
// or repeated calls settle on the same schema without error.
func Migrate(db *gorm.DB) error {
	err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY
	)`).Error
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	for i, m := range migrations {
		version := i + 1
		err := db.Transaction(func(tx *gorm.DB) error {
			var current int
			if err := tx.Raw(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current).Error; err != nil {
				return fmt.Errorf("failed to read schema version: %w", err)
			}
			if current >= version {
				return nil
			}
			for _, stmt := range m.statements {
				if err := tx.Exec(stmt).Error; err != nil {
					return fmt.Errorf("migration %d (%s) failed: %w", version, m.name, err)
				}
			}
			if err := tx.Exec(`INSERT INTO schema_migrations (version) VALUES (?)`, version).Error; err != nil {
				return fmt.Errorf("failed to record migration %d: %w", version, err)
			}
			log.Printf("applied migration %d: %s", version, m.name)
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// SchemaVersion reports the highest applied migration version.
func SchemaVersion(db *gorm.DB) (int, error) {
	var current int
	err := db.Raw(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return current, nil
}
