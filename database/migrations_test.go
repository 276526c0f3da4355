package database

import (
	"path/filepath"
	"testing"

	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	return db
}

func TestMigrateIdempotent(t *testing.T) {
	db := openTestDB(t)

	if err := Migrate(db); err != nil {
		t.Fatalf("first Migrate failed: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}

	version, err := SchemaVersion(db)
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("schema version = %d, want %d", version, len(migrations))
	}
}

func TestMigrateProducesFullSchema(t *testing.T) {
	db := openTestDB(t)
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	// a row touching every column proves all steps landed
	err := db.Exec(`INSERT INTO appointments
		(contact_id, title, description, date, payment_status, payment_status_description, completed, created_at)
		VALUES (1, 'checkup', NULL, '2024-06-01T10:00:00.000Z', 'Paid', 'card', 1, '2024-05-01T09:00:00.000Z')`).Error
	if err != nil {
		t.Fatalf("insert into full appointments schema failed: %v", err)
	}

	err = db.Exec(`INSERT INTO contacts (name, phone, email, created_at)
		VALUES ('Jane', NULL, NULL, '2024-05-01T09:00:00.000Z')`).Error
	if err != nil {
		t.Fatalf("insert into contacts schema failed: %v", err)
	}
}

func TestMigrateUpgradesLegacyInstall(t *testing.T) {
	db := openTestDB(t)

	// replay only the first step, as an old install would have it
	if err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER PRIMARY KEY)`).Error; err != nil {
		t.Fatalf("failed to create schema_migrations: %v", err)
	}
	for _, stmt := range migrations[0].statements {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to replay base schema: %v", err)
		}
	}
	if err := db.Exec(`INSERT INTO schema_migrations (version) VALUES (1)`).Error; err != nil {
		t.Fatalf("failed to record base version: %v", err)
	}

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate on legacy install failed: %v", err)
	}

	// the columns the later steps add must now exist
	err := db.Exec(`INSERT INTO appointments
		(contact_id, title, date, payment_status, completed, created_at)
		VALUES (1, 'follow-up', '2024-06-02T10:00:00.000Z', 'Pending', 0, '2024-05-01T09:00:00.000Z')`).Error
	if err != nil {
		t.Fatalf("insert using migrated columns failed: %v", err)
	}

	version, err := SchemaVersion(db)
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("schema version after upgrade = %d, want %d", version, len(migrations))
	}
}
