package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/camden-git/schedulerbackend/database"
	"github.com/camden-git/schedulerbackend/models"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	return db
}

func strPtr(s string) *string { return &s }

func mustCreateContact(t *testing.T, repo *ContactRepository, name string) *models.Contact {
	t.Helper()
	contact := &models.Contact{Name: name, Phone: strPtr("555-0100"), Email: strPtr(name + "@example.com")}
	if err := repo.Create(contact); err != nil {
		t.Fatalf("failed to create contact %s: %v", name, err)
	}
	return contact
}

func mustCreateAppointment(t *testing.T, repo *AppointmentRepository, contactID int64, title string, date time.Time) *models.Appointment {
	t.Helper()
	appointment := &models.Appointment{
		ContactID: contactID,
		Title:     title,
		Date:      models.FormatTime(date),
	}
	if err := repo.Create(appointment); err != nil {
		t.Fatalf("failed to create appointment %s: %v", title, err)
	}
	return appointment
}

func getAppointment(t *testing.T, db *gorm.DB, id int64) models.Appointment {
	t.Helper()
	var appointment models.Appointment
	if err := db.First(&appointment, id).Error; err != nil {
		t.Fatalf("failed to fetch appointment %d: %v", id, err)
	}
	return appointment
}
