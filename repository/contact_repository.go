package repository

import (
	"fmt"
	"time"

	"github.com/camden-git/schedulerbackend/models"
	"gorm.io/gorm"
)

// ContactRepository handles database operations for Contact entities.
// It never validates field contents; callers are responsible for
// presence checks before writing.
type ContactRepository struct {
	DB *gorm.DB
}

// NewContactRepository creates a new instance of ContactRepository
func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

// Create inserts a new contact and backfills its generated ID.
func (r *ContactRepository) Create(contact *models.Contact) error {
	if contact.CreatedAt == "" {
		contact.CreatedAt = models.FormatTime(time.Now())
	}

	err := r.DB.Create(contact).Error
	if err != nil {
		return fmt.Errorf("failed to create contact %s: %w", contact.Name, err)
	}
	return nil
}

// Update overwrites every mutable field of the contact with the given id.
// Updating a missing id succeeds as a no-op; callers rely on that. The
// map form is required so nil phone/email still overwrite stored values.
func (r *ContactRepository) Update(id int64, name string, phone, email *string) error {
	result := r.DB.Model(&models.Contact{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":  name,
		"phone": phone,
		"email": email,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update contact ID %d: %w", id, result.Error)
	}
	return nil
}

// Delete removes a contact by id. Appointments referencing it are left in
// place; their joined contact fields read back NULL. Missing ids are a
// no-op.
func (r *ContactRepository) Delete(id int64) error {
	result := r.DB.Delete(&models.Contact{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact ID %d: %w", id, result.Error)
	}
	return nil
}

// ListAll retrieves all contacts, most recently created first, ties broken
// by higher id first.
func (r *ContactRepository) ListAll() ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.DB.Order("created_at DESC, id DESC").Find(&contacts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}
