package repository

import (
	"time"

	"github.com/camden-git/schedulerbackend/models"
)

// ContactRepositoryInterface defines the methods for contact data operations
type ContactRepositoryInterface interface {
	Create(contact *models.Contact) error
	Update(id int64, name string, phone, email *string) error
	Delete(id int64) error
	ListAll() ([]models.Contact, error)
}

// AppointmentRepositoryInterface defines the methods for appointment data operations
type AppointmentRepositoryInterface interface {
	Create(appointment *models.Appointment) error
	Update(appointment *models.Appointment) error
	SetCompleted(id int64, completed bool) error
	Delete(id int64) error
	DeletePast() error
	ListAll() ([]models.AppointmentWithContact, error)
	ListUpcoming() ([]models.AppointmentWithContact, error)
	ListPast() ([]models.AppointmentWithContact, error)
	ListByDateRange(start, end time.Time) ([]models.AppointmentWithContact, error)
	ListByContactID(contactID int64) ([]models.Appointment, error)
	Search(term string) ([]models.AppointmentWithContact, error)
	CountToday() (int64, error)
	CountWeek() (int64, error)
	CountMonth() (int64, error)
}
