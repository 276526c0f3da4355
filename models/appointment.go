package models

import "time"

// TimeLayout is the canonical stored timestamp format: UTC ISO-8601 with
// millisecond precision and a trailing Z. Every timestamp column uses it,
// so lexicographic order of stored values equals chronological order —
// the partition, range and count queries depend on that.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// FormatTime renders t in the canonical stored form.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// ParseTime parses a stored timestamp back into a UTC time.Time.
func ParseTime(s string) (time.Time, error) {
	return time.Parse(TimeLayout, s)
}

// PaymentStatus is the closed set of persisted payment states. Localized
// or extended display labels are a client concern and never stored.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentPaid
}

// Appointment represents a scheduled appointment for a contact.
// It corresponds to the 'appointments' table. ContactID is a reference by
// convention only; the schema does not enforce it, so a deleted contact
// leaves the appointment in place with a dangling id.
type Appointment struct {
	ID                       int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	ContactID                int64         `json:"contact_id"`
	Title                    string        `gorm:"not null" json:"title"`
	Description              *string       `json:"description"`
	Date                     string        `gorm:"not null" json:"date"` // UTC ISO-8601, the scheduled moment
	PaymentStatus            PaymentStatus `gorm:"not null;default:Pending" json:"payment_status"`
	PaymentStatusDescription *string       `json:"payment_status_description"`
	Completed                bool          `gorm:"not null;default:0" json:"completed"` // stored as INTEGER 0/1
	CreatedAt                string        `gorm:"not null" json:"created_at"`          // UTC ISO-8601, immutable
}

// TableName explicitly sets the table name for GORM.
func (Appointment) TableName() string {
	return "appointments"
}

// AppointmentWithContact is an appointment row joined with its contact's
// name and phone. Appointments whose contact was deleted still appear;
// the joined fields come back NULL.
type AppointmentWithContact struct {
	Appointment  `gorm:"embedded"`
	ContactName  *string `gorm:"column:contact_name" json:"contact_name"`
	ContactPhone *string `gorm:"column:contact_phone" json:"contact_phone"`
}
