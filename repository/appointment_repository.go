package repository

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/camden-git/schedulerbackend/models"
	"github.com/camden-git/schedulerbackend/utils"
	"gorm.io/gorm"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// AppointmentRepository handles database operations for Appointment
// entities, including the joined, partitioned and counted read shapes the
// list and stats screens consume. Derived queries are built with squirrel
// and executed through the shared GORM handle.
type AppointmentRepository struct {
	DB *gorm.DB
}

// NewAppointmentRepository creates a new instance of AppointmentRepository
func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{DB: db}
}

// joined selects appointment rows together with the owning contact's name
// and phone. The LEFT JOIN keeps appointments whose contact was deleted;
// their contact columns come back NULL.
func joined() sq.SelectBuilder {
	return psql.Select("appointments.*", "contacts.name AS contact_name", "contacts.phone AS contact_phone").
		From("appointments").
		LeftJoin("contacts ON appointments.contact_id = contacts.id")
}

func (r *AppointmentRepository) listJoined(qb sq.SelectBuilder, op string) ([]models.AppointmentWithContact, error) {
	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build SQL for %s: %w", op, err)
	}
	appointments := []models.AppointmentWithContact{}
	if err := r.DB.Raw(sqlStr, args...).Scan(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to execute %s query: %w", op, err)
	}
	return appointments, nil
}

// Create inserts a new appointment and backfills its generated ID. The
// payment status defaults to Pending when unset. Date must already be in
// the canonical stored form (models.FormatTime).
func (r *AppointmentRepository) Create(appointment *models.Appointment) error {
	if appointment.PaymentStatus == "" {
		appointment.PaymentStatus = models.PaymentPending
	}
	if appointment.CreatedAt == "" {
		appointment.CreatedAt = models.FormatTime(time.Now())
	}

	err := r.DB.Create(appointment).Error
	if err != nil {
		return fmt.Errorf("failed to create appointment %s: %w", appointment.Title, err)
	}
	return nil
}

// Update overwrites every mutable field of the appointment, including the
// completed flag; callers resupply all fields. Updating a missing id
// succeeds as a no-op. The map form is required so nil descriptions and a
// false completed flag still overwrite stored values.
func (r *AppointmentRepository) Update(appointment *models.Appointment) error {
	result := r.DB.Model(&models.Appointment{}).Where("id = ?", appointment.ID).Updates(map[string]interface{}{
		"contact_id":                 appointment.ContactID,
		"title":                      appointment.Title,
		"description":                appointment.Description,
		"date":                       appointment.Date,
		"payment_status":             appointment.PaymentStatus,
		"payment_status_description": appointment.PaymentStatusDescription,
		"completed":                  appointment.Completed,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update appointment ID %d: %w", appointment.ID, result.Error)
	}
	return nil
}

// SetCompleted flips only the completed flag, leaving every other field
// untouched. Kept separate from Update: the full-overwrite contract there
// is relied on by form resubmissions. Missing ids are a no-op.
func (r *AppointmentRepository) SetCompleted(id int64, completed bool) error {
	result := r.DB.Model(&models.Appointment{}).Where("id = ?", id).Update("completed", completed)
	if result.Error != nil {
		return fmt.Errorf("failed to update completed flag for appointment ID %d: %w", id, result.Error)
	}
	return nil
}

// Delete removes an appointment by id. Missing ids are a no-op.
func (r *AppointmentRepository) Delete(id int64) error {
	result := r.DB.Delete(&models.Appointment{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete appointment ID %d: %w", id, result.Error)
	}
	return nil
}

// DeletePast removes every appointment dated strictly before the instant
// of the call, in a single statement.
func (r *AppointmentRepository) DeletePast() error {
	now := models.FormatTime(time.Now())
	sqlStr, args, err := psql.Delete("appointments").Where(sq.Lt{"date": now}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build SQL for DeletePast: %w", err)
	}
	if err := r.DB.Exec(sqlStr, args...).Error; err != nil {
		return fmt.Errorf("failed to delete past appointments: %w", err)
	}
	return nil
}

// ListAll retrieves all appointments with contact info, most recently
// created first, ties broken by higher id first.
func (r *AppointmentRepository) ListAll() ([]models.AppointmentWithContact, error) {
	qb := joined().OrderBy("appointments.created_at DESC", "appointments.id DESC")
	return r.listJoined(qb, "ListAll")
}

// ListUpcoming retrieves appointments dated at or after the instant of
// the call, soonest first.
func (r *AppointmentRepository) ListUpcoming() ([]models.AppointmentWithContact, error) {
	now := models.FormatTime(time.Now())
	qb := joined().
		Where(sq.GtOrEq{"appointments.date": now}).
		OrderBy("appointments.date ASC")
	return r.listJoined(qb, "ListUpcoming")
}

// ListPast retrieves appointments dated strictly before the instant of
// the call, most recently passed first.
func (r *AppointmentRepository) ListPast() ([]models.AppointmentWithContact, error) {
	now := models.FormatTime(time.Now())
	qb := joined().
		Where(sq.Lt{"appointments.date": now}).
		OrderBy("appointments.date DESC")
	return r.listJoined(qb, "ListPast")
}

// ListByDateRange retrieves appointments between the start of start's
// calendar day and the end of end's calendar day, inclusive. Boundaries
// are widened in the inputs' own location before converting to UTC.
func (r *AppointmentRepository) ListByDateRange(start, end time.Time) ([]models.AppointmentWithContact, error) {
	rangeStart := models.FormatTime(utils.StartOfDay(start))
	rangeEnd := models.FormatTime(utils.EndOfDay(end))
	qb := joined().
		Where(sq.GtOrEq{"appointments.date": rangeStart}).
		Where(sq.LtOrEq{"appointments.date": rangeEnd}).
		OrderBy("appointments.date ASC", "appointments.created_at DESC")
	return r.listJoined(qb, "ListByDateRange")
}

// ListByContactID retrieves every appointment, past and future, for one
// contact, soonest first. No join needed since the contact is known.
func (r *AppointmentRepository) ListByContactID(contactID int64) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.DB.Where("contact_id = ?", contactID).Order("date ASC").Find(&appointments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments for contact ID %d: %w", contactID, err)
	}
	return appointments, nil
}

// Search retrieves appointments whose title, description or contact name
// contains term, case-insensitively. Result order follows ListAll.
func (r *AppointmentRepository) Search(term string) ([]models.AppointmentWithContact, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	qb := joined().
		Where(sq.Or{
			sq.Like{"LOWER(appointments.title)": pattern},
			sq.Like{"LOWER(appointments.description)": pattern},
			sq.Like{"LOWER(contacts.name)": pattern},
		}).
		OrderBy("appointments.created_at DESC", "appointments.id DESC")
	return r.listJoined(qb, "Search")
}

// countRange issues a single COUNT(*) between two stored-form bounds. The
// upper bound is exclusive for the day window (start of tomorrow) and
// inclusive for the week and month windows (their last 23:59:59.999).
func (r *AppointmentRepository) countRange(start, end string, endInclusive bool, op string) (int64, error) {
	qb := psql.Select("COUNT(*)").From("appointments").Where(sq.GtOrEq{"date": start})
	if endInclusive {
		qb = qb.Where(sq.LtOrEq{"date": end})
	} else {
		qb = qb.Where(sq.Lt{"date": end})
	}
	sqlStr, args, err := qb.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build SQL for %s: %w", op, err)
	}
	var count int64
	if err := r.DB.Raw(sqlStr, args...).Scan(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to execute %s query: %w", op, err)
	}
	return count, nil
}

// CountToday counts appointments within the current calendar day.
// Boundaries are re-derived from the wall clock on every call.
func (r *AppointmentRepository) CountToday() (int64, error) {
	dayStart := utils.StartOfDay(time.Now())
	return r.countRange(models.FormatTime(dayStart), models.FormatTime(dayStart.AddDate(0, 0, 1)), false, "CountToday")
}

// CountWeek counts appointments within the current Monday-to-Sunday week.
func (r *AppointmentRepository) CountWeek() (int64, error) {
	now := time.Now()
	return r.countRange(models.FormatTime(utils.StartOfWeek(now)), models.FormatTime(utils.EndOfWeek(now)), true, "CountWeek")
}

// CountMonth counts appointments within the current calendar month.
func (r *AppointmentRepository) CountMonth() (int64, error) {
	now := time.Now()
	return r.countRange(models.FormatTime(utils.StartOfMonth(now)), models.FormatTime(utils.EndOfMonth(now)), true, "CountMonth")
}
