package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/camden-git/schedulerbackend/models"
	"github.com/camden-git/schedulerbackend/repository"
	"github.com/go-chi/chi/v5"
)

type AppointmentHandler struct {
	Repo repository.AppointmentRepositoryInterface
}

type appointmentPayload struct {
	ContactID                int64                `json:"contact_id" validate:"required"`
	Title                    string               `json:"title" validate:"required"`
	Description              *string              `json:"description"`
	Date                     string               `json:"date" validate:"required"`
	PaymentStatus            models.PaymentStatus `json:"payment_status" validate:"omitempty,oneof=Pending Paid"`
	PaymentStatusDescription *string              `json:"payment_status_description"`
	Completed                *bool                `json:"completed"`
}

// parseDateParam accepts either a full RFC 3339 timestamp or a bare
// calendar date. Bare dates are taken in server local time; the
// repository widens range bounds to whole days anyway.
func parseDateParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

func (ah *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req appointmentPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationDetail(err))
		return
	}
	date, err := parseDateParam(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date: expected RFC 3339 timestamp or YYYY-MM-DD")
		return
	}

	appointment := models.Appointment{
		ContactID:                req.ContactID,
		Title:                    req.Title,
		Description:              req.Description,
		Date:                     models.FormatTime(date),
		PaymentStatus:            req.PaymentStatus,
		PaymentStatusDescription: req.PaymentStatusDescription,
	}
	if req.Completed != nil {
		appointment.Completed = *req.Completed
	}

	if err := ah.Repo.Create(&appointment); err != nil {
		log.Printf("Error creating appointment '%s': %v", req.Title, err)
		writeError(w, http.StatusInternalServerError, "Failed to create appointment")
		return
	}

	writeJSON(w, http.StatusCreated, appointment)
}

// UpdateAppointment is a full overwrite: every mutable field, including
// the completed flag, must be resupplied.
func (ah *AppointmentHandler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "appointment_id")
	appointmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var req appointmentPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationDetail(err))
		return
	}
	if req.Completed == nil {
		writeError(w, http.StatusBadRequest, "Missing required field: completed")
		return
	}
	if req.PaymentStatus == "" {
		writeError(w, http.StatusBadRequest, "Missing required field: payment_status")
		return
	}
	date, err := parseDateParam(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date: expected RFC 3339 timestamp or YYYY-MM-DD")
		return
	}

	appointment := models.Appointment{
		ID:                       appointmentID,
		ContactID:                req.ContactID,
		Title:                    req.Title,
		Description:              req.Description,
		Date:                     models.FormatTime(date),
		PaymentStatus:            req.PaymentStatus,
		PaymentStatusDescription: req.PaymentStatusDescription,
		Completed:                *req.Completed,
	}

	// missing ids no-op at the repository; success is surfaced either way
	if err := ah.Repo.Update(&appointment); err != nil {
		log.Printf("Error updating appointment %d: %v", appointmentID, err)
		writeError(w, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Appointment updated successfully"})
}

// SetAppointmentCompleted flips only the completed flag.
func (ah *AppointmentHandler) SetAppointmentCompleted(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "appointment_id")
	appointmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var req struct {
		Completed *bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Completed == nil {
		writeError(w, http.StatusBadRequest, "Missing required field: completed")
		return
	}

	if err := ah.Repo.SetCompleted(appointmentID, *req.Completed); err != nil {
		log.Printf("Error updating completed flag for appointment %d: %v", appointmentID, err)
		writeError(w, http.StatusInternalServerError, "Failed to update appointment")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Appointment updated successfully"})
}

func (ah *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "appointment_id")
	appointmentID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	if err := ah.Repo.Delete(appointmentID); err != nil {
		log.Printf("Error deleting appointment %d: %v", appointmentID, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

// DeletePastAppointments bulk-deletes everything dated before now.
// Non-reversible; the client confirms before calling.
func (ah *AppointmentHandler) DeletePastAppointments(w http.ResponseWriter, r *http.Request) {
	if err := ah.Repo.DeletePast(); err != nil {
		log.Printf("Error deleting past appointments: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete past appointments")
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

// ListAppointments returns all appointments, or a free-text filtered set
// when a search term is given.
func (ah *AppointmentHandler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	var (
		appointments []models.AppointmentWithContact
		err          error
	)
	if term := r.URL.Query().Get("search"); term != "" {
		appointments, err = ah.Repo.Search(term)
	} else {
		appointments, err = ah.Repo.ListAll()
	}
	if err != nil {
		log.Printf("Error listing appointments: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	writeJSON(w, http.StatusOK, appointments)
}

func (ah *AppointmentHandler) ListUpcomingAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := ah.Repo.ListUpcoming()
	if err != nil {
		log.Printf("Error listing upcoming appointments: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	writeJSON(w, http.StatusOK, appointments)
}

func (ah *AppointmentHandler) ListPastAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := ah.Repo.ListPast()
	if err != nil {
		log.Printf("Error listing past appointments: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	writeJSON(w, http.StatusOK, appointments)
}

// ListAppointmentsByDateRange returns appointments between two calendar
// days, both inclusive.
func (ah *AppointmentHandler) ListAppointmentsByDateRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		writeError(w, http.StatusBadRequest, "Missing required query parameters: start, end")
		return
	}
	start, err := parseDateParam(startStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start date: expected RFC 3339 timestamp or YYYY-MM-DD")
		return
	}
	end, err := parseDateParam(endStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end date: expected RFC 3339 timestamp or YYYY-MM-DD")
		return
	}

	appointments, err := ah.Repo.ListByDateRange(start, end)
	if err != nil {
		log.Printf("Error listing appointments in range %s..%s: %v", startStr, endStr, err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	writeJSON(w, http.StatusOK, appointments)
}
