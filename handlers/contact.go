package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/camden-git/schedulerbackend/models"
	"github.com/camden-git/schedulerbackend/repository"
	"github.com/go-chi/chi/v5"
)

type ContactHandler struct {
	Repo         repository.ContactRepositoryInterface
	Appointments repository.AppointmentRepositoryInterface
}

type contactPayload struct {
	Name  string  `json:"name" validate:"required"`
	Phone *string `json:"phone"`
	Email *string `json:"email" validate:"omitempty,email"`
}

func (ch *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req contactPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationDetail(err))
		return
	}

	contact := models.Contact{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	if err := ch.Repo.Create(&contact); err != nil {
		log.Printf("Error creating contact '%s': %v", req.Name, err)
		writeError(w, http.StatusInternalServerError, "Failed to create contact")
		return
	}

	writeJSON(w, http.StatusCreated, contact)
}

func (ch *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := ch.Repo.ListAll()
	if err != nil {
		log.Printf("Error listing contacts: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve contacts")
		return
	}
	if contacts == nil {
		contacts = []models.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

func (ch *ContactHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "contact_id")
	contactID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid contact ID format")
		return
	}

	var req contactPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationDetail(err))
		return
	}

	// a missing id is a silent no-op at the repository; surface success
	// either way, matching the permissive update contract
	if err := ch.Repo.Update(contactID, req.Name, req.Phone, req.Email); err != nil {
		log.Printf("Error updating contact %d: %v", contactID, err)
		writeError(w, http.StatusInternalServerError, "Failed to update contact")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Contact updated successfully"})
}

func (ch *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "contact_id")
	contactID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid contact ID format")
		return
	}

	if err := ch.Repo.Delete(contactID); err != nil {
		log.Printf("Error deleting contact %d: %v", contactID, err)
		writeError(w, http.StatusInternalServerError, "Failed to delete contact")
		return
	}

	writeJSON(w, http.StatusNoContent, nil)
}

// ListContactAppointments returns every appointment, past and future, for
// one contact, soonest first.
func (ch *ContactHandler) ListContactAppointments(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "contact_id")
	contactID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid contact ID format")
		return
	}

	appointments, err := ch.Appointments.ListByContactID(contactID)
	if err != nil {
		log.Printf("Error listing appointments for contact %d: %v", contactID, err)
		writeError(w, http.StatusInternalServerError, "Failed to retrieve appointments")
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	writeJSON(w, http.StatusOK, appointments)
}
