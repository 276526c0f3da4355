package handlers

import (
	"log"
	"net/http"

	"github.com/camden-git/schedulerbackend/repository"
)

// StatsHandler serves the home screen's time-bucketed appointment counts.
type StatsHandler struct {
	Repo repository.AppointmentRepositoryInterface
}

type appointmentStats struct {
	Today int64 `json:"today"`
	Week  int64 `json:"week"`
	Month int64 `json:"month"`
}

// GetAppointmentStats recomputes all three windows from the wall clock on
// every call; nothing is cached.
func (sh *StatsHandler) GetAppointmentStats(w http.ResponseWriter, r *http.Request) {
	today, err := sh.Repo.CountToday()
	if err != nil {
		log.Printf("Error counting today's appointments: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to compute appointment stats")
		return
	}
	week, err := sh.Repo.CountWeek()
	if err != nil {
		log.Printf("Error counting this week's appointments: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to compute appointment stats")
		return
	}
	month, err := sh.Repo.CountMonth()
	if err != nil {
		log.Printf("Error counting this month's appointments: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to compute appointment stats")
		return
	}

	writeJSON(w, http.StatusOK, appointmentStats{Today: today, Week: week, Month: month})
}
