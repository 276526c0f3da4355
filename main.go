package main

import (
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/camden-git/schedulerbackend/config"
	"github.com/camden-git/schedulerbackend/database"
	"github.com/camden-git/schedulerbackend/handlers"
	"github.com/camden-git/schedulerbackend/repository"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("FATAL: Failed to create database directory %s: %v", dir, err)
		}
	}

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("FATAL: Failed to migrate database schema: %v", err)
	}

	contactRepo := repository.NewContactRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	log.Printf("Using database: %s", cfg.DatabasePath)

	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	corsHandler := cors.New(corsOptions)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(corsHandler.Handler)

	contactHandler := &handlers.ContactHandler{Repo: contactRepo, Appointments: appointmentRepo}
	appointmentHandler := &handlers.AppointmentHandler{Repo: appointmentRepo}
	statsHandler := &handlers.StatsHandler{Repo: appointmentRepo}

	r.Route("/api", func(r chi.Router) {
		r.Route("/contacts", func(r chi.Router) {
			r.Post("/", contactHandler.CreateContact)
			r.Get("/", contactHandler.ListContacts)
			r.Route("/{contact_id}", func(r chi.Router) {
				r.Put("/", contactHandler.UpdateContact)
				r.Delete("/", contactHandler.DeleteContact)
				r.Get("/appointments", contactHandler.ListContactAppointments)
			})
		})

		r.Route("/appointments", func(r chi.Router) {
			r.Post("/", appointmentHandler.CreateAppointment)
			r.Get("/", appointmentHandler.ListAppointments)
			r.Get("/upcoming", appointmentHandler.ListUpcomingAppointments)
			r.Get("/past", appointmentHandler.ListPastAppointments)
			r.Delete("/past", appointmentHandler.DeletePastAppointments)
			r.Get("/range", appointmentHandler.ListAppointmentsByDateRange)
			r.Route("/{appointment_id}", func(r chi.Router) {
				r.Put("/", appointmentHandler.UpdateAppointment)
				r.Delete("/", appointmentHandler.DeleteAppointment)
				r.Put("/completed", appointmentHandler.SetAppointmentCompleted)
			})
		})

		r.Get("/stats/appointments", statsHandler.GetAppointmentStats)
	})

	serverAddr := ":" + cfg.Port
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
