package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultDatabasePath   = "appointments.db"
	defaultPort           = "8080"
	defaultRequestTimeout = 60
)

type Config struct {
	// database path (SQLite file; the process owns this handle exclusively)
	DatabasePath string

	// HTTP listen port
	Port string

	// origins allowed to call the API (the local client app)
	AllowedOrigins []string

	// per-request timeout applied by the router
	RequestTimeout time.Duration
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func LoadConfig() (Config, error) {
	dbPath := getEnvOrDefault("DATABASE_PATH", defaultDatabasePath)
	port := getEnvOrDefault("PORT", defaultPort)

	origins := strings.Split(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:5173"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	timeoutSecs := getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeout)

	cfg := Config{
		DatabasePath:   dbPath,
		Port:           port,
		AllowedOrigins: origins,
		RequestTimeout: time.Duration(timeoutSecs) * time.Second,
	}

	return cfg, nil
}
