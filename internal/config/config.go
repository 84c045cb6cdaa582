package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	DBDSN   string
	LogFile string
}

// Load reads configuration from a .env file (if present) and the
// environment. DATABASE_URL has no default on purpose: without it the
// server still serves pages, but every auth API call reports a
// misconfigured store.
func Load() Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DATABASE_URL")
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, LogFile: logFile}
	log.Printf("[config] PORT=%s DATABASE_URL_set=%t LOG_FILE=%s", cfg.Port, cfg.DBDSN != "", cfg.LogFile)
	return cfg
}
