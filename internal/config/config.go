// Package config loads runtime configuration from environment variables,
// with a .env file picked up automatically in development. The same binary
// runs everywhere; only the environment changes.
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds every runtime setting the server needs.
type Config struct {
	Port        string // TCP port the HTTP server listens on
	DatabaseURL string // PostgreSQL connection string
	JWTSecret   string // HMAC secret for signing and verifying session tokens
	RosterFile  string // path to the JSON guest list
	Env         string // "development" or "production"
	LogLevel    string // logrus level name; empty means the logger's default
}

// Load reads configuration from the environment. A missing .env file is
// fine; in production the platform sets real environment variables.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"), // required; startup fails without it
		JWTSecret:   os.Getenv("JWT_SECRET"),   // required; tokens are unverifiable without it
		RosterFile:  getenv("ROSTER_FILE", "roster.json"),
		Env:         getenv("ENV", "development"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
