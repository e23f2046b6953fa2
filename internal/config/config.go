package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the binaries read from the environment.
type Config struct {
	// DatabaseURL is either a postgres:// DSN or a SQLite file path.
	DatabaseURL string
	// Addr is the listen address of the HTTP server.
	Addr string
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DatabaseURL: getenv("DATABASE_URL", "filmorate.db"),
		Addr:        getenv("ADDR", ":8080"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
