package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, sourced from the environment
// (optionally seeded from a .env file).
type Config struct {
	DatabaseURL    string
	Port           string
	BackupDir      string
	AllowedOrigins string
	SecretKey      string
	Env            string
}

// Load reads configuration from the environment. A missing .env file is not
// an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:    getenv("DATABASE_URL", "sqlite://data/app.db"),
		Port:           getenv("PORT", "8080"),
		BackupDir:      getenv("BACKUP_STORAGE_PATH", "backups"),
		AllowedOrigins: getenv("ALLOWED_ORIGINS", "*"),
		SecretKey:      os.Getenv("SECRET_KEY"),
		Env:            getenv("APP_ENV", "production"),
	}
}

// Development reports whether the service runs with development settings
// (human-readable logs).
func (c *Config) Development() bool {
	return c.Env == "development"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
