package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	RedisURL       string
	FrontendOrigin string // Browser origin allowed to send credentialed requests
	BackendURL     string // Public base URL used to build absolute upload links
	Environment    string // "development" or "production"
	UploadDir      string
	AdminEmail     string // Bootstrap admin credentials; empty disables the bootstrap
	AdminPassword  string
}

func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	cfg := &Config{
		Port:           getEnv("PORT", "3000"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", ""),
		DBPassword:     getEnv("DB_PASSWORD", ""),
		DBName:         getEnv("DB_NAME", ""),
		RedisURL:       getEnv("REDIS_URL", "localhost:6379"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:4200"),
		BackendURL:     getEnv("BACKEND_URL", "http://localhost:3000"),
		Environment:    getEnv("APP_ENV", "development"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		AdminEmail:     getEnv("ADMIN_EMAIL", ""),
		AdminPassword:  getEnv("ADMIN_PASSWORD", ""),
	}

	// Database credentials have no fallback defaults on purpose.
	if cfg.DBUser == "" || cfg.DBPassword == "" || cfg.DBName == "" {
		return nil, errors.New("DB_USER, DB_PASSWORD and DB_NAME must be set")
	}

	// Outside production the bootstrap admin falls back to a fixed dev pair.
	if !cfg.IsProduction() {
		if cfg.AdminEmail == "" {
			cfg.AdminEmail = "admin@example.com"
		}
		if cfg.AdminPassword == "" {
			cfg.AdminPassword = "admin123"
		}
	}

	return cfg, nil
}

// IsProduction reports whether the process runs with production hardening
// (secure cookies, no implicit admin bootstrap).
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// DatabaseDSN builds the lib/pq keyword connection string.
func (c *Config) DatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
