package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string

	// DBUrl is the postgres connection string. When empty the server runs
	// with in-memory persistence only.
	DBUrl string

	// EventTimezone names the zone used for day-granularity status
	// comparisons. Status derivation never reads an ambient local zone.
	EventTimezone string

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
	AdminPasswordSalt string

	EmailProvider         string
	EmailFromAddress      string
	EmailFromName         string
	SESRegion             string
	SESAccessKeyID        string
	SESSecretAccessKey    string
	SESInsecureSkipVerify bool

	CORSAllowedOrigins []string
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production .env might not exist and we rely on system environment
	// variables, so a load failure is only a warning.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment: env,
		Port:        os.Getenv("PORT"),
		DBUrl:       os.Getenv("DATABASE_URL"),

		EventTimezone: os.Getenv("EVENT_TIMEZONE"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminPasswordSalt: os.Getenv("ADMIN_PASSWORD_SALT"),

		EmailProvider:         os.Getenv("EMAIL_PROVIDER"),
		EmailFromAddress:      os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:         os.Getenv("EMAIL_FROM_NAME"),
		SESRegion:             os.Getenv("SES_REGION"),
		SESAccessKeyID:        os.Getenv("SES_ACCESS_KEY_ID"),
		SESSecretAccessKey:    os.Getenv("SES_SECRET_ACCESS_KEY"),
		SESInsecureSkipVerify: os.Getenv("SES_INSECURE_SKIP_VERIFY") == "true",
	}

	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.CORSAllowedOrigins = strings.Split(origins, ",")
	}

	// Set defaults
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.EventTimezone == "" {
		cfg.EventTimezone = "UTC"
	}
	if cfg.EmailProvider == "" {
		cfg.EmailProvider = "noop"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-me"
	}

	return cfg, nil
}
