package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string
	// SMTP Configuration
	SMTPHost       string
	SMTPPort       int
	SMTPUser       string
	SMTPPassword   string
	SMTPSecure     bool // implicit TLS (port 465); false means STARTTLS when offered
	SMTPTimeout    time.Duration
	ReceivingEmail string // studio inbox, defaults to SMTPUser
	StudioName     string
	// Admin panel
	AdminPassword string
	// Server
	ShutdownTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	// Only effective locally; missing .env in production is fine
	_ = godotenv.Load()

	smtpUser := strings.TrimSpace(getEnv("SMTP_USER", ""))

	cfg := &Config{
		Port:    getEnv("PORT", "3001"),
		GinMode: getEnv("GIN_MODE", "debug"),
		// SMTP Configuration
		SMTPHost:       getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:       getEnvInt("SMTP_PORT", 587),
		SMTPUser:       smtpUser,
		SMTPPassword:   getEnv("SMTP_PASS", ""),
		SMTPSecure:     getEnvBool("SMTP_SECURE", false),
		SMTPTimeout:    time.Duration(getEnvInt("SMTP_TIMEOUT_SECONDS", 30)) * time.Second,
		ReceivingEmail: strings.TrimSpace(getEnv("RECEIVING_EMAIL", "")),
		StudioName:     getEnv("STUDIO_NAME", "RR Designs"),
		// Admin panel
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
		// Server
		ShutdownTimeout: time.Duration(getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 5)) * time.Second,
	}

	if cfg.ReceivingEmail == "" {
		cfg.ReceivingEmail = cfg.SMTPUser
	}

	return cfg, nil
}

// SMTPConfigured reports whether credentials are present. It says nothing
// about whether they are valid.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPassword != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
