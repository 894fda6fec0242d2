// Package config centralises configuration parsing for the dashboard.
package config

import (
	"os"
	"time"
)

// Config captures runtime configuration values for the dashboard server.
type Config struct {
	Addr        string
	DatabaseURL string // empty selects the in-memory backend
	WebDir      string
	DataDir     string

	AdminEmail    string
	AdminPassword string
	SessionTTL    time.Duration

	OIDCIssuer       string
	OIDCClientID     string
	OIDCClientSecret string
	OIDCRedirectURL  string

	TranscribeAPIKey  string
	TranscribeBaseURL string
	TranscribeModel   string
}

// Load reads environment variables into Config, applying defaults for local dev.
func Load() Config {
	return Config{
		Addr:        getEnv("ADDR", ":8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		WebDir:      getEnv("WEB_DIR", "web"),
		DataDir:     getEnv("DATA_DIR", "data"),

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		SessionTTL:    getDurationEnv("SESSION_TTL", 24*time.Hour),

		OIDCIssuer:       os.Getenv("OIDC_ISSUER"),
		OIDCClientID:     os.Getenv("OIDC_CLIENT_ID"),
		OIDCClientSecret: os.Getenv("OIDC_CLIENT_SECRET"),
		OIDCRedirectURL:  os.Getenv("OIDC_REDIRECT_URL"),

		TranscribeAPIKey:  os.Getenv("TRANSCRIBE_API_KEY"),
		TranscribeBaseURL: getEnv("TRANSCRIBE_BASE_URL", "https://api.openai.com/v1"),
		TranscribeModel:   getEnv("TRANSCRIBE_MODEL", "whisper-1"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
