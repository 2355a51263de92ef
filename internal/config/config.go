package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// Lead submission webhook. Empty means no backend is configured and
	// submissions succeed locally without an outbound call.
	SubmissionWebhookURL string
	SubmissionTimeout    time.Duration

	// Identifier of the page embedding the widget, sent with every submission.
	PageURL string

	DefaultLocale string

	// Hand-off channels offered once a lead has been submitted.
	WhatsAppNumber string
	ContactEmail   string
	ContactPhone   string

	CORSAllowedOrigins []string

	// Sessions idle longer than this are discarded by the janitor.
	SessionIdleTTL time.Duration

	// SendGrid sales-notification email (optional)
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	SalesEmail        string
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		SubmissionWebhookURL: getEnv("SUBMISSION_WEBHOOK_URL", ""),
		SubmissionTimeout:    getEnvAsDuration("SUBMISSION_TIMEOUT", 10*time.Second),

		PageURL: getEnv("PAGE_URL", "https://www.atlasdmc.com/"),

		DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),

		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", ""),
		ContactEmail:   getEnv("CONTACT_EMAIL", ""),
		ContactPhone:   getEnv("CONTACT_PHONE", ""),

		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "")),

		SessionIdleTTL: getEnvAsDuration("SESSION_IDLE_TTL", 30*time.Minute),

		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Atlas DMC"),
		SalesEmail:        getEnv("SALES_EMAIL", ""),
	}
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
