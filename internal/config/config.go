package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string

	// WebhookSecret may be empty; the webhook endpoint then answers 500 until it is set.
	WebhookSecret string

	Session SessionConfig

	LogLevel    string
	MetricsPort string
}

type SessionConfig struct {
	Secret string
	Issuer string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		WebhookSecret: getEnv("CLERK_WEBHOOK_SECRET", ""),

		Session: SessionConfig{
			Secret: getEnvOrPanic("SESSION_JWT_SECRET"),
			Issuer: getEnv("SESSION_JWT_ISSUER", ""),
		},

		LogLevel:    getEnv("LOG_LEVEL", "info"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvOrPanic(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		panic("required environment variable not set: " + key)
	}
	return value
}
