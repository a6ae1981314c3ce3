package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config carries the CLI-level knobs for the OpenWeatherMap client.
type Config struct {
	APIKey      string
	Units       string
	Language    string
	CacheTTL    time.Duration
	HTTPTimeout time.Duration
	LogLevel    string
}

func Load() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	cfg.APIKey = getEnv("OWM_API_KEY", "")
	cfg.Units = getEnv("OWM_UNITS", "metric")
	cfg.Language = getEnv("OWM_LANGUAGE", "en")
	cfg.CacheTTL = parseDuration(getEnv("OWM_CACHE_TTL", "10m"))
	cfg.HTTPTimeout = parseDuration(getEnv("OWM_HTTP_TIMEOUT", "10s"))
	cfg.LogLevel = getEnv("LOG_LEVEL", "info")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}
