package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	Port           string
	DatabaseURL    string
	LogLevel       string
	JWTSecret      string
	TokenTTL       time.Duration
	CSRFEnabled    bool
	CSRFTokenTTL   time.Duration
	BudgetRollover bool
}

// New loads configuration from environment variables. DATABASE_URL and
// JWT_SECRET are required; startup fails fast without them.
func New() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTL:       getDurationHours("TOKEN_TTL_HOURS", 24),
		CSRFEnabled:    getBool("CSRF_ENABLED", false),
		CSRFTokenTTL:   getDurationHours("CSRF_TOKEN_TTL_HOURS", 1),
		BudgetRollover: getBool("BUDGET_ROLLOVER", false),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultVal
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultVal
	}
	return parsed
}

func getDurationHours(key string, defaultHours int) time.Duration {
	value, exists := os.LookupEnv(key)
	if exists {
		if hours, err := strconv.Atoi(value); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return time.Duration(defaultHours) * time.Hour
}
