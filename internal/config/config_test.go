package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestNewRequiresJWTSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/budgetbuddy")
	t.Setenv("JWT_SECRET", "")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/budgetbuddy")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.CSRFEnabled)
	assert.Equal(t, time.Hour, cfg.CSRFTokenTTL)
	assert.False(t, cfg.BudgetRollover)
}

func TestNewOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/budgetbuddy")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL_HOURS", "48")
	t.Setenv("CSRF_ENABLED", "true")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 48*time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.CSRFEnabled)
}

func TestGetDurationHoursIgnoresInvalid(t *testing.T) {
	t.Setenv("TOKEN_TTL_HOURS", "not-a-number")
	assert.Equal(t, 24*time.Hour, getDurationHours("TOKEN_TTL_HOURS", 24))

	t.Setenv("TOKEN_TTL_HOURS", "-3")
	assert.Equal(t, 24*time.Hour, getDurationHours("TOKEN_TTL_HOURS", 24))
}
