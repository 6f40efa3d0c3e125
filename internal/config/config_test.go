package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCSV(t *testing.T) {
	assert.Nil(t, parseCSV(""))
	assert.Equal(t, []string{"a"}, parseCSV("a"))
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, parseCSV(" https://a.com , https://b.com ,"))
}

func TestParsePolicy(t *testing.T) {
	assert.Equal(t, UnknownPlanReject, parsePolicy("reject"))
	assert.Equal(t, UnknownPlanMonthly, parsePolicy("monthly"))
	assert.Equal(t, UnknownPlanMonthly, parsePolicy("MONTHLY"))
	// Anything unrecognized falls back to the safe choice.
	assert.Equal(t, UnknownPlanReject, parsePolicy("annual"))
	assert.Equal(t, UnknownPlanReject, parsePolicy(""))
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ORIGINS", "https://app.planhub.io")
	t.Setenv("CORS_CREDENTIALS", "true")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"https://app.planhub.io"}, cfg.CORSOrigins)
	assert.True(t, cfg.CORSCredentials)
	assert.Equal(t, UnknownPlanReject, cfg.UnknownPlanPolicy)
	assert.Equal(t, 30, cfg.LogRetentionDays)
	assert.Contains(t, cfg.DSN(), "password=secret")
	assert.Contains(t, cfg.DSN(), "sslmode=disable")
}
