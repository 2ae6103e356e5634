package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/matcher")
	t.Setenv("PORT", "")
	t.Setenv("SMTP_PORT", "")
	t.Setenv("REPORT_DIR", "")

	cfg := Load()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.Equal(t, ".", cfg.ReportDir)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/matcher")
	t.Setenv("PORT", "9090")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "reports@example.com")
	t.Setenv("REPORT_DIR", "/tmp/reports")

	cfg := Load()

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "/tmp/reports", cfg.ReportDir)
	require.NoError(t, cfg.SMTP.Validate())
}

func TestValidate_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	err := Load().Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestLoad_BadPortFallsBack(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/matcher")
	t.Setenv("PORT", "not-a-port")

	assert.Equal(t, 8080, Load().Port)
}

func TestSMTPValidate_MissingHost(t *testing.T) {
	err := SMTP{From: "reports@example.com", Port: 465}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_HOST")
}
