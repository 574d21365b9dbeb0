package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_HOST", "localhost")
	t.Setenv("DATABASE_PORT", "5432")
	t.Setenv("DATABASE_USERNAME", "postgres")
	t.Setenv("DATABASE_PASSWORD", "postgres")
	t.Setenv("DATABASE_NAME", "treeplant")
	t.Setenv("SMTP_HOST", "localhost")
	t.Setenv("SMTP_PORT", "25")
	t.Setenv("SMTP_USERNAME", "no-reply")
	t.Setenv("SMTP_PASSWORD", "secret")
}

func TestNew(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "localhost", cfg.Postgresql.Host)
	assert.Equal(t, 5432, cfg.Postgresql.Port)
	assert.Equal(t, "treeplant", cfg.Postgresql.DatabaseName)
	assert.Equal(t, 25, cfg.SMTP.Port)
}

func TestNew_PortOverride(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "8080")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}

func TestNew_InvalidDatabasePort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DATABASE_PORT", "not-a-port")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_PORT")
}
