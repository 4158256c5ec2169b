package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, _, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "11:00:00", cfg.MorningStart)
	assert.Equal(t, "16:00:00", cfg.EveningStart)
	assert.Equal(t, 3, cfg.SectionFrontpageLimit)
	assert.Equal(t, DefaultJWTSecret, cfg.JWTSecret)
	assert.Contains(t, cfg.DSN(), "dbname=newsroom")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("FRONTPAGE_TIMEZONE", "UTC")
	t.Setenv("SECTION_FRONTPAGE_LIMIT", "5")

	cfg, _, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 5, cfg.SectionFrontpageLimit)
	assert.Contains(t, cfg.DSN(), "port=6543")
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("SECTION_FRONTPAGE_LIMIT", "0")
	_, _, err := Load()
	assert.Error(t, err)

	t.Setenv("SECTION_FRONTPAGE_LIMIT", "3")
	t.Setenv("FRONTPAGE_TIMEZONE", "Mars/Olympus")
	_, _, err = Load()
	assert.Error(t, err)
}
