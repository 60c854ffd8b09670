package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "RECONCILE_INTERVAL_HOURS",
		"DAILY_DIGEST_TIME", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "schedule_planner.db", cfg.DatabaseURL)
	assert.Equal(t, 6*time.Hour, cfg.ReconcileInterval)
	assert.False(t, cfg.DigestEnabled())
}

func TestLoad_ReconcileIntervalDisabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("RECONCILE_INTERVAL_HOURS", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.ReconcileInterval)
}

func TestLoad_ReconcileIntervalFractional(t *testing.T) {
	clearEnv(t)
	t.Setenv("RECONCILE_INTERVAL_HOURS", "0.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.ReconcileInterval)
}

func TestLoad_DigestRequiresTelegram(t *testing.T) {
	clearEnv(t)
	t.Setenv("DAILY_DIGEST_TIME", "08:30")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_TOKEN")
}

func TestLoad_DigestConfigured(t *testing.T) {
	clearEnv(t)
	t.Setenv("DAILY_DIGEST_TIME", "08:30")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.DigestEnabled())
	assert.Equal(t, int64(42), cfg.TelegramChatID)
}

func TestLoad_BadChatID(t *testing.T) {
	clearEnv(t)
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_CHAT_ID")
}
