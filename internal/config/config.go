package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the planner service.
type Config struct {
	Port              string
	DatabaseURL       string
	ReconcileInterval time.Duration
	DailyDigestTime   string // HH:MM local time, empty disables the digest
	TelegramToken     string
	TelegramChatID    int64
}

// DigestEnabled reports whether the daily Telegram digest should run.
func (c Config) DigestEnabled() bool {
	return c.DailyDigestTime != ""
}

// Load reads configuration from the environment (and .env, if present)
// with sane defaults.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:              strings.TrimSpace(os.Getenv("PORT")),
		DatabaseURL:       strings.TrimSpace(os.Getenv("DATABASE_URL")),
		ReconcileInterval: parseHours(strings.TrimSpace(os.Getenv("RECONCILE_INTERVAL_HOURS")), 6*time.Hour),
		DailyDigestTime:   strings.TrimSpace(os.Getenv("DAILY_DIGEST_TIME")),
		TelegramToken:     strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = "schedule_planner.db"
	}

	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q", raw)
		}
		cfg.TelegramChatID = chatID
	}

	if cfg.DigestEnabled() {
		if cfg.TelegramToken == "" || cfg.TelegramChatID == 0 {
			return cfg, fmt.Errorf("DAILY_DIGEST_TIME requires TELEGRAM_TOKEN and TELEGRAM_CHAT_ID")
		}
	}

	return cfg, nil
}

// parseHours interprets raw as a whole or fractional hour count.
// RECONCILE_INTERVAL_HOURS=0 disables the periodic pass.
func parseHours(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if raw == "0" {
		return 0
	}
	hours, err := time.ParseDuration(raw + "h")
	if err != nil || hours < 0 {
		return fallback
	}
	return hours
}
