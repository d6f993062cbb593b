package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config keeps runtime settings for the planner.
type Config struct {
	DatabaseURL      string
	StateDir         string
	UserID           string
	ReminderInterval time.Duration
	RolloverInterval time.Duration
	TelegramToken    string
	TelegramChatID   int64
	DailyDigestTime  string // HH:MM, empty disables the digest
}

// Load reads configuration from environment variables with sane defaults.
// Nothing is required: without a Telegram token the planner simply runs
// without outbound notifications.
func Load() (Config, error) {
	cfg := Config{
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		StateDir:         strings.TrimSpace(os.Getenv("STATE_DIR")),
		UserID:           strings.TrimSpace(os.Getenv("USER_ID")),
		ReminderInterval: parseSeconds(os.Getenv("REMINDER_SCAN_SECONDS"), 10*time.Second),
		RolloverInterval: parseSeconds(os.Getenv("ROLLOVER_SCAN_SECONDS"), 60*time.Second),
		TelegramToken:    strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		DailyDigestTime:  strings.TrimSpace(os.Getenv("DAILY_DIGEST_TIME")),
	}

	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.TelegramChatID = id
		}
	}

	if cfg.StateDir == "" {
		cfg.StateDir = defaultStateDir()
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = filepath.Join(cfg.StateDir, "flush_planner.db")
	}
	if cfg.UserID == "" {
		cfg.UserID = "local"
	}

	return cfg, nil
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flush-planner"
	}
	return filepath.Join(home, ".flush-planner")
}

func parseSeconds(raw string, fallback time.Duration) time.Duration {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		return fallback
	}
	return time.Duration(seconds) * time.Second
}
