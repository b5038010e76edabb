package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Notification channels.
const (
	ChannelTelegram = "telegram"
	ChannelTwilio   = "twilio"
)

// Config carries everything the process reads from the environment.
// It is loaded once in main and passed down by value; nothing else
// touches os.Getenv at runtime.
type Config struct {
	Port string

	// DBURL selects Postgres when set; otherwise a local SQLite file is used.
	DBURL      string
	SQLitePath string

	// Operator notification channel.
	Channel string

	// Telegram credentials (required when Channel == telegram).
	BotToken string
	ChatID   int64

	// Token for the visitor-facing bot. Optional: empty disables it.
	ClientBotToken string

	// Twilio credentials (required when Channel == twilio).
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
	TwilioTo         string
}

// Load reads and validates the environment. Missing or malformed
// notification credentials are a hard error: the process must refuse
// to start rather than run with notifications silently disabled.
func Load() (Config, error) {
	cfg := Config{
		Port:       getEnv("PORT", "8080"),
		DBURL:      os.Getenv("DB_URL"),
		SQLitePath: getEnv("SQLITE_PATH", "bookings.db"),
		Channel:    strings.ToLower(getEnv("NOTIFY_CHANNEL", ChannelTelegram)),

		ClientBotToken: os.Getenv("CLIENT_BOT_TOKEN"),
	}

	switch cfg.Channel {
	case ChannelTelegram:
		cfg.BotToken = os.Getenv("BOT_TOKEN")
		if cfg.BotToken == "" {
			return Config{}, fmt.Errorf("BOT_TOKEN is not set")
		}
		raw := os.Getenv("CHAT_ID")
		if raw == "" {
			return Config{}, fmt.Errorf("CHAT_ID is not set")
		}
		id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("CHAT_ID must be numeric, got %q", raw)
		}
		cfg.ChatID = id

	case ChannelTwilio:
		cfg.TwilioAccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
		cfg.TwilioAuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
		cfg.TwilioFrom = os.Getenv("TWILIO_PHONE_NUMBER")
		cfg.TwilioTo = os.Getenv("NOTIFY_PHONE_NUMBER")
		for name, v := range map[string]string{
			"TWILIO_ACCOUNT_SID":  cfg.TwilioAccountSID,
			"TWILIO_AUTH_TOKEN":   cfg.TwilioAuthToken,
			"TWILIO_PHONE_NUMBER": cfg.TwilioFrom,
			"NOTIFY_PHONE_NUMBER": cfg.TwilioTo,
		} {
			if v == "" {
				return Config{}, fmt.Errorf("%s is not set", name)
			}
		}

	default:
		return Config{}, fmt.Errorf("unknown NOTIFY_CHANNEL %q", cfg.Channel)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
