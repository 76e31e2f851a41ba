package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"gym_schedule_bot/internal/domain/schedule"
)

// AppConfig holds all configuration for the application.
type AppConfig struct {
	// Site account. Checked lazily: only runs that touch the site
	// require them (see RequireCredentials).
	Email    string
	Password string
	BaseURL  string

	// Telegram delivery. Optional; without a token notifications
	// degrade to log output.
	TelegramToken  string
	TelegramChatID int64

	// Advisory text generation. Optional; without a key the advisory
	// falls back to a static string.
	OpenAIKey   string
	OpenAIModel string

	// Optional relational run log. Empty disables it.
	DatabaseURL string

	DataDir     string
	LogLevel    string
	Environment string

	Headless       bool
	SettleInterval time.Duration
	WaitTimeout    time.Duration

	// Booking-window gate for enrollment actions, local wall-clock
	// "HH:MM". The exact boundary differs across site revisions, so it
	// is configuration, not a constant. Both empty disables the gate.
	EnrollWindowStart string
	EnrollWindowEnd   string

	// Daemon mode cron specs.
	CronSpecReport   string
	CronSpecStanding string

	// Standing enrollments, "day|type|time|venue" separated by ";",
	// e.g. "tuesday|Oly Lifting|18:30|Zaal 2".
	StandingEnrollments string

	// Post-workout analysis skips sessions shorter than this.
	AnalyzeMinMinutes int
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{
		Email:    os.Getenv("BINK_EMAIL"),
		Password: os.Getenv("BINK_PASSWORD"),
		BaseURL:  envDefault("BINK_BASE_URL", "https://www.crossfitbink36.nl"),

		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),

		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: envDefault("OPENAI_MODEL", "gpt-4o-mini"),

		DatabaseURL: os.Getenv("DATABASE_URL"),

		DataDir:     envDefault("DATA_DIR", "."),
		LogLevel:    strings.ToLower(envDefault("LOG_LEVEL", "info")),
		Environment: strings.ToLower(envDefault("ENVIRONMENT", "development")),

		EnrollWindowStart: envDefault("ENROLL_WINDOW_START", "16:00"),
		EnrollWindowEnd:   envDefault("ENROLL_WINDOW_END", "19:00"),

		CronSpecReport:   envDefault("CRON_SPEC_REPORT", "0 7 * * *"),
		CronSpecStanding: envDefault("CRON_SPEC_STANDING", "0 17 * * 0"),

		StandingEnrollments: os.Getenv("STANDING_ENROLLMENTS"),
	}

	var err error

	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		cfg.TelegramChatID, err = strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
	}

	cfg.Headless, err = boolDefault("HEADLESS", true)
	if err != nil {
		return nil, err
	}

	cfg.SettleInterval, err = durationDefault("SETTLE_INTERVAL", 3*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.WaitTimeout, err = durationDefault("WAIT_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	minMinutes := envDefault("ANALYZE_MIN_MINUTES", "20")
	cfg.AnalyzeMinMinutes, err = strconv.Atoi(minMinutes)
	if err != nil {
		return nil, fmt.Errorf("invalid ANALYZE_MIN_MINUTES: %w", err)
	}

	return cfg, nil
}

// RequireCredentials enforces the fatal precondition for runs that log in
// to the site.
func (c *AppConfig) RequireCredentials() error {
	if c.Email == "" || c.Password == "" {
		return schedule.ErrCredentialsMissing
	}
	return nil
}

// TelegramConfigured reports whether notification delivery is set up.
func (c *AppConfig) TelegramConfigured() bool {
	return c.TelegramToken != "" && c.TelegramChatID != 0
}

// StandingEntries parses the configured standing enrollments.
func (c *AppConfig) StandingEntries() ([]StandingEntry, error) {
	return ParseStandingEntries(c.StandingEnrollments)
}

// StandingEntry is one recurring session to auto-enroll for next week.
type StandingEntry struct {
	Day   string
	Kind  string
	Time  string
	Venue schedule.Venue
}

// ParseStandingEntries parses "day|type|time|venue" items separated by ";".
func ParseStandingEntries(spec string) ([]StandingEntry, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}
	var out []StandingEntry
	for _, item := range strings.Split(spec, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		parts := strings.Split(item, "|")
		if len(parts) != 4 {
			return nil, fmt.Errorf("invalid standing enrollment %q (want day|type|time|venue)", item)
		}
		venue, err := schedule.ParseVenue(parts[3])
		if err != nil {
			return nil, fmt.Errorf("invalid standing enrollment %q: %w", item, err)
		}
		out = append(out, StandingEntry{
			Day:   strings.ToLower(strings.TrimSpace(parts[0])),
			Kind:  strings.TrimSpace(parts[1]),
			Time:  strings.TrimSpace(parts[2]),
			Venue: venue,
		})
	}
	return out, nil
}

func envDefault(k, d string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d
	}
	return v
}

func boolDefault(k string, d bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", k, err)
	}
	return b, nil
}

func durationDefault(k string, d time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return d, nil
	}
	dur, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", k, err)
	}
	return dur, nil
}
