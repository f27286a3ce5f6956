package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// OptionsPolicy decides what the option lookup proxy does when the
// prediction service cannot serve a vocabulary.
type OptionsPolicy string

const (
	// OptionsFailEmpty answers with an empty collection.
	OptionsFailEmpty OptionsPolicy = "empty"
	// OptionsFailError surfaces the upstream failure to the caller.
	OptionsFailError OptionsPolicy = "error"
)

// Database drivers understood by InitDB.
const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port             string
	DBDriver         string
	DatabaseURL      string
	DBPath           string
	PredictorBaseURL string
	PredictorTimeout time.Duration
	OptionsPolicy    OptionsPolicy
	PageSize         int
	CORSOrigins      []string
	DiscordBotToken  string
	DiscordChannelID string
	LogLevel         string
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Port:             fallback(os.Getenv("PORT"), "8080"),
		DBDriver:         strings.ToLower(fallback(os.Getenv("DB_DRIVER"), DriverPostgres)),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		DBPath:           fallback(os.Getenv("DB_PATH"), "frauds.db"),
		PredictorBaseURL: strings.TrimRight(fallback(os.Getenv("PREDICTOR_BASE_URL"), "http://127.0.0.1:8000"), "/"),
		OptionsPolicy:    OptionsPolicy(strings.ToLower(fallback(os.Getenv("OPTIONS_FAILURE_POLICY"), string(OptionsFailEmpty)))),
		CORSOrigins:      parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "http://localhost:3000")),
		DiscordBotToken:  strings.TrimSpace(os.Getenv("DISCORD_BOT_TOKEN")),
		DiscordChannelID: strings.TrimSpace(os.Getenv("DISCORD_CHANNEL_ID")),
		LogLevel:         strings.ToUpper(fallback(os.Getenv("LOG_LEVEL"), "INFO")),
	}

	cfg.PredictorTimeout = time.Duration(positiveInt(os.Getenv("PREDICTOR_TIMEOUT_SECONDS"), 30)) * time.Second
	cfg.PageSize = positiveInt(os.Getenv("PAGE_SIZE"), 10)

	switch cfg.DBDriver {
	case DriverPostgres, DriverMySQL:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required")
		}
	case DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	switch cfg.OptionsPolicy {
	case OptionsFailEmpty, OptionsFailError:
	default:
		return Config{}, fmt.Errorf("unsupported OPTIONS_FAILURE_POLICY %q", cfg.OptionsPolicy)
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// DiscordEnabled reports whether fraud alerts should be posted to Discord.
func (c Config) DiscordEnabled() bool {
	return c.DiscordBotToken != "" && c.DiscordChannelID != ""
}

// AllowAllOrigins reports whether CORS_ALLOWED_ORIGINS contains "*".
func (c Config) AllowAllOrigins() bool {
	for _, origin := range c.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func positiveInt(value string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
