package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	Environment    string   // ENV: production, development, etc.
	Port           string
	Host           string   // Raw HOST env (e.g. https://api.lifereset.app)
	AllowedHost    string   // Hostname only for strict host check (production only)
	AllowedOrigins []string // CORS: from ALLOWED_ORIGINS or FRONTEND_URL

	DatabaseDriver string // postgres or sqlite
	PostgresURI    string
	SQLitePath     string
	RedisURI       string // optional; enables the Notion status cache
	MongoURI       string // optional; enables sync history

	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	NotionKey  string
	NotionDBID string

	LogLevel       slog.Level
	RequestTimeout time.Duration
}

func Load() (*Config, error) {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))
	host := getEnv("HOST", "http://localhost:8080")

	// AllowedHost is only set in production; host check is skipped in development
	var allowedHost string
	if env == "production" {
		allowedHost = hostname(host)
	}

	allowedOrigins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(allowedOrigins) == 0 {
		allowedOrigins = parseOrigins(getEnv("FRONTEND_URL", "http://localhost:3000"))
	}

	driver := strings.ToLower(strings.TrimSpace(getEnv("DATABASE_DRIVER", "postgres")))
	if driver != "postgres" && driver != "sqlite" {
		return nil, fmt.Errorf("DATABASE_DRIVER must be postgres or sqlite, got %q", driver)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(getEnv("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	timeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "60s"))
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q", os.Getenv("REQUEST_TIMEOUT"))
	}

	return &Config{
		Environment:    env,
		Port:           getEnv("PORT", "8080"),
		Host:           host,
		AllowedHost:    allowedHost,
		AllowedOrigins: allowedOrigins,
		DatabaseDriver: driver,
		PostgresURI:    getEnv("POSTGRES_URI", "postgres://localhost:5432/lifereset?sslmode=disable"),
		SQLitePath:     getEnv("SQLITE_PATH", "data/lifereset.db"),
		RedisURI:       getEnv("REDIS_URI", ""),
		MongoURI:       getEnv("MONGODB_URI", getEnv("MONGO_URI", "")),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-4"),
		OpenAIBaseURL:  getEnv("OPENAI_BASE_URL", ""),
		NotionKey:      getEnv("NOTION_KEY", ""),
		NotionDBID:     getEnv("NOTION_DB_ID", ""),
		LogLevel:       level,
		RequestTimeout: timeout,
	}, nil
}

// hostname strips scheme, path and port from a HOST value.
func hostname(host string) string {
	for _, prefix := range []string{"https://", "http://"} {
		host = strings.TrimPrefix(host, prefix)
	}
	if idx := strings.Index(host, "/"); idx != -1 {
		host = host[:idx]
	}
	if idx := strings.Index(host, ":"); idx != -1 {
		host = host[:idx]
	}
	return strings.TrimSpace(host)
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// NotionConfigured reports whether both Notion settings are present.
func (c *Config) NotionConfigured() bool {
	return c.NotionKey != "" && c.NotionDBID != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
