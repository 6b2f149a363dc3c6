package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"ENV", "PORT", "HOST", "ALLOWED_ORIGINS", "FRONTEND_URL", "DATABASE_DRIVER", "POSTGRES_URI",
	"SQLITE_PATH", "REDIS_URI", "MONGODB_URI", "MONGO_URI", "OPENAI_API_KEY", "OPENAI_MODEL",
	"OPENAI_BASE_URL", "NOTION_KEY", "NOTION_DB_ID", "LOG_LEVEL", "REQUEST_TIMEOUT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.AllowedHost)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Empty(t, cfg.RedisURI)
	assert.Empty(t, cfg.MongoURI)
	assert.Equal(t, "gpt-4", cfg.OpenAIModel)
	assert.False(t, cfg.NotionConfigured())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, 60*time.Second, cfg.RequestTimeout)
}

func TestLoad_Production(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENV", "Production")
	t.Setenv("HOST", "https://api.lifereset.app:443/v1")
	t.Setenv("ALLOWED_ORIGINS", "https://lifereset.app, https://www.lifereset.app,")
	t.Setenv("DATABASE_DRIVER", "SQLite")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017/lifereset")
	t.Setenv("NOTION_KEY", "secret_x")
	t.Setenv("NOTION_DB_ID", "db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REQUEST_TIMEOUT", "15s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "api.lifereset.app", cfg.AllowedHost)
	assert.Equal(t, []string{"https://lifereset.app", "https://www.lifereset.app"}, cfg.AllowedOrigins)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "mongodb://localhost:27017/lifereset", cfg.MongoURI)
	assert.True(t, cfg.NotionConfigured())
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"DATABASE_DRIVER": "mysql",
		"LOG_LEVEL":       "loud",
		"REQUEST_TIMEOUT": "soon",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
