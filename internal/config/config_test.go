package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	assert.Equal(t, "custom", getEnv("CFG_VALUE", "default"))

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	assert.Equal(t, "fallback", getEnv("CFG_EMPTY", "fallback"))
}

func TestGetEnvTyped(t *testing.T) {
	t.Setenv("CFG_INT", "3")
	t.Setenv("CFG_BAD_INT", "three")
	t.Setenv("CFG_DURATION", "90s")
	t.Setenv("CFG_BAD_DURATION", "-5s")

	assert.Equal(t, 3, getEnvInt("CFG_INT", 0))
	assert.Equal(t, 7, getEnvInt("CFG_BAD_INT", 7))
	assert.Equal(t, 90*time.Second, getEnvDuration("CFG_DURATION", time.Minute))
	assert.Equal(t, time.Minute, getEnvDuration("CFG_BAD_DURATION", time.Minute))
}

func TestLoad(t *testing.T) {
	for _, key := range []string{
		"PORT", "DATABASE_URL", "LOG_LEVEL", "LOG_FORMAT", "SEED", "REDIS_ADDR", "REDIS_DB",
		"REPORT_CACHE_TTL", "VOCABULARY_FILE", "OPENAI_API_KEY", "OPENAI_SUMMARY_MODEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.NotEmpty(t, cfg.DatabaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.Seed)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 5*time.Minute, cfg.ReportCacheTTL)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAISummaryModel)

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REPORT_CACHE_TTL", "30s")
	t.Setenv("OPENAI_API_KEY", "key")

	cfg = Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Seed)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, 30*time.Second, cfg.ReportCacheTTL)
	assert.Equal(t, "key", cfg.OpenAIAPIKey)
}

func TestTables(t *testing.T) {
	cfg := &Config{}
	tables, err := cfg.Tables()
	require.NoError(t, err)
	assert.Equal(t, 50, tables.Thresholds.HighTier)

	path := filepath.Join(t.TempDir(), "tables.yaml")
	require.NoError(t, os.WriteFile(path, []byte("thresholds:\n  high_tier: 70\n"), 0o600))
	cfg.VocabularyFile = path

	tables, err = cfg.Tables()
	require.NoError(t, err)
	assert.Equal(t, 70, tables.Thresholds.HighTier)
}
