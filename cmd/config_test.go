package cmd

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "DB_HOST", "DELIVERY_DELAY", "DELIVERY_SWEEP_INTERVAL", "KAFKA_BROKERS", "LOG_LEVEL", "SEED_CATALOG"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, time.Minute, cfg.DeliveryDelay)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.False(t, cfg.UsesPostgres())
	assert.Empty(t, cfg.KafkaBrokers)
	assert.True(t, cfg.SeedCatalog)
}

func TestLoadConfig_ParsesTypedValues(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DELIVERY_DELAY", "90s")
	t.Setenv("DELIVERY_SWEEP_INTERVAL", "15s")
	t.Setenv("KAFKA_BROKERS", " k1:9092, ,k2:9092 ")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED_CATALOG", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, 90*time.Second, cfg.DeliveryDelay)
	assert.Equal(t, 15*time.Second, cfg.SweepInterval)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.False(t, cfg.SeedCatalog)
}

func TestLoadConfig_ReportsEveryBadValue(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")
	t.Setenv("DELIVERY_DELAY", "soon")
	t.Setenv("SEED_CATALOG", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DELIVERY_SWEEP_INTERVAL", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.ErrorContains(t, err, "HTTP_PORT")
	assert.ErrorContains(t, err, "DELIVERY_DELAY")
}

func TestLoadConfig_RejectsNonPositiveSweep(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("DELIVERY_DELAY", "")
	t.Setenv("DELIVERY_SWEEP_INTERVAL", "0s")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "DELIVERY_SWEEP_INTERVAL")
}
