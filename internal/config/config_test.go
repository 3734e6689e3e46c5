package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/tariff/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 30, cfg.Server.WriteTimeout)
		require.Equal(t, config.DefaultUpdateURL, cfg.Pricing.UpdateURL)
		require.True(t, cfg.Pricing.AutoUpdate)
		require.Equal(t, 24, cfg.Pricing.CacheTTLHours)
		require.Equal(t, 10, cfg.Pricing.FetchTimeout)
		require.Equal(t, "file", cfg.Pricing.Store)
		require.NotEmpty(t, cfg.Pricing.CacheDir)
		require.Equal(t, "localhost:6379", cfg.Redis.Addr)
		require.Equal(t, "tariff:pricing", cfg.Redis.Key)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SERVER_PORT", "9000")
		t.Setenv("PRICING_CACHE_DIR", "/tmp/tariff-test")
		t.Setenv("PRICING_UPDATE_URL", "https://example.com/pricing.json")
		t.Setenv("PRICING_AUTO_UPDATE", "false")
		t.Setenv("PRICING_CACHE_TTL_HOURS", "6")
		t.Setenv("PRICING_STORE", "redis")
		t.Setenv("REDIS_ADDR", "redis.internal:6380")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, 9000, cfg.Server.Port)
		require.Equal(t, "/tmp/tariff-test", cfg.Pricing.CacheDir)
		require.Equal(t, "https://example.com/pricing.json", cfg.Pricing.UpdateURL)
		require.False(t, cfg.Pricing.AutoUpdate)
		require.Equal(t, 6, cfg.Pricing.CacheTTLHours)
		require.Equal(t, "redis", cfg.Pricing.Store)
		require.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
	})
}
