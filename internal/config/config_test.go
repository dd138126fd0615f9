package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HIVE_ADMIN_EMAIL", "admin@hive.test")
	t.Setenv("HIVE_ADMIN_PASSWORD", "admin-secret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Hostel Hive", cfg.AppName)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, "hostelhive.db", cfg.DatabasePath)
	require.Equal(t, "hostel-hive-storage-v2", cfg.StorageKey)
	require.Equal(t, 5*time.Minute, cfg.AnalyticsCacheTTL)
	require.True(t, cfg.SeedDemoData)
	require.Empty(t, cfg.RedisURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HIVE_ADMIN_EMAIL", "admin@hive.test")
	t.Setenv("HIVE_ADMIN_PASSWORD", "admin-secret")
	t.Setenv("HIVE_DATABASE_PATH", "/tmp/hive-test.db")
	t.Setenv("HIVE_STORAGE_KEY", "hostel-hive-storage-v3")
	t.Setenv("HIVE_ANALYTICS_CACHE_TTL", "30s")
	t.Setenv("HIVE_SEED_DEMO", "false")
	t.Setenv("HIVE_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/tmp/hive-test.db", cfg.DatabasePath)
	require.Equal(t, "hostel-hive-storage-v3", cfg.StorageKey)
	require.Equal(t, 30*time.Second, cfg.AnalyticsCacheTTL)
	require.False(t, cfg.SeedDemoData)
	require.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestLoadRequiresAdminCredentials(t *testing.T) {
	t.Setenv("HIVE_ADMIN_EMAIL", "")
	t.Setenv("HIVE_ADMIN_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsInvalidTTL(t *testing.T) {
	t.Setenv("HIVE_ADMIN_EMAIL", "admin@hive.test")
	t.Setenv("HIVE_ADMIN_PASSWORD", "admin-secret")
	t.Setenv("HIVE_ANALYTICS_CACHE_TTL", "soon")

	_, err := Load()
	require.Error(t, err)
}
