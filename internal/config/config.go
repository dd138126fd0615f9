package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the hostel administration
// data layer.
type Config struct {
	AppName           string
	AppEnv            string
	AdminEmail        string
	AdminPassword     string
	DatabasePath      string
	StorageKey        string
	RedisURL          string
	AnalyticsCacheTTL time.Duration
	SeedDemoData      bool
}

// Load reads configuration values from environment variables and an optional
// .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("HIVE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Hostel Hive")
	v.SetDefault("app.env", "development")
	v.SetDefault("database.path", "hostelhive.db")
	v.SetDefault("storage.key", "hostel-hive-storage-v2")
	v.SetDefault("analytics.cache_ttl", "5m")
	v.SetDefault("seed.demo", true)

	ttlString := v.GetString("analytics.cache_ttl")
	if ttlString == "" {
		ttlString = "5m"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid analytics cache ttl: %w", err)
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AdminEmail:        v.GetString("admin.email"),
		AdminPassword:     v.GetString("admin.password"),
		DatabasePath:      v.GetString("database.path"),
		StorageKey:        v.GetString("storage.key"),
		RedisURL:          v.GetString("redis.url"),
		AnalyticsCacheTTL: ttl,
		SeedDemoData:      v.GetBool("seed.demo"),
	}

	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return Config{}, fmt.Errorf("admin credentials must be provided")
	}

	if cfg.StorageKey == "" {
		return Config{}, fmt.Errorf("storage key must not be empty")
	}

	return cfg, nil
}
