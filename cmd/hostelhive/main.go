package main

import (
	"context"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/hostel-hive-go/internal/config"
	"github.com/noah-isme/hostel-hive-go/internal/database"
	"github.com/noah-isme/hostel-hive-go/internal/persistence"
	"github.com/noah-isme/hostel-hive-go/internal/service"
	"github.com/noah-isme/hostel-hive-go/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectSQLite(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	snapshots, err := persistence.NewGormStore(db, cfg.StorageKey, logger)
	if err != nil {
		log.Fatalf("failed to prepare snapshot storage: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	st := store.New(snapshots, validate, store.Credentials{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	}, cfg.SeedDemoData, logger)

	ctx := context.Background()
	if err := st.Restore(ctx); err != nil {
		log.Fatalf("failed to restore store: %v", err)
	}

	var cache *redis.Client
	if cfg.RedisURL != "" {
		cache, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			logger.Warn().Err(err).Msg("analytics cache disabled")
			cache = nil
		} else {
			defer cache.Close()
		}
	}

	analytics := service.NewAnalyticsService(st, cache, cfg.AnalyticsCacheTTL, logger)
	overview := analytics.Overview(ctx)

	logger.Info().
		Str("app", cfg.AppName).
		Str("env", cfg.AppEnv).
		Int("students", overview.TotalStudents).
		Int("staff", overview.TotalStaff).
		Int("hostels", overview.TotalHostels).
		Int("rooms", overview.TotalRooms).
		Float64("occupancy_rate", overview.OccupancyRate).
		Msg("store ready")
}
