package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type snapshotRecord struct {
	ID        uint           `gorm:"primaryKey"`
	Key       string         `gorm:"size:255;uniqueIndex;not null"`
	Payload   datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (snapshotRecord) TableName() string {
	return "snapshots"
}

// GormStore keeps the serialized snapshot in a single keyed row of a local
// SQLite database. Renaming the key orphans prior data, which doubles as the
// schema version bump.
type GormStore struct {
	db     *gorm.DB
	key    string
	logger zerolog.Logger
}

// NewGormStore migrates the snapshot table and returns a store bound to the
// given storage key.
func NewGormStore(db *gorm.DB, key string, logger zerolog.Logger) (*GormStore, error) {
	if key == "" {
		return nil, fmt.Errorf("storage key must not be empty")
	}

	if err := db.AutoMigrate(&snapshotRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot table: %w", err)
	}

	return &GormStore{
		db:     db,
		key:    key,
		logger: logger.With().Str("component", "snapshot_store").Logger(),
	}, nil
}

// Save upserts the snapshot row for the configured key.
func (g *GormStore) Save(ctx context.Context, snapshot Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	record := snapshotRecord{Key: g.key, Payload: datatypes.JSON(payload)}
	err = g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	g.logger.Debug().Str("key", g.key).Int("bytes", len(payload)).Msg("snapshot saved")
	return nil
}

// Load reads the snapshot row for the configured key, reporting absence
// without error.
func (g *GormStore) Load(ctx context.Context) (Snapshot, bool, error) {
	var record snapshotRecord
	err := g.db.WithContext(ctx).Where("key = ?", g.key).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var snapshot Snapshot
	if err := json.Unmarshal(record.Payload, &snapshot); err != nil {
		return Snapshot{}, false, fmt.Errorf("failed to decode snapshot: %w", err)
	}

	return snapshot, true, nil
}
