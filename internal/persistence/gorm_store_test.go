package persistence

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/hostel-hive-go/internal/models"
)

func sampleSnapshot() Snapshot {
	hostelID := "h1"
	return Snapshot{
		CurrentUser: &models.User{ID: "u1", Email: "u1@x.com", Role: models.RoleStudent, Status: models.UserStatusActive},
		Users: []models.User{
			{ID: "admin1", Email: "admin@x.com", Role: models.RoleAdmin, Status: models.UserStatusActive},
			{ID: "u1", Email: "u1@x.com", Role: models.RoleStudent, Status: models.UserStatusActive, HostelID: &hostelID},
		},
		Hostels:    []models.Hostel{{ID: "h1", Name: "North", CollegeName: "X"}},
		Rooms:      []models.Room{{ID: "r1", HostelID: "h1", RoomNumber: "101", Capacity: 2, Occupants: []string{"u1"}, Status: models.RoomStatusAvailable}},
		Complaints: []models.Complaint{},
		Colleges:   []models.College{{ID: "1", Name: "X"}},
	}
}

func TestGormStoreSaveLoad(t *testing.T) {
	ctx := context.Background()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	store, err := NewGormStore(db, "round-trip-v1", zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, sampleSnapshot()))

	loaded, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, loaded.Users, 2)
	require.NotNil(t, loaded.CurrentUser)
	require.Equal(t, "u1", loaded.CurrentUser.ID)
	require.Equal(t, []string{"u1"}, loaded.Rooms[0].Occupants)
	require.NotNil(t, loaded.Users[1].HostelID)
	require.Equal(t, "h1", *loaded.Users[1].HostelID)
}

func TestGormStoreLoadAbsent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	store, err := NewGormStore(db, "never-written-v1", zerolog.Nop())
	require.NoError(t, err)

	_, ok, err := store.Load(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
}

func TestGormStoreSaveUpserts(t *testing.T) {
	ctx := context.Background()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	store, err := NewGormStore(db, "upsert-v1", zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, sampleSnapshot()))

	updated := sampleSnapshot()
	updated.CurrentUser = nil
	updated.Colleges = append(updated.Colleges, models.College{ID: "2", Name: "Y", IsCustom: true})
	require.NoError(t, store.Save(ctx, updated))

	loaded, ok, err := store.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Nil(t, loaded.CurrentUser)
	require.Len(t, loaded.Colleges, 2)

	var count int64
	require.NoError(t, db.Table("snapshots").Where("key = ?", "upsert-v1").Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestGormStoreKeysAreIsolated(t *testing.T) {
	// Renaming the storage key orphans prior data; a store under a new key
	// sees nothing.
	ctx := context.Background()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	v1, err := NewGormStore(db, "isolated-v1", zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, v1.Save(ctx, sampleSnapshot()))

	v2, err := NewGormStore(db, "isolated-v2", zerolog.Nop())
	require.NoError(t, err)

	_, ok, err := v2.Load(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestNewGormStoreRejectsEmptyKey(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	_, err = NewGormStore(db, "", zerolog.Nop())
	require.Error(t, err)
}

func TestMemoryStrategy(t *testing.T) {
	ctx := context.Background()
	memory := NewMemory()

	_, ok, err := memory.Load(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	snapshot := sampleSnapshot()
	require.NoError(t, memory.Save(ctx, snapshot))

	loaded, ok, err := memory.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, loaded.Users, 2)

	// Loads never alias the saved value.
	loaded.Users[0].Email = "mutated@x.com"
	again, ok, err := memory.Load(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "admin@x.com", again.Users[0].Email)
}
