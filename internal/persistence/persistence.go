// Package persistence saves and restores snapshots of the hostel data store.
package persistence

import (
	"context"

	"github.com/noah-isme/hostel-hive-go/internal/models"
)

// Snapshot is the full serializable state of the data store, including the
// session user.
type Snapshot struct {
	CurrentUser *models.User       `json:"current_user"`
	Users       []models.User      `json:"users"`
	Hostels     []models.Hostel    `json:"hostels"`
	Rooms       []models.Room      `json:"rooms"`
	Complaints  []models.Complaint `json:"complaints"`
	Colleges    []models.College   `json:"colleges"`
}

// Strategy writes snapshots to a durable slot and rehydrates them at
// startup. Load reports false when no snapshot exists under the configured
// storage key.
type Strategy interface {
	Save(ctx context.Context, snapshot Snapshot) error
	Load(ctx context.Context) (Snapshot, bool, error)
}
