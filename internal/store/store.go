// Package store is the single source of truth for users, hostels, rooms,
// complaints and colleges, plus the current session identity. All mutations
// are synchronous and persist a snapshot on completion. A Store is owned by
// one logical caller and is not safe for concurrent use.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/noah-isme/hostel-hive-go/internal/models"
	"github.com/noah-isme/hostel-hive-go/internal/persistence"
)

// Credentials are the fixed administrator login credentials.
type Credentials struct {
	Email    string
	Password string
}

// Result reports the outcome of an auth operation in a form the view layer
// can render directly. All other mutations fail silently by no-op.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Store owns all entity collections and the session user.
type Store struct {
	users      []models.User
	hostels    []models.Hostel
	rooms      []models.Room
	complaints []models.Complaint
	colleges   []models.College
	session    *models.User

	strategy      persistence.Strategy
	validate      *validator.Validate
	logger        zerolog.Logger
	adminEmail    string
	adminPassword string
	seedDemo      bool

	now   func() time.Time
	newID func() string
}

// New constructs a store backed by the given persistence strategy. seedDemo
// controls whether Restore seeds the demo hostels and rooms alongside the
// college catalog and administrator account when no snapshot exists.
func New(strategy persistence.Strategy, validate *validator.Validate, creds Credentials, seedDemo bool, logger zerolog.Logger) *Store {
	return &Store{
		strategy:      strategy,
		validate:      validate,
		logger:        logger.With().Str("component", "store").Logger(),
		adminEmail:    creds.Email,
		adminPassword: creds.Password,
		seedDemo:      seedDemo,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// Restore rehydrates the store from the persisted snapshot, seeding initial
// data when none exists.
func (s *Store) Restore(ctx context.Context) error {
	snapshot, ok, err := s.strategy.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	if !ok {
		s.logger.Info().Msg("no snapshot found, seeding initial data")
		s.Seed(ctx)
		return nil
	}

	s.users = snapshot.Users
	s.hostels = snapshot.Hostels
	s.rooms = snapshot.Rooms
	s.complaints = snapshot.Complaints
	s.colleges = snapshot.Colleges
	s.session = snapshot.CurrentUser

	s.logger.Info().
		Int("users", len(s.users)).
		Int("hostels", len(s.hostels)).
		Int("rooms", len(s.rooms)).
		Int("complaints", len(s.complaints)).
		Msg("snapshot restored")
	return nil
}

func (s *Store) snapshot() persistence.Snapshot {
	return persistence.Snapshot{
		CurrentUser: s.session,
		Users:       s.users,
		Hostels:     s.hostels,
		Rooms:       s.rooms,
		Complaints:  s.complaints,
		Colleges:    s.colleges,
	}
}

// persist saves a snapshot after a mutation. Persistence is best-effort: a
// failed save is logged and never surfaced to the caller.
func (s *Store) persist(ctx context.Context) {
	if err := s.strategy.Save(ctx, s.snapshot()); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist snapshot")
	}
}

func (s *Store) findUser(id string) *models.User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

func (s *Store) findRoom(id string) *models.Room {
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			return &s.rooms[i]
		}
	}
	return nil
}

func (s *Store) findComplaint(id string) *models.Complaint {
	for i := range s.complaints {
		if s.complaints[i].ID == id {
			return &s.complaints[i]
		}
	}
	return nil
}

// refreshSession mirrors a user mutation into the session copy when it
// targets the logged-in user.
func (s *Store) refreshSession(user models.User) {
	if s.session != nil && s.session.ID == user.ID {
		refreshed := user
		s.session = &refreshed
	}
}
