package store

import (
	"context"

	"github.com/noah-isme/hostel-hive-go/internal/models"
)

// WardenData is the payload for privileged warden creation.
type WardenData struct {
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
	FullName  string `validate:"required"`
	Phone     string
	HostelIDs []string
}

// AddWarden creates a warden account over a list of hostels. Duplicate
// emails are ignored silently.
func (s *Store) AddWarden(ctx context.Context, data WardenData) {
	for i := range s.users {
		if s.users[i].Email == data.Email {
			s.logger.Debug().Str("email", data.Email).Msg("warden email already registered")
			return
		}
	}

	if err := s.validate.Struct(data); err != nil {
		s.logger.Warn().Err(err).Msg("warden payload rejected")
		return
	}

	warden := models.User{
		ID:        s.newID(),
		Email:     data.Email,
		Password:  data.Password,
		Role:      models.RoleWarden,
		FullName:  data.FullName,
		Phone:     data.Phone,
		Status:    models.UserStatusActive,
		HostelIDs: data.HostelIDs,
		CreatedAt: s.now(),
	}

	s.users = append(s.users, warden)
	s.persist(ctx)
	s.logger.Info().Str("user_id", warden.ID).Int("hostels", len(warden.HostelIDs)).Msg("warden added")
}

// UpdateWarden applies a partial update to a warden account.
func (s *Store) UpdateWarden(ctx context.Context, id string, updates map[string]any) {
	user := s.findUser(id)
	if user == nil {
		return
	}

	applyUserUpdates(user, updates)
	s.persist(ctx)
}
