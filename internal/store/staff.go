package store

import (
	"context"

	"github.com/noah-isme/hostel-hive-go/internal/models"
)

// StaffData is the payload for privileged staff creation.
type StaffData struct {
	Email          string `validate:"required,email"`
	Password       string `validate:"required"`
	FullName       string `validate:"required"`
	Phone          string
	HostelID       string `validate:"required"`
	Specialization string `validate:"required"`
}

// AddStaff creates a maintenance staff account bound to a single hostel.
// Duplicate emails are ignored silently.
func (s *Store) AddStaff(ctx context.Context, data StaffData) {
	for i := range s.users {
		if s.users[i].Email == data.Email {
			s.logger.Debug().Str("email", data.Email).Msg("staff email already registered")
			return
		}
	}

	if err := s.validate.Struct(data); err != nil {
		s.logger.Warn().Err(err).Msg("staff payload rejected")
		return
	}

	hostelID := data.HostelID
	staff := models.User{
		ID:             s.newID(),
		Email:          data.Email,
		Password:       data.Password,
		Role:           models.RoleStaff,
		FullName:       data.FullName,
		Phone:          data.Phone,
		Status:         models.UserStatusActive,
		HostelID:       &hostelID,
		Specialization: data.Specialization,
		CreatedAt:      s.now(),
	}

	s.users = append(s.users, staff)
	s.persist(ctx)
	s.logger.Info().Str("user_id", staff.ID).Str("hostel_id", data.HostelID).Msg("staff added")
}

// UpdateStaff applies a partial update to a staff account. Unlike
// UpdateUser it never touches the session copy.
func (s *Store) UpdateStaff(ctx context.Context, id string, updates map[string]any) {
	user := s.findUser(id)
	if user == nil {
		return
	}

	applyUserUpdates(user, updates)
	s.persist(ctx)
}

// AssignStaffToHostel moves a staff member to another hostel. Non-staff
// targets are ignored.
func (s *Store) AssignStaffToHostel(ctx context.Context, staffID, hostelID string) {
	user := s.findUser(staffID)
	if user == nil || user.Role != models.RoleStaff {
		return
	}

	assigned := hostelID
	user.HostelID = &assigned
	s.persist(ctx)
	s.logger.Info().Str("user_id", staffID).Str("hostel_id", hostelID).Msg("staff reassigned")
}
