package store

import (
	"context"

	"github.com/noah-isme/hostel-hive-go/internal/models"
)

// UpdateUser applies a partial update to any user, including the
// administrator. Unknown keys are ignored; the role is immutable and cannot
// be patched. The session copy is refreshed when the update targets the
// logged-in user.
func (s *Store) UpdateUser(ctx context.Context, id string, updates map[string]any) {
	user := s.findUser(id)
	if user == nil {
		return
	}

	applyUserUpdates(user, updates)
	s.refreshSession(*user)
	s.persist(ctx)
}

// BlockUser sets the user's status to blocked. The administrator cannot be
// blocked.
func (s *Store) BlockUser(ctx context.Context, id string) {
	user := s.findUser(id)
	if user == nil || user.IsAdmin() {
		return
	}

	user.Status = models.UserStatusBlocked
	s.refreshSession(*user)
	s.persist(ctx)
	s.logger.Info().Str("user_id", id).Msg("user blocked")
}

// UnblockUser sets the user's status back to active. The administrator is
// guarded the same way as in BlockUser.
func (s *Store) UnblockUser(ctx context.Context, id string) {
	user := s.findUser(id)
	if user == nil || user.IsAdmin() {
		return
	}

	user.Status = models.UserStatusActive
	s.refreshSession(*user)
	s.persist(ctx)
	s.logger.Info().Str("user_id", id).Msg("user unblocked")
}

// DeleteUser removes the user from the collection. The administrator cannot
// be deleted. References held by rooms, complaints or staff assignments are
// not retracted.
func (s *Store) DeleteUser(ctx context.Context, id string) {
	user := s.findUser(id)
	if user == nil || user.IsAdmin() {
		return
	}

	filtered := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		if u.ID != id {
			filtered = append(filtered, u)
		}
	}
	s.users = filtered
	s.persist(ctx)
	s.logger.Info().Str("user_id", id).Msg("user deleted")
}

func applyUserUpdates(user *models.User, updates map[string]any) {
	for key, value := range updates {
		switch key {
		case "email":
			if v, ok := value.(string); ok {
				user.Email = v
			}
		case "password":
			if v, ok := value.(string); ok {
				user.Password = v
			}
		case "full_name":
			if v, ok := value.(string); ok {
				user.FullName = v
			}
		case "phone":
			if v, ok := value.(string); ok {
				user.Phone = v
			}
		case "status":
			if v, ok := value.(string); ok {
				user.Status = v
			}
		case "college_name":
			if v, ok := value.(string); ok {
				user.CollegeName = v
			}
		case "specialization":
			if v, ok := value.(string); ok {
				user.Specialization = v
			}
		case "hostel_id":
			switch v := value.(type) {
			case string:
				hostelID := v
				user.HostelID = &hostelID
			case nil:
				user.HostelID = nil
			}
		case "room_id":
			switch v := value.(type) {
			case string:
				roomID := v
				user.RoomID = &roomID
			case nil:
				user.RoomID = nil
			}
		case "hostel_ids":
			if v, ok := value.([]string); ok {
				user.HostelIDs = v
			}
		}
	}
}
