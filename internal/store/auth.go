package store

import (
	"context"

	"github.com/noah-isme/hostel-hive-go/internal/models"
)

// SignupData is the payload for self-registration. Role-specific fields are
// only honored for the role they belong to.
type SignupData struct {
	Email          string `validate:"required,email"`
	Password       string `validate:"required"`
	FullName       string `validate:"required"`
	Phone          string
	Role           string `validate:"required,oneof=warden staff student"`
	CollegeName    string
	Specialization string
	HostelID       string
}

// Login authenticates by plaintext equality. The fixed administrator
// credentials are checked first; every call is independent, there is no
// lockout or rate limiting.
func (s *Store) Login(ctx context.Context, email, password string) Result {
	if email == s.adminEmail && password == s.adminPassword {
		for i := range s.users {
			user := s.users[i]
			if user.Role == models.RoleAdmin && user.Email == s.adminEmail {
				s.session = &user
				s.persist(ctx)
				s.logger.Info().Str("user_id", user.ID).Msg("admin logged in")
				return Result{Success: true, Message: "Admin login successful"}
			}
		}
	}

	for i := range s.users {
		user := s.users[i]
		if user.Email != email || user.Password != password {
			continue
		}
		if user.IsBlocked() {
			return Result{Success: false, Message: "Your account has been blocked. Contact admin."}
		}
		s.session = &user
		s.persist(ctx)
		s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user logged in")
		return Result{Success: true, Message: "Login successful"}
	}

	return Result{Success: false, Message: "Invalid email or password"}
}

// Signup registers a new warden, staff or student account. The new account
// is not logged in.
func (s *Store) Signup(ctx context.Context, data SignupData) Result {
	if data.Role == models.RoleAdmin {
		return Result{Success: false, Message: "Admin registration is not allowed"}
	}

	for i := range s.users {
		if s.users[i].Email == data.Email {
			return Result{Success: false, Message: "Email already registered"}
		}
	}

	if len(data.Password) < 6 {
		return Result{Success: false, Message: "Password must be at least 6 characters"}
	}

	if err := s.validate.Struct(data); err != nil {
		s.logger.Warn().Err(err).Msg("signup payload rejected")
		return Result{Success: false, Message: "Invalid signup details"}
	}

	user := models.User{
		ID:          s.newID(),
		Email:       data.Email,
		Password:    data.Password,
		Role:        data.Role,
		FullName:    data.FullName,
		Phone:       data.Phone,
		Status:      models.UserStatusActive,
		CollegeName: data.CollegeName,
		CreatedAt:   s.now(),
	}

	switch data.Role {
	case models.RoleStaff:
		if data.HostelID != "" {
			hostelID := data.HostelID
			user.HostelID = &hostelID
		}
		user.Specialization = data.Specialization
	case models.RoleWarden:
		user.HostelIDs = []string{}
	}

	s.users = append(s.users, user)
	s.persist(ctx)
	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("account created")
	return Result{Success: true, Message: "Account created successfully! You can now login."}
}

// Logout clears the session pointer. No other state changes.
func (s *Store) Logout(ctx context.Context) {
	s.session = nil
	s.persist(ctx)
}
