package models

import "time"

// User roles.
const (
	RoleAdmin   = "admin"
	RoleWarden  = "warden"
	RoleStaff   = "staff"
	RoleStudent = "student"
)

// User account statuses.
const (
	UserStatusActive  = "active"
	UserStatusBlocked = "blocked"
)

// User represents any account known to the store. The role is fixed at
// creation; role-dependent fields are populated only for the role they
// belong to.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Role      string    `json:"role"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`

	// Student fields.
	CollegeName string  `json:"college_name,omitempty"`
	HostelID    *string `json:"hostel_id,omitempty"`
	RoomID      *string `json:"room_id,omitempty"`

	// Staff fields.
	Specialization string `json:"specialization,omitempty"`

	// Warden fields.
	HostelIDs []string `json:"hostel_ids,omitempty"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsBlocked reports whether the account has been blocked.
func (u User) IsBlocked() bool {
	return u.Status == UserStatusBlocked
}
