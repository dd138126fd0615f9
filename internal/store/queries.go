package store

import "github.com/noah-isme/hostel-hive-go/internal/models"

// Read accessors return copies; callers never observe partially applied
// mutations or alias store-owned slices.

// CurrentUser returns the session user, if any.
func (s *Store) CurrentUser() (models.User, bool) {
	if s.session == nil {
		return models.User{}, false
	}
	return *s.session, true
}

// Users returns all user records.
func (s *Store) Users() []models.User {
	return append([]models.User(nil), s.users...)
}

// UserByID looks a user up by id.
func (s *Store) UserByID(id string) (models.User, bool) {
	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], true
		}
	}
	return models.User{}, false
}

// UserByEmail looks a user up by exact, case-sensitive email.
func (s *Store) UserByEmail(email string) (models.User, bool) {
	for i := range s.users {
		if s.users[i].Email == email {
			return s.users[i], true
		}
	}
	return models.User{}, false
}

func (s *Store) usersByRole(role string) []models.User {
	matched := make([]models.User, 0)
	for _, u := range s.users {
		if u.Role == role {
			matched = append(matched, u)
		}
	}
	return matched
}

// Students returns all student accounts.
func (s *Store) Students() []models.User {
	return s.usersByRole(models.RoleStudent)
}

// Staff returns all maintenance staff accounts.
func (s *Store) Staff() []models.User {
	return s.usersByRole(models.RoleStaff)
}

// Wardens returns all warden accounts.
func (s *Store) Wardens() []models.User {
	return s.usersByRole(models.RoleWarden)
}

// Hostels returns all hostels.
func (s *Store) Hostels() []models.Hostel {
	return append([]models.Hostel(nil), s.hostels...)
}

// HostelByID looks a hostel up by id.
func (s *Store) HostelByID(id string) (models.Hostel, bool) {
	for i := range s.hostels {
		if s.hostels[i].ID == id {
			return s.hostels[i], true
		}
	}
	return models.Hostel{}, false
}

// HostelsForWarden returns the hostels assigned to the given warden.
func (s *Store) HostelsForWarden(wardenID string) []models.Hostel {
	warden := s.findUser(wardenID)
	if warden == nil || warden.Role != models.RoleWarden {
		return nil
	}

	assigned := make(map[string]bool, len(warden.HostelIDs))
	for _, id := range warden.HostelIDs {
		assigned[id] = true
	}

	hostels := make([]models.Hostel, 0, len(assigned))
	for _, h := range s.hostels {
		if assigned[h.ID] {
			hostels = append(hostels, h)
		}
	}
	return hostels
}

// Rooms returns all rooms.
func (s *Store) Rooms() []models.Room {
	return append([]models.Room(nil), s.rooms...)
}

// RoomByID looks a room up by id.
func (s *Store) RoomByID(id string) (models.Room, bool) {
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			return s.rooms[i], true
		}
	}
	return models.Room{}, false
}

// RoomsByHostel returns the rooms belonging to a hostel.
func (s *Store) RoomsByHostel(hostelID string) []models.Room {
	rooms := make([]models.Room, 0)
	for _, r := range s.rooms {
		if r.HostelID == hostelID {
			rooms = append(rooms, r)
		}
	}
	return rooms
}

// Complaints returns all complaints.
func (s *Store) Complaints() []models.Complaint {
	return append([]models.Complaint(nil), s.complaints...)
}

// ComplaintByID looks a complaint up by id.
func (s *Store) ComplaintByID(id string) (models.Complaint, bool) {
	for i := range s.complaints {
		if s.complaints[i].ID == id {
			return s.complaints[i], true
		}
	}
	return models.Complaint{}, false
}

// ComplaintsByStudent returns the complaints raised by a student.
func (s *Store) ComplaintsByStudent(studentID string) []models.Complaint {
	complaints := make([]models.Complaint, 0)
	for _, c := range s.complaints {
		if c.StudentID == studentID {
			complaints = append(complaints, c)
		}
	}
	return complaints
}

// ComplaintsByStaff returns the complaints assigned to a staff member.
func (s *Store) ComplaintsByStaff(staffID string) []models.Complaint {
	complaints := make([]models.Complaint, 0)
	for _, c := range s.complaints {
		if c.AssignedStaffID != nil && *c.AssignedStaffID == staffID {
			complaints = append(complaints, c)
		}
	}
	return complaints
}

// ComplaintsByHostels returns the complaints raised against any of the given
// hostels.
func (s *Store) ComplaintsByHostels(hostelIDs []string) []models.Complaint {
	wanted := make(map[string]bool, len(hostelIDs))
	for _, id := range hostelIDs {
		wanted[id] = true
	}

	complaints := make([]models.Complaint, 0)
	for _, c := range s.complaints {
		if wanted[c.HostelID] {
			complaints = append(complaints, c)
		}
	}
	return complaints
}

// Colleges returns the college catalog.
func (s *Store) Colleges() []models.College {
	return append([]models.College(nil), s.colleges...)
}
