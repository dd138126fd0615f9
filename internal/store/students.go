package store

import (
	"context"

	"github.com/noah-isme/hostel-hive-go/internal/models"
)

// SelectHostel records a student's hostel choice and unconditionally clears
// any existing room selection. Non-student targets are ignored.
func (s *Store) SelectHostel(ctx context.Context, studentID, hostelID string) {
	user := s.findUser(studentID)
	if user == nil || user.Role != models.RoleStudent {
		return
	}

	selected := hostelID
	user.HostelID = &selected
	user.RoomID = nil
	s.refreshSession(*user)
	s.persist(ctx)
}

// SelectRoom assigns the student to the room when a bed is free. The room's
// hostel is not checked against the student's selected hostel; the view
// layer filters rooms before offering them.
func (s *Store) SelectRoom(ctx context.Context, studentID, roomID string) {
	room := s.findRoom(roomID)
	if room == nil || room.IsFull() {
		return
	}

	if user := s.findUser(studentID); user != nil && user.Role == models.RoleStudent {
		selected := roomID
		user.RoomID = &selected
		s.refreshSession(*user)
	}

	room.Occupants = append(room.Occupants, studentID)
	if room.IsFull() {
		room.Status = models.RoomStatusFull
	} else {
		room.Status = models.RoomStatusAvailable
	}
	s.persist(ctx)
	s.logger.Info().Str("student_id", studentID).Str("room_id", roomID).Msg("room selected")
}

// LeaveRoom releases the student's bed. The room status is reset to
// available unconditionally, clobbering a manual maintenance override.
func (s *Store) LeaveRoom(ctx context.Context, studentID string) {
	user := s.findUser(studentID)
	if user == nil || user.RoomID == nil {
		return
	}

	roomID := *user.RoomID
	if user.Role == models.RoleStudent {
		user.RoomID = nil
		s.refreshSession(*user)
	}

	if room := s.findRoom(roomID); room != nil {
		occupants := make([]string, 0, len(room.Occupants))
		for _, id := range room.Occupants {
			if id != studentID {
				occupants = append(occupants, id)
			}
		}
		room.Occupants = occupants
		room.Status = models.RoomStatusAvailable
	}

	s.persist(ctx)
	s.logger.Info().Str("student_id", studentID).Str("room_id", roomID).Msg("room released")
}
