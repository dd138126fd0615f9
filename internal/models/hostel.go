package models

import "time"

// Hostel is a dormitory building attached to a college. TotalRooms is a
// declared capacity hint and is not reconciled against the room collection.
type Hostel struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CollegeName string    `json:"college_name"`
	Address     string    `json:"address"`
	TotalRooms  int       `json:"total_rooms"`
	CreatedAt   time.Time `json:"created_at"`
}
