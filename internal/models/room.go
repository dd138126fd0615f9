package models

// Room statuses. Available and full are derived from occupancy; maintenance
// is a manual override set through room updates.
const (
	RoomStatusAvailable   = "available"
	RoomStatusFull        = "full"
	RoomStatusMaintenance = "maintenance"
)

// Room belongs to a hostel and tracks its occupants by student id.
type Room struct {
	ID         string   `json:"id"`
	HostelID   string   `json:"hostel_id"`
	RoomNumber string   `json:"room_number"`
	Floor      int      `json:"floor"`
	Capacity   int      `json:"capacity"`
	Occupants  []string `json:"occupants"`
	Amenities  []string `json:"amenities"`
	Status     string   `json:"status"`
}

// IsFull reports whether the room has no free beds left.
func (r Room) IsFull() bool {
	return len(r.Occupants) >= r.Capacity
}

// HasOccupant reports whether the given student occupies the room.
func (r Room) HasOccupant(studentID string) bool {
	for _, id := range r.Occupants {
		if id == studentID {
			return true
		}
	}
	return false
}
