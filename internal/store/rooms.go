package store

import (
	"context"

	"github.com/noah-isme/hostel-hive-go/internal/models"
)

// RoomData is the payload for creating a room. Callers supply the initial
// status; occupants always start empty.
type RoomData struct {
	HostelID   string `validate:"required"`
	RoomNumber string `validate:"required"`
	Floor      int
	Capacity   int `validate:"required,min=1"`
	Amenities  []string
	Status     string `validate:"required,oneof=available full maintenance"`
}

// AddRoom creates a room and returns the stored record.
func (s *Store) AddRoom(ctx context.Context, data RoomData) models.Room {
	if err := s.validate.Struct(data); err != nil {
		s.logger.Warn().Err(err).Msg("room payload rejected")
		return models.Room{}
	}

	room := models.Room{
		ID:         s.newID(),
		HostelID:   data.HostelID,
		RoomNumber: data.RoomNumber,
		Floor:      data.Floor,
		Capacity:   data.Capacity,
		Occupants:  []string{},
		Amenities:  data.Amenities,
		Status:     data.Status,
	}

	s.rooms = append(s.rooms, room)
	s.persist(ctx)
	s.logger.Info().Str("room_id", room.ID).Str("hostel_id", room.HostelID).Msg("room added")
	return room
}

// UpdateRoom applies a partial update to a room. Setting the status key to
// maintenance is the manual override the derived statuses never produce.
func (s *Store) UpdateRoom(ctx context.Context, id string, updates map[string]any) {
	room := s.findRoom(id)
	if room == nil {
		return
	}

	for key, value := range updates {
		switch key {
		case "room_number":
			if v, ok := value.(string); ok {
				room.RoomNumber = v
			}
		case "floor":
			if v, ok := value.(int); ok {
				room.Floor = v
			}
		case "capacity":
			if v, ok := value.(int); ok {
				room.Capacity = v
			}
		case "amenities":
			if v, ok := value.([]string); ok {
				room.Amenities = v
			}
		case "status":
			if v, ok := value.(string); ok {
				room.Status = v
			}
		case "hostel_id":
			if v, ok := value.(string); ok {
				room.HostelID = v
			}
		}
	}

	s.persist(ctx)
}

// DeleteRoom removes the room. Student RoomID references are not retracted.
func (s *Store) DeleteRoom(ctx context.Context, id string) {
	rooms := make([]models.Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		if r.ID != id {
			rooms = append(rooms, r)
		}
	}
	if len(rooms) == len(s.rooms) {
		return
	}

	s.rooms = rooms
	s.persist(ctx)
	s.logger.Info().Str("room_id", id).Msg("room deleted")
}
