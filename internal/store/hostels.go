package store

import (
	"context"

	"github.com/noah-isme/hostel-hive-go/internal/models"
)

// HostelData is the payload for creating a hostel.
type HostelData struct {
	Name        string `validate:"required"`
	CollegeName string `validate:"required"`
	Address     string
	TotalRooms  int
}

// AddHostel creates a hostel and returns the stored record.
func (s *Store) AddHostel(ctx context.Context, data HostelData) models.Hostel {
	if err := s.validate.Struct(data); err != nil {
		s.logger.Warn().Err(err).Msg("hostel payload rejected")
		return models.Hostel{}
	}

	hostel := models.Hostel{
		ID:          s.newID(),
		Name:        data.Name,
		CollegeName: data.CollegeName,
		Address:     data.Address,
		TotalRooms:  data.TotalRooms,
		CreatedAt:   s.now(),
	}

	s.hostels = append(s.hostels, hostel)
	s.persist(ctx)
	s.logger.Info().Str("hostel_id", hostel.ID).Str("name", hostel.Name).Msg("hostel added")
	return hostel
}

// UpdateHostel applies a partial update to a hostel.
func (s *Store) UpdateHostel(ctx context.Context, id string, updates map[string]any) {
	for i := range s.hostels {
		if s.hostels[i].ID != id {
			continue
		}

		hostel := &s.hostels[i]
		for key, value := range updates {
			switch key {
			case "name":
				if v, ok := value.(string); ok {
					hostel.Name = v
				}
			case "college_name":
				if v, ok := value.(string); ok {
					hostel.CollegeName = v
				}
			case "address":
				if v, ok := value.(string); ok {
					hostel.Address = v
				}
			case "total_rooms":
				if v, ok := value.(int); ok {
					hostel.TotalRooms = v
				}
			}
		}

		s.persist(ctx)
		return
	}
}

// DeleteHostel removes the hostel and cascades to every room that belongs to
// it. User references to the hostel or its rooms are not cleared.
func (s *Store) DeleteHostel(ctx context.Context, id string) {
	hostels := make([]models.Hostel, 0, len(s.hostels))
	for _, h := range s.hostels {
		if h.ID != id {
			hostels = append(hostels, h)
		}
	}
	if len(hostels) == len(s.hostels) {
		return
	}

	rooms := make([]models.Room, 0, len(s.rooms))
	removed := 0
	for _, r := range s.rooms {
		if r.HostelID == id {
			removed++
			continue
		}
		rooms = append(rooms, r)
	}

	s.hostels = hostels
	s.rooms = rooms
	s.persist(ctx)
	s.logger.Info().Str("hostel_id", id).Int("rooms_removed", removed).Msg("hostel deleted")
}
