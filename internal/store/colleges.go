package store

import (
	"context"
	"strings"

	"github.com/noah-isme/hostel-hive-go/internal/models"
)

// AddCollege appends a college unless one with the same name already exists,
// compared case-insensitively. Colleges are never edited or deleted.
func (s *Store) AddCollege(ctx context.Context, name string, isCustom bool) {
	for i := range s.colleges {
		if strings.EqualFold(s.colleges[i].Name, name) {
			return
		}
	}

	s.colleges = append(s.colleges, models.College{
		ID:       s.newID(),
		Name:     name,
		IsCustom: isCustom,
	})
	s.persist(ctx)
	s.logger.Info().Str("name", name).Bool("custom", isCustom).Msg("college added")
}
