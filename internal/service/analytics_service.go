package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/hostel-hive-go/internal/models"
)

const analyticsCacheKey = "analytics:overview"

// StateReader provides the collections the analytics aggregation reads.
// *store.Store satisfies it.
type StateReader interface {
	Users() []models.User
	Hostels() []models.Hostel
	Rooms() []models.Room
	Complaints() []models.Complaint
}

// AnalyticsService produces the aggregated figures shown on the admin
// overview.
type AnalyticsService interface {
	Overview(ctx context.Context) models.Analytics
}

type analyticsService struct {
	state    StateReader
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewAnalyticsService builds the analytics aggregator. A nil cache client
// disables caching; staleness within the TTL is accepted, mutations do not
// invalidate.
func NewAnalyticsService(state StateReader, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) AnalyticsService {
	return &analyticsService{
		state:    state,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "analytics_service").Logger(),
	}
}

func (s *analyticsService) Overview(ctx context.Context) models.Analytics {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, analyticsCacheKey).Result(); err == nil {
			var analytics models.Analytics
			if unmarshalErr := json.Unmarshal([]byte(cached), &analytics); unmarshalErr == nil {
				s.logger.Debug().Msg("analytics cache hit")
				return analytics
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read analytics cache")
		}
	}

	analytics := s.build()

	if s.cache != nil {
		payload, err := json.Marshal(analytics)
		if err == nil {
			if err := s.cache.Set(ctx, analyticsCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store analytics cache")
			}
		}
	}

	return analytics
}

func (s *analyticsService) build() models.Analytics {
	analytics := models.Analytics{
		ComplaintsByCollege:  map[string]int{},
		ComplaintsByCategory: map[string]int{},
	}

	for _, user := range s.state.Users() {
		switch user.Role {
		case models.RoleStudent:
			analytics.TotalStudents++
		case models.RoleStaff:
			analytics.TotalStaff++
		}
	}

	analytics.TotalHostels = len(s.state.Hostels())

	var totalBeds, occupiedBeds int
	for _, room := range s.state.Rooms() {
		analytics.TotalRooms++
		totalBeds += room.Capacity
		occupiedBeds += len(room.Occupants)
	}
	if totalBeds > 0 {
		rate := float64(occupiedBeds) / float64(totalBeds) * 100
		analytics.OccupancyRate = math.Round(rate*10) / 10
	}

	for _, complaint := range s.state.Complaints() {
		switch complaint.Status {
		case models.ComplaintStatusPending:
			analytics.ComplaintsByStatus.Pending++
		case models.ComplaintStatusInReview:
			analytics.ComplaintsByStatus.InReview++
		case models.ComplaintStatusResolved:
			analytics.ComplaintsByStatus.Resolved++
		}
		analytics.ComplaintsByCollege[complaint.CollegeName]++
		analytics.ComplaintsByCategory[complaint.Category]++
	}

	return analytics
}
