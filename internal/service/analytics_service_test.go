package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hostel-hive-go/internal/models"
)

type stateStub struct {
	users      []models.User
	hostels    []models.Hostel
	rooms      []models.Room
	complaints []models.Complaint
}

func (s *stateStub) Users() []models.User           { return s.users }
func (s *stateStub) Hostels() []models.Hostel       { return s.hostels }
func (s *stateStub) Rooms() []models.Room           { return s.rooms }
func (s *stateStub) Complaints() []models.Complaint { return s.complaints }

func testState() *stateStub {
	return &stateStub{
		users: []models.User{
			{ID: "admin1", Role: models.RoleAdmin},
			{ID: "s1", Role: models.RoleStudent},
			{ID: "s2", Role: models.RoleStudent},
			{ID: "st1", Role: models.RoleStaff},
		},
		hostels: []models.Hostel{{ID: "h1"}, {ID: "h2"}},
		rooms: []models.Room{
			{ID: "r1", Capacity: 2, Occupants: []string{"s1", "s2"}},
			{ID: "r2", Capacity: 4, Occupants: []string{}},
		},
		complaints: []models.Complaint{
			{ID: "c1", Status: models.ComplaintStatusPending, CollegeName: "X", Category: "Plumbing"},
			{ID: "c2", Status: models.ComplaintStatusResolved, CollegeName: "X", Category: "Electrical"},
			{ID: "c3", Status: models.ComplaintStatusInReview, CollegeName: "Y", Category: "Plumbing"},
		},
	}
}

func TestAnalyticsOverview(t *testing.T) {
	svc := NewAnalyticsService(testState(), nil, time.Minute, zerolog.Nop())

	overview := svc.Overview(context.Background())
	require.Equal(t, 2, overview.TotalStudents)
	require.Equal(t, 1, overview.TotalStaff)
	require.Equal(t, 2, overview.TotalHostels)
	require.Equal(t, 2, overview.TotalRooms)
	// 2 occupied beds of 6, rounded to one decimal.
	require.InDelta(t, 33.3, overview.OccupancyRate, 0.001)
	require.Equal(t, 1, overview.ComplaintsByStatus.Pending)
	require.Equal(t, 1, overview.ComplaintsByStatus.InReview)
	require.Equal(t, 1, overview.ComplaintsByStatus.Resolved)
	require.Equal(t, 2, overview.ComplaintsByCollege["X"])
	require.Equal(t, 2, overview.ComplaintsByCategory["Plumbing"])
}

func TestAnalyticsOverviewNoBeds(t *testing.T) {
	svc := NewAnalyticsService(&stateStub{}, nil, time.Minute, zerolog.Nop())

	overview := svc.Overview(context.Background())
	require.Zero(t, overview.OccupancyRate)
	require.Empty(t, overview.ComplaintsByCollege)
}

func TestAnalyticsOverviewCaching(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	state := testState()
	svc := NewAnalyticsService(state, client, time.Minute, zerolog.Nop())

	first := svc.Overview(context.Background())
	require.Equal(t, 2, first.TotalStudents)

	// The cached payload is served until the TTL expires, even after the
	// underlying state changes.
	state.users = append(state.users, models.User{ID: "s3", Role: models.RoleStudent})
	cached := svc.Overview(context.Background())
	require.Equal(t, 2, cached.TotalStudents)

	server.FastForward(2 * time.Minute)
	fresh := svc.Overview(context.Background())
	require.Equal(t, 3, fresh.TotalStudents)
}
