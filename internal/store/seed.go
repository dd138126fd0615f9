package store

import (
	"context"
	"strconv"

	"github.com/noah-isme/hostel-hive-go/internal/models"
)

// collegeCatalog is the pre-seeded list students choose from during signup.
var collegeCatalog = []string{
	"Indian Institute of Technology (IIT) Delhi",
	"Indian Institute of Technology (IIT) Bombay",
	"Indian Institute of Technology (IIT) Madras",
	"Indian Institute of Technology (IIT) Kanpur",
	"Indian Institute of Technology (IIT) Kharagpur",
	"Indian Institute of Technology (IIT) Roorkee",
	"Indian Institute of Technology (IIT) Guwahati",
	"Indian Institute of Technology (IIT) Hyderabad",
	"National Institute of Technology (NIT) Trichy",
	"National Institute of Technology (NIT) Warangal",
	"National Institute of Technology (NIT) Surathkal",
	"National Institute of Technology (NIT) Calicut",
	"BITS Pilani",
	"BITS Hyderabad",
	"BITS Goa",
	"VIT Vellore",
	"VIT Chennai",
	"SRM Institute of Science and Technology",
	"Manipal Institute of Technology",
	"Amity University Noida",
	"Lovely Professional University",
	"Christ University Bangalore",
	"Symbiosis International University",
	"Anna University Chennai",
	"Jadavpur University Kolkata",
	"University of Delhi",
	"Jawaharlal Nehru University (JNU)",
	"Banaras Hindu University (BHU)",
	"Aligarh Muslim University (AMU)",
	"Jamia Millia Islamia",
	"Chandigarh University",
	"Thapar Institute of Engineering & Technology",
	"PSG College of Technology",
	"Amrita Vishwa Vidyapeetham",
	"IIIT Hyderabad",
	"IIIT Delhi",
	"IIIT Bangalore",
	"Delhi Technological University (DTU)",
	"Netaji Subhas University of Technology (NSUT)",
	"IGDTUW Delhi",
	"PEC Chandigarh",
	"COEP Pune",
	"VJTI Mumbai",
	"ICT Mumbai",
	"RVCE Bangalore",
	"BMS College of Engineering",
	"PES University",
	"MS Ramaiah Institute of Technology",
	"SSN College of Engineering",
	"CEG Anna University",
	"MIT Pune",
	"KIIT University Bhubaneswar",
	"SRM AP University",
	"Shiv Nadar University",
	"Ashoka University",
	"FLAME University",
	"OP Jindal Global University",
	"Kalinga Institute of Industrial Technology",
	"Chitkara University",
	"Bennett University",
}

// Seed resets the store to its initial state: the college catalog, the fixed
// administrator account built from the configured credentials and, when
// enabled, a handful of demo hostels and rooms. The seeded state is
// persisted immediately.
func (s *Store) Seed(ctx context.Context) {
	now := s.now()

	s.colleges = make([]models.College, 0, len(collegeCatalog))
	for i, name := range collegeCatalog {
		s.colleges = append(s.colleges, models.College{ID: strconv.Itoa(i + 1), Name: name})
	}

	s.users = []models.User{{
		ID:        "admin1",
		Email:     s.adminEmail,
		Password:  s.adminPassword,
		Role:      models.RoleAdmin,
		FullName:  "System Administrator",
		Status:    models.UserStatusActive,
		CreatedAt: now,
	}}

	s.hostels = nil
	s.rooms = nil
	if s.seedDemo {
		s.hostels = []models.Hostel{
			{ID: "h1", Name: "Vindhya Hostel", CollegeName: "Indian Institute of Technology (IIT) Delhi", Address: "IIT Delhi Campus, Hauz Khas", TotalRooms: 100, CreatedAt: now},
			{ID: "h2", Name: "Kumaon Hostel", CollegeName: "Indian Institute of Technology (IIT) Delhi", Address: "IIT Delhi Campus, Hauz Khas", TotalRooms: 80, CreatedAt: now},
			{ID: "h3", Name: "Hostel 1", CollegeName: "Indian Institute of Technology (IIT) Bombay", Address: "IIT Bombay, Powai", TotalRooms: 120, CreatedAt: now},
			{ID: "h4", Name: "Krishna Hostel", CollegeName: "VIT Vellore", Address: "VIT Campus, Vellore", TotalRooms: 200, CreatedAt: now},
			{ID: "h5", Name: "Men's Hostel A", CollegeName: "BITS Pilani", Address: "BITS Pilani Campus", TotalRooms: 150, CreatedAt: now},
		}
		s.rooms = []models.Room{
			{ID: "r1", HostelID: "h1", RoomNumber: "101", Floor: 1, Capacity: 2, Occupants: []string{}, Amenities: []string{"AC", "WiFi", "Attached Bath"}, Status: models.RoomStatusAvailable},
			{ID: "r2", HostelID: "h1", RoomNumber: "102", Floor: 1, Capacity: 2, Occupants: []string{}, Amenities: []string{"Fan", "WiFi"}, Status: models.RoomStatusAvailable},
			{ID: "r3", HostelID: "h1", RoomNumber: "201", Floor: 2, Capacity: 3, Occupants: []string{}, Amenities: []string{"AC", "WiFi", "Balcony"}, Status: models.RoomStatusAvailable},
			{ID: "r4", HostelID: "h2", RoomNumber: "101", Floor: 1, Capacity: 2, Occupants: []string{}, Amenities: []string{"AC", "WiFi"}, Status: models.RoomStatusAvailable},
			{ID: "r5", HostelID: "h2", RoomNumber: "102", Floor: 1, Capacity: 2, Occupants: []string{}, Amenities: []string{"Fan", "WiFi"}, Status: models.RoomStatusAvailable},
			{ID: "r6", HostelID: "h3", RoomNumber: "101", Floor: 1, Capacity: 4, Occupants: []string{}, Amenities: []string{"AC", "WiFi", "Study Room"}, Status: models.RoomStatusAvailable},
			{ID: "r7", HostelID: "h4", RoomNumber: "A-101", Floor: 1, Capacity: 3, Occupants: []string{}, Amenities: []string{"AC", "WiFi", "Attached Bath"}, Status: models.RoomStatusAvailable},
			{ID: "r8", HostelID: "h4", RoomNumber: "A-102", Floor: 1, Capacity: 3, Occupants: []string{}, Amenities: []string{"AC", "WiFi"}, Status: models.RoomStatusAvailable},
			{ID: "r9", HostelID: "h5", RoomNumber: "B-201", Floor: 2, Capacity: 2, Occupants: []string{}, Amenities: []string{"AC", "WiFi", "Attached Bath"}, Status: models.RoomStatusAvailable},
		}
	}

	s.complaints = []models.Complaint{}
	s.session = nil
	s.persist(ctx)
	s.logger.Info().
		Int("colleges", len(s.colleges)).
		Int("hostels", len(s.hostels)).
		Int("rooms", len(s.rooms)).
		Msg("initial data seeded")
}
