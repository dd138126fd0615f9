package models

// ComplaintTotals counts complaints per status.
type ComplaintTotals struct {
	Pending  int `json:"pending"`
	InReview int `json:"in_review"`
	Resolved int `json:"resolved"`
}

// Analytics aggregates occupancy and complaint figures for the admin
// overview.
type Analytics struct {
	TotalStudents        int             `json:"total_students"`
	TotalStaff           int             `json:"total_staff"`
	TotalHostels         int             `json:"total_hostels"`
	TotalRooms           int             `json:"total_rooms"`
	OccupancyRate        float64         `json:"occupancy_rate"`
	ComplaintsByStatus   ComplaintTotals `json:"complaints_by_status"`
	ComplaintsByCollege  map[string]int  `json:"complaints_by_college"`
	ComplaintsByCategory map[string]int  `json:"complaints_by_category"`
}
