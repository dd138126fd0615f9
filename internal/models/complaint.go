package models

import "time"

// Complaint statuses.
const (
	ComplaintStatusPending  = "pending"
	ComplaintStatusInReview = "in_review"
	ComplaintStatusResolved = "resolved"
)

// Complaint priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Complaint is raised by a student with a room assignment. StudentName and
// CollegeName are denormalized snapshots taken at creation time and are not
// kept in sync with the user record afterwards.
type Complaint struct {
	ID                 string    `json:"id"`
	StudentID          string    `json:"student_id"`
	StudentName        string    `json:"student_name"`
	CollegeName        string    `json:"college_name"`
	HostelID           string    `json:"hostel_id"`
	RoomID             string    `json:"room_id"`
	AssignedStaffID    *string   `json:"assigned_staff_id"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	Status             string    `json:"status"`
	Priority           string    `json:"priority"`
	ImageURL           *string   `json:"image_url"`
	ResolutionImageURL *string   `json:"resolution_image_url"`
	ResolutionNote     *string   `json:"resolution_note"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// IsResolved reports whether the complaint has reached the resolved state.
func (c Complaint) IsResolved() bool {
	return c.Status == ComplaintStatusResolved
}
