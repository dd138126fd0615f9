package store

import (
	"context"

	"github.com/noah-isme/hostel-hive-go/internal/models"
)

// ComplaintData is the payload for raising a complaint. StudentName and
// CollegeName are denormalized snapshots supplied by the caller.
type ComplaintData struct {
	StudentID       string `validate:"required"`
	StudentName     string
	CollegeName     string
	HostelID        string
	RoomID          string
	AssignedStaffID *string
	Title           string `validate:"required"`
	Description     string
	Category        string
	Status          string `validate:"required,oneof=pending in_review resolved"`
	Priority        string `validate:"required,oneof=low medium high"`
	ImageURL        *string
}

// CreateComplaint appends a new complaint with fresh timestamps and empty
// resolution fields, returning the stored record.
func (s *Store) CreateComplaint(ctx context.Context, data ComplaintData) models.Complaint {
	if err := s.validate.Struct(data); err != nil {
		s.logger.Warn().Err(err).Msg("complaint payload rejected")
		return models.Complaint{}
	}

	now := s.now()
	complaint := models.Complaint{
		ID:              s.newID(),
		StudentID:       data.StudentID,
		StudentName:     data.StudentName,
		CollegeName:     data.CollegeName,
		HostelID:        data.HostelID,
		RoomID:          data.RoomID,
		AssignedStaffID: data.AssignedStaffID,
		Title:           data.Title,
		Description:     data.Description,
		Category:        data.Category,
		Status:          data.Status,
		Priority:        data.Priority,
		ImageURL:        data.ImageURL,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	s.complaints = append(s.complaints, complaint)
	s.persist(ctx)
	s.logger.Info().Str("complaint_id", complaint.ID).Str("student_id", complaint.StudentID).Msg("complaint created")
	return complaint
}

// UpdateComplaintStatus sets the status and refreshes UpdatedAt. The note
// and resolution image overwrite prior values only when supplied non-empty;
// transitions are unconstrained, any status may follow any other.
func (s *Store) UpdateComplaintStatus(ctx context.Context, id, status, note, resolutionImage string) {
	complaint := s.findComplaint(id)
	if complaint == nil {
		return
	}

	complaint.Status = status
	if note != "" {
		resolutionNote := note
		complaint.ResolutionNote = &resolutionNote
	}
	if resolutionImage != "" {
		imageURL := resolutionImage
		complaint.ResolutionImageURL = &imageURL
	}
	complaint.UpdatedAt = s.now()
	s.persist(ctx)
	s.logger.Info().Str("complaint_id", id).Str("status", status).Msg("complaint status updated")
}

// AssignStaffToComplaint records the handling staff member. The id is not
// checked against the user collection.
func (s *Store) AssignStaffToComplaint(ctx context.Context, complaintID, staffID string) {
	complaint := s.findComplaint(complaintID)
	if complaint == nil {
		return
	}

	assigned := staffID
	complaint.AssignedStaffID = &assigned
	complaint.UpdatedAt = s.now()
	s.persist(ctx)
	s.logger.Info().Str("complaint_id", complaintID).Str("staff_id", staffID).Msg("complaint assigned")
}
