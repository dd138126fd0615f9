package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/hostel-hive-go/internal/models"
)

func newComplaintData(studentID string) ComplaintData {
	return ComplaintData{
		StudentID:   studentID,
		StudentName: "Test Student",
		CollegeName: "BITS Pilani",
		HostelID:    "h1",
		RoomID:      "r1",
		Title:       "Leaking tap",
		Description: "The tap in the corner keeps dripping.",
		Category:    "Plumbing",
		Status:      models.ComplaintStatusPending,
		Priority:    models.PriorityMedium,
	}
}

func TestComplaintResolutionRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	student := signupStudent(t, st, "c@x.com")

	complaint := st.CreateComplaint(ctx, newComplaintData(student.ID))
	require.NotEmpty(t, complaint.ID)
	require.Nil(t, complaint.ResolutionNote)
	require.Nil(t, complaint.ResolutionImageURL)
	require.Equal(t, complaint.CreatedAt, complaint.UpdatedAt)

	st.UpdateComplaintStatus(ctx, complaint.ID, models.ComplaintStatusResolved, "done", "")

	resolved, ok := st.ComplaintByID(complaint.ID)
	require.True(t, ok)
	require.Equal(t, models.ComplaintStatusResolved, resolved.Status)
	require.NotNil(t, resolved.ResolutionNote)
	require.Equal(t, "done", *resolved.ResolutionNote)
	require.True(t, resolved.UpdatedAt.After(resolved.CreatedAt))
}

func TestComplaintNotePreservedAcrossStatusChanges(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	student := signupStudent(t, st, "keepnote@x.com")
	complaint := st.CreateComplaint(ctx, newComplaintData(student.ID))

	st.UpdateComplaintStatus(ctx, complaint.ID, models.ComplaintStatusResolved, "fixed the washer", "")
	// Reopening without a note keeps the prior resolution note.
	st.UpdateComplaintStatus(ctx, complaint.ID, models.ComplaintStatusInReview, "", "")

	reopened, _ := st.ComplaintByID(complaint.ID)
	require.Equal(t, models.ComplaintStatusInReview, reopened.Status)
	require.NotNil(t, reopened.ResolutionNote)
	require.Equal(t, "fixed the washer", *reopened.ResolutionNote)
}

func TestAssignStaffToComplaint(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	student := signupStudent(t, st, "assign@x.com")
	complaint := st.CreateComplaint(ctx, newComplaintData(student.ID))

	st.AssignStaffToComplaint(ctx, complaint.ID, "staff-42")

	assigned, _ := st.ComplaintByID(complaint.ID)
	require.NotNil(t, assigned.AssignedStaffID)
	require.Equal(t, "staff-42", *assigned.AssignedStaffID)
	require.True(t, assigned.UpdatedAt.After(assigned.CreatedAt))
}

func TestComplaintQueries(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	s1 := signupStudent(t, st, "q1@x.com")
	s2 := signupStudent(t, st, "q2@x.com")

	first := st.CreateComplaint(ctx, newComplaintData(s1.ID))
	second := newComplaintData(s2.ID)
	second.HostelID = "h2"
	created := st.CreateComplaint(ctx, second)
	st.AssignStaffToComplaint(ctx, created.ID, "staff-1")

	require.Len(t, st.ComplaintsByStudent(s1.ID), 1)
	require.Equal(t, first.ID, st.ComplaintsByStudent(s1.ID)[0].ID)
	require.Len(t, st.ComplaintsByStaff("staff-1"), 1)
	require.Len(t, st.ComplaintsByHostels([]string{"h2"}), 1)
	require.Len(t, st.ComplaintsByHostels([]string{"h1", "h2"}), 2)
}

func TestCreateComplaintRejectsInvalidPayload(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	data := newComplaintData("s1")
	data.Title = ""
	rejected := st.CreateComplaint(ctx, data)
	require.Empty(t, rejected.ID)
	require.Empty(t, st.Complaints())
}
