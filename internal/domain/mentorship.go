package domain

import (
	"context"
	"time"
)

const (
	MentorshipStatusPending  = "pending"
	MentorshipStatusAccepted = "accepted"
	MentorshipStatusDeclined = "declined"
)

// MentorshipRequest is a student's request to be mentored by an alumni
// member who has flagged themselves as available.
type MentorshipRequest struct {
	ID        int64     `json:"id"`
	StudentID string    `json:"student_id"`
	MentorID  string    `json:"mentor_id"`
	Message   string    `json:"message" validate:"max=1000"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type MentorshipRepository interface {
	Create(ctx context.Context, req *MentorshipRequest) error
	FetchForMentor(ctx context.Context, mentorID string, limit, offset int) ([]MentorshipRequest, int64, error)
	UpdateStatus(ctx context.Context, id int64, mentorID, status string) error
}

type MentorshipUsecase interface {
	RequestMentorship(ctx context.Context, mentorID, message string) (*MentorshipRequest, error)
	ListIncomingRequests(ctx context.Context, page, pageSize int) ([]MentorshipRequest, int64, error)
	RespondToRequest(ctx context.Context, id int64, status string) error
}
