package domain

import (
	"context"
	"time"
)

// Event moderation statuses. Only approved events are visible to members.
const (
	EventStatusPending  = "pending"
	EventStatusApproved = "approved"
	EventStatusRejected = "rejected"
)

type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required,min=3,max=150"`
	Description string    `json:"description" validate:"max=2000"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"max=150"`
	Category    string    `json:"category" validate:"max=50"`
	Status      string    `json:"status"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EventRepository interface {
	// FetchUpcomingApproved returns approved events whose date is at or after
	// ref, ordered by date ascending.
	FetchUpcomingApproved(ctx context.Context, ref time.Time) ([]Event, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
	Fetch(ctx context.Context, status string, limit, offset int) ([]Event, int64, error)
	Create(ctx context.Context, event *Event) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

type EventUsecase interface {
	CreateEvent(ctx context.Context, event *Event) error
	GetEventDetails(ctx context.Context, id int64) (*Event, error)
	ListUpcomingEvents(ctx context.Context) ([]Event, error)
	ListEvents(ctx context.Context, status string, page, pageSize int) ([]Event, int64, error)
	ModerateEvent(ctx context.Context, id int64, status string) error
}
