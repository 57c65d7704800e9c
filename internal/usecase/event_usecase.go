package usecase

import (
	"context"
	"time"

	"alumni-connect-backend/internal/domain"
	"alumni-connect-backend/pkg/apperror"
)

type eventUsecase struct {
	repo domain.EventRepository
}

func NewEventUsecase(repo domain.EventRepository) domain.EventUsecase {
	return &eventUsecase{repo: repo}
}

func (u *eventUsecase) CreateEvent(ctx context.Context, event *domain.Event) error {
	userID, _ := ctx.Value(domain.KeyUserID).(string)
	if userID == "" {
		return apperror.Unauthorized("User not authenticated")
	}

	if event.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if event.Date.IsZero() {
		return apperror.BadRequest("Date is required")
	}

	event.CreatedBy = userID
	// Every new event waits for moderation; admins flip the status later
	event.Status = domain.EventStatusPending
	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()

	return u.repo.Create(ctx, event)
}

func (u *eventUsecase) GetEventDetails(ctx context.Context, id int64) (*domain.Event, error) {
	event, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Event not found")
		}
		return nil, err
	}
	return event, nil
}

func (u *eventUsecase) ListUpcomingEvents(ctx context.Context) ([]domain.Event, error) {
	return u.repo.FetchUpcomingApproved(ctx, time.Now())
}

func (u *eventUsecase) ListEvents(ctx context.Context, status string, page, pageSize int) ([]domain.Event, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.repo.Fetch(ctx, status, pageSize, offset)
}

func (u *eventUsecase) ModerateEvent(ctx context.Context, id int64, status string) error {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != domain.RoleAdmin {
		return apperror.Forbidden("Only admins can moderate events")
	}

	if status != domain.EventStatusApproved && status != domain.EventStatusRejected {
		return apperror.BadRequest("Status must be approved or rejected")
	}

	if err := u.repo.UpdateStatus(ctx, id, status); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Event not found")
		}
		return err
	}
	return nil
}
