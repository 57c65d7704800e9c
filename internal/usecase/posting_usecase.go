package usecase

import (
	"context"
	"time"

	"alumni-connect-backend/internal/domain"
	"alumni-connect-backend/pkg/apperror"
)

type postingUsecase struct {
	repo domain.PostingRepository
}

func NewPostingUsecase(repo domain.PostingRepository) domain.PostingUsecase {
	return &postingUsecase{repo: repo}
}

func (u *postingUsecase) CreatePosting(ctx context.Context, posting *domain.Posting) error {
	userID, _ := ctx.Value(domain.KeyUserID).(string)
	if userID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	posting.AuthorID = userID

	if posting.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if posting.Kind != "" && posting.Kind != domain.PostingKindJob && posting.Kind != domain.PostingKindInternship {
		return apperror.BadRequest("Kind must be job or internship")
	}

	posting.CreatedAt = time.Now()
	posting.UpdatedAt = time.Now()

	return u.repo.Create(ctx, posting)
}

func (u *postingUsecase) GetPostingDetails(ctx context.Context, id int64) (*domain.Posting, error) {
	posting, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Posting not found")
		}
		return nil, err
	}
	return posting, nil
}

func (u *postingUsecase) ListPostings(ctx context.Context, page, pageSize int) ([]domain.Posting, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.repo.Fetch(ctx, pageSize, offset)
}

func (u *postingUsecase) UpdatePosting(ctx context.Context, posting *domain.Posting) error {
	existing, err := u.repo.GetByID(ctx, posting.ID)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Posting not found")
		}
		return err
	}

	if err := u.requireAuthorOrAdmin(ctx, existing.AuthorID); err != nil {
		return err
	}

	if posting.Title == "" {
		return apperror.BadRequest("Title is required")
	}

	posting.AuthorID = existing.AuthorID
	posting.UpdatedAt = time.Now()

	return u.repo.Update(ctx, posting)
}

func (u *postingUsecase) DeletePosting(ctx context.Context, id int64) error {
	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Posting not found")
		}
		return err
	}

	if err := u.requireAuthorOrAdmin(ctx, existing.AuthorID); err != nil {
		return err
	}

	return u.repo.Delete(ctx, id)
}

func (u *postingUsecase) requireAuthorOrAdmin(ctx context.Context, authorID string) error {
	userID, _ := ctx.Value(domain.KeyUserID).(string)
	if userID == "" {
		return apperror.Unauthorized("User not authenticated")
	}
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if userID != authorID && role != domain.RoleAdmin {
		return apperror.Forbidden("You can only modify your own postings")
	}
	return nil
}
