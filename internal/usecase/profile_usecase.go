package usecase

import (
	"context"

	"alumni-connect-backend/internal/domain"
	"alumni-connect-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Profile not found")
		}
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, profile *domain.Profile) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}

	// Force the UserID to the context user so nobody can update another
	// member's profile
	profile.UserID = ctxUserID

	// Members cannot promote themselves; the admin role is assigned out of band
	if profile.Role == domain.RoleAdmin {
		ctxRole, _ := ctx.Value(domain.KeyUserRole).(string)
		if ctxRole != domain.RoleAdmin {
			return apperror.Forbidden("You cannot assign yourself the admin role")
		}
	}

	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}

	return u.repo.Update(ctx, profile)
}

func (u *profileUsecase) ListDirectory(ctx context.Context, page, pageSize int) ([]domain.Profile, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.repo.Fetch(ctx, pageSize, offset)
}
