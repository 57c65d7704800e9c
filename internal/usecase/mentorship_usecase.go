package usecase

import (
	"context"

	"alumni-connect-backend/internal/domain"
	"alumni-connect-backend/pkg/apperror"
	"alumni-connect-backend/pkg/email"
	"alumni-connect-backend/pkg/logger"
)

type mentorshipUsecase struct {
	repo        domain.MentorshipRepository
	profileRepo domain.ProfileRepository
	userRepo    domain.UserRepository
	emailSvc    *email.EmailService
}

func NewMentorshipUsecase(
	repo domain.MentorshipRepository,
	profileRepo domain.ProfileRepository,
	userRepo domain.UserRepository,
	emailSvc *email.EmailService,
) domain.MentorshipUsecase {
	return &mentorshipUsecase{
		repo:        repo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
	}
}

func (u *mentorshipUsecase) RequestMentorship(ctx context.Context, mentorID, message string) (*domain.MentorshipRequest, error) {
	studentID, _ := ctx.Value(domain.KeyUserID).(string)
	if studentID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if studentID == mentorID {
		return nil, apperror.BadRequest("You cannot request mentorship from yourself")
	}

	mentor, err := u.profileRepo.GetByUserID(ctx, mentorID)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Mentor not found")
		}
		return nil, err
	}
	if !mentor.IsMentor {
		return nil, apperror.BadRequest("This member is not available for mentoring")
	}

	req := &domain.MentorshipRequest{
		StudentID: studentID,
		MentorID:  mentorID,
		Message:   message,
		Status:    domain.MentorshipStatusPending,
	}
	if err := u.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	u.notifyMentor(ctx, mentor, studentID, message)

	return req, nil
}

// notifyMentor sends the notification email. A delivery problem never fails
// the request itself; the row is already persisted.
func (u *mentorshipUsecase) notifyMentor(ctx context.Context, mentor *domain.Profile, studentID, message string) {
	if u.emailSvc == nil || !u.emailSvc.IsConfigured() {
		return
	}

	mentorUser, err := u.userRepo.GetByID(ctx, mentor.UserID)
	if err != nil {
		logger.Log.Warn("mentorship: mentor email lookup failed", "mentor_id", mentor.UserID, "error", err)
		return
	}

	studentName := studentID
	if student, err := u.profileRepo.GetByUserID(ctx, studentID); err == nil {
		studentName = student.FullName
	}

	data := email.MentorshipEmailData{
		MentorName:  mentor.FullName,
		StudentName: studentName,
		Message:     message,
	}
	if err := u.emailSvc.SendMentorshipRequest(mentorUser.Email, data); err != nil {
		logger.Log.Warn("mentorship: notification email failed", "mentor_id", mentor.UserID, "error", err)
	}
}

func (u *mentorshipUsecase) ListIncomingRequests(ctx context.Context, page, pageSize int) ([]domain.MentorshipRequest, int64, error) {
	mentorID, _ := ctx.Value(domain.KeyUserID).(string)
	if mentorID == "" {
		return nil, 0, apperror.Unauthorized("User not authenticated")
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	return u.repo.FetchForMentor(ctx, mentorID, pageSize, offset)
}

func (u *mentorshipUsecase) RespondToRequest(ctx context.Context, id int64, status string) error {
	mentorID, _ := ctx.Value(domain.KeyUserID).(string)
	if mentorID == "" {
		return apperror.Unauthorized("User not authenticated")
	}

	if status != domain.MentorshipStatusAccepted && status != domain.MentorshipStatusDeclined {
		return apperror.BadRequest("Status must be accepted or declined")
	}

	if err := u.repo.UpdateStatus(ctx, id, mentorID, status); err != nil {
		if err == domain.ErrNotFound {
			return apperror.NotFound("Mentorship request not found")
		}
		return err
	}
	return nil
}
