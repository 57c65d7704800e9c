package usecase_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"alumni-connect-backend/internal/domain"
	"alumni-connect-backend/internal/usecase"
	"alumni-connect-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// Mock Repositories

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) FetchAllExcept(ctx context.Context, userID string) ([]domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Profile), args.Error(1)
}

func (m *MockProfileRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Profile, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Profile), args.Get(1).(int64), args.Error(2)
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockPostingRepo struct {
	mock.Mock
}

func (m *MockPostingRepo) FetchRecent(ctx context.Context) ([]domain.Posting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Posting), args.Error(1)
}

func (m *MockPostingRepo) GetByID(ctx context.Context, id int64) (*domain.Posting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Posting), args.Error(1)
}

func (m *MockPostingRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Posting, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Posting), args.Get(1).(int64), args.Error(2)
}

func (m *MockPostingRepo) Create(ctx context.Context, posting *domain.Posting) error {
	return m.Called(ctx, posting).Error(0)
}

func (m *MockPostingRepo) Update(ctx context.Context, posting *domain.Posting) error {
	return m.Called(ctx, posting).Error(0)
}

func (m *MockPostingRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockEventRepo struct {
	mock.Mock
}

func (m *MockEventRepo) FetchUpcomingApproved(ctx context.Context, ref time.Time) ([]domain.Event, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepo) Fetch(ctx context.Context, status string, limit, offset int) ([]domain.Event, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Event), args.Get(1).(int64), args.Error(2)
}

func (m *MockEventRepo) Create(ctx context.Context, event *domain.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *MockEventRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockEventRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockMentorshipRepo struct {
	mock.Mock
}

func (m *MockMentorshipRepo) Create(ctx context.Context, req *domain.MentorshipRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockMentorshipRepo) FetchForMentor(ctx context.Context, mentorID string, limit, offset int) ([]domain.MentorshipRequest, int64, error) {
	args := m.Called(ctx, mentorID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.MentorshipRequest), args.Get(1).(int64), args.Error(2)
}

func (m *MockMentorshipRepo) UpdateStatus(ctx context.Context, id int64, mentorID, status string) error {
	return m.Called(ctx, id, mentorID, status).Error(0)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func TestProfileOwnership(t *testing.T) {
	mockRepo := new(MockProfileRepo)
	validate := validator.New()
	uc := usecase.NewProfileUsecase(mockRepo, validate)

	t.Run("Should fail safely when context user is missing", func(t *testing.T) {
		_, err := uc.GetProfile(context.Background(), "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not authenticated")
	})

	t.Run("Should force UserID from context on update", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		profile := &domain.Profile{
			UserID:   "someone_else",
			FullName: "Jane Doe",
			Role:     domain.RoleStudent,
		}

		mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Profile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.Profile)
			assert.Equal(t, "user1", p.UserID)
		})

		err := uc.UpdateProfile(ctx, profile)
		assert.NoError(t, err)
	})

	t.Run("Should reject self-promotion to admin", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		ctx = context.WithValue(ctx, domain.KeyUserRole, domain.RoleStudent)
		err := uc.UpdateProfile(ctx, &domain.Profile{
			FullName: "Jane Doe",
			Role:     domain.RoleAdmin,
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "admin")
	})

	t.Run("Should reject invalid role", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		err := uc.UpdateProfile(ctx, &domain.Profile{
			FullName: "Jane Doe",
			Role:     "wizard",
		})
		assert.Error(t, err)
	})
}

func TestEventModeration(t *testing.T) {
	mockRepo := new(MockEventRepo)
	uc := usecase.NewEventUsecase(mockRepo)

	t.Run("Should fail if role is not admin", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleStudent)
		err := uc.ModerateEvent(ctx, 1, domain.EventStatusApproved)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only admins")
	})

	t.Run("Should fail safe if role is nil", func(t *testing.T) {
		err := uc.ModerateEvent(context.Background(), 1, domain.EventStatusApproved)
		assert.Error(t, err)
	})

	t.Run("Should reject statuses outside the moderation set", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)
		err := uc.ModerateEvent(ctx, 1, "archived")
		assert.Error(t, err)
	})

	t.Run("New events always start pending", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserID, "user1")
		mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Event")).Return(nil).Run(func(args mock.Arguments) {
			e := args.Get(1).(*domain.Event)
			assert.Equal(t, domain.EventStatusPending, e.Status)
			assert.Equal(t, "user1", e.CreatedBy)
		})
		err := uc.CreateEvent(ctx, &domain.Event{Title: "Homecoming", Date: time.Now().Add(24 * time.Hour)})
		assert.NoError(t, err)
	})
}

func TestMentorshipRequest(t *testing.T) {
	ctx := context.WithValue(context.Background(), domain.KeyUserID, "student1")

	t.Run("Should reject requesting yourself", func(t *testing.T) {
		uc := usecase.NewMentorshipUsecase(new(MockMentorshipRepo), new(MockProfileRepo), new(MockUserRepo), nil)
		_, err := uc.RequestMentorship(ctx, "student1", "hi")
		assert.Error(t, err)
	})

	t.Run("Should reject members not available for mentoring", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUserID", ctx, "alum1").Return(&domain.Profile{UserID: "alum1", IsMentor: false}, nil)
		uc := usecase.NewMentorshipUsecase(new(MockMentorshipRepo), profileRepo, new(MockUserRepo), nil)
		_, err := uc.RequestMentorship(ctx, "alum1", "hi")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not available")
	})

	t.Run("Should persist a pending request", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUserID", ctx, "alum1").Return(&domain.Profile{UserID: "alum1", IsMentor: true}, nil)
		mentorshipRepo := new(MockMentorshipRepo)
		mentorshipRepo.On("Create", ctx, mock.AnythingOfType("*domain.MentorshipRequest")).Return(nil)

		uc := usecase.NewMentorshipUsecase(mentorshipRepo, profileRepo, new(MockUserRepo), nil)
		req, err := uc.RequestMentorship(ctx, "alum1", "please mentor me")
		assert.NoError(t, err)
		assert.Equal(t, domain.MentorshipStatusPending, req.Status)
		assert.Equal(t, "student1", req.StudentID)
		mentorshipRepo.AssertExpectations(t)
	})
}

func TestEnsureUserExists(t *testing.T) {
	t.Run("Should create missing users with the default role", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "u1").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			assert.Equal(t, domain.RoleStudent, u.Role)
		})

		uc := usecase.NewAuthUsecase(userRepo)
		err := uc.EnsureUserExists(context.Background(), &domain.User{ID: "u1", Email: "u1@example.edu"})
		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("Should be a no-op for known users", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

		uc := usecase.NewAuthUsecase(userRepo)
		err := uc.EnsureUserExists(context.Background(), &domain.User{ID: "u1"})
		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

var errDown = errors.New("connection refused")

func TestRecommendationFailSoft(t *testing.T) {
	ctx := context.Background()

	t.Run("Actor fetch failure degrades every call to empty", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUserID", mock.Anything, "ghost").Return(nil, errDown)

		uc := usecase.NewRecommendationUsecase(profileRepo, new(MockPostingRepo), new(MockEventRepo), 5)
		assert.Empty(t, uc.RecommendedUsers(ctx, "ghost", 5))
		assert.Empty(t, uc.RecommendedJobs(ctx, "ghost", 5))
		assert.Empty(t, uc.RecommendedEvents(ctx, "ghost", 5))
	})

	t.Run("Candidate fetch failure degrades that call only", func(t *testing.T) {
		actor := &domain.Profile{UserID: "u1", Role: domain.RoleStudent}
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUserID", mock.Anything, "u1").Return(actor, nil)
		profileRepo.On("FetchAllExcept", mock.Anything, "u1").Return(nil, errDown)

		postingRepo := new(MockPostingRepo)
		postingRepo.On("FetchRecent", mock.Anything).Return([]domain.Posting{{
			Kind:      domain.PostingKindInternship,
			Title:     "Internship",
			CreatedAt: time.Now(),
		}}, nil)

		uc := usecase.NewRecommendationUsecase(profileRepo, postingRepo, new(MockEventRepo), 5)
		assert.Empty(t, uc.RecommendedUsers(ctx, "u1", 5))
		assert.NotEmpty(t, uc.RecommendedJobs(ctx, "u1", 5))
	})

	t.Run("Feed fans out and tolerates one failing branch", func(t *testing.T) {
		actor := &domain.Profile{UserID: "u1", Role: domain.RoleStudent}
		profileRepo := new(MockProfileRepo)
		profileRepo.On("GetByUserID", mock.Anything, "u1").Return(actor, nil)
		profileRepo.On("FetchAllExcept", mock.Anything, "u1").Return([]domain.Profile{
			{UserID: "u2", Role: domain.RoleAlumni, IsMentor: true},
		}, nil)

		postingRepo := new(MockPostingRepo)
		postingRepo.On("FetchRecent", mock.Anything).Return([]domain.Posting{{
			Kind:      domain.PostingKindInternship,
			Title:     "Internship",
			CreatedAt: time.Now(),
		}}, nil)

		eventRepo := new(MockEventRepo)
		eventRepo.On("FetchUpcomingApproved", mock.Anything, mock.AnythingOfType("time.Time")).Return(nil, errDown)

		uc := usecase.NewRecommendationUsecase(profileRepo, postingRepo, eventRepo, 5)
		feed := uc.RecommendedFeed(ctx, "u1")
		assert.NotEmpty(t, feed.Users)
		assert.NotEmpty(t, feed.Jobs)
		assert.Empty(t, feed.Events)
	})
}

func TestRecommendedUsersSemantics(t *testing.T) {
	ctx := context.Background()
	actor := &domain.Profile{UserID: "u1", Role: domain.RoleStudent}

	profileRepo := new(MockProfileRepo)
	profileRepo.On("GetByUserID", mock.Anything, "u1").Return(actor, nil)
	profileRepo.On("FetchAllExcept", mock.Anything, "u1").Return([]domain.Profile{
		{UserID: "mentor", Role: domain.RoleAlumni, IsMentor: true},
		{UserID: "stranger", Role: domain.RoleAdmin},
	}, nil)

	uc := usecase.NewRecommendationUsecase(profileRepo, new(MockPostingRepo), new(MockEventRepo), 5)
	got := uc.RecommendedUsers(ctx, "u1", 5)

	if assert.Len(t, got, 1) {
		assert.Equal(t, "mentor", got[0].Item.UserID)
		assert.Equal(t, 70, got[0].Score) // 30 bridge + 40 mentor
		assert.Equal(t, []string{"Alumni connection", "Available mentor"}, got[0].Reasons)
	}
}
