package usecase

import (
	"context"
	"time"

	"alumni-connect-backend/internal/domain"
	"alumni-connect-backend/internal/recommend"
	"alumni-connect-backend/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// The dashboard shows fewer events than users/jobs, so the event column has
// its own default.
const defaultEventLimit = 3

type recommendationUsecase struct {
	profileRepo  domain.ProfileRepository
	postingRepo  domain.PostingRepository
	eventRepo    domain.EventRepository
	defaultLimit int
}

func NewRecommendationUsecase(
	profileRepo domain.ProfileRepository,
	postingRepo domain.PostingRepository,
	eventRepo domain.EventRepository,
	defaultLimit int,
) domain.RecommendationUsecase {
	if defaultLimit < 1 {
		defaultLimit = 5
	}
	return &recommendationUsecase{
		profileRepo:  profileRepo,
		postingRepo:  postingRepo,
		eventRepo:    eventRepo,
		defaultLimit: defaultLimit,
	}
}

// engineFor builds a scoring engine seeded with the actor's profile. When the
// profile is missing or the fetch fails, it returns nil: recommendation calls
// then degrade to empty results instead of erroring, and the cause is only
// visible in the logs.
func (u *recommendationUsecase) engineFor(ctx context.Context, userID string) *recommend.Engine {
	actor, err := u.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Warn("recommendations: actor profile unavailable", "user_id", userID, "error", err)
		return nil
	}
	return recommend.New(actor)
}

func (u *recommendationUsecase) RecommendedUsers(ctx context.Context, userID string, limit int) []domain.Recommendation[domain.Profile] {
	eng := u.engineFor(ctx, userID)
	if eng == nil {
		return nil
	}

	candidates, err := u.profileRepo.FetchAllExcept(ctx, userID)
	if err != nil {
		logger.Log.Error("recommendations: fetching candidate profiles failed", "user_id", userID, "error", err)
		return nil
	}

	return eng.RankUsers(candidates, limit)
}

func (u *recommendationUsecase) RecommendedJobs(ctx context.Context, userID string, limit int) []domain.Recommendation[domain.Posting] {
	eng := u.engineFor(ctx, userID)
	if eng == nil {
		return nil
	}

	postings, err := u.postingRepo.FetchRecent(ctx)
	if err != nil {
		logger.Log.Error("recommendations: fetching postings failed", "user_id", userID, "error", err)
		return nil
	}

	// the engine scores postings without a job/internship kind as 0, so plain
	// feed items drop out here
	return eng.RankPostings(postings, limit, time.Now())
}

func (u *recommendationUsecase) RecommendedEvents(ctx context.Context, userID string, limit int) []domain.Recommendation[domain.Event] {
	eng := u.engineFor(ctx, userID)
	if eng == nil {
		return nil
	}

	now := time.Now()
	events, err := u.eventRepo.FetchUpcomingApproved(ctx, now)
	if err != nil {
		logger.Log.Error("recommendations: fetching events failed", "user_id", userID, "error", err)
		return nil
	}

	return eng.RankEvents(events, limit, now)
}

// RecommendedFeed fans out the three recommendation kinds concurrently, the
// way the dashboard requests them. The calls are independent and each one
// degrades to empty on its own failure, so the join never returns an error.
func (u *recommendationUsecase) RecommendedFeed(ctx context.Context, userID string) *domain.RecommendationFeed {
	feed := &domain.RecommendationFeed{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		feed.Users = u.RecommendedUsers(gctx, userID, u.defaultLimit)
		return nil
	})
	g.Go(func() error {
		feed.Jobs = u.RecommendedJobs(gctx, userID, u.defaultLimit)
		return nil
	})
	g.Go(func() error {
		feed.Events = u.RecommendedEvents(gctx, userID, defaultEventLimit)
		return nil
	})
	_ = g.Wait()

	return feed
}
