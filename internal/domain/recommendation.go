package domain

import "context"

// Recommendation wraps a candidate item with its relevance score and the
// human-readable reasons surfaced to the UI. Reasons are advisory text only;
// the score is never derived from them.
type Recommendation[T any] struct {
	Item    T        `json:"item"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// RecommendationFeed groups one batch of suggestions per content kind, as
// rendered side by side on the member dashboard.
type RecommendationFeed struct {
	Users  []Recommendation[Profile] `json:"users"`
	Jobs   []Recommendation[Posting] `json:"jobs"`
	Events []Recommendation[Event]   `json:"events"`
}

// RecommendationUsecase computes ranked suggestions for one member.
//
// All methods are deliberately fail-soft: a missing profile or a failed fetch
// is logged and degrades to an empty result for that call only, never an
// error to the caller. Callers therefore cannot distinguish "no matches"
// from "fetch failed"; hosts that need the distinction must add it at their
// own boundary.
type RecommendationUsecase interface {
	RecommendedUsers(ctx context.Context, userID string, limit int) []Recommendation[Profile]
	RecommendedJobs(ctx context.Context, userID string, limit int) []Recommendation[Posting]
	RecommendedEvents(ctx context.Context, userID string, limit int) []Recommendation[Event]
	RecommendedFeed(ctx context.Context, userID string) *RecommendationFeed
}
