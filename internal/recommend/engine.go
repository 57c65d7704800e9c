// Package recommend implements the heuristic scoring engine behind the
// connection, job and event suggestions. It is pure computation: the engine
// holds one actor profile and scores candidate records handed to it, with no
// I/O and no knowledge of where the records came from.
package recommend

import (
	"sort"

	"alumni-connect-backend/internal/domain"
)

// Minimum relevance thresholds. A candidate must score strictly above the
// threshold for its kind to appear in results. Events carry a base score of
// 10, so their threshold is stricter.
const (
	minUserScore    = 10
	minPostingScore = 10
	minEventScore   = 15
)

// Engine scores candidates against a single actor profile. The actor is set
// once at construction and never mutated, so one Engine may serve concurrent
// ranking calls. A nil actor is a valid degenerate state: every ranking call
// returns an empty result.
type Engine struct {
	actor *domain.Profile
}

func New(actor *domain.Profile) *Engine {
	return &Engine{actor: actor}
}

// rank scores every candidate, keeps those strictly above min, sorts by score
// descending and truncates to limit. The sort is stable so equally scored
// candidates keep their input order.
func rank[T any](items []T, score func(T) (int, []string), min, limit int) []domain.Recommendation[T] {
	var out []domain.Recommendation[T]
	for _, item := range items {
		s, reasons := score(item)
		if s > min {
			out = append(out, domain.Recommendation[T]{Item: item, Score: s, Reasons: reasons})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if limit < 0 {
		limit = 0
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
