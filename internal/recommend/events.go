package recommend

import (
	"strings"
	"time"

	"alumni-connect-backend/internal/domain"
)

const soonEventWindow = 14 * 24 * time.Hour

var (
	studentFocusWords = []string{"student", "career", "internship"}
	alumniFocusWords  = []string{"alumni", "networking", "professional"}
)

// ScoreEvent computes the relevance of an event for the actor at the given
// reference time. Every event starts from a base score of 10, which is why
// the event threshold is stricter than the other two kinds.
func (e *Engine) ScoreEvent(ev domain.Event, now time.Time) (int, []string) {
	if e.actor == nil {
		return 0, nil
	}
	a := e.actor

	score := 10
	var reasons []string

	if len(a.Interests) > 0 && ev.Category != "" {
		category := strings.ToLower(ev.Category)
		for _, interest := range a.Interests {
			iv := strings.ToLower(interest)
			if iv == "" {
				continue
			}
			if strings.Contains(category, iv) || strings.Contains(iv, category) {
				score += 25
				reasons = append(reasons, "Matches your interests")
				break
			}
		}
	}

	if a.Location != "" && ev.Location != "" &&
		strings.Contains(strings.ToLower(a.Location), strings.ToLower(ev.Location)) {
		score += 20
		reasons = append(reasons, "Local event")
	}

	text := strings.ToLower(ev.Title + " " + ev.Description)
	if a.Role == domain.RoleStudent && containsAny(text, studentFocusWords) {
		score += 20
		reasons = append(reasons, "Student-focused")
	}
	if a.Role == domain.RoleAlumni && containsAny(text, alumniFocusWords) {
		score += 20
		reasons = append(reasons, "Alumni networking")
	}

	if ev.Date.Sub(now) <= soonEventWindow {
		score += 15
		reasons = append(reasons, "Happening soon")
	}

	return score, reasons
}

// RankEvents returns events scoring strictly above the event threshold, best
// first, at most limit entries.
func (e *Engine) RankEvents(candidates []domain.Event, limit int, now time.Time) []domain.Recommendation[domain.Event] {
	if e.actor == nil {
		return nil
	}
	return rank(candidates, func(ev domain.Event) (int, []string) {
		return e.ScoreEvent(ev, now)
	}, minEventScore, limit)
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
