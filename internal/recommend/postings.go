package recommend

import (
	"fmt"
	"strings"
	"time"

	"alumni-connect-backend/internal/domain"
)

const recentPostingWindow = 7 * 24 * time.Hour

// ScorePosting computes the relevance of a job or internship posting for the
// actor at the given reference time. Postings without a kind always score 0
// so plain feed items never surface as job suggestions.
func (e *Engine) ScorePosting(p domain.Posting, now time.Time) (int, []string) {
	if e.actor == nil {
		return 0, nil
	}
	if p.Kind != domain.PostingKindJob && p.Kind != domain.PostingKindInternship {
		return 0, nil
	}
	a := e.actor

	score := 0
	var reasons []string

	if a.Role == domain.RoleStudent && p.Kind == domain.PostingKindInternship {
		score += 30
		reasons = append(reasons, "Internship suitable for students")
	}
	if a.Role == domain.RoleAlumni && p.Kind == domain.PostingKindJob {
		score += 25
		reasons = append(reasons, "Full-time position")
	}

	text := strings.ToLower(p.Title + " " + p.Content)

	if len(a.Skills) > 0 {
		n := 0
		for _, skill := range a.Skills {
			if skill != "" && strings.Contains(text, strings.ToLower(skill)) {
				n++
			}
		}
		if n > 0 {
			score += 20 * n
			reasons = append(reasons, fmt.Sprintf("Matches %d of your skills", n))
		}
	}

	if a.Location != "" && p.Location != nil && *p.Location != "" &&
		strings.Contains(strings.ToLower(a.Location), strings.ToLower(*p.Location)) {
		score += 25
		reasons = append(reasons, "Location match")
	}

	if len(a.Interests) > 0 {
		n := 0
		for _, interest := range a.Interests {
			if interest != "" && strings.Contains(text, strings.ToLower(interest)) {
				n++
			}
		}
		if n > 0 {
			score += 15 * n
			reasons = append(reasons, "Aligns with your interests")
		}
	}

	if a.Company != "" && p.Company != nil && strings.EqualFold(a.Company, *p.Company) {
		score += 30
		reasons = append(reasons, "Same company as your experience")
	}

	if now.Sub(p.CreatedAt) <= recentPostingWindow {
		score += 15
		reasons = append(reasons, "Recently posted")
	}

	return score, reasons
}

// RankPostings returns job and internship postings scoring strictly above the
// relevance threshold, best first, at most limit entries.
func (e *Engine) RankPostings(candidates []domain.Posting, limit int, now time.Time) []domain.Recommendation[domain.Posting] {
	if e.actor == nil {
		return nil
	}
	return rank(candidates, func(p domain.Posting) (int, []string) {
		return e.ScorePosting(p, now)
	}, minPostingScore, limit)
}
