package recommend

import (
	"fmt"
	"strings"

	"alumni-connect-backend/internal/domain"
)

// ScoreUser computes the similarity score between the actor and a candidate
// member, with the full reason breakdown in rule order. All rules fire
// independently and additively, except "same role" which only applies when
// the student/alumni bridge did not.
func (e *Engine) ScoreUser(c domain.Profile) (int, []string) {
	if e.actor == nil {
		return 0, nil
	}
	a := e.actor

	score := 0
	var reasons []string

	if a.Role == domain.RoleStudent && c.Role == domain.RoleAlumni {
		score += 30
		reasons = append(reasons, "Alumni connection")
	} else if a.Role == c.Role {
		score += 20
		reasons = append(reasons, "Same role")
	}

	if len(a.Skills) > 0 && len(c.Skills) > 0 {
		if n := countOverlap(a.Skills, c.Skills); n > 0 {
			score += 15 * n
			reasons = append(reasons, fmt.Sprintf("%d common skills", n))
		}
	}

	if len(a.Interests) > 0 && len(c.Interests) > 0 {
		if n := countOverlap(a.Interests, c.Interests); n > 0 {
			score += 10 * n
			reasons = append(reasons, fmt.Sprintf("%d shared interests", n))
		}
	}

	if a.Location != "" && c.Location != "" && strings.EqualFold(a.Location, c.Location) {
		score += 15
		reasons = append(reasons, "Same location")
	}

	if a.GraduationYear != nil && c.GraduationYear != nil {
		diff := *a.GraduationYear - *c.GraduationYear
		if diff < 0 {
			diff = -diff
		}
		if diff <= 2 {
			score += 20 - 5*diff
			reasons = append(reasons, fmt.Sprintf("Similar graduation year (%d years apart)", diff))
		}
	}

	if a.Company != "" && c.Company != "" && strings.EqualFold(a.Company, c.Company) {
		score += 25
		reasons = append(reasons, "Same company")
	}

	if a.Role == domain.RoleStudent && c.IsMentor {
		score += 40
		reasons = append(reasons, "Available mentor")
	}

	return score, reasons
}

// SurfacedUserReasons derives the reason list shown on connection cards.
// It is intentionally narrower than the ScoreUser breakdown: the dashboard
// only surfaces the alumni bridge and the mentor bonus, so connection
// suggestions never explain skill, interest, location, graduation or
// employer contributions even when they raised the score. Callers wanting
// the full breakdown use ScoreUser directly.
func (e *Engine) SurfacedUserReasons(c domain.Profile) []string {
	var reasons []string
	if e.actor.Role == domain.RoleStudent && c.Role == domain.RoleAlumni {
		reasons = append(reasons, "Alumni connection")
	}
	if e.actor.Role == domain.RoleStudent && c.IsMentor {
		reasons = append(reasons, "Available mentor")
	}
	return reasons
}

// RankUsers returns the candidates scoring strictly above the relevance
// threshold, best first, at most limit entries.
func (e *Engine) RankUsers(candidates []domain.Profile, limit int) []domain.Recommendation[domain.Profile] {
	if e.actor == nil {
		return nil
	}
	return rank(candidates, func(c domain.Profile) (int, []string) {
		score, _ := e.ScoreUser(c)
		return score, e.SurfacedUserReasons(c)
	}, minUserScore, limit)
}

// countOverlap counts entries of a that also appear in b, comparing
// case-insensitively.
func countOverlap(a, b []string) int {
	n := 0
	for _, av := range a {
		for _, bv := range b {
			if strings.EqualFold(av, bv) {
				n++
				break
			}
		}
	}
	return n
}
