package recommend_test

import (
	"testing"
	"time"

	"alumni-connect-backend/internal/domain"
	"alumni-connect-backend/internal/recommend"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestScoreUser(t *testing.T) {
	t.Run("student to alumni mentor with shared skill", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleStudent, Skills: []string{"python"}})
		score, reasons := e.ScoreUser(domain.Profile{
			Role:     domain.RoleAlumni,
			IsMentor: true,
			Skills:   []string{"python", "sql"},
		})
		// 30 alumni bridge + 15 one skill + 40 mentor bonus
		assert.Equal(t, 85, score)
		assert.Contains(t, reasons, "Alumni connection")
		assert.Contains(t, reasons, "1 common skills")
		assert.Contains(t, reasons, "Available mentor")
	})

	t.Run("same role fires only when bridge does not", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleAlumni})
		score, reasons := e.ScoreUser(domain.Profile{Role: domain.RoleAlumni})
		assert.Equal(t, 20, score)
		assert.Equal(t, []string{"Same role"}, reasons)

		e = recommend.New(&domain.Profile{Role: domain.RoleStudent})
		score, reasons = e.ScoreUser(domain.Profile{Role: domain.RoleAlumni})
		assert.Equal(t, 30, score)
		assert.Equal(t, []string{"Alumni connection"}, reasons)
	})

	t.Run("skill and interest matching is case-insensitive", func(t *testing.T) {
		e := recommend.New(&domain.Profile{
			Role:      domain.RoleAlumni,
			Skills:    []string{"Go", "SQL"},
			Interests: []string{"Hiking"},
		})
		score, _ := e.ScoreUser(domain.Profile{
			Role:      domain.RoleStudent,
			Skills:    []string{"go", "sql"},
			Interests: []string{"HIKING"},
		})
		// 15*2 skills + 10*1 interests, no role rule
		assert.Equal(t, 40, score)
	})

	t.Run("graduation year proximity formula", func(t *testing.T) {
		cases := []struct {
			name      string
			actorYear int
			candYear  int
			want      int
		}{
			{"same year", 2020, 2020, 20},
			{"one apart", 2020, 2021, 15},
			{"two apart", 2020, 2018, 10},
			{"three apart contributes nothing", 2020, 2023, 0},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				// mismatched roles so only the graduation rule can fire
				e := recommend.New(&domain.Profile{Role: domain.RoleAlumni, GraduationYear: intPtr(tc.actorYear)})
				score, _ := e.ScoreUser(domain.Profile{Role: domain.RoleStudent, GraduationYear: intPtr(tc.candYear)})
				assert.Equal(t, tc.want, score)
			})
		}
	})

	t.Run("location and company require both sides non-empty", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleAlumni, Location: "Oslo", Company: "Acme"})
		score, _ := e.ScoreUser(domain.Profile{Role: domain.RoleStudent, Location: "oslo", Company: "ACME"})
		assert.Equal(t, 40, score) // 15 location + 25 company

		score, _ = e.ScoreUser(domain.Profile{Role: domain.RoleStudent})
		assert.Equal(t, 0, score)
	})

	t.Run("missing fields never panic", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleStudent})
		score, reasons := e.ScoreUser(domain.Profile{})
		assert.GreaterOrEqual(t, score, 0)
		assert.Empty(t, reasons)
	})
}

func TestRankUsers(t *testing.T) {
	actor := &domain.Profile{UserID: "actor", Role: domain.RoleStudent, Skills: []string{"go"}}

	t.Run("threshold is strict", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleAlumni, Interests: []string{"chess"}})
		// one shared interest scores exactly 10 and must be excluded
		atThreshold := domain.Profile{Role: domain.RoleStudent, Interests: []string{"chess"}}
		score, _ := e.ScoreUser(atThreshold)
		assert.Equal(t, 10, score)
		assert.Empty(t, e.RankUsers([]domain.Profile{atThreshold}, 10))

		// same location scores 15 and must be included
		e = recommend.New(&domain.Profile{Role: domain.RoleAlumni, Location: "Oslo"})
		above := domain.Profile{Role: domain.RoleStudent, Location: "Oslo"}
		got := e.RankUsers([]domain.Profile{above}, 10)
		assert.Len(t, got, 1)
		assert.Equal(t, 15, got[0].Score)
	})

	t.Run("surfaced reasons are narrower than the score breakdown", func(t *testing.T) {
		e := recommend.New(actor)
		got := e.RankUsers([]domain.Profile{{
			UserID:   "cand",
			Role:     domain.RoleAlumni,
			IsMentor: true,
			Skills:   []string{"go", "sql"},
		}}, 5)
		assert.Len(t, got, 1)
		// skills contributed to the score but are not surfaced
		assert.Equal(t, 85, got[0].Score)
		assert.Equal(t, []string{"Alumni connection", "Available mentor"}, got[0].Reasons)
	})

	t.Run("idempotent and order-stable on ties", func(t *testing.T) {
		e := recommend.New(actor)
		candidates := []domain.Profile{
			{UserID: "a", Role: domain.RoleAlumni},
			{UserID: "b", Role: domain.RoleAlumni},
			{UserID: "c", Role: domain.RoleAlumni, IsMentor: true},
		}
		first := e.RankUsers(candidates, 10)
		second := e.RankUsers(candidates, 10)
		assert.Equal(t, first, second)

		// c outranks the tied a and b, which keep their input order
		assert.Equal(t, "c", first[0].Item.UserID)
		assert.Equal(t, "a", first[1].Item.UserID)
		assert.Equal(t, "b", first[2].Item.UserID)
	})

	t.Run("limit k output is a prefix of limit k+1", func(t *testing.T) {
		e := recommend.New(actor)
		candidates := []domain.Profile{
			{UserID: "a", Role: domain.RoleAlumni},
			{UserID: "b", Role: domain.RoleAlumni, IsMentor: true},
			{UserID: "c", Role: domain.RoleAlumni},
			{UserID: "d", Role: domain.RoleAlumni, IsMentor: true},
		}
		for k := 0; k < len(candidates)+1; k++ {
			shorter := e.RankUsers(candidates, k)
			longer := e.RankUsers(candidates, k+1)
			assert.Equal(t, shorter, longer[:len(shorter)])
		}
	})

	t.Run("nil actor yields empty without panicking", func(t *testing.T) {
		e := recommend.New(nil)
		assert.Empty(t, e.RankUsers([]domain.Profile{{Role: domain.RoleAlumni, IsMentor: true}}, 10))
	})
}

func TestScorePosting(t *testing.T) {
	now := time.Now()

	t.Run("internship posting for a student with skill match", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleStudent, Skills: []string{"react"}})
		score, reasons := e.ScorePosting(domain.Posting{
			Kind:      domain.PostingKindInternship,
			Title:     "React Intern",
			Content:   "Join our React team",
			CreatedAt: now,
		}, now)
		// 30 internship fit + 20 one skill + 15 recency
		assert.Equal(t, 65, score)
		assert.Equal(t, []string{"Internship suitable for students", "Matches 1 of your skills", "Recently posted"}, reasons)
	})

	t.Run("full-time fit for alumni", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleAlumni})
		score, _ := e.ScorePosting(domain.Posting{
			Kind:      domain.PostingKindJob,
			Title:     "Backend Engineer",
			CreatedAt: now.Add(-30 * 24 * time.Hour),
		}, now)
		assert.Equal(t, 25, score)
	})

	t.Run("posting without a kind never scores", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleStudent, Skills: []string{"go"}})
		score, reasons := e.ScorePosting(domain.Posting{Title: "go meetup recap", CreatedAt: now}, now)
		assert.Zero(t, score)
		assert.Empty(t, reasons)
	})

	t.Run("location matches when the posting location is contained in the actor location", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleStudent, Location: "Berlin, Germany"})
		score, reasons := e.ScorePosting(domain.Posting{
			Kind:      domain.PostingKindJob,
			Location:  strPtr("berlin"),
			CreatedAt: now.Add(-30 * 24 * time.Hour),
		}, now)
		assert.Equal(t, 25, score)
		assert.Equal(t, []string{"Location match"}, reasons)
	})

	t.Run("interest matches add per match but surface one reason", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleAlumni, Interests: []string{"fintech", "payments"}})
		score, reasons := e.ScorePosting(domain.Posting{
			Kind:      domain.PostingKindJob,
			Title:     "Fintech payments platform engineer",
			CreatedAt: now.Add(-30 * 24 * time.Hour),
		}, now)
		// 25 job fit + 15*2 interests
		assert.Equal(t, 55, score)
		assert.Equal(t, []string{"Full-time position", "Aligns with your interests"}, reasons)
	})

	t.Run("same employer", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleStudent, Company: "Acme"})
		score, reasons := e.ScorePosting(domain.Posting{
			Kind:      domain.PostingKindJob,
			Company:   strPtr("ACME"),
			CreatedAt: now.Add(-30 * 24 * time.Hour),
		}, now)
		assert.Equal(t, 30, score)
		assert.Equal(t, []string{"Same company as your experience"}, reasons)
	})

	t.Run("absent structured fields only omit the factor", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleAlumni, Location: "Oslo", Company: "Acme"})
		score, _ := e.ScorePosting(domain.Posting{
			Kind:      domain.PostingKindJob,
			CreatedAt: now.Add(-30 * 24 * time.Hour),
		}, now)
		assert.Equal(t, 25, score) // job fit only
	})
}

func TestScoreEvent(t *testing.T) {
	now := time.Now()

	t.Run("base score is 10 and falls below the threshold", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleAdmin})
		far := domain.Event{Title: "Board meeting", Date: now.Add(60 * 24 * time.Hour)}
		score, reasons := e.ScoreEvent(far, now)
		assert.Equal(t, 10, score)
		assert.Empty(t, reasons)
		assert.Empty(t, e.RankEvents([]domain.Event{far}, 10, now))
	})

	t.Run("happening soon alone clears the threshold", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleAdmin})
		soon := domain.Event{Title: "Board meeting", Date: now.Add(3 * 24 * time.Hour)}
		score, reasons := e.ScoreEvent(soon, now)
		assert.Equal(t, 25, score)
		assert.Equal(t, []string{"Happening soon"}, reasons)
		got := e.RankEvents([]domain.Event{soon}, 10, now)
		assert.Len(t, got, 1)
	})

	t.Run("category and interest overlap in either direction", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleAdmin, Interests: []string{"tech"}})
		score, _ := e.ScoreEvent(domain.Event{
			Title:    "Expo",
			Category: "Technology",
			Date:     now.Add(60 * 24 * time.Hour),
		}, now)
		assert.Equal(t, 35, score) // 10 base + 25, "tech" inside "technology"

		e = recommend.New(&domain.Profile{Role: domain.RoleAdmin, Interests: []string{"modern art history"}})
		score, _ = e.ScoreEvent(domain.Event{
			Title:    "Vernissage",
			Category: "art",
			Date:     now.Add(60 * 24 * time.Hour),
		}, now)
		assert.Equal(t, 35, score) // "art" inside the interest
	})

	t.Run("student and alumni focus words", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleStudent})
		score, reasons := e.ScoreEvent(domain.Event{
			Title:       "Career fair",
			Description: "Meet employers",
			Date:        now.Add(60 * 24 * time.Hour),
		}, now)
		assert.Equal(t, 30, score)
		assert.Equal(t, []string{"Student-focused"}, reasons)

		e = recommend.New(&domain.Profile{Role: domain.RoleAlumni})
		score, reasons = e.ScoreEvent(domain.Event{
			Title:       "Evening mixer",
			Description: "Networking over drinks",
			Date:        now.Add(60 * 24 * time.Hour),
		}, now)
		assert.Equal(t, 30, score)
		assert.Equal(t, []string{"Alumni networking"}, reasons)
	})

	t.Run("local event", func(t *testing.T) {
		e := recommend.New(&domain.Profile{Role: domain.RoleAdmin, Location: "Greater Boston Area"})
		score, reasons := e.ScoreEvent(domain.Event{
			Title:    "Meetup",
			Location: "boston",
			Date:     now.Add(60 * 24 * time.Hour),
		}, now)
		assert.Equal(t, 30, score)
		assert.Equal(t, []string{"Local event"}, reasons)
	})
}
