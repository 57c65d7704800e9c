package postgres

import (
	"context"
	"errors"

	"alumni-connect-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type profileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `
	id, user_id, full_name, role,
	COALESCE(headline, ''), COALESCE(bio, ''),
	graduation_year, skills, interests,
	COALESCE(location, ''), COALESCE(company, ''),
	is_mentor, created_at, updated_at`

func scanProfile(row pgx.Row, p *domain.Profile) error {
	var skills, interests []string
	err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Role,
		&p.Headline, &p.Bio,
		&p.GraduationYear, pq.Array(&skills), pq.Array(&interests),
		&p.Location, &p.Company,
		&p.IsMentor, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	p.Skills = skills
	p.Interests = interests
	return nil
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`

	var p domain.Profile
	if err := scanProfile(r.db.QueryRow(ctx, query, userID), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) FetchAllExcept(ctx context.Context, userID string) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id <> $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := scanProfile(rows, &p); err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, rows.Err()
}

func (r *profileRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Profile, int64, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY full_name ASC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		var p domain.Profile
		if err := scanProfile(rows, &p); err != nil {
			return nil, 0, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

func (r *profileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	query := `INSERT INTO profiles (user_id, full_name, role, headline, bio, graduation_year, skills, interests, location, company, is_mentor, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW()) RETURNING id`
	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.FullName, profile.Role, profile.Headline, profile.Bio,
		profile.GraduationYear, pq.Array(profile.Skills), pq.Array(profile.Interests),
		profile.Location, profile.Company, profile.IsMentor,
	).Scan(&profile.ID)
}

func (r *profileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	query := `UPDATE profiles SET
		full_name = $2,
		role = $3,
		headline = $4,
		bio = $5,
		graduation_year = $6,
		skills = $7,
		interests = $8,
		location = $9,
		company = $10,
		is_mentor = $11,
		updated_at = NOW()
	WHERE user_id = $1`
	result, err := r.db.Exec(ctx, query,
		profile.UserID, profile.FullName, profile.Role, profile.Headline, profile.Bio,
		profile.GraduationYear, pq.Array(profile.Skills), pq.Array(profile.Interests),
		profile.Location, profile.Company, profile.IsMentor,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
