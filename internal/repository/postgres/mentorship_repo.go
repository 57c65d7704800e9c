package postgres

import (
	"context"

	"alumni-connect-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type mentorshipRepo struct {
	db *pgxpool.Pool
}

func NewMentorshipRepository(db *pgxpool.Pool) domain.MentorshipRepository {
	return &mentorshipRepo{db: db}
}

func (r *mentorshipRepo) Create(ctx context.Context, req *domain.MentorshipRequest) error {
	query := `INSERT INTO mentorship_requests (student_id, mentor_id, message, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, NOW(), NOW()) RETURNING id, created_at, updated_at`
	return r.db.QueryRow(ctx, query,
		req.StudentID, req.MentorID, req.Message, req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *mentorshipRepo) FetchForMentor(ctx context.Context, mentorID string, limit, offset int) ([]domain.MentorshipRequest, int64, error) {
	query := `SELECT id, student_id, mentor_id, COALESCE(message, ''), status, created_at, updated_at
              FROM mentorship_requests WHERE mentor_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, mentorID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []domain.MentorshipRequest
	for rows.Next() {
		var req domain.MentorshipRequest
		if err := rows.Scan(&req.ID, &req.StudentID, &req.MentorID, &req.Message, &req.Status, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM mentorship_requests WHERE mentor_id = $1`, mentorID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return requests, total, nil
}

func (r *mentorshipRepo) UpdateStatus(ctx context.Context, id int64, mentorID, status string) error {
	// mentor_id in the predicate so a mentor can only answer their own requests
	query := `UPDATE mentorship_requests SET status = $3, updated_at = NOW() WHERE id = $1 AND mentor_id = $2`
	result, err := r.db.Exec(ctx, query, id, mentorID, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
