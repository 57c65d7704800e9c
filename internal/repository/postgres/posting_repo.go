package postgres

import (
	"context"
	"errors"

	"alumni-connect-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// Postings are stored with the legacy tag encoding (kind and structured
// attributes folded into the tags array) so rows stay compatible with the
// original client. The codec on domain.Posting translates at this boundary;
// nothing above the repository ever sees an encoded tag.
type postingRepo struct {
	db *pgxpool.Pool
}

func NewPostingRepository(db *pgxpool.Pool) domain.PostingRepository {
	return &postingRepo{db: db}
}

func scanPosting(row pgx.Row, p *domain.Posting) error {
	var rawTags []string
	err := row.Scan(&p.ID, &p.AuthorID, &p.Title, &p.Content, pq.Array(&rawTags), &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return err
	}
	p.DecodeTags(rawTags)
	return nil
}

func (r *postingRepo) FetchRecent(ctx context.Context) ([]domain.Posting, error) {
	query := `SELECT id, author_id, title, content, tags, created_at, updated_at
              FROM postings ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var postings []domain.Posting
	for rows.Next() {
		var p domain.Posting
		if err := scanPosting(rows, &p); err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}
	return postings, rows.Err()
}

func (r *postingRepo) GetByID(ctx context.Context, id int64) (*domain.Posting, error) {
	query := `SELECT id, author_id, title, content, tags, created_at, updated_at FROM postings WHERE id = $1`

	var p domain.Posting
	if err := scanPosting(r.db.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postingRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.Posting, int64, error) {
	query := `SELECT id, author_id, title, content, tags, created_at, updated_at
              FROM postings ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var postings []domain.Posting
	for rows.Next() {
		var p domain.Posting
		if err := scanPosting(rows, &p); err != nil {
			return nil, 0, err
		}
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM postings`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return postings, total, nil
}

func (r *postingRepo) Create(ctx context.Context, posting *domain.Posting) error {
	query := `INSERT INTO postings (author_id, title, content, tags, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		posting.AuthorID, posting.Title, posting.Content, pq.Array(posting.EncodeTags()),
		posting.CreatedAt, posting.UpdatedAt,
	).Scan(&posting.ID)
}

func (r *postingRepo) Update(ctx context.Context, posting *domain.Posting) error {
	query := `UPDATE postings SET title = $2, content = $3, tags = $4, updated_at = $5 WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		posting.ID, posting.Title, posting.Content, pq.Array(posting.EncodeTags()), posting.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postingRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM postings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
