package postgres

import (
	"context"
	"errors"
	"time"

	"alumni-connect-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type eventRepo struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) domain.EventRepository {
	return &eventRepo{db: db}
}

const eventColumns = `id, title, COALESCE(description, ''), date, COALESCE(location, ''), COALESCE(category, ''), status, created_by, created_at, updated_at`

func scanEvent(row pgx.Row, e *domain.Event) error {
	return row.Scan(
		&e.ID, &e.Title, &e.Description, &e.Date, &e.Location, &e.Category,
		&e.Status, &e.CreatedBy, &e.CreatedAt, &e.UpdatedAt,
	)
}

func (r *eventRepo) FetchUpcomingApproved(ctx context.Context, ref time.Time) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events
              WHERE status = $1 AND date >= $2 ORDER BY date ASC`

	rows, err := r.db.Query(ctx, query, domain.EventStatusApproved, ref)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	var e domain.Event
	if err := scanEvent(r.db.QueryRow(ctx, query, id), &e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *eventRepo) Fetch(ctx context.Context, status string, limit, offset int) ([]domain.Event, int64, error) {
	query := `SELECT ` + eventColumns + ` FROM events
              WHERE ($1 = '' OR status = $1) ORDER BY date ASC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := scanEvent(rows, &e); err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events WHERE ($1 = '' OR status = $1)`, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

func (r *eventRepo) Create(ctx context.Context, event *domain.Event) error {
	query := `INSERT INTO events (title, description, date, location, category, status, created_by, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRow(ctx, query,
		event.Title, event.Description, event.Date, event.Location, event.Category,
		event.Status, event.CreatedBy, event.CreatedAt, event.UpdatedAt,
	).Scan(&event.ID)
}

func (r *eventRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.Exec(ctx, `UPDATE events SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
