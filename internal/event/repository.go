package event

import (
	"context"
	"database/sql"
	"errors"

	"gymplace/internal/db"

	"github.com/jmoiron/sqlx"
)

const columns = `id, title, description, event_type, date, start_time, end_time, status`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, e *Event) (*Event, error) {
	var created Event
	err := r.db.GetContext(ctx, &created, `
		INSERT INTO gym_events (title, description, event_type, date, start_time, end_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+columns,
		e.Title, e.Description, e.EventType, e.Date, e.StartTime, e.EndTime)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) Update(ctx context.Context, id int, e *Event) (*Event, error) {
	var updated Event
	err := r.db.GetContext(ctx, &updated, `
		UPDATE gym_events
		SET title = $1, description = $2, event_type = $3, date = $4, start_time = $5, end_time = $6
		WHERE id = $7
		RETURNING `+columns,
		e.Title, e.Description, e.EventType, e.Date, e.StartTime, e.EndTime, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Event, error) {
	var e Event
	err := r.db.GetContext(ctx, &e, `SELECT `+columns+` FROM gym_events WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) SetStatus(ctx context.Context, id int, status Status) error {
	result, err := r.db.ExecContext(ctx, `UPDATE gym_events SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *repository) ListUpcoming(ctx context.Context, from db.Date, limit int) ([]Event, error) {
	events := []Event{}
	err := r.db.SelectContext(ctx, &events, `
		SELECT `+columns+`
		FROM gym_events
		WHERE status = 'active' AND date >= $1
		ORDER BY date, start_time, id
		LIMIT $2`,
		from, limit)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// ListBetween returns active events with from <= date <= to.
func (r *repository) ListBetween(ctx context.Context, from, to db.Date) ([]Event, error) {
	events := []Event{}
	err := r.db.SelectContext(ctx, &events, `
		SELECT `+columns+`
		FROM gym_events
		WHERE status = 'active' AND date BETWEEN $1 AND $2
		ORDER BY date, start_time, id`,
		from, to)
	if err != nil {
		return nil, err
	}
	return events, nil
}
