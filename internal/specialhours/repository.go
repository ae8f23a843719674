package specialhours

import (
	"context"
	"database/sql"
	"errors"

	"gymplace/internal/db"

	"github.com/jmoiron/sqlx"
)

const columns = `id, date, closure_type, title, is_closed, open_time, close_time`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s *SpecialHours) (*SpecialHours, error) {
	var created SpecialHours
	err := r.db.GetContext(ctx, &created, `
		INSERT INTO special_hours (date, closure_type, title, is_closed, open_time, close_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+columns,
		s.Date, s.ClosureType, s.Title, s.IsClosed, s.OpenTime, s.CloseTime)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) Update(ctx context.Context, id int, s *SpecialHours) (*SpecialHours, error) {
	var updated SpecialHours
	err := r.db.GetContext(ctx, &updated, `
		UPDATE special_hours
		SET date = $1, closure_type = $2, title = $3, is_closed = $4, open_time = $5, close_time = $6
		WHERE id = $7
		RETURNING `+columns,
		s.Date, s.ClosureType, s.Title, s.IsClosed, s.OpenTime, s.CloseTime, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSpecialHoursNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM special_hours WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrSpecialHoursNotFound
	}
	return nil
}

func (r *repository) ListUpcoming(ctx context.Context, from db.Date, limit int) ([]SpecialHours, error) {
	hours := []SpecialHours{}
	err := r.db.SelectContext(ctx, &hours, `
		SELECT `+columns+`
		FROM special_hours
		WHERE date >= $1
		ORDER BY date, id
		LIMIT $2`,
		from, limit)
	if err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *repository) ListBetween(ctx context.Context, from, to db.Date) ([]SpecialHours, error) {
	hours := []SpecialHours{}
	err := r.db.SelectContext(ctx, &hours, `
		SELECT `+columns+`
		FROM special_hours
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, id`,
		from, to)
	if err != nil {
		return nil, err
	}
	return hours, nil
}
