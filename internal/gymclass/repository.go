package gymclass

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

const (
	columns = `id, name, description, instructor, day_of_week, start_time, duration_minutes, capacity, status`

	withCountSelect = `
		SELECT c.id, c.name, c.description, c.instructor, c.day_of_week, c.start_time,
		       c.duration_minutes, c.capacity, c.status,
		       COUNT(r.id) FILTER (WHERE r.status = 'active') AS active_registrations
		FROM gym_classes c
		LEFT JOIN class_registrations r ON r.class_id = c.id`
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, c *GymClass) (*GymClass, error) {
	query := `
		INSERT INTO gym_classes (name, description, instructor, day_of_week, start_time, duration_minutes, capacity)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + columns

	var created GymClass
	err := r.db.GetContext(ctx, &created, query,
		c.Name, c.Description, c.Instructor, c.DayOfWeek, c.StartTime, c.DurationMinutes, c.Capacity)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *repository) Update(ctx context.Context, id int, c *GymClass) (*GymClass, error) {
	query := `
		UPDATE gym_classes
		SET name = $1, description = $2, instructor = $3, day_of_week = $4,
		    start_time = $5, duration_minutes = $6, capacity = $7
		WHERE id = $8
		RETURNING ` + columns

	var updated GymClass
	err := r.db.GetContext(ctx, &updated, query,
		c.Name, c.Description, c.Instructor, c.DayOfWeek, c.StartTime, c.DurationMinutes, c.Capacity, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *repository) GetWithCount(ctx context.Context, id int) (*ClassWithCount, error) {
	var c ClassWithCount
	err := r.db.GetContext(ctx, &c, withCountSelect+`
		WHERE c.id = $1
		GROUP BY c.id`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrClassNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListActiveWithCounts(ctx context.Context, limit int) ([]ClassWithCount, error) {
	query := withCountSelect + `
		WHERE c.status = 'active'
		GROUP BY c.id
		ORDER BY c.day_of_week, c.start_time, c.id`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	classes := []ClassWithCount{}
	if err := r.db.SelectContext(ctx, &classes, query, args...); err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *repository) SetStatus(ctx context.Context, id int, status Status) error {
	result, err := r.db.ExecContext(ctx, `UPDATE gym_classes SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrClassNotFound
	}
	return nil
}

func (r *repository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM gym_classes WHERE status = 'active'`)
	return count, err
}
