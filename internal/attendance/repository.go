package attendance

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

const columns = `id, member_id, check_in_time, check_out_time`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CheckIn(ctx context.Context, memberID int, at time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.GetContext(ctx, &a, `
		INSERT INTO attendance (member_id, check_in_time)
		VALUES ($1, $2)
		RETURNING `+columns,
		memberID, at)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// CheckOut closes the member's most recent open check-in.
func (r *repository) CheckOut(ctx context.Context, memberID int, at time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.GetContext(ctx, &a, `
		UPDATE attendance
		SET check_out_time = GREATEST($2, check_in_time)
		WHERE id = (
			SELECT id FROM attendance
			WHERE member_id = $1 AND check_out_time IS NULL
			ORDER BY check_in_time DESC, id DESC
			LIMIT 1
		)
		RETURNING `+columns,
		memberID, at)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoOpenCheckIn
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) ListRecent(ctx context.Context, memberID int, limit int) ([]Attendance, error) {
	records := []Attendance{}
	err := r.db.SelectContext(ctx, &records, `
		SELECT `+columns+`
		FROM attendance
		WHERE member_id = $1
		ORDER BY check_in_time DESC, id DESC
		LIMIT $2`,
		memberID, limit)
	if err != nil {
		return nil, err
	}
	return records, nil
}
