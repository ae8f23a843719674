package registration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gymplace/internal/db"

	"github.com/jmoiron/sqlx"
)

const columns = `id, member_id, class_id, registered_at, status, attended`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Register applies the capacity rule under a row lock on the class, so
// concurrent registrations for one class are serialized.
func (r *repository) Register(ctx context.Context, memberID, classID int) (*Registration, Outcome, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, "", err
	}
	defer tx.Rollback()

	var class struct {
		Name     string `db:"name"`
		Capacity int    `db:"capacity"`
	}
	err = tx.GetContext(ctx, &class, `
		SELECT name, capacity
		FROM gym_classes
		WHERE id = $1 AND status = 'active'
		FOR UPDATE`,
		classID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, "", ErrClassNotFound
	}
	if err != nil {
		return nil, "", err
	}

	var existing Registration
	found := true
	err = tx.GetContext(ctx, &existing, `
		SELECT `+columns+`
		FROM class_registrations
		WHERE member_id = $1 AND class_id = $2`,
		memberID, classID)
	if errors.Is(err, sql.ErrNoRows) {
		found = false
	} else if err != nil {
		return nil, "", err
	}

	if found && existing.IsActive() {
		existing.ClassName = class.Name
		return &existing, OutcomeAlreadyRegistered, nil
	}

	var active int
	err = tx.GetContext(ctx, &active, `
		SELECT COUNT(*)
		FROM class_registrations
		WHERE class_id = $1 AND status = 'active'`,
		classID)
	if err != nil {
		return nil, "", err
	}
	if active >= class.Capacity {
		return nil, "", ErrClassFull
	}

	var reg Registration
	outcome := OutcomeRegistered
	if found {
		outcome = OutcomeReregistered
		err = tx.GetContext(ctx, &reg, `
			UPDATE class_registrations
			SET status = 'active'
			WHERE id = $1
			RETURNING `+columns,
			existing.ID)
	} else {
		err = tx.GetContext(ctx, &reg, `
			INSERT INTO class_registrations (member_id, class_id)
			VALUES ($1, $2)
			RETURNING `+columns,
			memberID, classID)
	}
	if err != nil {
		if _, dup := db.UniqueViolation(err); dup {
			return nil, "", ErrDuplicateRegistration
		}
		return nil, "", fmt.Errorf("write registration: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, "", err
	}

	reg.ClassName = class.Name
	return &reg, outcome, nil
}

func (r *repository) cancel(ctx context.Context, query string, args ...interface{}) (*Registration, error) {
	var reg Registration
	err := r.db.GetContext(ctx, &reg, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRegistrationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *repository) Cancel(ctx context.Context, memberID, classID int) (*Registration, error) {
	return r.cancel(ctx, `
		UPDATE class_registrations
		SET status = 'cancelled'
		WHERE member_id = $1 AND class_id = $2 AND status = 'active'
		RETURNING `+columns,
		memberID, classID)
}

func (r *repository) CancelByID(ctx context.Context, id int) (*Registration, error) {
	return r.cancel(ctx, `
		UPDATE class_registrations
		SET status = 'cancelled'
		WHERE id = $1 AND status = 'active'
		RETURNING `+columns,
		id)
}

func (r *repository) SetAttended(ctx context.Context, id int, attended bool) (*Registration, error) {
	var reg Registration
	err := r.db.GetContext(ctx, &reg, `
		UPDATE class_registrations
		SET attended = $1
		WHERE id = $2
		RETURNING `+columns,
		attended, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRegistrationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *repository) IsRegistered(ctx context.Context, memberID, classID int) (bool, error) {
	return db.Exists(ctx, r.db, `
		SELECT EXISTS(
			SELECT 1 FROM class_registrations
			WHERE member_id = $1 AND class_id = $2 AND status = 'active'
		)`, memberID, classID)
}

func (r *repository) ListForMember(ctx context.Context, memberID int, onlyActive bool, limit int) ([]Registration, error) {
	query := `
		SELECT r.id, r.member_id, r.class_id, r.registered_at, r.status, r.attended,
		       c.name AS class_name, c.day_of_week AS class_day_of_week, c.start_time AS class_start_time
		FROM class_registrations r
		JOIN gym_classes c ON c.id = r.class_id
		WHERE r.member_id = $1`
	args := []interface{}{memberID}
	if onlyActive {
		query += ` AND r.status = 'active'`
	}
	query += ` ORDER BY r.registered_at DESC, r.id DESC`
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	regs := []Registration{}
	if err := r.db.SelectContext(ctx, &regs, query, args...); err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *repository) ListForClass(ctx context.Context, classID int, onlyActive bool) ([]Registration, error) {
	query := `
		SELECT r.id, r.member_id, r.class_id, r.registered_at, r.status, r.attended,
		       m.first_name || ' ' || m.last_name AS member_name
		FROM class_registrations r
		JOIN members m ON m.id = r.member_id
		WHERE r.class_id = $1`
	if onlyActive {
		query += ` AND r.status = 'active'`
	}
	query += ` ORDER BY r.registered_at DESC, r.id DESC`

	regs := []Registration{}
	if err := r.db.SelectContext(ctx, &regs, query, classID); err != nil {
		return nil, err
	}
	return regs, nil
}
