package member

import (
	"context"
	"database/sql"
	"errors"

	"gymplace/internal/db"

	"github.com/jmoiron/sqlx"
)

const columns = `id, user_id, first_name, last_name, email, phone, membership_tier, status, joined_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Insert writes a member using q, which may be a transaction shared with
// the account that owns the member.
func Insert(ctx context.Context, q sqlx.QueryerContext, m *Member) (*Member, error) {
	query := `
		INSERT INTO members (user_id, first_name, last_name, email, phone, membership_tier)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + columns

	var created Member
	err := sqlx.GetContext(ctx, q, &created, query,
		m.UserID, m.FirstName, m.LastName, m.Email, m.Phone, m.Tier)
	if err != nil {
		if _, dup := db.UniqueViolation(err); dup {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &created, nil
}

func (r *repository) Create(ctx context.Context, m *Member) (*Member, error) {
	return Insert(ctx, r.db, m)
}

func (r *repository) get(ctx context.Context, query string, arg interface{}) (*Member, error) {
	var m Member
	err := r.db.GetContext(ctx, &m, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Member, error) {
	return r.get(ctx, `SELECT `+columns+` FROM members WHERE id = $1`, id)
}

func (r *repository) GetByUserID(ctx context.Context, userID int) (*Member, error) {
	return r.get(ctx, `SELECT `+columns+` FROM members WHERE user_id = $1`, userID)
}

func (r *repository) EmailExists(ctx context.Context, email string, excludeID int) (bool, error) {
	return db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM members WHERE lower(email) = lower($1) AND id <> $2)`,
		email, excludeID)
}

func (r *repository) ListActive(ctx context.Context, limit int) ([]Member, error) {
	query := `
		SELECT ` + columns + `
		FROM members
		WHERE status = 'active'
		ORDER BY joined_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	members := []Member{}
	if err := r.db.SelectContext(ctx, &members, query, args...); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *repository) CountActive(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM members WHERE status = 'active'`)
	return count, err
}

// UpdateProfile updates the member and keeps the linked account's name and
// email in step within one transaction.
func (r *repository) UpdateProfile(ctx context.Context, id int, req ProfileUpdateRequest) (*Member, error) {
	var m Member
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &m, `
			UPDATE members
			SET first_name = $1, last_name = $2, email = $3, phone = $4, membership_tier = $5
			WHERE id = $6
			RETURNING `+columns,
			req.FirstName, req.LastName, req.Email, req.Phone, req.Tier, id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrMemberNotFound
		}
		if err != nil {
			return err
		}

		if m.UserID == nil {
			return nil
		}
		_, err = tx.ExecContext(ctx, `
			UPDATE users
			SET first_name = $1, last_name = $2, email = $3
			WHERE id = $4`,
			m.FirstName, m.LastName, m.Email, *m.UserID)
		return err
	})
	if err != nil {
		if _, dup := db.UniqueViolation(err); dup {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &m, nil
}

func (r *repository) SetStatus(ctx context.Context, id int, status Status) error {
	result, err := r.db.ExecContext(ctx, `UPDATE members SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMemberNotFound
	}
	return nil
}
