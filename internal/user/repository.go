package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"gymplace/internal/db"
	"gymplace/internal/member"

	"github.com/jmoiron/sqlx"
)

const columns = `id, username, email, password_hash, role, first_name, last_name, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// CreateWithMember inserts the account and its member profile atomically.
func (r *repository) CreateWithMember(ctx context.Context, u *User, m *member.Member) (*User, *member.Member, error) {
	var created User
	var profile *member.Member

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &created, `
			INSERT INTO users (username, email, password_hash, role, first_name, last_name)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+columns,
			u.Username, u.Email, u.PasswordHash, u.Role, u.FirstName, u.LastName)
		if err != nil {
			return err
		}

		m.UserID = &created.ID
		profile, err = member.Insert(ctx, tx, m)
		return err
	})
	if err != nil {
		return nil, nil, mapUniqueViolation(err)
	}

	return &created, profile, nil
}

func mapUniqueViolation(err error) error {
	if errors.Is(err, member.ErrEmailTaken) {
		return ErrEmailTaken
	}
	constraint, ok := db.UniqueViolation(err)
	if !ok {
		return err
	}
	if strings.Contains(constraint, "username") {
		return ErrUsernameTaken
	}
	return ErrEmailTaken
}

func (r *repository) find(ctx context.Context, query string, arg interface{}) (*User, error) {
	var u User
	err := r.db.GetContext(ctx, &u, query, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByUsername(ctx context.Context, username string) (*User, error) {
	return r.find(ctx, `SELECT `+columns+` FROM users WHERE lower(username) = lower($1)`, username)
}

func (r *repository) FindByID(ctx context.Context, id int) (*User, error) {
	return r.find(ctx, `SELECT `+columns+` FROM users WHERE id = $1`, id)
}

func (r *repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM users WHERE lower(username) = lower($1))`, username)
}

// EmailExists checks accounts and member profiles, since signup without an
// account also claims an email.
func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, r.db, `
		SELECT EXISTS(SELECT 1 FROM users WHERE lower(email) = lower($1))
		    OR EXISTS(SELECT 1 FROM members WHERE lower(email) = lower($1))`, email)
}
