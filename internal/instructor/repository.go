package instructor

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

const columns = `id, name, specialty, bio, years_experience, certifications, email, photo`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req InstructorRequest) (*Instructor, error) {
	query := `
		INSERT INTO instructors (name, specialty, bio, years_experience, certifications, email, photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + columns

	var in Instructor
	err := r.db.GetContext(ctx, &in, query,
		req.Name, req.Specialty, req.Bio, req.YearsExperience, req.Certifications, req.Email, req.Photo)
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *repository) Update(ctx context.Context, id int, req InstructorRequest) (*Instructor, error) {
	query := `
		UPDATE instructors
		SET name = $1, specialty = $2, bio = $3, years_experience = $4,
		    certifications = $5, email = $6, photo = $7
		WHERE id = $8
		RETURNING ` + columns

	var in Instructor
	err := r.db.GetContext(ctx, &in, query,
		req.Name, req.Specialty, req.Bio, req.YearsExperience, req.Certifications, req.Email, req.Photo, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Instructor, error) {
	var in Instructor
	err := r.db.GetContext(ctx, &in, `SELECT `+columns+` FROM instructors WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &in, nil
}

// FindByName matches the free-text instructor name stored on classes.
func (r *repository) FindByName(ctx context.Context, name string) (*Instructor, error) {
	var in Instructor
	err := r.db.GetContext(ctx, &in,
		`SELECT `+columns+` FROM instructors WHERE name = $1 ORDER BY id LIMIT 1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInstructorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &in, nil
}

func (r *repository) List(ctx context.Context) ([]Instructor, error) {
	instructors := []Instructor{}
	err := r.db.SelectContext(ctx, &instructors, `SELECT `+columns+` FROM instructors ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	return instructors, nil
}
