package instructor

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var instructorCols = []string{"id", "name", "specialty", "bio", "years_experience", "certifications", "email", "photo"}

func setupMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRepository(sqlxDB), mock, func() { sqlxDB.Close() }
}

func TestCreateAndList(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	req := InstructorRequest{Name: "Sarah Johnson", Specialty: "Yoga", Bio: "RYT-500", YearsExperience: 8}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO instructors")).
		WithArgs("Sarah Johnson", "Yoga", "RYT-500", 8, "", "", "").
		WillReturnRows(sqlmock.NewRows(instructorCols).AddRow(1, "Sarah Johnson", "Yoga", "RYT-500", 8, "", "", ""))

	in, err := repo.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, in.ID)

	mock.ExpectQuery(regexp.QuoteMeta("FROM instructors ORDER BY name, id")).
		WillReturnRows(sqlmock.NewRows(instructorCols).
			AddRow(2, "Mike Chen", "HIIT", "", 5, "", "", "").
			AddRow(1, "Sarah Johnson", "Yoga", "", 8, "", "", ""))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Mike Chen", list[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByName_NoMatch(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM instructors WHERE name = $1")).
		WithArgs("Guest Coach").
		WillReturnRows(sqlmock.NewRows(instructorCols))

	in, err := repo.FindByName(context.Background(), "Guest Coach")
	assert.ErrorIs(t, err, ErrInstructorNotFound)
	assert.Nil(t, in)
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, close := setupMock(t)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE instructors")).
		WillReturnRows(sqlmock.NewRows(instructorCols))

	_, err := repo.Update(context.Background(), 42, InstructorRequest{Name: "X"})
	assert.ErrorIs(t, err, ErrInstructorNotFound)
}
