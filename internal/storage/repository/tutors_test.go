package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/eduglow/internal/models"
)

func TestTutorRepository_List(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM tutors ORDER BY id`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "subject", "level", "rating", "price", "city", "image"}).
			AddRow(int64(1), "Priya Sharma", "Mathematics", "Class 9-12", 4.9, "INR 600/hr", "Delhi", "http://static.photos/people/200x200/1"))

	got, err := NewTutorRepository(mock).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Priya Sharma", got[0].Name)
	assert.Equal(t, 4.9, got[0].Rating)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTutorRepository_CreateMany(t *testing.T) {
	tutors := []models.Tutor{
		{Name: "Priya Sharma", Subject: "Mathematics", Level: "Class 9-12", Rating: 4.9, Price: "INR 600/hr", City: "Delhi", Image: "img1"},
		{Name: "Rohan Verma", Subject: "Physics", Level: "Class 11-12", Rating: 4.8, Price: "INR 700/hr", City: "Delhi", Image: "img2"},
	}

	t.Run("inserts all in one transaction", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		for _, tu := range tutors {
			mock.ExpectExec(`INSERT INTO tutors`).
				WithArgs(tu.Name, tu.Subject, tu.Level, tu.Rating, tu.Price, tu.City, tu.Image).
				WillReturnResult(pgxmock.NewResult("INSERT", 1))
		}
		mock.ExpectCommit()

		require.NoError(t, NewTutorRepository(mock).CreateMany(context.Background(), tutors))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		first, second := tutors[0], tutors[1]
		mock.ExpectExec(`INSERT INTO tutors`).
			WithArgs(first.Name, first.Subject, first.Level, first.Rating, first.Price, first.City, first.Image).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectExec(`INSERT INTO tutors`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
				pgxmock.AnyArg(), pgxmock.AnyArg(), second.Image).
			WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := NewTutorRepository(mock).CreateMany(context.Background(), tutors)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
