package repository

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/eduglow/internal/models"
)

func TestLikePatterns(t *testing.T) {
	tests := []struct {
		name  string
		terms []string
		want  []string
	}{
		{name: "lowercases", terms: []string{"Mathematics"}, want: []string{"%mathematics%"}},
		{name: "escapes percent", terms: []string{"100%"}, want: []string{`%100\%%`}},
		{name: "escapes underscore", terms: []string{"c_sharp"}, want: []string{`%c\_sharp%`}},
		{name: "escapes backslash", terms: []string{`a\b`}, want: []string{`%a\\b%`}},
		{name: "several terms", terms: []string{"Algebra", "Calculus"}, want: []string{"%algebra%", "%calculus%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LikePatterns(tt.terms))
		})
	}
}

func TestTrialRepository_Create(t *testing.T) {
	userID := int64(3)
	tests := []struct {
		name  string
		trial models.TrialRequest
	}{
		{name: "anonymous", trial: models.TrialRequest{Name: "Ravi", Phone: "919876543210", Subject: "Physics"}},
		{name: "linked to user", trial: models.TrialRequest{Name: "Ravi", Phone: "919876543210", Subject: "Physics", UserID: &userID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectQuery(`INSERT INTO trial_requests`).
				WithArgs(tt.trial.Name, tt.trial.Phone, tt.trial.Subject, tt.trial.UserID).
				WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(11)))

			id, err := NewTrialRepository(mock).Create(context.Background(), tt.trial)
			require.NoError(t, err)
			assert.Equal(t, int64(11), id)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTrialRepository_ListMatching(t *testing.T) {
	t.Run("matches with escaped patterns", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(`LIKE ANY\(\$1\)`).
			WithArgs([]string{"%mathematics%"}).
			WillReturnRows(pgxmock.NewRows([]string{"id", "subject", "created_at", "student_name", "phone"}).
				AddRow(int64(2), "Advanced Mathematics Tutoring", createdAt, "Student User", "919876543210"))

		got, err := NewTrialRepository(mock).ListMatching(context.Background(), []string{"Mathematics"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Advanced Mathematics Tutoring", got[0].Subject)
		assert.Equal(t, "Student User", got[0].StudentName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no terms skips query", func(t *testing.T) {
		mock := newMock(t)

		got, err := NewTrialRepository(mock).ListMatching(context.Background(), nil)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTrialRepository_ListByUser(t *testing.T) {
	mock := newMock(t)
	userID := int64(3)
	mock.ExpectQuery(`WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "phone", "subject", "user_id", "created_at"}).
			AddRow(int64(2), "Asha", "9876543210", "Chemistry", &userID, createdAt).
			AddRow(int64(1), "Asha", "9876543210", "Physics", &userID, createdAt))

	got, err := NewTrialRepository(mock).ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Chemistry", got[0].Subject)
	assert.Equal(t, userID, *got[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTrialRepository_Count(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM trial_requests`).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(7))

	n, err := NewTrialRepository(mock).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
