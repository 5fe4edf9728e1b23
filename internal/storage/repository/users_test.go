package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/eduglow/internal/models"
	"github.com/magabrotheeeer/eduglow/internal/storage"
)

var userCols = []string{"id", "email", "password_hash", "role", "name", "subject", "rating", "price", "city", "image", "created_at"}

var createdAt = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err, "failed to create mock")
	t.Cleanup(mock.Close)
	return mock
}

func teacherRow(rows *pgxmock.Rows, id int64, email string) *pgxmock.Rows {
	return rows.AddRow(id, email, "hash", models.RoleTeacher, strPtr("John Doe"), strPtr("Mathematics"),
		floatPtr(4.8), strPtr("INR 600/hr"), strPtr("Delhi"), (*string)(nil), createdAt)
}

func TestUserRepository_Create(t *testing.T) {
	user := models.User{Email: "new@example.com", PasswordHash: "hash", Role: models.RoleStudent, Name: strPtr("Asha")}

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantID    int64
		wantErr   error
	}{
		{
			name: "successful insert",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs(user.Email, user.PasswordHash, user.Role, user.Name, user.Subject,
						user.Rating, user.Price, user.City, user.Image).
					WillReturnRows(pgxmock.NewRows(userCols).AddRow(int64(5), user.Email, "hash", models.RoleStudent,
						strPtr("Asha"), (*string)(nil), (*float64)(nil), (*string)(nil), (*string)(nil), (*string)(nil), createdAt))
			},
			wantID: 5,
		},
		{
			name: "duplicate email",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs(user.Email, user.PasswordHash, user.Role, user.Name, user.Subject,
						user.Rating, user.Price, user.City, user.Image).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: storage.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setupMock(mock)

			got, err := NewUserRepository(mock).Create(context.Background(), user)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, got.ID)
				assert.Equal(t, "Asha", *got.Name)
				assert.Nil(t, got.Subject)
				assert.Equal(t, createdAt, got.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantErr   error
		errMsg    string
	}{
		{
			name: "found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM users WHERE email = \$1`).
					WithArgs("teacher@example.com").
					WillReturnRows(teacherRow(pgxmock.NewRows(userCols), 1, "teacher@example.com"))
			},
		},
		{
			name: "not found",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM users WHERE email = \$1`).
					WithArgs("teacher@example.com").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: storage.ErrNotFound,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`FROM users WHERE email = \$1`).
					WithArgs("teacher@example.com").
					WillReturnError(errors.New("connection refused"))
			},
			errMsg: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setupMock(mock)

			got, err := NewUserRepository(mock).GetByEmail(context.Background(), "teacher@example.com")
			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
			case tt.errMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.NotErrorIs(t, err, storage.ErrNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(1), got.ID)
				assert.Equal(t, models.RoleTeacher, got.Role)
				assert.Equal(t, 4.8, *got.Rating)
				assert.Nil(t, got.Image)
			}
			assert.NoError(t, mock.ExpectationsWereMet(), "unfulfilled expectations")
		})
	}
}

func TestUserRepository_GetTeacher_FiltersRole(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`FROM users WHERE id = \$1 AND role = \$2`).
		WithArgs(int64(9), models.RoleTeacher).
		WillReturnError(pgx.ErrNoRows)

	_, err := NewUserRepository(mock).GetTeacher(context.Background(), 9)
	require.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ListTeachers(t *testing.T) {
	mock := newMock(t)
	rows := pgxmock.NewRows(userCols)
	teacherRow(rows, 1, "a@example.com")
	teacherRow(rows, 2, "b@example.com")
	mock.ExpectQuery(`FROM users WHERE role = \$1 ORDER BY id`).
		WithArgs(models.RoleTeacher).
		WillReturnRows(rows)

	got, err := NewUserRepository(mock).ListTeachers(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b@example.com", got[1].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	mock := newMock(t)
	user := models.User{ID: 1, Name: strPtr("John Doe"), Subject: strPtr("Mathematics"), Rating: floatPtr(4.8),
		Price: strPtr("INR 600/hr"), City: strPtr("Delhi")}
	mock.ExpectQuery(`UPDATE users`).
		WithArgs(user.ID, user.Name, user.Subject, user.Rating, user.Price, user.City, user.Image).
		WillReturnRows(teacherRow(pgxmock.NewRows(userCols), 1, "teacher@example.com"))

	got, err := NewUserRepository(mock).UpdateProfile(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "teacher@example.com", got.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("student@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := NewUserRepository(mock).ExistsByEmail(context.Background(), "student@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
