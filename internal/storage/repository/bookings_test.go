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

func TestBookingRepository_Create(t *testing.T) {
	b := models.Booking{StudentID: 2, TeacherID: 1, Subject: "Mathematics", Price: "INR 600/hr",
		Phone: "+91 98765-43210", Status: models.BookingStatusRequested}

	tests := []struct {
		name      string
		setupMock func(mock pgxmock.PgxPoolIface)
		wantID    int64
		wantErr   bool
	}{
		{
			name: "created",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO bookings`).
					WithArgs(b.StudentID, b.TeacherID, b.Subject, b.Price, b.Phone, b.Status).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(4)))
			},
			wantID: 4,
		},
		{
			name: "database error",
			setupMock: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO bookings`).
					WithArgs(b.StudentID, b.TeacherID, b.Subject, b.Price, b.Phone, b.Status).
					WillReturnError(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			tt.setupMock(mock)

			id, err := NewBookingRepository(mock).Create(context.Background(), b)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "connection refused")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, id)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestBookingRepository_ListForTeacher(t *testing.T) {
	mock := newMock(t)
	cols := []string{"id", "subject", "price", "status", "created_at", "student_name", "student_email", "phone"}
	mock.ExpectQuery(`LEFT JOIN users u ON u.id = b.student_id`).
		WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(int64(3), "Mathematics", "INR 600/hr", "requested", createdAt, strPtr("Student"), "", "9876543210").
			AddRow(int64(2), "Mathematics", "INR 600/hr", "requested", createdAt, (*string)(nil), "nameless@example.com", "").
			AddRow(int64(1), "Calculus", "INR 600/hr", "requested", createdAt, strPtr("Student User"), "student@example.com", "919876543210"))

	got, err := NewBookingRepository(mock).ListForTeacher(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Student", *got[0].StudentName)
	assert.Empty(t, got[0].StudentEmail)
	assert.Nil(t, got[1].StudentName)
	assert.Equal(t, "student@example.com", got[2].StudentEmail)
	assert.NoError(t, mock.ExpectationsWereMet())
}
