package bookings

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/eduglow/internal/lib/apperr"
	"github.com/magabrotheeeer/eduglow/internal/models"
	"github.com/magabrotheeeer/eduglow/internal/storage"
)

type MockTeacherRepository struct {
	mock.Mock
}

func (m *MockTeacherRepository) GetTeacher(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b models.Booking) (int64, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) ListForTeacher(ctx context.Context, teacherID int64) ([]models.TeacherBooking, error) {
	args := m.Called(ctx, teacherID)
	list, _ := args.Get(0).([]models.TeacherBooking)
	return list, args.Error(1)
}

func strPtr(s string) *string { return &s }

func newService() (*Service, *MockTeacherRepository, *MockBookingRepository) {
	teachers := new(MockTeacherRepository)
	bookings := new(MockBookingRepository)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(log, teachers, bookings), teachers, bookings
}

var student = models.Identity{UserID: 2, Role: models.RoleStudent}

func TestService_CreateBooking(t *testing.T) {
	ctx := context.Background()
	teacher := &models.User{ID: 7, Role: models.RoleTeacher, Subject: strPtr("Physics"), Price: strPtr("INR 700/hr")}

	tests := []struct {
		name        string
		in          models.BookingInput
		teacher     *models.User
		wantSubject string
		wantPrice   string
	}{
		{
			name:        "subject from request",
			in:          models.BookingInput{TeacherID: "7", Subject: "Maths", Phone: " +91 98765-43210 "},
			teacher:     teacher,
			wantSubject: "Maths",
			wantPrice:   "INR 700/hr",
		},
		{
			name:        "subject from teacher, prefixed id",
			in:          models.BookingInput{TeacherID: "teacher-7", Phone: "+91 98765-43210"},
			teacher:     teacher,
			wantSubject: "Physics",
			wantPrice:   "INR 700/hr",
		},
		{
			name:        "defaults",
			in:          models.BookingInput{TeacherID: "7", Phone: "+91 98765-43210"},
			teacher:     &models.User{ID: 7, Role: models.RoleTeacher},
			wantSubject: "General",
			wantPrice:   "INR 500/hr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, teachers, bookings := newService()
			teachers.On("GetTeacher", ctx, int64(7)).Return(tt.teacher, nil).Once()
			bookings.On("Create", ctx, models.Booking{
				StudentID: 2,
				TeacherID: 7,
				Subject:   tt.wantSubject,
				Price:     tt.wantPrice,
				Phone:     "+91 98765-43210",
				Status:    "requested",
			}).Return(int64(42), nil).Once()

			id, err := svc.CreateBooking(ctx, student, tt.in)
			require.NoError(t, err)
			assert.Equal(t, int64(42), id)
			bookings.AssertExpectations(t)
		})
	}
}

func TestService_CreateBooking_Rejects(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		in      models.BookingInput
		setup   func(*MockTeacherRepository)
		kind    error
		message string
	}{
		{"no teacher", models.BookingInput{Phone: "123"}, nil, apperr.ErrValidation, "teacher_id required"},
		{"zero teacher", models.BookingInput{TeacherID: "0", Phone: "123"}, nil, apperr.ErrValidation, "teacher_id required"},
		{"no phone", models.BookingInput{TeacherID: "7", Phone: "  "}, nil, apperr.ErrValidation, "phone required"},
		{"letters in phone", models.BookingInput{TeacherID: "7", Phone: "abc123"}, nil, apperr.ErrValidation, "phone must be numeric"},
		{"garbage id", models.BookingInput{TeacherID: "teacher-x", Phone: "123"}, nil, apperr.ErrNotFound, "teacher not found"},
		{
			name: "not a teacher",
			in:   models.BookingInput{TeacherID: "3", Phone: "123"},
			setup: func(m *MockTeacherRepository) {
				m.On("GetTeacher", ctx, int64(3)).Return(nil, storage.ErrNotFound).Once()
			},
			kind:    apperr.ErrNotFound,
			message: "teacher not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, teachers, bookings := newService()
			if tt.setup != nil {
				tt.setup(teachers)
			}

			_, err := svc.CreateBooking(ctx, student, tt.in)
			require.ErrorIs(t, err, tt.kind)
			msg, _ := apperr.Message(err)
			assert.Equal(t, tt.message, msg)
			bookings.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestService_ListTeacherBookings(t *testing.T) {
	ctx := context.Background()
	svc, _, bookings := newService()
	want := []models.TeacherBooking{{ID: 1, Subject: "Physics", StudentName: strPtr("Student")}}
	bookings.On("ListForTeacher", ctx, int64(7)).Return(want, nil).Once()

	got, err := svc.ListTeacherBookings(ctx, models.Identity{UserID: 7, Role: models.RoleTeacher})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	bookings.On("ListForTeacher", ctx, int64(8)).Return(nil, errors.New("db down")).Once()
	_, err = svc.ListTeacherBookings(ctx, models.Identity{UserID: 8, Role: models.RoleTeacher})
	assert.Error(t, err)
}

func TestParseTeacherRef(t *testing.T) {
	tests := []struct {
		ref    string
		want   int64
		wantOK bool
	}{
		{"5", 5, true},
		{"teacher-12", 12, true},
		{" 3 ", 3, true},
		{"teacher-", 0, false},
		{"-1", 0, false},
		{"5.0", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, ok := ParseTeacherRef(tt.ref)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
