package create

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/eduglow/internal/http/middlewarectx"
	"github.com/magabrotheeeer/eduglow/internal/lib/apperr"
	"github.com/magabrotheeeer/eduglow/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) CreateBooking(ctx context.Context, identity models.Identity, in models.BookingInput) (int64, error) {
	args := m.Called(ctx, identity, in)
	return args.Get(0).(int64), args.Error(1)
}

func TestHandler(t *testing.T) {
	student := models.Identity{UserID: 2, Role: models.RoleStudent}

	tests := []struct {
		name           string
		body           string
		input          models.BookingInput
		id             int64
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "числовой id",
			body:           `{"teacher_id":7,"phone":"9876543210"}`,
			input:          models.BookingInput{TeacherID: "7", Phone: "9876543210"},
			id:             11,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"booking_created","booking_id":11}`,
		},
		{
			name:           "id из выдачи",
			body:           `{"teacher_id":"teacher-7","subject":"Physics","phone":9876543210}`,
			input:          models.BookingInput{TeacherID: "teacher-7", Subject: "Physics", Phone: "9876543210"},
			id:             12,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"booking_created","booking_id":12}`,
		},
		{
			name:           "учитель не найден",
			body:           `{"teacher_id":"abc","phone":"1"}`,
			input:          models.BookingInput{TeacherID: "abc", Phone: "1"},
			err:            apperr.NotFound("teacher not found"),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"teacher not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockService)
			service.On("CreateBooking", mock.Anything, student, tt.input).Return(tt.id, tt.err).Once()

			req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(tt.body))
			req = req.WithContext(middlewarectx.WithIdentity(req.Context(), student))
			rec := httptest.NewRecorder()

			New(slog.New(slog.NewTextHandler(io.Discard, nil)), service).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			service.AssertExpectations(t)
		})
	}
}
