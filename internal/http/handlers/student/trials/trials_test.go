package trials

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/eduglow/internal/http/middlewarectx"
	"github.com/magabrotheeeer/eduglow/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) ListForStudent(ctx context.Context, identity models.Identity) ([]models.TrialRequest, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).([]models.TrialRequest), args.Error(1)
}

func TestHandler(t *testing.T) {
	student := models.Identity{UserID: 4, Role: models.RoleStudent}
	uid := int64(4)

	service := new(MockService)
	service.On("ListForStudent", mock.Anything, student).Return([]models.TrialRequest{
		{ID: 8, Name: "Ravi", Phone: "919876543210", Subject: "Physics", UserID: &uid,
			CreatedAt: time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/student/trials", nil)
	req = req.WithContext(middlewarectx.WithIdentity(req.Context(), student))
	rec := httptest.NewRecorder()

	New(slog.New(slog.NewTextHandler(io.Discard, nil)), service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"trials":[{"id":8,"name":"Ravi","phone":"919876543210","subject":"Physics",
		"created_at":"2024-05-03T10:00:00Z"}]}`, rec.Body.String())
}
