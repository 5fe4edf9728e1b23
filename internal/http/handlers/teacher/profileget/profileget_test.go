package profileget

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/eduglow/internal/http/middlewarectx"
	"github.com/magabrotheeeer/eduglow/internal/models"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) GetTeacherProfile(ctx context.Context, identity models.Identity) (models.PublicUser, []string, error) {
	args := m.Called(ctx, identity)
	return args.Get(0).(models.PublicUser), args.Get(1).([]string), args.Error(2)
}

func TestHandler(t *testing.T) {
	teacher := models.Identity{UserID: 7, Role: models.RoleTeacher}
	subject := "Mathematics"
	rating := 4.9

	tests := []struct {
		name         string
		skills       []string
		expectedBody string
	}{
		{
			name:   "с навыками",
			skills: []string{"Algebra", "Calculus"},
			expectedBody: `{"profile":{"id":7,"email":"t@example.com","role":"teacher","name":null,"subject":"Mathematics",
				"rating":4.9,"price":null,"city":null,"image":null},"skills":["Algebra","Calculus"]}`,
		},
		{
			name: "без навыков",
			expectedBody: `{"profile":{"id":7,"email":"t@example.com","role":"teacher","name":null,"subject":"Mathematics",
				"rating":4.9,"price":null,"city":null,"image":null},"skills":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockService)
			service.On("GetTeacherProfile", mock.Anything, teacher).Return(models.PublicUser{
				ID: 7, Email: "t@example.com", Role: "teacher", Subject: &subject, Rating: &rating,
			}, tt.skills, nil).Once()

			req := httptest.NewRequest(http.MethodGet, "/api/teacher/profile", nil)
			req = req.WithContext(middlewarectx.WithIdentity(req.Context(), teacher))
			rec := httptest.NewRecorder()

			New(slog.New(slog.NewTextHandler(io.Discard, nil)), service).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}
