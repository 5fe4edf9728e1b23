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

func (m *MockService) Submit(ctx context.Context, identity *models.Identity, in models.TrialInput) error {
	args := m.Called(ctx, identity, in)
	return args.Error(0)
}

func TestHandler(t *testing.T) {
	student := models.Identity{UserID: 9, Role: models.RoleStudent}

	tests := []struct {
		name           string
		body           string
		identity       *models.Identity
		input          models.TrialInput
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "анонимная заявка",
			body:           `{"name":" Ravi ","phone":"98765 43210","subject":"Math"}`,
			input:          models.TrialInput{Name: "Ravi", Phone: "98765 43210", Subject: "Math"},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"trial_submitted"}`,
		},
		{
			name:           "телефон числом и сессия",
			body:           `{"name":"Ravi","phone":9876543210,"subject":"Math"}`,
			identity:       &student,
			input:          models.TrialInput{Name: "Ravi", Phone: "9876543210", Subject: "Math"},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"trial_submitted"}`,
		},
		{
			name:           "не хватает полей",
			body:           `{"name":"Ravi"}`,
			input:          models.TrialInput{Name: "Ravi"},
			err:            apperr.Validation("name, phone, and subject required"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"name, phone, and subject required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := new(MockService)
			service.On("Submit", mock.Anything, tt.identity, tt.input).Return(tt.err).Once()

			req := httptest.NewRequest(http.MethodPost, "/api/trials", strings.NewReader(tt.body))
			if tt.identity != nil {
				req = req.WithContext(middlewarectx.WithIdentity(req.Context(), *tt.identity))
			}
			rec := httptest.NewRecorder()

			New(slog.New(slog.NewTextHandler(io.Discard, nil)), service).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			service.AssertExpectations(t)
		})
	}
}
