// Package profile отдаёт профиль студента.
package profile

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/eduglow/internal/http/middlewarectx"
	"github.com/magabrotheeeer/eduglow/internal/http/response"
	"github.com/magabrotheeeer/eduglow/internal/models"
)

// Response профиль студента.
type Response struct {
	Profile models.PublicUser `json:"profile"`
}

// Service чтение профиля.
type Service interface {
	GetStudentProfile(ctx context.Context, identity models.Identity) (models.PublicUser, error)
}

// Handler обрабатывает GET /api/student/profile.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Профиль студента
// @Tags Student
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} response.ErrorResponse "Нет сессии"
// @Failure 403 {object} response.ErrorResponse "Не студент"
// @Router /api/student/profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.student.profile"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	identity, ok := middlewarectx.IdentityFrom(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	profile, err := h.service.GetStudentProfile(r.Context(), identity)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	render.JSON(w, r, Response{Profile: profile})
}
