// Package profileget отдаёт профиль учителя вместе с навыками.
package profileget

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

// Response профиль и навыки в порядке добавления.
type Response struct {
	Profile models.PublicUser `json:"profile"`
	Skills  []string          `json:"skills"`
}

// Service чтение профиля учителя.
type Service interface {
	GetTeacherProfile(ctx context.Context, identity models.Identity) (models.PublicUser, []string, error)
}

// Handler обрабатывает GET /api/teacher/profile.
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
// @Summary Профиль учителя
// @Tags Teacher
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} response.ErrorResponse "Нет сессии"
// @Failure 403 {object} response.ErrorResponse "Не учитель"
// @Failure 404 {object} response.ErrorResponse "Учётная запись удалена"
// @Router /api/teacher/profile [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.teacher.profileget"

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

	profile, skills, err := h.service.GetTeacherProfile(r.Context(), identity)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	if skills == nil {
		skills = []string{}
	}
	render.JSON(w, r, Response{Profile: profile, Skills: skills})
}
