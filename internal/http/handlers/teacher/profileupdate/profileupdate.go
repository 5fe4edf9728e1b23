// Package profileupdate частично обновляет профиль учителя.
//
// Переданный null очищает поле, отсутствующий ключ оставляет его как есть.
package profileupdate

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/eduglow/internal/http/middlewarectx"
	"github.com/magabrotheeeer/eduglow/internal/http/request"
	"github.com/magabrotheeeer/eduglow/internal/http/response"
	"github.com/magabrotheeeer/eduglow/internal/lib/sl"
	"github.com/magabrotheeeer/eduglow/internal/models"
)

// Response обновлённый профиль.
type Response struct {
	Message string            `json:"message" example:"profile_updated"`
	Profile models.PublicUser `json:"profile"`
}

// Service обновление профиля.
type Service interface {
	UpdateTeacherProfile(ctx context.Context, identity models.Identity, upd models.ProfileUpdate) (models.PublicUser, error)
}

// Handler обрабатывает PUT /api/teacher/profile.
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
// @Summary Обновление профиля учителя
// @Tags Teacher
// @Accept json
// @Produce json
// @Param request body models.ProfileUpdate true "Поля профиля: name, subject, price, city, image, rating"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Рейтинг не число"
// @Failure 401 {object} response.ErrorResponse "Нет сессии"
// @Failure 403 {object} response.ErrorResponse "Не учитель"
// @Router /api/teacher/profile [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.teacher.profileupdate"

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

	upd, err := request.DecodeJSON[models.ProfileUpdate](r)
	if err != nil {
		log.Warn("malformed request body, treating as empty", sl.Err(err))
	}

	profile, err := h.service.UpdateTeacherProfile(r.Context(), identity, upd)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	render.JSON(w, r, Response{Message: "profile_updated", Profile: profile})
}
