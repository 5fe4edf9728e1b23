// Package skillremove удаляет навык учителя по точному имени.
package skillremove

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

// Request имя навыка.
type Request struct {
	Name models.LooseString `json:"name"`
}

// Response удалённый навык.
type Response struct {
	Message string `json:"message" example:"skill_removed"`
	Skill   string `json:"skill"`
}

// Service удаление навыка.
type Service interface {
	RemoveSkill(ctx context.Context, identity models.Identity, name string) (string, error)
}

// Handler обрабатывает DELETE /api/teacher/skills.
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
// @Summary Удаление навыка
// @Tags Teacher
// @Accept json
// @Produce json
// @Param request body Request true "Навык"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Пустое имя"
// @Failure 404 {object} response.ErrorResponse "Навык не найден"
// @Router /api/teacher/skills [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.teacher.skillremove"

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

	req, err := request.DecodeJSON[Request](r)
	if err != nil {
		log.Warn("malformed request body, treating as empty", sl.Err(err))
	}

	name, err := h.service.RemoveSkill(r.Context(), identity, req.Name.String())
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	render.JSON(w, r, Response{Message: "skill_removed", Skill: name})
}
