// Package skilladd добавляет навык учителю.
package skilladd

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

// Response результат. Message равно skill_exists, если навык уже был.
type Response struct {
	Message string `json:"message" example:"skill_added"`
	Skill   string `json:"skill"`
}

// Service добавление навыка.
type Service interface {
	AddSkill(ctx context.Context, identity models.Identity, name string) (string, bool, error)
}

// Handler обрабатывает POST /api/teacher/skills.
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
// @Summary Добавление навыка
// @Tags Teacher
// @Accept json
// @Produce json
// @Param request body Request true "Навык"
// @Success 200 {object} Response
// @Failure 400 {object} response.ErrorResponse "Пустое имя"
// @Router /api/teacher/skills [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.teacher.skilladd"

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

	name, added, err := h.service.AddSkill(r.Context(), identity, req.Name.String())
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	if !added {
		render.JSON(w, r, Response{Message: "skill_exists", Skill: name})
		return
	}
	render.JSON(w, r, Response{Message: "skill_added", Skill: name})
}
