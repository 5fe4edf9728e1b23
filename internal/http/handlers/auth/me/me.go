// Package me отдаёт пользователя текущей сессии.
package me

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

// Response ответ с данными пользователя.
type Response struct {
	User models.PublicUser `json:"user"`
}

// Service поиск пользователя по сессии.
type Service interface {
	GetUser(ctx context.Context, identity models.Identity) (models.PublicUser, error)
}

// Handler обрабатывает GET /api/me.
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
// @Summary Текущий пользователь
// @Tags Auth
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} response.ErrorResponse "Нет сессии"
// @Failure 404 {object} response.ErrorResponse "Учётная запись удалена"
// @Router /api/me [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.me"

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

	user, err := h.service.GetUser(r.Context(), identity)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	render.JSON(w, r, Response{User: user})
}
