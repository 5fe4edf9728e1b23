// Package stats отдаёт число заявок на пробный урок.
package stats

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/eduglow/internal/http/response"
)

// Response счётчик заявок.
type Response struct {
	Trials int `json:"trials"`
}

// Service подсчёт заявок.
type Service interface {
	CountAll(ctx context.Context) (int, error)
}

// Handler обрабатывает GET /api/teacher/stats.
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
// @Summary Статистика заявок
// @Description Считаются все заявки платформы, а не только подходящие учителю.
// @Tags Teacher
// @Produce json
// @Success 200 {object} Response
// @Router /api/teacher/stats [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.teacher.stats"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	count, err := h.service.CountAll(r.Context())
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	render.JSON(w, r, Response{Trials: count})
}
