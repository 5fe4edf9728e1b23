// Package trials отдаёт студенту его заявки на пробный урок.
package trials

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

// Entry заявка в ответе.
type Entry struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject"`
	CreatedAt string `json:"created_at"`
}

// Response список заявок, новые первыми.
type Response struct {
	Trials []Entry `json:"trials"`
}

// Service выборка заявок студента.
type Service interface {
	ListForStudent(ctx context.Context, identity models.Identity) ([]models.TrialRequest, error)
}

// Handler обрабатывает GET /api/student/trials.
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
// @Summary Заявки студента
// @Tags Student
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} response.ErrorResponse "Нет сессии"
// @Failure 403 {object} response.ErrorResponse "Не студент"
// @Router /api/student/trials [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.student.trials"

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

	list, err := h.service.ListForStudent(r.Context(), identity)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	entries := make([]Entry, 0, len(list))
	for _, t := range list {
		entries = append(entries, Entry{
			ID:        t.ID,
			Name:      t.Name,
			Phone:     t.Phone,
			Subject:   t.Subject,
			CreatedAt: models.FormatTimestamp(t.CreatedAt),
		})
	}
	render.JSON(w, r, Response{Trials: entries})
}
