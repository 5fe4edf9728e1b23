// Package trials отдаёт учителю заявки, подходящие под его предмет и навыки.
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
	ID           int64  `json:"id"`
	Subject      string `json:"subject"`
	CreatedAt    string `json:"created_at"`
	StudentName  string `json:"student_name"`
	StudentPhone string `json:"student_phone"`
}

// Response список заявок.
type Response struct {
	Trials []Entry `json:"trials"`
}

// Service выборка заявок учителя.
type Service interface {
	ListForTeacher(ctx context.Context, identity models.Identity) ([]models.TeacherTrial, error)
}

// Handler обрабатывает GET /api/teacher/trials.
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
// @Summary Подходящие заявки на пробный урок
// @Description Тема заявки должна содержать предмет учителя или один из навыков, без учёта регистра.
// @Tags Teacher
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} response.ErrorResponse "Нет сессии"
// @Failure 403 {object} response.ErrorResponse "Не учитель"
// @Router /api/teacher/trials [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.teacher.trials"

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

	list, err := h.service.ListForTeacher(r.Context(), identity)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	entries := make([]Entry, 0, len(list))
	for _, t := range list {
		entries = append(entries, Entry{
			ID:           t.ID,
			Subject:      t.Subject,
			CreatedAt:    models.FormatTimestamp(t.CreatedAt),
			StudentName:  t.StudentName,
			StudentPhone: t.StudentPhone,
		})
	}
	render.JSON(w, r, Response{Trials: entries})
}
