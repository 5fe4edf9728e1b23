// Package list отдаёт общую выдачу репетиторов: каталог и зарегистрированных учителей.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/eduglow/internal/http/response"
	"github.com/magabrotheeeer/eduglow/internal/models"
)

// Response список карточек.
type Response struct {
	Tutors []models.Listing `json:"tutors"`
}

// Service источник выдачи.
type Service interface {
	ListTutors(ctx context.Context) ([]models.Listing, error)
}

// Handler обрабатывает GET /api/tutors.
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
// @Summary Список репетиторов
// @Description Сначала записи каталога, затем учителя с навыками.
// @Tags Tutors
// @Produce json
// @Success 200 {object} Response
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/tutors [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.tutors.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	tutors, err := h.service.ListTutors(r.Context())
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}
	if tutors == nil {
		tutors = []models.Listing{}
	}
	render.JSON(w, r, Response{Tutors: tutors})
}
