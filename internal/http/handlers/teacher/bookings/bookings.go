// Package bookings отдаёт учителю его бронирования, новые первыми.
package bookings

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

// Entry бронирование в ответе.
type Entry struct {
	ID           int64   `json:"id"`
	Subject      string  `json:"subject"`
	Price        string  `json:"price"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at" example:"2024-05-01T12:00:00Z"`
	StudentName  *string `json:"student_name"`
	StudentEmail string  `json:"student_email"`
	StudentPhone string  `json:"student_phone"`
}

// Response список бронирований.
type Response struct {
	Bookings []Entry `json:"bookings"`
}

// Service выборка бронирований учителя.
type Service interface {
	ListTeacherBookings(ctx context.Context, identity models.Identity) ([]models.TeacherBooking, error)
}

// Handler обрабатывает GET /api/teacher/bookings.
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
// @Summary Бронирования учителя
// @Tags Teacher
// @Produce json
// @Success 200 {object} Response
// @Failure 401 {object} response.ErrorResponse "Нет сессии"
// @Failure 403 {object} response.ErrorResponse "Не учитель"
// @Router /api/teacher/bookings [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.teacher.bookings"

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

	list, err := h.service.ListTeacherBookings(r.Context(), identity)
	if err != nil {
		response.WriteError(w, r, log, err)
		return
	}

	entries := make([]Entry, 0, len(list))
	for _, b := range list {
		entries = append(entries, Entry{
			ID:           b.ID,
			Subject:      b.Subject,
			Price:        b.Price,
			Status:       b.Status,
			CreatedAt:    models.FormatTimestamp(b.CreatedAt),
			StudentName:  b.StudentName,
			StudentEmail: b.StudentEmail,
			StudentPhone: b.StudentPhone,
		})
	}
	render.JSON(w, r, Response{Bookings: entries})
}
